package simd

// This file provides the portable implementations of the memory and compare
// operations. SIMD builds replace these per architecture; the portable forms
// are the reference semantics and the fallback when UFUNC_NO_SIMD is set.

// Load creates a vector from the head of src. If src holds fewer than
// MaxLanes[T]() elements, the vector is shortened to len(src).
func Load[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	if len(src) < n {
		n = len(src)
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with every lane equal to value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with every lane zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// And performs a per-lane bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// Eq compares lanes for equality.
func Eq[T Lanes](a, b Vec[T]) Mask[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Ne compares lanes for inequality.
func Ne[T Lanes](a, b Vec[T]) Mask[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Lt compares lanes for a < b. NaN lanes compare false, as in hardware.
func Lt[T Lanes](a, b Vec[T]) Mask[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Le compares lanes for a <= b. NaN lanes compare false.
func Le[T Lanes](a, b Vec[T]) Mask[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}
