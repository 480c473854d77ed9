// Copyright 2026 numgo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

// Mask boolean algebra. These mirror the hardware mask-register operations
// (and, andc, or, orc, xor, xnor) used by kernels that combine comparison
// results without round-tripping through lane values.

// MaskAnd returns a & b per lane.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := len(a.bits)
	if len(b.bits) < n {
		n = len(b.bits)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskAndNot returns a & ~b per lane (the "andc" of vector ISAs).
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	n := len(a.bits)
	if len(b.bits) < n {
		n = len(b.bits)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] && !b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr returns a | b per lane.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := len(a.bits)
	if len(b.bits) < n {
		n = len(b.bits)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOrNot returns a | ~b per lane (the "orc" of vector ISAs).
func MaskOrNot[T Lanes](a, b Mask[T]) Mask[T] {
	n := len(a.bits)
	if len(b.bits) < n {
		n = len(b.bits)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] || !b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskXor returns a ^ b per lane.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	n := len(a.bits)
	if len(b.bits) < n {
		n = len(b.bits)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] != b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskXnor returns ~(a ^ b) per lane.
func MaskXnor[T Lanes](a, b Mask[T]) Mask[T] {
	n := len(a.bits)
	if len(b.bits) < n {
		n = len(b.bits)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] == b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskNot inverts every lane.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i := range m.bits {
		bits[i] = !m.bits[i]
	}
	return Mask[T]{bits: bits}
}

// Mask8 reinterprets a mask over a one-byte element type as a byte mask.
// The element type T must be one byte wide; for wider types use the
// PackMask family to narrow first.
func Mask8[T Lanes](m Mask[T]) Mask[uint8] {
	bits := make([]bool, len(m.bits))
	copy(bits, m.bits)
	return Mask[uint8]{bits: bits}
}

// MaskToVec materializes a mask as a vector with all-ones lanes for true and
// zero lanes for false, matching the hardware mask encoding. Callers that
// need a literal 0/1 byte must AND the result with Set(1).
func MaskToVec[T Integers](m Mask[T]) Vec[T] {
	data := make([]T, len(m.bits))
	for i, b := range m.bits {
		if b {
			data[i] = ^T(0)
		}
	}
	return Vec[T]{data: data}
}

// FirstN returns a mask with the first n lanes set.
func FirstN[T Lanes](n int) Mask[T] {
	max := MaxLanes[T]()
	if n < 0 {
		n = 0
	}
	if n > max {
		n = max
	}
	bits := make([]bool, max)
	for i := 0; i < n; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// CountTrue returns the number of set lanes.
func CountTrue[T Lanes](m Mask[T]) int {
	count := 0
	for _, b := range m.bits {
		if b {
			count++
		}
	}
	return count
}
