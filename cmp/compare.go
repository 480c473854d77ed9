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

package cmp

import (
	"unsafe"

	"github.com/numgo/ufunc/dispatch"
	"github.com/numgo/ufunc/simd"
)

// Compare runs the registered comparison loop for (k, t) over one
// invocation: two strided inputs, a byte-per-element boolean output, and n
// logical elements. Strides are in bytes; a stride of 0 broadcasts a scalar
// operand and negative strides traverse backward. When n is 0 nothing is
// read or written.
//
// Compare panics if (k, t) names no registered loop; every pair in the
// catalog is registered by this package's init.
func Compare(k Kind, t Type, src1, src2, out dispatch.Operand, n int) {
	fn, ok := dispatch.Lookup(Name(t, k))
	if !ok {
		panic("cmp: no loop registered for " + Name(t, k))
	}
	fn(src1, src2, out, n)
}

// TypeFor maps a Go lane type onto its catalog entry.
func TypeFor[T simd.Lanes]() Type {
	var zero T
	switch any(zero).(type) {
	case int8:
		return TypeByte
	case uint8:
		return TypeUByte
	case int16:
		return TypeShort
	case uint16:
		return TypeUShort
	case int32:
		return TypeInt
	case uint32:
		return TypeUInt
	case int:
		return TypeLong
	case uint:
		return TypeULong
	case int64:
		return TypeLongLong
	case uint64:
		return TypeULongLong
	case float32:
		return TypeFloat
	case float64:
		return TypeDouble
	default:
		panic("cmp: unsupported lane type")
	}
}

func sliceOperand[T simd.Lanes](s []T) dispatch.Operand {
	if len(s) == 0 {
		return dispatch.Operand{}
	}
	var zero T
	return dispatch.Operand{Ptr: unsafe.Pointer(&s[0]), Stride: int(unsafe.Sizeof(zero))}
}

func boolOperand(s []bool) dispatch.Operand {
	if len(s) == 0 {
		return dispatch.Operand{}
	}
	return dispatch.Operand{Ptr: unsafe.Pointer(&s[0]), Stride: 1}
}

func outOperand(dst []byte) dispatch.Operand {
	if len(dst) == 0 {
		return dispatch.Operand{}
	}
	return dispatch.Operand{Ptr: unsafe.Pointer(&dst[0]), Stride: 1}
}

func runSlices[T simd.Lanes](k Kind, a, b []T, dst []byte) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(dst) < n {
		n = len(dst)
	}
	Compare(k, TypeFor[T](), sliceOperand(a), sliceOperand(b), outOperand(dst), n)
}

// Equal writes 1 into dst[i] where a[i] == b[i], else 0.
func Equal[T simd.Lanes](a, b []T, dst []byte) { runSlices(KindEqual, a, b, dst) }

// NotEqual writes 1 into dst[i] where a[i] != b[i], else 0.
func NotEqual[T simd.Lanes](a, b []T, dst []byte) { runSlices(KindNotEqual, a, b, dst) }

// Less writes 1 into dst[i] where a[i] < b[i], else 0.
func Less[T simd.Lanes](a, b []T, dst []byte) { runSlices(KindLess, a, b, dst) }

// LessEqual writes 1 into dst[i] where a[i] <= b[i], else 0.
func LessEqual[T simd.Lanes](a, b []T, dst []byte) { runSlices(KindLessEqual, a, b, dst) }

// Greater writes 1 into dst[i] where a[i] > b[i], else 0.
func Greater[T simd.Lanes](a, b []T, dst []byte) { runSlices(KindGreater, a, b, dst) }

// GreaterEqual writes 1 into dst[i] where a[i] >= b[i], else 0.
func GreaterEqual[T simd.Lanes](a, b []T, dst []byte) { runSlices(KindGreaterEqual, a, b, dst) }

// CompareScalar compares every element of a against the scalar b
// (the b operand has stride 0), writing byte booleans into dst.
func CompareScalar[T simd.Lanes](k Kind, a []T, b T, dst []byte) {
	n := len(a)
	if len(dst) < n {
		n = len(dst)
	}
	Compare(k, TypeFor[T](),
		sliceOperand(a),
		dispatch.Operand{Ptr: unsafe.Pointer(&b), Stride: 0},
		outOperand(dst), n)
}

// ScalarCompare compares the scalar a against every element of b
// (the a operand has stride 0), writing byte booleans into dst.
func ScalarCompare[T simd.Lanes](k Kind, a T, b []T, dst []byte) {
	n := len(b)
	if len(dst) < n {
		n = len(dst)
	}
	Compare(k, TypeFor[T](),
		dispatch.Operand{Ptr: unsafe.Pointer(&a), Stride: 0},
		sliceOperand(b),
		outOperand(dst), n)
}

// CompareBools compares two boolean slices under k, with false ordered
// before true, writing byte booleans into dst.
func CompareBools(k Kind, a, b []bool, dst []byte) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(dst) < n {
		n = len(dst)
	}
	Compare(k, TypeBool, boolOperand(a), boolOperand(b), outOperand(dst), n)
}
