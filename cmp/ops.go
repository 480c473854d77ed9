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

import "github.com/numgo/ufunc/simd"

// The operator tag set. Each relational operator is a zero-state struct with
// a scalar form (Prepare/Combine) and a vector form (PrepareVec/CombineVec).
// Only equal, not_equal, less and less_equal carry implementations: greater
// and greater_equal are tag types with no methods, because canonicalization
// always rewrites them as less/less_equal with the operands swapped. That
// halves the number of kernels instantiated for each element type.

// Op is the capability interface of a numeric relational operator over lane
// type T. Prepare is a per-element normalization hook (identity for numeric
// types); Combine evaluates the relation, returning the one-byte boolean
// encoding (1 or 0).
type Op[T simd.Lanes] interface {
	Prepare(T) T
	Combine(a, b T) byte
	PrepareVec(simd.Vec[T]) simd.Vec[T]
	CombineVec(a, b simd.Vec[T]) simd.Mask[T]
}

// BoolOp is the capability interface of the boolean-element operator family.
// Inputs are raw bytes whose truthiness is what gets compared: Prepare
// normalizes nonzero to 1; PrepareVec maps a byte vector to its is-zero
// mask, and CombineVec combines two such masks with mask algebra.
type BoolOp interface {
	Prepare(byte) byte
	Combine(a, b byte) byte
	PrepareVec(simd.Vec[uint8]) simd.Mask[uint8]
	CombineVec(a, b simd.Mask[uint8]) simd.Mask[uint8]
}

func b2u8(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Eq is the equal operator.
type Eq[T simd.Lanes] struct{}

func (Eq[T]) Prepare(a T) T { return a }
func (Eq[T]) Combine(a, b T) byte { return b2u8(a == b) }
func (Eq[T]) PrepareVec(a simd.Vec[T]) simd.Vec[T] { return a }
func (Eq[T]) CombineVec(a, b simd.Vec[T]) simd.Mask[T] { return simd.Eq(a, b) }

// Ne is the not_equal operator.
type Ne[T simd.Lanes] struct{}

func (Ne[T]) Prepare(a T) T { return a }
func (Ne[T]) Combine(a, b T) byte { return b2u8(a != b) }
func (Ne[T]) PrepareVec(a simd.Vec[T]) simd.Vec[T] { return a }
func (Ne[T]) CombineVec(a, b simd.Vec[T]) simd.Mask[T] { return simd.Ne(a, b) }

// Lt is the less operator.
type Lt[T simd.Lanes] struct{}

func (Lt[T]) Prepare(a T) T { return a }
func (Lt[T]) Combine(a, b T) byte { return b2u8(a < b) }
func (Lt[T]) PrepareVec(a simd.Vec[T]) simd.Vec[T] { return a }
func (Lt[T]) CombineVec(a, b simd.Vec[T]) simd.Mask[T] { return simd.Lt(a, b) }

// Le is the less_equal operator.
type Le[T simd.Lanes] struct{}

func (Le[T]) Prepare(a T) T { return a }
func (Le[T]) Combine(a, b T) byte { return b2u8(a <= b) }
func (Le[T]) PrepareVec(a simd.Vec[T]) simd.Vec[T] { return a }
func (Le[T]) CombineVec(a, b simd.Vec[T]) simd.Mask[T] { return simd.Le(a, b) }

// Gt and Ge are tags only; canonicalization maps them to Lt/Le with
// swapped operands before any kernel is selected.
type Gt[T simd.Lanes] struct{}
type Ge[T simd.Lanes] struct{}

// Boolean-element family. The lane values are bytes; the relation is over
// truthiness, with false ordered before true. The vector forms work on
// is-zero masks: for masks za = (a == 0) and zb = (b == 0),
//
//	a == b  is  xnor(za, zb)
//	a != b  is  xor(za, zb)
//	a <  b  is  za & ~zb   (a false, b true)
//	a <= b  is  za | ~zb   (a false, or b true)

func isZeroMask(v simd.Vec[uint8]) simd.Mask[uint8] {
	return simd.Eq(v, simd.Zero[uint8]())
}

// EqBool is the equal operator for boolean elements.
type EqBool struct{}

func (EqBool) Prepare(v byte) byte { return b2u8(v != 0) }
func (EqBool) Combine(a, b byte) byte { return b2u8(a == b) }
func (EqBool) PrepareVec(v simd.Vec[uint8]) simd.Mask[uint8] { return isZeroMask(v) }
func (EqBool) CombineVec(a, b simd.Mask[uint8]) simd.Mask[uint8] { return simd.MaskXnor(a, b) }

// NeBool is the not_equal operator for boolean elements.
type NeBool struct{}

func (NeBool) Prepare(v byte) byte { return b2u8(v != 0) }
func (NeBool) Combine(a, b byte) byte { return b2u8(a != b) }
func (NeBool) PrepareVec(v simd.Vec[uint8]) simd.Mask[uint8] { return isZeroMask(v) }
func (NeBool) CombineVec(a, b simd.Mask[uint8]) simd.Mask[uint8] { return simd.MaskXor(a, b) }

// LtBool is the less operator for boolean elements.
type LtBool struct{}

func (LtBool) Prepare(v byte) byte { return b2u8(v != 0) }
func (LtBool) Combine(a, b byte) byte { return b2u8(a < b) }
func (LtBool) PrepareVec(v simd.Vec[uint8]) simd.Mask[uint8] { return isZeroMask(v) }
func (LtBool) CombineVec(a, b simd.Mask[uint8]) simd.Mask[uint8] { return simd.MaskAndNot(a, b) }

// LeBool is the less_equal operator for boolean elements.
type LeBool struct{}

func (LeBool) Prepare(v byte) byte { return b2u8(v != 0) }
func (LeBool) Combine(a, b byte) byte { return b2u8(a <= b) }
func (LeBool) PrepareVec(v simd.Vec[uint8]) simd.Mask[uint8] { return isZeroMask(v) }
func (LeBool) CombineVec(a, b simd.Mask[uint8]) simd.Mask[uint8] { return simd.MaskOrNot(a, b) }

// GtBool and GeBool are tags only, swap-derived like Gt/Ge.
type GtBool struct{}
type GeBool struct{}
