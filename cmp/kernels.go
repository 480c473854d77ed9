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

	"github.com/numgo/ufunc/simd"
)

// The vectorized inner loops. Each iteration produces one full byte vector
// of results (vstep = MaxLanes[uint8] logical elements). Because the output
// element is one byte while the input element may be 1, 2, 4 or 8 bytes,
// the loop loads as many input sub-vectors per iteration as the element has
// bytes, compares each pair, and narrows the masks into a single byte mask.
// The mask is materialized as all-ones lanes and ANDed with literal 1 so
// exactly 0 or 1 reaches the output buffer. Elements past the last full
// vector fall through to the scalar tail.

// binary compares two contiguous equal-length operands.
func binary[T simd.Lanes, O Op[T]](op O, src1, src2 []T, dst []byte, n int) {
	vstep := simd.MaxLanes[uint8]()
	nlanes := simd.MaxLanes[T]()
	truemask := simd.Set[uint8](1)
	i := 0

	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		for ; n-i >= vstep; i += vstep {
			a1 := op.PrepareVec(simd.Load(src1[i:]))
			b1 := op.PrepareVec(simd.Load(src2[i:]))
			m1 := op.CombineVec(a1, b1)
			ret := simd.MaskToVec(simd.Mask8(m1))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	case 2:
		for ; n-i >= vstep; i += vstep {
			a1 := op.PrepareVec(simd.Load(src1[i:]))
			b1 := op.PrepareVec(simd.Load(src2[i:]))
			a2 := op.PrepareVec(simd.Load(src1[i+nlanes:]))
			b2 := op.PrepareVec(simd.Load(src2[i+nlanes:]))
			m1 := op.CombineVec(a1, b1)
			m2 := op.CombineVec(a2, b2)
			ret := simd.MaskToVec(simd.PackMask2(m1, m2))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	case 4:
		for ; n-i >= vstep; i += vstep {
			a1 := op.PrepareVec(simd.Load(src1[i:]))
			b1 := op.PrepareVec(simd.Load(src2[i:]))
			a2 := op.PrepareVec(simd.Load(src1[i+nlanes:]))
			b2 := op.PrepareVec(simd.Load(src2[i+nlanes:]))
			a3 := op.PrepareVec(simd.Load(src1[i+nlanes*2:]))
			b3 := op.PrepareVec(simd.Load(src2[i+nlanes*2:]))
			a4 := op.PrepareVec(simd.Load(src1[i+nlanes*3:]))
			b4 := op.PrepareVec(simd.Load(src2[i+nlanes*3:]))
			m1 := op.CombineVec(a1, b1)
			m2 := op.CombineVec(a2, b2)
			m3 := op.CombineVec(a3, b3)
			m4 := op.CombineVec(a4, b4)
			ret := simd.MaskToVec(simd.PackMask4(m1, m2, m3, m4))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	case 8:
		for ; n-i >= vstep; i += vstep {
			a1 := op.PrepareVec(simd.Load(src1[i:]))
			b1 := op.PrepareVec(simd.Load(src2[i:]))
			a2 := op.PrepareVec(simd.Load(src1[i+nlanes:]))
			b2 := op.PrepareVec(simd.Load(src2[i+nlanes:]))
			a3 := op.PrepareVec(simd.Load(src1[i+nlanes*2:]))
			b3 := op.PrepareVec(simd.Load(src2[i+nlanes*2:]))
			a4 := op.PrepareVec(simd.Load(src1[i+nlanes*3:]))
			b4 := op.PrepareVec(simd.Load(src2[i+nlanes*3:]))
			a5 := op.PrepareVec(simd.Load(src1[i+nlanes*4:]))
			b5 := op.PrepareVec(simd.Load(src2[i+nlanes*4:]))
			a6 := op.PrepareVec(simd.Load(src1[i+nlanes*5:]))
			b6 := op.PrepareVec(simd.Load(src2[i+nlanes*5:]))
			a7 := op.PrepareVec(simd.Load(src1[i+nlanes*6:]))
			b7 := op.PrepareVec(simd.Load(src2[i+nlanes*6:]))
			a8 := op.PrepareVec(simd.Load(src1[i+nlanes*7:]))
			b8 := op.PrepareVec(simd.Load(src2[i+nlanes*7:]))
			m1 := op.CombineVec(a1, b1)
			m2 := op.CombineVec(a2, b2)
			m3 := op.CombineVec(a3, b3)
			m4 := op.CombineVec(a4, b4)
			m5 := op.CombineVec(a5, b5)
			m6 := op.CombineVec(a6, b6)
			m7 := op.CombineVec(a7, b7)
			m8 := op.CombineVec(a8, b8)
			ret := simd.MaskToVec(simd.PackMask8(m1, m2, m3, m4, m5, m6, m7, m8))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	}

	for ; i < n; i++ {
		dst[i] = op.Combine(op.Prepare(src1[i]), op.Prepare(src2[i]))
	}
}

// binaryScalar1 compares a broadcast first operand against a contiguous
// second operand. The broadcast side is prepared once, outside the loop.
func binaryScalar1[T simd.Lanes, O Op[T]](op O, scalar T, src2 []T, dst []byte, n int) {
	vstep := simd.MaxLanes[uint8]()
	nlanes := simd.MaxLanes[T]()
	truemask := simd.Set[uint8](1)
	a1 := op.PrepareVec(simd.Set(scalar))
	i := 0

	switch unsafe.Sizeof(scalar) {
	case 1:
		for ; n-i >= vstep; i += vstep {
			b1 := op.PrepareVec(simd.Load(src2[i:]))
			m1 := op.CombineVec(a1, b1)
			ret := simd.MaskToVec(simd.Mask8(m1))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	case 2:
		for ; n-i >= vstep; i += vstep {
			b1 := op.PrepareVec(simd.Load(src2[i:]))
			b2 := op.PrepareVec(simd.Load(src2[i+nlanes:]))
			m1 := op.CombineVec(a1, b1)
			m2 := op.CombineVec(a1, b2)
			ret := simd.MaskToVec(simd.PackMask2(m1, m2))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	case 4:
		for ; n-i >= vstep; i += vstep {
			b1 := op.PrepareVec(simd.Load(src2[i:]))
			b2 := op.PrepareVec(simd.Load(src2[i+nlanes:]))
			b3 := op.PrepareVec(simd.Load(src2[i+nlanes*2:]))
			b4 := op.PrepareVec(simd.Load(src2[i+nlanes*3:]))
			m1 := op.CombineVec(a1, b1)
			m2 := op.CombineVec(a1, b2)
			m3 := op.CombineVec(a1, b3)
			m4 := op.CombineVec(a1, b4)
			ret := simd.MaskToVec(simd.PackMask4(m1, m2, m3, m4))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	case 8:
		for ; n-i >= vstep; i += vstep {
			b1 := op.PrepareVec(simd.Load(src2[i:]))
			b2 := op.PrepareVec(simd.Load(src2[i+nlanes:]))
			b3 := op.PrepareVec(simd.Load(src2[i+nlanes*2:]))
			b4 := op.PrepareVec(simd.Load(src2[i+nlanes*3:]))
			b5 := op.PrepareVec(simd.Load(src2[i+nlanes*4:]))
			b6 := op.PrepareVec(simd.Load(src2[i+nlanes*5:]))
			b7 := op.PrepareVec(simd.Load(src2[i+nlanes*6:]))
			b8 := op.PrepareVec(simd.Load(src2[i+nlanes*7:]))
			m1 := op.CombineVec(a1, b1)
			m2 := op.CombineVec(a1, b2)
			m3 := op.CombineVec(a1, b3)
			m4 := op.CombineVec(a1, b4)
			m5 := op.CombineVec(a1, b5)
			m6 := op.CombineVec(a1, b6)
			m7 := op.CombineVec(a1, b7)
			m8 := op.CombineVec(a1, b8)
			ret := simd.MaskToVec(simd.PackMask8(m1, m2, m3, m4, m5, m6, m7, m8))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	}

	a := op.Prepare(scalar)
	for ; i < n; i++ {
		dst[i] = op.Combine(a, op.Prepare(src2[i]))
	}
}

// binaryScalar2 compares a contiguous first operand against a broadcast
// second operand.
func binaryScalar2[T simd.Lanes, O Op[T]](op O, src1 []T, scalar T, dst []byte, n int) {
	vstep := simd.MaxLanes[uint8]()
	nlanes := simd.MaxLanes[T]()
	truemask := simd.Set[uint8](1)
	b1 := op.PrepareVec(simd.Set(scalar))
	i := 0

	switch unsafe.Sizeof(scalar) {
	case 1:
		for ; n-i >= vstep; i += vstep {
			a1 := op.PrepareVec(simd.Load(src1[i:]))
			m1 := op.CombineVec(a1, b1)
			ret := simd.MaskToVec(simd.Mask8(m1))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	case 2:
		for ; n-i >= vstep; i += vstep {
			a1 := op.PrepareVec(simd.Load(src1[i:]))
			a2 := op.PrepareVec(simd.Load(src1[i+nlanes:]))
			m1 := op.CombineVec(a1, b1)
			m2 := op.CombineVec(a2, b1)
			ret := simd.MaskToVec(simd.PackMask2(m1, m2))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	case 4:
		for ; n-i >= vstep; i += vstep {
			a1 := op.PrepareVec(simd.Load(src1[i:]))
			a2 := op.PrepareVec(simd.Load(src1[i+nlanes:]))
			a3 := op.PrepareVec(simd.Load(src1[i+nlanes*2:]))
			a4 := op.PrepareVec(simd.Load(src1[i+nlanes*3:]))
			m1 := op.CombineVec(a1, b1)
			m2 := op.CombineVec(a2, b1)
			m3 := op.CombineVec(a3, b1)
			m4 := op.CombineVec(a4, b1)
			ret := simd.MaskToVec(simd.PackMask4(m1, m2, m3, m4))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	case 8:
		for ; n-i >= vstep; i += vstep {
			a1 := op.PrepareVec(simd.Load(src1[i:]))
			a2 := op.PrepareVec(simd.Load(src1[i+nlanes:]))
			a3 := op.PrepareVec(simd.Load(src1[i+nlanes*2:]))
			a4 := op.PrepareVec(simd.Load(src1[i+nlanes*3:]))
			a5 := op.PrepareVec(simd.Load(src1[i+nlanes*4:]))
			a6 := op.PrepareVec(simd.Load(src1[i+nlanes*5:]))
			a7 := op.PrepareVec(simd.Load(src1[i+nlanes*6:]))
			a8 := op.PrepareVec(simd.Load(src1[i+nlanes*7:]))
			m1 := op.CombineVec(a1, b1)
			m2 := op.CombineVec(a2, b1)
			m3 := op.CombineVec(a3, b1)
			m4 := op.CombineVec(a4, b1)
			m5 := op.CombineVec(a5, b1)
			m6 := op.CombineVec(a6, b1)
			m7 := op.CombineVec(a7, b1)
			m8 := op.CombineVec(a8, b1)
			ret := simd.MaskToVec(simd.PackMask8(m1, m2, m3, m4, m5, m6, m7, m8))
			simd.Store(simd.And(ret, truemask), dst[i:])
		}
	}

	b := op.Prepare(scalar)
	for ; i < n; i++ {
		dst[i] = op.Combine(op.Prepare(src1[i]), b)
	}
}

// binaryBool is the boolean-element specialization: one byte per element,
// so no widening, and combination happens on masks throughout.
func binaryBool[O BoolOp](op O, src1, src2, dst []byte, n int) {
	vstep := simd.MaxLanes[uint8]()
	truemask := simd.Set[uint8](1)
	i := 0

	for ; n-i >= vstep; i += vstep {
		a := op.PrepareVec(simd.Load(src1[i:]))
		b := op.PrepareVec(simd.Load(src2[i:]))
		ret := simd.MaskToVec(op.CombineVec(a, b))
		simd.Store(simd.And(ret, truemask), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = op.Combine(op.Prepare(src1[i]), op.Prepare(src2[i]))
	}
}

// binaryBoolScalar1 broadcasts the first boolean operand.
func binaryBoolScalar1[O BoolOp](op O, scalar byte, src2, dst []byte, n int) {
	vstep := simd.MaxLanes[uint8]()
	truemask := simd.Set[uint8](1)
	a := op.PrepareVec(simd.Set(scalar))
	i := 0

	for ; n-i >= vstep; i += vstep {
		b := op.PrepareVec(simd.Load(src2[i:]))
		ret := simd.MaskToVec(op.CombineVec(a, b))
		simd.Store(simd.And(ret, truemask), dst[i:])
	}

	as := op.Prepare(scalar)
	for ; i < n; i++ {
		dst[i] = op.Combine(as, op.Prepare(src2[i]))
	}
}

// binaryBoolScalar2 broadcasts the second boolean operand.
func binaryBoolScalar2[O BoolOp](op O, src1 []byte, scalar byte, dst []byte, n int) {
	vstep := simd.MaxLanes[uint8]()
	truemask := simd.Set[uint8](1)
	b := op.PrepareVec(simd.Set(scalar))
	i := 0

	for ; n-i >= vstep; i += vstep {
		a := op.PrepareVec(simd.Load(src1[i:]))
		ret := simd.MaskToVec(op.CombineVec(a, b))
		simd.Store(simd.And(ret, truemask), dst[i:])
	}

	bs := op.Prepare(scalar)
	for ; i < n; i++ {
		dst[i] = op.Combine(op.Prepare(src1[i]), bs)
	}
}
