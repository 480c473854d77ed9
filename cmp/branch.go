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
	"github.com/numgo/ufunc/internal/overlap"
	"github.com/numgo/ufunc/simd"
)

// cmpBranch selects the inner loop for one invocation. Vectorized paths are
// eligible only when neither input can alias the output and the strides form
// one of the three recognized shapes (broadcast-first, broadcast-second,
// both contiguous). Everything else, including any overlap, runs the strided
// scalar loop, which is the reference semantics for every configuration.
func cmpBranch[T simd.Lanes, O Op[T]](op O, src1, src2, out dispatch.Operand, n int) {
	if n <= 0 {
		return
	}
	var zero T
	esize := int(unsafe.Sizeof(zero))

	if !overlap.Possible(src1.Ptr, src1.Stride, esize, out.Ptr, out.Stride, 1, n) &&
		!overlap.Possible(src2.Ptr, src2.Stride, esize, out.Ptr, out.Stride, 1, n) {
		switch {
		case src1.Stride == 0 && src2.Stride == esize && out.Stride == 1:
			binaryScalar1(op, *(*T)(src1.Ptr), unsafe.Slice((*T)(src2.Ptr), n), unsafe.Slice((*byte)(out.Ptr), n), n)
			return
		case src1.Stride == esize && src2.Stride == 0 && out.Stride == 1:
			binaryScalar2(op, unsafe.Slice((*T)(src1.Ptr), n), *(*T)(src2.Ptr), unsafe.Slice((*byte)(out.Ptr), n), n)
			return
		case src1.Stride == esize && src2.Stride == esize && out.Stride == 1:
			binary(op, unsafe.Slice((*T)(src1.Ptr), n), unsafe.Slice((*T)(src2.Ptr), n), unsafe.Slice((*byte)(out.Ptr), n), n)
			return
		}
	}

	p1, p2, po := src1.Ptr, src2.Ptr, out.Ptr
	for i := 0; i < n; i++ {
		a := op.Prepare(*(*T)(p1))
		b := op.Prepare(*(*T)(p2))
		*(*byte)(po) = op.Combine(a, b)
		p1 = unsafe.Add(p1, src1.Stride)
		p2 = unsafe.Add(p2, src2.Stride)
		po = unsafe.Add(po, out.Stride)
	}
}

// cmpBranchBool is cmpBranch for the boolean-element operator family.
func cmpBranchBool[O BoolOp](op O, src1, src2, out dispatch.Operand, n int) {
	if n <= 0 {
		return
	}

	if !overlap.Possible(src1.Ptr, src1.Stride, 1, out.Ptr, out.Stride, 1, n) &&
		!overlap.Possible(src2.Ptr, src2.Stride, 1, out.Ptr, out.Stride, 1, n) {
		switch {
		case src1.Stride == 0 && src2.Stride == 1 && out.Stride == 1:
			binaryBoolScalar1(op, *(*byte)(src1.Ptr), unsafe.Slice((*byte)(src2.Ptr), n), unsafe.Slice((*byte)(out.Ptr), n), n)
			return
		case src1.Stride == 1 && src2.Stride == 0 && out.Stride == 1:
			binaryBoolScalar2(op, unsafe.Slice((*byte)(src1.Ptr), n), *(*byte)(src2.Ptr), unsafe.Slice((*byte)(out.Ptr), n), n)
			return
		case src1.Stride == 1 && src2.Stride == 1 && out.Stride == 1:
			binaryBool(op, unsafe.Slice((*byte)(src1.Ptr), n), unsafe.Slice((*byte)(src2.Ptr), n), unsafe.Slice((*byte)(out.Ptr), n), n)
			return
		}
	}

	p1, p2, po := src1.Ptr, src2.Ptr, out.Ptr
	for i := 0; i < n; i++ {
		a := op.Prepare(*(*byte)(p1))
		b := op.Prepare(*(*byte)(p2))
		*(*byte)(po) = op.Combine(a, b)
		p1 = unsafe.Add(p1, src1.Stride)
		p2 = unsafe.Add(p2, src2.Stride)
		po = unsafe.Add(po, out.Stride)
	}
}
