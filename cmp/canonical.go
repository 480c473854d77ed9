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
	"github.com/numgo/ufunc/dispatch"
	"github.com/numgo/ufunc/internal/floatstatus"
)

// Canonicalization maps every (type, operator) pair onto the minimal kernel
// set. Two rewrites apply:
//
//  1. greater and greater_equal become less and less_equal with the two
//     input operands swapped, so no Gt/Ge kernel exists at all;
//  2. equal and not_equal on integers do not depend on signedness, so the
//     signed types borrow the unsigned kernel of the same width. Bit
//     patterns are preserved by the reinterpretation, and bitwise equality
//     is sign-agnostic.
//
// Platform-width LONG/ULONG additionally collapse onto their fixed-width
// equivalents. The result: 78 registered (type, operator) pairs backed by
// 36 compiled kernels.

// canonical returns the lane type and operator actually used for (t, k),
// and whether the input operands must be swapped.
func canonical(t Type, k Kind) (lane Type, ck Kind, swap bool) {
	ck = k
	switch k {
	case KindGreater:
		ck, swap = KindLess, true
	case KindGreaterEqual:
		ck, swap = KindLessEqual, true
	}

	lane = t.fixed()
	if lane.IsInteger() && (ck == KindEqual || ck == KindNotEqual) {
		lane = lane.unsigned()
	}
	return lane, ck, swap
}

// swapOperands exchanges the two input descriptors of a loop, leaving the
// output untouched. Applied to a less/less_equal kernel it yields the
// greater/greater_equal semantics.
func swapOperands(fn dispatch.Loop) dispatch.Loop {
	return func(src1, src2, out dispatch.Operand, n int) {
		fn(src2, src1, out, n)
	}
}

// clearFloatStatus wraps a floating-point loop so the ambient FP status word
// is cleared after every call, whichever internal path ran. Comparisons with
// NaN operands may raise the invalid flag; it must not leak to the caller.
func clearFloatStatus(fn dispatch.Loop) dispatch.Loop {
	return func(src1, src2, out dispatch.Operand, n int) {
		fn(src1, src2, out, n)
		floatstatus.Clear()
	}
}
