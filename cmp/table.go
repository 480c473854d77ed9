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
	"github.com/numgo/ufunc/simd"
)

//go:generate go run ../cmd/loopgen -output ztable.go

// loopKey indexes the compiled kernel table by canonical lane type and
// canonical operator.
type loopKey struct {
	lane Type
	kind Kind
}

// loop adapts a numeric operator instantiation into a registered Loop.
func loop[T simd.Lanes, O Op[T]](op O) dispatch.Loop {
	return func(src1, src2, out dispatch.Operand, n int) {
		cmpBranch[T, O](op, src1, src2, out, n)
	}
}

// loopBool adapts a boolean-family operator into a registered Loop.
func loopBool[O BoolOp](op O) dispatch.Loop {
	return func(src1, src2, out dispatch.Operand, n int) {
		cmpBranchBool(op, src1, src2, out, n)
	}
}

// Name returns the registration name for a (type, operator) pair,
// e.g. "INT_less" or "DOUBLE_not_equal".
func Name(t Type, k Kind) string {
	return t.String() + "_" + k.String()
}

// LoopFor builds the canonical inner loop for (t, k): canonicalize, fetch
// the shared kernel, and wrap with the operand swap and (for floating-point
// types) the FP-status clear as needed.
func LoopFor(t Type, k Kind) dispatch.Loop {
	lane, ck, swap := canonical(t, k)
	fn, ok := kernelLoops[loopKey{lane, ck}]
	if !ok {
		return nil
	}
	if swap {
		fn = swapOperands(fn)
	}
	if t.IsFloat() {
		fn = clearFloatStatus(fn)
	}
	return fn
}

func init() {
	// The portable loops register at scalar level, priority 0; hardware
	// builds register their variants at higher priority over the same names.
	for _, t := range Types {
		for _, k := range Kinds {
			dispatch.Register(dispatch.Entry{
				Name:     Name(t, k),
				Level:    simd.LevelScalar,
				Priority: 0,
				Fn:       LoopFor(t, k),
			})
		}
	}
}
