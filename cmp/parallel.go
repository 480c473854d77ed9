package cmp

import (
	"runtime"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/numgo/ufunc/dispatch"
)

// CompareChunked splits one invocation into chunks of at most chunk elements
// and runs them concurrently. The chunks write disjoint output regions, and
// every sub-invocation performs its own overlap check, so the result is
// identical to a single Compare call. Intended for large n where the caller
// wants the partitioning handled here; chunk <= 0 or n <= chunk degrades to
// a plain Compare.
func CompareChunked(k Kind, t Type, src1, src2, out dispatch.Operand, n, chunk int) {
	if chunk <= 0 || n <= chunk {
		Compare(k, t, src1, src2, out, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < n; start += chunk {
		count := chunk
		if n-start < count {
			count = n - start
		}
		s1 := offsetOperand(src1, start)
		s2 := offsetOperand(src2, start)
		o := offsetOperand(out, start)
		g.Go(func() error {
			Compare(k, t, s1, s2, o, count)
			return nil
		})
	}
	// The loops have no error channel; Wait only provides the barrier.
	_ = g.Wait()
}

// offsetOperand advances an operand by i logical elements. Broadcast
// operands (stride 0) are unaffected.
func offsetOperand(op dispatch.Operand, i int) dispatch.Operand {
	return dispatch.Operand{
		Ptr:    unsafe.Add(op.Ptr, i*op.Stride),
		Stride: op.Stride,
	}
}
