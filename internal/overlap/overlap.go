// Package overlap implements the conservative memory-aliasing predicate the
// inner loops consult before taking a vectorized path. A vector kernel writes
// a whole register at a time, so a destination that aliases a source would
// observe partially written results; any possible intersection forces the
// strided scalar fallback.
package overlap

import "unsafe"

// span returns the half-open byte interval [lo, hi) touched by n elements of
// esize bytes starting at p with the given byte stride. Negative strides walk
// backward from p.
func span(p unsafe.Pointer, stride, esize, n int) (lo, hi uintptr) {
	base := uintptr(p)
	if stride >= 0 {
		return base, base + uintptr((n-1)*stride) + uintptr(esize)
	}
	return base + uintptr((n-1)*stride), base + uintptr(esize)
}

// Possible reports whether the n-element region (a, astride, asize) can
// intersect the n-element region (b, bstride, bsize). It is conservative:
// a true result means the regions' byte intervals intersect, not that two
// logical elements necessarily collide.
func Possible(a unsafe.Pointer, astride, asize int, b unsafe.Pointer, bstride, bsize int, n int) bool {
	if n <= 0 {
		return false
	}
	aLo, aHi := span(a, astride, asize, n)
	bLo, bHi := span(b, bstride, bsize, n)
	return aLo < bHi && bLo < aHi
}
