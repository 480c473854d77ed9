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

// Package assign implements strided scalar-fill and array-copy loops, the
// write-side counterpart of the comparison engine. Copies between possibly
// overlapping regions are staged through a cached temporary so the result
// never depends on traversal order.
package assign

import (
	"unsafe"

	"github.com/numgo/ufunc/dispatch"
	"github.com/numgo/ufunc/internal/buffercache"
	"github.com/numgo/ufunc/internal/overlap"
	"github.com/numgo/ufunc/simd"
)

// Scalar writes v into n strided elements of dst.
func Scalar[T simd.Lanes](dst dispatch.Operand, n int, v T) {
	if n <= 0 {
		return
	}
	var zero T
	esize := int(unsafe.Sizeof(zero))
	if dst.Stride == esize {
		fillContiguous(unsafe.Slice((*T)(dst.Ptr), n), v)
		return
	}
	p := dst.Ptr
	for i := 0; i < n; i++ {
		*(*T)(p) = v
		p = unsafe.Add(p, dst.Stride)
	}
}

func fillContiguous[T simd.Lanes](dst []T, v T) {
	nlanes := simd.MaxLanes[T]()
	vec := simd.Set(v)
	i := 0
	for ; i+nlanes <= len(dst); i += nlanes {
		simd.Store(vec, dst[i:])
	}
	for ; i < len(dst); i++ {
		dst[i] = v
	}
}

// Arrays copies n elements from src to dst with arbitrary strides. When the
// two regions may overlap, the source is staged through a temporary buffer
// first so every element read predates every write.
func Arrays[T simd.Lanes](dst, src dispatch.Operand, n int) {
	if n <= 0 {
		return
	}
	var zero T
	esize := int(unsafe.Sizeof(zero))

	if overlap.Possible(src.Ptr, src.Stride, esize, dst.Ptr, dst.Stride, esize, n) {
		raw := buffercache.Get(n * esize)
		tmp := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
		gather(tmp, src, n)
		scatter(dst, tmp, n)
		buffercache.Put(raw)
		return
	}

	if src.Stride == esize && dst.Stride == esize {
		copy(unsafe.Slice((*T)(dst.Ptr), n), unsafe.Slice((*T)(src.Ptr), n))
		return
	}
	sp, dp := src.Ptr, dst.Ptr
	for i := 0; i < n; i++ {
		*(*T)(dp) = *(*T)(sp)
		sp = unsafe.Add(sp, src.Stride)
		dp = unsafe.Add(dp, dst.Stride)
	}
}

func gather[T simd.Lanes](dst []T, src dispatch.Operand, n int) {
	p := src.Ptr
	for i := 0; i < n; i++ {
		dst[i] = *(*T)(p)
		p = unsafe.Add(p, src.Stride)
	}
}

func scatter[T simd.Lanes](dst dispatch.Operand, src []T, n int) {
	p := dst.Ptr
	for i := 0; i < n; i++ {
		*(*T)(p) = src[i]
		p = unsafe.Add(p, dst.Stride)
	}
}

// ScalarWhere writes v into dst only at positions whose mask byte is
// nonzero. The mask operand is read with its own stride.
func ScalarWhere[T simd.Lanes](dst dispatch.Operand, mask dispatch.Operand, n int, v T) {
	if n <= 0 {
		return
	}
	dp, mp := dst.Ptr, mask.Ptr
	for i := 0; i < n; i++ {
		if *(*byte)(mp) != 0 {
			*(*T)(dp) = v
		}
		dp = unsafe.Add(dp, dst.Stride)
		mp = unsafe.Add(mp, mask.Stride)
	}
}

// ArraysWhere copies src elements into dst only where the mask byte is
// nonzero. Overlapping regions are staged like Arrays.
func ArraysWhere[T simd.Lanes](dst, src, mask dispatch.Operand, n int) {
	if n <= 0 {
		return
	}
	var zero T
	esize := int(unsafe.Sizeof(zero))

	if overlap.Possible(src.Ptr, src.Stride, esize, dst.Ptr, dst.Stride, esize, n) {
		raw := buffercache.Get(n * esize)
		tmp := unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
		gather(tmp, src, n)
		dp, mp := dst.Ptr, mask.Ptr
		for i := 0; i < n; i++ {
			if *(*byte)(mp) != 0 {
				*(*T)(dp) = tmp[i]
			}
			dp = unsafe.Add(dp, dst.Stride)
			mp = unsafe.Add(mp, mask.Stride)
		}
		buffercache.Put(raw)
		return
	}

	sp, dp, mp := src.Ptr, dst.Ptr, mask.Ptr
	for i := 0; i < n; i++ {
		if *(*byte)(mp) != 0 {
			*(*T)(dp) = *(*T)(sp)
		}
		sp = unsafe.Add(sp, src.Stride)
		dp = unsafe.Add(dp, dst.Stride)
		mp = unsafe.Add(mp, mask.Stride)
	}
}

// Fill sets every element of dst to v.
func Fill[T simd.Lanes](dst []T, v T) {
	fillContiguous(dst, v)
}

// Copy copies min(len(dst), len(src)) elements. The slices may alias.
func Copy[T simd.Lanes](dst, src []T) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return
	}
	var zero T
	esize := int(unsafe.Sizeof(zero))
	Arrays[T](
		dispatch.Operand{Ptr: unsafe.Pointer(&dst[0]), Stride: esize},
		dispatch.Operand{Ptr: unsafe.Pointer(&src[0]), Stride: esize},
		n)
}
