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

// Narrowing packs. A comparison over k-byte lanes yields a mask with
// CurrentWidth()/k lanes; a byte-per-element store needs CurrentWidth()
// lanes. PackMask2/4/8 concatenate 2, 4, or 8 such masks (for 2-, 4-, and
// 8-byte element types) into a single byte mask, in order.

// PackMask2 narrows two masks over two-byte lanes into one byte mask.
func PackMask2[T Lanes](m1, m2 Mask[T]) Mask[uint8] {
	bits := make([]bool, 0, len(m1.bits)+len(m2.bits))
	bits = append(bits, m1.bits...)
	bits = append(bits, m2.bits...)
	return Mask[uint8]{bits: bits}
}

// PackMask4 narrows four masks over four-byte lanes into one byte mask.
func PackMask4[T Lanes](m1, m2, m3, m4 Mask[T]) Mask[uint8] {
	bits := make([]bool, 0, 4*len(m1.bits))
	bits = append(bits, m1.bits...)
	bits = append(bits, m2.bits...)
	bits = append(bits, m3.bits...)
	bits = append(bits, m4.bits...)
	return Mask[uint8]{bits: bits}
}

// PackMask8 narrows eight masks over eight-byte lanes into one byte mask.
func PackMask8[T Lanes](m1, m2, m3, m4, m5, m6, m7, m8 Mask[T]) Mask[uint8] {
	bits := make([]bool, 0, 8*len(m1.bits))
	bits = append(bits, m1.bits...)
	bits = append(bits, m2.bits...)
	bits = append(bits, m3.bits...)
	bits = append(bits, m4.bits...)
	bits = append(bits, m5.bits...)
	bits = append(bits, m6.bits...)
	bits = append(bits, m7.bits...)
	bits = append(bits, m8.bits...)
	return Mask[uint8]{bits: bits}
}
