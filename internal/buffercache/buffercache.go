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

// Package buffercache is a bounded free list of small byte buffers, used for
// the short-lived temporaries the assignment routines need when source and
// destination overlap. Buffers up to maxCached bytes are kept in a per-size
// bucket of limited depth; everything larger goes straight to the allocator.
package buffercache

import "sync"

const (
	// maxCached is the largest buffer size kept on the free list.
	maxCached = 1024
	// defaultDepth is how many buffers each size bucket retains.
	defaultDepth = 7
)

var (
	mu      sync.Mutex
	depth   = defaultDepth
	buckets [maxCached + 1][][]byte
)

// SetDepth changes how many buffers each size bucket may retain and returns
// the previous depth. A depth of 0 disables caching.
func SetDepth(n int) int {
	mu.Lock()
	defer mu.Unlock()
	prev := depth
	if n < 0 {
		n = 0
	}
	depth = n
	for sz := range buckets {
		if len(buckets[sz]) > depth {
			buckets[sz] = buckets[sz][:depth]
		}
	}
	return prev
}

// Get returns a buffer of exactly n bytes, reusing a cached one when
// available. The contents are unspecified; use GetZero for cleared memory.
func Get(n int) []byte {
	if n <= 0 {
		return nil
	}
	if n <= maxCached {
		mu.Lock()
		if list := buckets[n]; len(list) > 0 {
			buf := list[len(list)-1]
			buckets[n] = list[:len(list)-1]
			mu.Unlock()
			return buf
		}
		mu.Unlock()
	}
	return make([]byte, n)
}

// GetZero returns a zeroed buffer of exactly n bytes.
func GetZero(n int) []byte {
	buf := Get(n)
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// Put returns a buffer to the cache. Oversized buffers and buffers beyond
// the bucket depth are dropped for the garbage collector.
func Put(buf []byte) {
	n := len(buf)
	if n == 0 || n > maxCached {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if len(buckets[n]) < depth {
		buckets[n] = append(buckets[n], buf)
	}
}
