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

// Package dispatch is the registry of compiled inner loops. Each loop is
// registered under a stable "<TYPE>_<operator>" name together with the SIMD
// level it requires and a priority; Lookup returns the highest-priority
// variant the current CPU supports. Implementation packages register their
// loops from init, so importing them populates the table.
package dispatch

import (
	"sort"
	"sync"
	"unsafe"

	"github.com/numgo/ufunc/simd"
)

// Operand describes one strided buffer view of an invocation: a raw base
// pointer and the byte distance between consecutive logical elements.
// A stride of 0 denotes a broadcast scalar; negative strides walk backward.
type Operand struct {
	Ptr    unsafe.Pointer
	Stride int
}

// Loop is the signature of a registered inner loop: two inputs, one
// byte-per-element boolean output, and the element count along the
// iterated axis. A loop performs no allocation and returns no error;
// invalid descriptors are the caller's bug.
type Loop func(src1, src2, out Operand, n int)

// Entry is one registered loop variant.
type Entry struct {
	Name     string
	Level    simd.Level
	Priority int
	Fn       Loop
}

var (
	mu      sync.RWMutex
	entries = make(map[string][]Entry)
)

// Register adds a loop variant under its name. Variants for the same name
// are kept sorted by descending priority. Register is typically called from
// init and panics on a nil loop.
func Register(e Entry) {
	if e.Fn == nil {
		panic("dispatch: Register called with nil loop: " + e.Name)
	}
	mu.Lock()
	defer mu.Unlock()
	list := append(entries[e.Name], e)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority > list[j].Priority
	})
	entries[e.Name] = list
}

// Lookup returns the best supported loop registered under name.
func Lookup(name string) (Loop, bool) {
	mu.RLock()
	defer mu.RUnlock()
	for _, e := range entries[name] {
		if supported(e.Level) {
			return e.Fn, true
		}
	}
	return nil, false
}

// Names returns the sorted names of all registered loops.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// supported reports whether a loop built for level can run under the level
// selected at startup. Levels within one architecture family are ordered;
// across families nothing is implied.
func supported(level simd.Level) bool {
	cur := simd.CurrentLevel()
	switch level {
	case simd.LevelScalar:
		return true
	case simd.LevelSSE2, simd.LevelAVX2, simd.LevelAVX512:
		return cur >= level && cur <= simd.LevelAVX512
	case simd.LevelNEON, simd.LevelSVE:
		return cur >= level
	default:
		return false
	}
}
