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

package main

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildGroupsKernelCount(t *testing.T) {
	// 4 bool + 8 shared equality + 16 ordering + 8 float
	if got := countEntries(buildGroups()); got != 36 {
		t.Errorf("kernel count: got %d, want 36", got)
	}
}

func TestNoSwappedOperatorsEmitted(t *testing.T) {
	for _, g := range buildGroups() {
		for _, e := range g.Entries {
			if e.Kind == "KindGreater" || e.Kind == "KindGreaterEqual" {
				t.Errorf("entry %s/%s: swapped operators must not reach the table", e.Type, e.Kind)
			}
		}
	}
}

func TestSignUnificationInTable(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range buildGroups() {
		for _, e := range g.Entries {
			seen[e.Type+"/"+e.Kind] = true
		}
	}
	for _, signed := range []string{"TypeByte", "TypeShort", "TypeInt", "TypeLongLong"} {
		if seen[signed+"/KindEqual"] || seen[signed+"/KindNotEqual"] {
			t.Errorf("%s equality must route through the unsigned kernel", signed)
		}
	}
	if !seen["TypeByte/KindLess"] || !seen["TypeUByte/KindLess"] {
		t.Error("ordering kernels must keep both signs")
	}
}

func TestOutputIsGofmted(t *testing.T) {
	src, err := generate("cmp")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(src), "Code generated by loopgen. DO NOT EDIT.") {
		t.Error("missing generated-code marker")
	}
	if !strings.Contains(string(src), "m[loopKey{TypeBool, KindEqual}] = loopBool(EqBool{})") {
		t.Error("missing boolean kernel binding")
	}
	// emitted bytes must be a gofmt fixed point, or the committed file and
	// a re-gofmted tree would disagree
	again, err := format.Source(src)
	if err != nil {
		t.Fatalf("generated output does not parse: %v", err)
	}
	if !bytes.Equal(src, again) {
		t.Error("generated output is not gofmt-stable")
	}
}

// TestCommittedTableCurrent regenerates the table in memory and compares it
// with the file in the tree, so a hand-edited or stale ztable.go fails here.
func TestCommittedTableCurrent(t *testing.T) {
	src, err := generate("cmp")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	disk, err := os.ReadFile(filepath.Join("..", "..", "cmp", "ztable.go"))
	if err != nil {
		t.Fatalf("read committed table: %v", err)
	}
	if !bytes.Equal(src, disk) {
		t.Error("cmp/ztable.go differs from generator output; re-run go generate ./cmp")
	}
}
