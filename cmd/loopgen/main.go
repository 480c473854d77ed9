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

// Command loopgen generates the canonical comparison-kernel table.
//
// Usage:
//
//	loopgen -output ztable.go
//
// Or via go:generate from the cmp package:
//
//	//go:generate go run ../cmd/loopgen -output ztable.go
//
// The generator enumerates the kernel set left after canonicalization
// (operator swaps, platform-width aliasing, and sign unification collapse
// 78 type/operator pairs onto 36 kernels) and emits the Go map literal
// binding each surviving pair to its generic loop instantiation.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

var (
	outputFile  = flag.String("output", "ztable.go", "Output file path")
	packageName = flag.String("pkg", "cmp", "Output package name")
)

// entry is one canonical kernel binding.
type entry struct {
	Type string // loopKey type constant, e.g. "TypeUByte"
	Kind string // loopKey kind constant, e.g. "KindEqual"
	Expr string // loop construction expression
}

// group is a blank-line separated section of the emitted map.
type group struct {
	Entries []entry
}

// laneType pairs a type constant with its Go element type.
type laneType struct {
	Const string
	Elem  string
}

var (
	// unsigned lanes carry equal/not_equal for both signs of their width
	eqLanes = []laneType{
		{"TypeUByte", "uint8"},
		{"TypeUShort", "uint16"},
		{"TypeUInt", "uint32"},
		{"TypeULongLong", "uint64"},
	}
	// ordering is sign-sensitive, so less/less_equal keep both signs
	ordLanes = []laneType{
		{"TypeByte", "int8"},
		{"TypeUByte", "uint8"},
		{"TypeShort", "int16"},
		{"TypeUShort", "uint16"},
		{"TypeInt", "int32"},
		{"TypeUInt", "uint32"},
		{"TypeLongLong", "int64"},
		{"TypeULongLong", "uint64"},
	}
	// floats keep all four canonical operators
	floatLanes = []laneType{
		{"TypeFloat", "float32"},
		{"TypeDouble", "float64"},
	}
)

var opNames = map[string]string{
	"KindEqual":     "Eq",
	"KindNotEqual":  "Ne",
	"KindLess":      "Lt",
	"KindLessEqual": "Le",
}

func numericEntry(lane laneType, kind string) entry {
	op := opNames[kind]
	return entry{
		Type: lane.Const,
		Kind: kind,
		Expr: fmt.Sprintf("loop[%s](%s[%s]{})", lane.Elem, op, lane.Elem),
	}
}

func buildGroups() []group {
	var groups []group

	var boolGroup group
	for _, kind := range []string{"KindEqual", "KindNotEqual", "KindLess", "KindLessEqual"} {
		boolGroup.Entries = append(boolGroup.Entries, entry{
			Type: "TypeBool",
			Kind: kind,
			Expr: fmt.Sprintf("loopBool(%sBool{})", opNames[kind]),
		})
	}
	groups = append(groups, boolGroup)

	var eqGroup group
	for _, lane := range eqLanes {
		eqGroup.Entries = append(eqGroup.Entries, numericEntry(lane, "KindEqual"))
		eqGroup.Entries = append(eqGroup.Entries, numericEntry(lane, "KindNotEqual"))
	}
	groups = append(groups, eqGroup)

	var ordGroup group
	for _, lane := range ordLanes {
		ordGroup.Entries = append(ordGroup.Entries, numericEntry(lane, "KindLess"))
		ordGroup.Entries = append(ordGroup.Entries, numericEntry(lane, "KindLessEqual"))
	}
	groups = append(groups, ordGroup)

	var floatGroup group
	for _, lane := range floatLanes {
		for _, kind := range []string{"KindEqual", "KindNotEqual", "KindLess", "KindLessEqual"} {
			floatGroup.Entries = append(floatGroup.Entries, numericEntry(lane, kind))
		}
	}
	groups = append(groups, floatGroup)

	return groups
}

// The table is emitted as one assignment statement per kernel rather than a
// map literal: gofmt column-aligns adjacent map entries, so a literal would
// make the emitted bytes depend on tabwriter details. Statements keep the
// output stable under gofmt.
var fileTemplate = template.Must(template.New("ztable").Parse(`// Code generated by loopgen. DO NOT EDIT.

package {{.Package}}

import "github.com/numgo/ufunc/dispatch"

// kernelLoops is the set of compiled kernels after canonicalization:
// boolean mask kernels, unsigned equal/not_equal kernels shared by the
// signed types of the same width, signed and unsigned ordering kernels,
// and floating-point kernels.
var kernelLoops = makeKernelLoops()

func makeKernelLoops() map[loopKey]dispatch.Loop {
	m := make(map[loopKey]dispatch.Loop, {{.Count}})
{{range .Lines}}{{.}}
{{end}}	return m
}
`))

// buildLines renders the entry statements, one string per output line, with
// empty strings for the blank lines separating groups.
func buildLines(groups []group) []string {
	var lines []string
	for _, g := range groups {
		lines = append(lines, "")
		for _, e := range g.Entries {
			lines = append(lines, "\tm[loopKey{"+e.Type+", "+e.Kind+"}] = "+e.Expr)
		}
	}
	lines = append(lines, "")
	return lines
}

// generate renders the table for the given package and gofmts it, returning
// exactly the bytes written to the output file.
func generate(pkg string) ([]byte, error) {
	groups := buildGroups()
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Count   int
		Lines   []string
	}{
		Package: pkg,
		Count:   countEntries(groups),
		Lines:   buildLines(groups),
	})
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return src, nil
}

func main() {
	flag.Parse()

	src, err := generate(*packageName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loopgen: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "loopgen: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("loopgen: wrote %s (%d kernels)\n", *outputFile, countEntries(buildGroups()))
}

func countEntries(groups []group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Entries)
	}
	return n
}
