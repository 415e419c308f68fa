// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package populate_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/recordcheck/internal/astutil"
	. "fillmore-labs.com/recordcheck/internal/populate"
)

const populated = `package p

type Employee struct {
	name string
	age  int
}

func (e Employee) Name() string { return e.name }

func (e *Employee) SetName(value string) { e.name = value }

func (e Employee) Validate() {}

func NewEmployee(name string, age int) *Employee {
	e := &Employee{}

	// establish invariants
	e.Validate()

	return e
}
`

const fixed = `package p

type Employee struct {
	name string
	age  int
}

func (e Employee) Age() int {
	return e.age
}

func (e *Employee) SetAge(value int) {
	e.age = value
}

func (e Employee) Name() string { return e.name }

func (e *Employee) SetName(value string) { e.name = value }

func (e Employee) Validate() {}

func NewEmployee(name string, age int) *Employee {
	e := &Employee{}


	e.Set(func(e Employee) string { return e.Name() }, name)
	e.Set(func(e Employee) int { return e.Age() }, age)
	// establish invariants
	e.Validate()
	return e
}
`

const complete = `package p

type Employee struct {
	name string
}

func (e Employee) Name() string { return e.name }

func (e *Employee) SetName(value string) { e.name = value }

func NewEmployee(name string) *Employee {
	e := &Employee{}
	e.SetName(name)

	return e
}
`

const noLocal = `package p

type Employee struct {
	name string
}

func (e Employee) Name() string { return e.name }

func (e *Employee) SetName(value string) { e.name = value }

func NewEmployee(name string) *Employee {
	return &Employee{}
}
`

func TestFiller(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		source      string
		wantMessage string
		wantFixed   string
	}{
		{
			name:        "unused parameters populated",
			source:      populated,
			wantMessage: "Constructor NewEmployee never uses parameters 'name', 'age' (rc:fil)",
			wantFixed:   fixed,
		},
		{
			name:   "fully threaded constructor",
			source: complete,
		},
		{
			name:   "no local value under construction",
			source: noLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags, fset := runFiller(t, tt.source)

			if tt.wantMessage == "" {
				if len(diags) > 0 {
					t.Fatalf("Unexpected diagnostic: %s", diags[0].Message)
				}

				return
			}

			if len(diags) != 1 {
				t.Fatalf("Got %d diagnostics, want 1", len(diags))
			}

			diag := diags[0]
			if diag.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", diag.Message, tt.wantMessage)
			}

			if diag.Category != "suggestion" {
				t.Errorf("Category = %q, want %q", diag.Category, "suggestion")
			}

			if len(diag.SuggestedFixes) != 1 {
				t.Fatalf("Got %d fixes, want 1", len(diag.SuggestedFixes))
			}

			if got := applyEdits(t, fset, tt.source, diag.SuggestedFixes[0].TextEdits); got != tt.wantFixed {
				t.Errorf("Fixed source:\n%s\nwant:\n%s", got, tt.wantFixed)
			}
		})
	}
}

// runFiller type-checks source and runs the filler over its constructor.
func runFiller(t *testing.T, source string) ([]analysis.Diagnostic, *token.FileSet) {
	t.Helper()

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "p.go", source, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}

	info := &types.Info{
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
		Types: make(map[ast.Expr]types.TypeAndValue),
	}

	pkg, err := (&types.Config{}).Check("p", fset, []*ast.File{file}, info)
	if err != nil {
		t.Fatalf("Can't type-check source: %v", err)
	}

	var diags []analysis.Diagnostic

	pass := &analysis.Pass{
		Fset:      fset,
		Files:     []*ast.File{file},
		Pkg:       pkg,
		TypesInfo: info,
		Report:    func(d analysis.Diagnostic) { diags = append(diags, d) },
	}

	filler := &Filler{
		Pass:        pass,
		Decls:       typeDecls(file, info),
		CurrentFile: astutil.NewCurrentFile(fset, file),
	}

	ctor, _ := pkg.Scope().Lookup("Employee").Type().(*types.Named)

	for _, decl := range file.Decls {
		if fdecl, ok := decl.(*ast.FuncDecl); ok && fdecl.Recv == nil {
			filler.Check(fdecl, ctor)
		}
	}

	return diags, fset
}

// typeDecls indexes the file's type declarations the way the analyzer does.
func typeDecls(file *ast.File, info *types.Info) map[*types.TypeName]TypeDecl {
	decls := make(map[*types.TypeName]TypeDecl)

	for _, decl := range file.Decls {
		gdecl, ok := decl.(*ast.GenDecl)
		if !ok || gdecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range gdecl.Specs {
			tspec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			if tn, ok := info.Defs[tspec.Name].(*types.TypeName); ok {
				decls[tn] = TypeDecl{File: file, Decl: gdecl, Spec: tspec}
			}
		}
	}

	return decls
}

// applyEdits splices the fix's text edits into the source.
func applyEdits(t *testing.T, fset *token.FileSet, source string, edits []analysis.TextEdit) string {
	t.Helper()

	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, func(a, b analysis.TextEdit) int { return int(b.Pos - a.Pos) })

	result := source

	for _, edit := range sorted {
		start := fset.Position(edit.Pos).Offset
		end := fset.Position(edit.End).Offset

		if start > end || end > len(result) {
			t.Fatalf("Edit out of range: %d..%d", start, end)
		}

		result = result[:start] + string(edit.NewText) + result[end:]
	}

	return result
}
