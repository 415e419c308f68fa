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

package guard_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	. "fillmore-labs.com/recordcheck/internal/guard"
)

func parseFunc(t *testing.T, body string) (*types.Info, *ast.BlockStmt, *types.Var) {
	t.Helper()

	source := "package p\n\nfunc f(get func(int) int) {\n" + body + "\n}\n"

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "p.go", source, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}

	info := &types.Info{
		Defs: make(map[*ast.Ident]types.Object),
		Uses: make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{Importer: importer.Default()}
	if _, err := conf.Check("p", fset, []*ast.File{file}, info); err != nil {
		t.Fatalf("Can't type-check source: %v", err)
	}

	fdecl := file.Decls[len(file.Decls)-1].(*ast.FuncDecl)
	param := info.Defs[fdecl.Type.Params.List[0].Names[0]].(*types.Var)

	return info, fdecl.Body, param
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"clean body", "_ = get(1)", 0},
		{"plain assignment", "get = nil", 1},
		{"multi assignment", "x := 0\n_ = x\nget, x = nil, 1\n_ = x", 1},
		{"address taken", "p := &get\n_ = p", 1},
		{"surrounded by other statements", "x := 1\n_ = x\nget = nil\ny := 2\n_ = y", 1},
		{"assignment and address", "get = nil\np := &get\n_ = p", 2},
		{"nested literal assignment", "f := func() { get = nil }\nf()", 1},
		{"other identifier", "other := func(int) int { return 0 }\nother = nil\n_ = other", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info, body, param := parseFunc(t, tt.body)

			if got := Scan(info, body, param); len(got) != tt.want {
				t.Errorf("Scan found %d violations, want %d", len(got), tt.want)
			}
		})
	}
}
