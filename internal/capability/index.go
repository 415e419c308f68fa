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

package capability

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/recordcheck/internal/astutil"
)

// Index records where capability tags and accessor directives are attached in
// the package under analysis. Tags live on formal parameter declarations and
// on named function type declarations; they are attached at declaration time
// and never removed.
type Index struct {
	// tagged holds parameters carrying a //record:accessor directive.
	tagged map[*types.Var]bool

	// delegates maps named function types to the ordinal of their tagged
	// parameter, -1 when the declaration carries no directive.
	delegates map[*types.TypeName]int

	// methods holds the record directives of function and method declarations.
	methods map[*types.Func]astutil.Directives
}

// NewIndex scans all function and type declarations of the package once and
// builds the directive index.
func NewIndex(p *analysis.Pass, in *inspector.Inspector) *Index {
	ix := &Index{
		tagged:    make(map[*types.Var]bool),
		delegates: make(map[*types.TypeName]int),
		methods:   make(map[*types.Func]astutil.Directives),
	}

	nodes := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.GenDecl)(nil),
	}

	for c := range in.Root().Preorder(nodes...) {
		switch node := c.Node().(type) {
		case *ast.FuncDecl:
			ix.indexFuncDecl(p, node)

		case *ast.GenDecl:
			ix.indexGenDecl(p, node)
		}
	}

	return ix
}

func (ix *Index) indexFuncDecl(p *analysis.Pass, decl *ast.FuncDecl) {
	d := astutil.ParseDirectives(decl.Doc)

	fn, ok := p.TypesInfo.Defs[decl.Name].(*types.Func)
	if ok {
		ix.methods[fn] = d
	}

	if !d.HasAccessor() || decl.Type == nil {
		return
	}

	for _, field := range decl.Type.Params.List {
		for _, name := range field.Names {
			if name.Name != d.AccessorParam {
				continue
			}

			if param, ok := p.TypesInfo.Defs[name].(*types.Var); ok {
				ix.tagged[param] = true
			}
		}
	}
}

func (ix *Index) indexGenDecl(p *analysis.Pass, decl *ast.GenDecl) {
	for _, spec := range decl.Specs {
		tspec, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		doc := tspec.Doc
		if doc == nil && len(decl.Specs) == 1 {
			doc = decl.Doc
		}

		d := astutil.ParseDirectives(doc)
		if !d.HasAccessor() {
			continue
		}

		ftype, ok := tspec.Type.(*ast.FuncType)
		if !ok {
			continue
		}

		tn, ok := p.TypesInfo.Defs[tspec.Name].(*types.TypeName)
		if !ok {
			continue
		}

		ix.delegates[tn] = paramOrdinalByName(ftype, d.AccessorParam)
	}
}

// paramOrdinalByName returns the flattened ordinal of the named parameter, -1
// if absent.
func paramOrdinalByName(ftype *ast.FuncType, name string) int {
	ordinal := 0

	for _, field := range ftype.Params.List {
		if len(field.Names) == 0 {
			ordinal++

			continue
		}

		for _, id := range field.Names {
			if id.Name == name {
				return ordinal
			}

			ordinal++
		}
	}

	return -1
}

// Tagged reports whether param carries the capability tag directly.
func (ix *Index) Tagged(param *types.Var) bool {
	return ix.tagged[param]
}

// DelegateSlot returns the tagged parameter ordinal of a named delegate type.
// The boolean result is false when the type declaration is not indexed (not a
// declared function type of this package).
func (ix *Index) DelegateSlot(tn *types.TypeName) (int, bool) {
	ordinal, ok := ix.delegates[tn]

	return ordinal, ok
}

// MethodDirectives returns the record directives on a function or method
// declaration of this package. Cross-package declarations have no visible
// comments; they yield the zero value.
func (ix *Index) MethodDirectives(fn *types.Func) astutil.Directives {
	if fn == nil {
		return astutil.Directives{}
	}

	return ix.methods[fn.Origin()]
}
