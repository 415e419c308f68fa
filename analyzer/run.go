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

package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/recordcheck/internal/access"
	"fillmore-labs.com/recordcheck/internal/astutil"
	"fillmore-labs.com/recordcheck/internal/capability"
	"fillmore-labs.com/recordcheck/internal/config"
	"fillmore-labs.com/recordcheck/internal/populate"
	"fillmore-labs.com/recordcheck/internal/recordtype"
	"fillmore-labs.com/recordcheck/internal/rules"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the recordcheck analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("recordcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	api := recordtype.New(r.recordPackage)

	// Index capability tags and directives of the whole package up front;
	// a tagged delegate type may be declared after its first use.
	index := capability.NewIndex(p, in)

	resolver := &capability.Resolver{Pass: p, API: api, Index: index}

	dispatcher := &rules.Dispatcher{
		Pass:      p,
		API:       api,
		Validator: &access.Validator{Pass: p, API: api, Resolver: resolver, Index: index},
		Index:     index,
		Rules:     r.rules,
	}

	var filler *populate.Filler
	if r.behavior.Enabled(config.SuggestFill) {
		filler = &populate.Filler{Pass: p, Decls: typeDecls(p, in)}
	}

	// Loop over all files, type declarations and function declarations
	root, nodes := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.GenDecl)(nil),
	}

	root.Inspect(nodes, func(c inspector.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.File:
			currentFile := astutil.NewCurrentFile(p.Fset, node)
			dispatcher.CurrentFile = currentFile

			if filler != nil {
				filler.CurrentFile = currentFile
			}

			return r.behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()

		case *ast.GenDecl:
			r.checkDecl(dispatcher, c, node)

			return false

		case *ast.FuncDecl:
			r.checkFunc(p, dispatcher, filler, api, c, node)

			return false

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return nil, nil
}

// checkDecl applies the shape rule to every type specification of a
// declaration group and the call rules to value initializers, where
// capability-creating Prop calls commonly live.
func (r *runOptions) checkDecl(dispatcher *rules.Dispatcher, c inspector.Cursor, decl *ast.GenDecl) {
	switch decl.Tok {
	case token.TYPE:
		if !r.rules.Enabled(config.ShapeRule) {
			return
		}

		for _, spec := range decl.Specs {
			if tspec, ok := spec.(*ast.TypeSpec); ok {
				dispatcher.CheckShape(tspec)
			}
		}

	case token.VAR, token.CONST:
		c.Inspect([]ast.Node{(*ast.CallExpr)(nil)}, func(call inspector.Cursor) bool {
			dispatcher.CheckCall(call, nil)

			return true
		})
	}
}

// checkFunc applies the declaration and call rules and the fill suggestion to
// one function declaration.
func (r *runOptions) checkFunc(p *analysis.Pass, dispatcher *rules.Dispatcher, filler *populate.Filler,
	api recordtype.API, c inspector.Cursor, fdecl *ast.FuncDecl,
) {
	if fdecl.Body == nil {
		return
	}

	if !dispatcher.CurrentFile.Valid() {
		astutil.InternalError(p, fdecl, "Function declaration %s without file info", fdecl.Name.Name)

		return
	}

	// Skip functions with nolint comment
	if fdecl.Doc != nil && astutil.CommentHasNoLint(fdecl.Doc.List[len(fdecl.Doc.List)-1]) {
		return
	}

	if r.rules.Enabled(config.ParamRule) {
		dispatcher.CheckParams(fdecl)
	}

	ctor, _ := api.ConstructedType(p.TypesInfo, fdecl)

	body := c.ChildAt(edge.FuncDecl_Body, -1)
	body.Inspect([]ast.Node{(*ast.CallExpr)(nil)}, func(call inspector.Cursor) bool {
		dispatcher.CheckCall(call, ctor)

		return true
	})

	if filler != nil {
		filler.Check(fdecl, ctor)
	}
}

// typeDecls indexes the package's type declaration syntax for the fill
// suggestion's generated accessor declarations.
func typeDecls(p *analysis.Pass, in *inspector.Inspector) map[*types.TypeName]populate.TypeDecl {
	decls := make(map[*types.TypeName]populate.TypeDecl)

	var file *ast.File

	nodes := []ast.Node{
		(*ast.File)(nil),
		(*ast.GenDecl)(nil),
	}

	for c := range in.Root().Preorder(nodes...) {
		switch node := c.Node().(type) {
		case *ast.File:
			file = node

		case *ast.GenDecl:
			if node.Tok != token.TYPE {
				continue
			}

			for _, spec := range node.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				if tn, ok := p.TypesInfo.Defs[tspec.Name].(*types.TypeName); ok {
					decls[tn] = populate.TypeDecl{File: file, Decl: node, Spec: tspec}
				}
			}
		}
	}

	return decls
}
