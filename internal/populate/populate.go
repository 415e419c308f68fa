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

// Package populate suggests completing record constructors that leave
// parameters unused.
//
// A constructor parameter that is never referenced in the body is almost
// always a property the author forgot to thread through. The generated fix
// appends one Set call per forgotten parameter, declares any accessors the
// record type is still missing, and keeps a final Validate call in place.
// The fix is built as text edits only; applying it is the host's business.
package populate

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/recordcheck/internal/astutil"
)

// TypeDecl locates a record type's declaration syntax, needed to place
// generated field and accessor declarations.
type TypeDecl struct {
	// File is the file holding the declaration.
	File *ast.File

	// Decl is the enclosing declaration group.
	Decl *ast.GenDecl

	// Spec is the type specification itself.
	Spec *ast.TypeSpec
}

// Filler detects constructors with unused parameters and builds the
// populating suggested fix.
type Filler struct {
	// Pass is the current analysis pass.
	Pass *analysis.Pass

	// Decls maps the package's named types to their declaration syntax.
	Decls map[*types.TypeName]TypeDecl

	// CurrentFile tracks the file under analysis for nolint handling and
	// line math.
	CurrentFile astutil.CurrentFile
}

// Check inspects the constructor fdecl of record type ctor and reports a
// suggestion with a fix when some parameters are never used in the body.
func (f *Filler) Check(fdecl *ast.FuncDecl, ctor *types.Named) {
	if ctor == nil || fdecl.Body == nil {
		return
	}

	if f.CurrentFile.NoLintComment(fdecl.Name.Pos()) {
		return
	}

	missing := f.unusedParams(fdecl)
	if len(missing) == 0 {
		return
	}

	recv := f.constructedVar(fdecl.Body, ctor)
	if recv == nil {
		return // no local value under construction to attach Set calls to
	}

	edits := f.buildEdits(fdecl, ctor, recv, missing)
	if edits == nil {
		return
	}

	f.Pass.Report(analysis.Diagnostic{
		Pos:      fdecl.Name.Pos(),
		End:      fdecl.Name.End(),
		Category: "suggestion",
		Message: fmt.Sprintf("Constructor %s never uses %s (rc:fil)",
			fdecl.Name.Name, describeParams(missing)),
		SuggestedFixes: []analysis.SuggestedFix{{
			Message:   "Populate the record's properties from the unused parameters",
			TextEdits: edits,
		}},
	})
}

// unusedParams returns the constructor's parameters, in declaration order,
// that have no use anywhere in the body.
func (f *Filler) unusedParams(fdecl *ast.FuncDecl) []*types.Var {
	if fdecl.Type == nil || fdecl.Type.Params == nil {
		return nil
	}

	used := make(map[*types.Var]bool)

	ast.Inspect(fdecl.Body, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			if v, ok := f.Pass.TypesInfo.Uses[id].(*types.Var); ok {
				used[v] = true
			}
		}

		return true
	})

	var missing []*types.Var

	for _, field := range fdecl.Type.Params.List {
		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}

			param, ok := f.Pass.TypesInfo.Defs[name].(*types.Var)
			if !ok || used[param] {
				continue
			}

			missing = append(missing, param)
		}
	}

	return missing
}

// constructedVar finds the identifier of the local variable holding the value
// under construction: the first top-level declaration in the body whose type
// is the constructed record type or a pointer to it.
func (f *Filler) constructedVar(body *ast.BlockStmt, ctor *types.Named) *ast.Ident {
	for _, stmt := range body.List {
		switch s := stmt.(type) {
		case *ast.AssignStmt:
			if s.Tok != token.DEFINE {
				continue
			}

			for _, lhs := range s.Lhs {
				if id := f.declOf(lhs, ctor); id != nil {
					return id
				}
			}

		case *ast.DeclStmt:
			decl, ok := s.Decl.(*ast.GenDecl)
			if !ok || decl.Tok != token.VAR {
				continue
			}

			for _, spec := range decl.Specs {
				vspec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for _, name := range vspec.Names {
					if id := f.declOf(name, ctor); id != nil {
						return id
					}
				}
			}
		}
	}

	return nil
}

// declOf returns expr as an identifier when it declares a variable of the
// constructed type.
func (f *Filler) declOf(expr ast.Expr, ctor *types.Named) *ast.Ident {
	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil
	}

	v, ok := f.Pass.TypesInfo.Defs[id].(*types.Var)
	if !ok {
		return nil
	}

	t := types.Unalias(v.Type())
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	if !types.Identical(t, ctor) {
		return nil
	}

	return id
}

// describeParams renders a parameter list for the diagnostic message.
func describeParams(params []*types.Var) string {
	names := make([]string, len(params))
	for i, param := range params {
		names[i] = "'" + param.Name() + "'"
	}

	if len(names) == 1 {
		return "parameter " + names[0]
	}

	return "parameters " + strings.Join(names, ", ")
}
