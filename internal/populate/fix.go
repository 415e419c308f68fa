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

package populate

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"unicode/utf8"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/recordcheck/internal/astutil"
	"fillmore-labs.com/recordcheck/internal/recordtype"
)

// buildEdits assembles the complete fix: accessor declarations for properties
// the type does not have yet, one Set statement per unused parameter, and a
// trailing Validate call when the type declares one. A nil result means no
// well-formed fix can be offered.
func (f *Filler) buildEdits(fdecl *ast.FuncDecl, ctor *types.Named, recv *ast.Ident, missing []*types.Var) []analysis.TextEdit {
	var edits []analysis.TextEdit

	var stmts strings.Builder

	for _, param := range missing {
		name := recordtype.Capitalize(param.Name())
		prop := f.resolveProperty(ctor, name, param.Type())

		declEdits, ok := f.declarationEdits(ctor, prop)
		if !ok {
			return nil
		}

		edits = append(edits, declEdits...)

		fmt.Fprintf(&stmts, "\t%s.Set(func(%s %s) %s { return %s.%s() }, %s)\n",
			recv.Name, accessorParamName(ctor), f.typeString(ctor),
			f.typeString(prop.Type), accessorParamName(ctor), name, param.Name())
	}

	validateEdit, ok := f.validateEdits(fdecl.Body, ctor, recv, &stmts)
	if ok {
		edits = append(edits, validateEdit)
	}

	edits = append(edits, analysis.TextEdit{
		Pos:     f.insertionPoint(fdecl.Body),
		End:     f.insertionPoint(fdecl.Body),
		NewText: []byte(stmts.String()),
	})

	return edits
}

// resolveProperty looks up the property for a generated Set call, defaulting
// to the parameter's type when the type does not declare it yet.
func (f *Filler) resolveProperty(ctor *types.Named, name string, fallback types.Type) recordtype.Property {
	pkg := f.Pass.Pkg

	if obj, found := recordtype.LookupMember(pkg, ctor, name); found {
		if getter, ok := obj.(*types.Func); ok && recordtype.IsGetterShaped(getter) {
			return recordtype.PropertyForGetter(pkg, ctor, getter)
		}
	}

	prop := recordtype.Property{
		Name:   name,
		Setter: recordtype.SetterFor(pkg, ctor, name),
		Type:   fallback,
	}

	if obj, found := recordtype.LookupMember(pkg, ctor, recordtype.Decapitalize(name)); found {
		if field, ok := obj.(*types.Var); ok && field.IsField() {
			prop.Field = field
			prop.Type = field.Type()
		}
	}

	return prop
}

// declarationEdits generates the backing field, getter and setter a property
// still lacks, placed at the record type's declaration. The boolean result is
// false when the declaration syntax is unavailable or not amenable to edits.
func (f *Filler) declarationEdits(ctor *types.Named, prop recordtype.Property) ([]analysis.TextEdit, bool) {
	if prop.HasGetter() && prop.HasSetter() {
		return nil, true
	}

	td, ok := f.Decls[ctor.Origin().Obj()]
	if !ok || td.File == nil {
		return nil, false
	}

	declFile := astutil.NewCurrentFile(f.Pass.Fset, td.File)
	if !declFile.Valid() {
		return nil, false
	}

	st, ok := td.Spec.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return nil, false
	}

	if declFile.Lines(st.Fields) < 2 {
		return nil, false // single-line struct, no place for a field
	}

	var edits []analysis.TextEdit

	fieldName := recordtype.Decapitalize(prop.Name)
	valueType := f.typeString(prop.Type)

	if prop.Field == nil && !prop.HasGetter() {
		edits = append(edits, analysis.TextEdit{
			Pos:     st.Fields.Closing,
			End:     st.Fields.Closing,
			NewText: fmt.Appendf(nil, "\t%s %s\n", fieldName, valueType),
		})
	}

	var methods strings.Builder

	receiver := accessorParamName(ctor)
	typeName := f.typeString(ctor)

	if !prop.HasGetter() {
		fmt.Fprintf(&methods, "\n\nfunc (%s %s) %s() %s {\n\treturn %s.%s\n}",
			receiver, typeName, prop.Name, valueType, receiver, fieldName)
	}

	if !prop.HasSetter() {
		fmt.Fprintf(&methods, "\n\nfunc (%s *%s) Set%s(value %s) {\n\t%s.%s = value\n}",
			receiver, typeName, prop.Name, valueType, receiver, fieldName)
	}

	edits = append(edits, analysis.TextEdit{
		Pos:     td.Decl.End(),
		End:     td.Decl.End(),
		NewText: []byte(methods.String()),
	})

	return edits, true
}

// validateEdits keeps a Validate call the final statement: when the type
// declares a niladic Validate method, the call is appended after the
// generated Set statements, relocating an existing call together with its
// leading comments.
func (f *Filler) validateEdits(body *ast.BlockStmt, ctor *types.Named, recv *ast.Ident, stmts *strings.Builder) (analysis.TextEdit, bool) {
	obj, found := recordtype.LookupMember(f.Pass.Pkg, ctor, "Validate")
	if !found {
		return analysis.TextEdit{}, false
	}

	fn, ok := obj.(*types.Func)
	if !ok {
		return analysis.TextEdit{}, false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 {
		return analysis.TextEdit{}, false
	}

	existing, prev := findValidateStmt(body, recv)
	if existing != nil {
		for _, group := range f.CurrentFile.LeadingComments(prev, existing.Pos()) {
			for _, comment := range group.List {
				fmt.Fprintf(stmts, "\t%s\n", comment.Text)
			}
		}
	}

	fmt.Fprintf(stmts, "\t%s.Validate()\n", recv.Name)

	if existing == nil {
		return analysis.TextEdit{}, false
	}

	start := existing.Pos()
	if groups := f.CurrentFile.LeadingComments(prev, existing.Pos()); len(groups) > 0 {
		start = groups[0].Pos()
	}

	return analysis.TextEdit{
		Pos: f.CurrentFile.LineStart(start),
		End: f.CurrentFile.NextLineStart(existing.End()),
	}, true
}

// findValidateStmt locates a top-level recv.Validate() statement in the body,
// returning it with the end position of the preceding statement.
func findValidateStmt(body *ast.BlockStmt, recv *ast.Ident) (ast.Stmt, token.Pos) {
	prev := body.Lbrace

	for _, stmt := range body.List {
		expr, ok := stmt.(*ast.ExprStmt)
		if !ok {
			prev = stmt.End()

			continue
		}

		call, ok := expr.X.(*ast.CallExpr)
		if !ok || len(call.Args) != 0 {
			prev = stmt.End()

			continue
		}

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Validate" {
			prev = stmt.End()

			continue
		}

		if id, ok := ast.Unparen(sel.X).(*ast.Ident); ok && id.Name == recv.Name {
			return stmt, prev
		}

		prev = stmt.End()
	}

	return nil, prev
}

// insertionPoint returns the position where generated statements go: the
// start of the final return statement's line, or just before the closing
// brace when the body does not end in a return.
func (f *Filler) insertionPoint(body *ast.BlockStmt) token.Pos {
	if n := len(body.List); n > 0 {
		if ret, ok := body.List[n-1].(*ast.ReturnStmt); ok {
			return f.CurrentFile.LineStart(ret.Pos())
		}
	}

	return f.CurrentFile.LineStart(body.Rbrace)
}

// typeString renders a type relative to the package under analysis.
func (f *Filler) typeString(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(f.Pass.Pkg))
}

// accessorParamName derives the parameter name for generated accessor
// literals and methods from the record type's name.
func accessorParamName(ctor *types.Named) string {
	name := recordtype.Decapitalize(ctor.Obj().Name())

	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "r"
	}

	return name[:size]
}
