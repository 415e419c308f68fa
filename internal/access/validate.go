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

// Package access validates property-accessor arguments.
//
// A compliant accessor is a single-parameter function literal whose body is
// exactly one bare getter invocation (or backing-field selection) on the
// literal's own parameter: no conversions, no chained calls, no arithmetic, no
// re-interpretation of the parameter. Pattern matching is performed over the
// typed syntax tree, never over stringified source.
package access

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/recordcheck/internal/capability"
	"fillmore-labs.com/recordcheck/internal/recordtype"
	"fillmore-labs.com/recordcheck/internal/variance"
)

// Context describes the call shape on whose behalf an accessor is validated.
type Context struct {
	// RequireSetter demands a writable property (mutation and capability calls).
	RequireSetter bool

	// AllowInit permits construction-only properties (construction context).
	AllowInit bool

	// ValueType is the call's inferred or explicit value type argument, nil
	// when the call carries none.
	ValueType types.Type
}

// Validation is the outcome of validating one accessor argument.
type Validation struct {
	// Result classifies the argument.
	Result Result

	// Property is the resolved property, valid for results past member
	// resolution.
	Property recordtype.Property
}

// Validator classifies accessor argument expressions. It holds no mutable
// state; every call is an independent, idempotent mapping from expression and
// type information to a [Validation].
type Validator struct {
	Pass     *analysis.Pass
	API      recordtype.API
	Resolver *capability.Resolver
	Index    *capability.Index
}

// Validate classifies the argument expression at arg for the given context.
func (v *Validator) Validate(arg inspector.Cursor, ctx Context) Validation {
	// Pre-validated capabilities bypass re-validation; their value type was
	// checked when the capability was created.
	switch v.Resolver.Classify(arg) {
	case capability.Capability:
		return Validation{Result: Ok}

	case capability.Untagged:
		return Validation{Result: DelegateParameterMissingCapabilityTag}

	case capability.Unknown:
		return Validation{Result: Inconclusive}

	case capability.None:
	}

	expr, ok := arg.Node().(ast.Expr)
	if !ok {
		return Validation{Result: Inconclusive}
	}

	lit, ok := ast.Unparen(expr).(*ast.FuncLit)
	if !ok {
		return Validation{Result: NotADirectAccess}
	}

	param := v.singleParam(lit.Type)
	if param == nil {
		return Validation{Result: NotADirectAccess}
	}

	member, indirect := v.memberAccess(lit.Body, param)
	switch {
	case indirect:
		return Validation{Result: IndirectTargetAccess}

	case member == "":
		return Validation{Result: NotADirectAccess}
	}

	return v.validateMember(param.Type(), member, ctx)
}

// validateMember resolves the accessed member on the target type and applies
// the property checks.
func (v *Validator) validateMember(target types.Type, member string, ctx Context) Validation {
	if target == nil {
		return Validation{Result: Inconclusive}
	}

	obj, found := recordtype.LookupMember(v.Pass.Pkg, target, member)
	if !found {
		// Unresolvable members on code mid-edit must not produce spurious,
		// unfixable errors.
		return Validation{Result: Inconclusive}
	}

	var prop recordtype.Property

	switch m := obj.(type) {
	case *types.Func:
		if !recordtype.IsGetterShaped(m) {
			return Validation{Result: TargetNotAProperty}
		}

		prop = recordtype.PropertyForGetter(v.Pass.Pkg, target, m)

	case *types.Var:
		if !m.IsField() {
			return Validation{Result: TargetNotAProperty}
		}

		prop = recordtype.PropertyForField(v.Pass.Pkg, target, m)
		if !prop.HasGetter() {
			return Validation{Result: MissingGetter, Property: prop}
		}

	default:
		return Validation{Result: TargetNotAProperty}
	}

	getterDirectives := v.Index.MethodDirectives(prop.Getter)
	if getterDirectives.HasRename() {
		return Validation{Result: GetterHasDisallowedAnnotation, Property: prop}
	}

	if ctx.RequireSetter {
		if result := v.checkSetter(target, prop); result != Ok {
			return Validation{Result: result, Property: prop}
		}
	}

	if getterDirectives.Init && !ctx.AllowInit {
		return Validation{Result: PropertyIsReadOnlyTagged, Property: prop}
	}

	if variance.IsStrictlyMoreGeneral(ctx.ValueType, prop.Type) {
		return Validation{Result: ValueTypeTooGeneral, Property: prop}
	}

	return Validation{Result: Ok, Property: prop}
}

// checkSetter verifies the property is writable by the runtime.
func (v *Validator) checkSetter(target types.Type, prop recordtype.Property) Result {
	if !prop.HasSetter() {
		if v.externalType(target) {
			// The declaring package may satisfy the setter with code not
			// visible here; a miss is better than a false report on library
			// consumption.
			return Inconclusive
		}

		return MissingSetter
	}

	if v.Index.MethodDirectives(prop.Setter).HasRename() {
		return SetterHasDisallowedAnnotation
	}

	return Ok
}

// externalType reports whether the named target type is declared outside the
// package under analysis.
func (v *Validator) externalType(target types.Type) bool {
	t := types.Unalias(target)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return true // cannot tell, err on the inconclusive side
	}

	return named.Obj().Pkg() != v.Pass.Pkg
}

// singleParam returns the declared object of the literal's only parameter, or
// nil when the literal does not take exactly one named parameter.
func (v *Validator) singleParam(ftype *ast.FuncType) *types.Var {
	if ftype == nil || ftype.Params == nil || len(ftype.Params.List) != 1 {
		return nil
	}

	field := ftype.Params.List[0]
	if len(field.Names) != 1 {
		return nil
	}

	param, _ := v.Pass.TypesInfo.Defs[field.Names[0]].(*types.Var)

	return param
}

// memberAccess matches the literal body against the direct-access shape and
// returns the accessed member name. indirect reports that the member was
// reached through a conversion or type assertion of the parameter, a
// materially different failure: the member is only visible through a
// different declared capability.
func (v *Validator) memberAccess(body *ast.BlockStmt, param *types.Var) (member string, indirect bool) {
	if body == nil || len(body.List) != 1 {
		return "", false
	}

	ret, ok := body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return "", false
	}

	expr := ast.Unparen(ret.Results[0])

	// A getter read is one niladic call on the selector.
	if call, ok := expr.(*ast.CallExpr); ok {
		if len(call.Args) != 0 {
			return "", false
		}

		expr = ast.Unparen(call.Fun)
	}

	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	base := ast.Unparen(sel.X)

	switch {
	case v.isParamRef(base, param):
		return sel.Sel.Name, false

	case v.reinterprets(base, param):
		return "", true
	}

	return "", false
}

// isParamRef reports whether expr is a bare reference to param.
func (v *Validator) isParamRef(expr ast.Expr, param *types.Var) bool {
	expr = ast.Unparen(expr)

	if unary, ok := expr.(*ast.UnaryExpr); ok && unary.Op == token.AND {
		expr = ast.Unparen(unary.X)
	}

	id, ok := expr.(*ast.Ident)

	return ok && v.Pass.TypesInfo.Uses[id] == param
}

// reinterprets reports whether expr reaches param through one or more
// conversions or type assertions.
func (v *Validator) reinterprets(expr ast.Expr, param *types.Var) bool {
	for {
		expr = ast.Unparen(expr)

		switch e := expr.(type) {
		case *ast.TypeAssertExpr:
			expr = e.X

		case *ast.CallExpr:
			// A conversion is a call whose function is a type.
			tv, ok := v.Pass.TypesInfo.Types[e.Fun]
			if !ok || !tv.IsType() || len(e.Args) != 1 {
				return false
			}

			expr = e.Args[0]

		case *ast.StarExpr:
			expr = e.X

		default:
			return v.isParamRef(expr, param)
		}
	}
}
