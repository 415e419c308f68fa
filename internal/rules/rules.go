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

// Package rules dispatches the five independent rule sets of the analyzer.
//
// Each rule recognizes one call or declaration shape and translates validation
// outcomes into a fixed set of diagnostic categories. The rules share the
// accessor validator; none performs its own classification. A failure in one
// rule never blocks the others from running on the same node.
package rules

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/recordcheck/internal/access"
	"fillmore-labs.com/recordcheck/internal/astutil"
	"fillmore-labs.com/recordcheck/internal/capability"
	"fillmore-labs.com/recordcheck/internal/config"
	"fillmore-labs.com/recordcheck/internal/recordtype"
)

// Dispatcher routes syntax nodes to the enabled rule sets.
type Dispatcher struct {
	// Pass is the current analysis pass.
	Pass *analysis.Pass

	// API recognizes the record runtime's symbols.
	API recordtype.API

	// Validator classifies accessor arguments.
	Validator *access.Validator

	// Index holds the package's capability tags and directives.
	Index *capability.Index

	// Rules selects the enabled rule sets.
	Rules config.BitMask[config.RuleFlags]

	// CurrentFile tracks the file under analysis for nolint handling.
	CurrentFile astutil.CurrentFile
}

// CheckCall applies the call-shaped rules to the call at c. ctor is the record
// type under construction when the enclosing function is a constructor, nil
// otherwise.
func (d *Dispatcher) CheckCall(c inspector.Cursor, ctor *types.Named) {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return
	}

	switch {
	case d.Rules.Enabled(config.InitRule) && d.API.SetCallee(d.Pass.TypesInfo, call) != nil:
		d.checkSetCall(c, call, ctor)

	case d.Rules.Enabled(config.WithRule) && d.API.WithCallee(d.Pass.TypesInfo, call) != nil:
		d.checkWithCall(c, call)

	case d.Rules.Enabled(config.PropRule) && d.API.PropCallee(d.Pass.TypesInfo, call) != nil:
		d.checkPropCall(c, call)
	}
}

// validateArg runs the accessor validator on the call argument at the given
// index and reports any failure.
func (d *Dispatcher) validateArg(c inspector.Cursor, call *ast.CallExpr, index int, ctx access.Context) {
	if index >= len(call.Args) {
		return // malformed call, nothing to report
	}

	arg := c.ChildAt(edge.CallExpr_Args, index)

	validation := d.Validator.Validate(arg, ctx)
	d.reportValidation(call.Args[index], validation, ctx)
}

// reportValidation maps a validation outcome to its diagnostic category.
// Ok and inconclusive outcomes never produce a diagnostic.
func (d *Dispatcher) reportValidation(rng analysis.Range, validation access.Validation, ctx access.Context) {
	if !validation.Result.IsFailure() {
		return
	}

	if d.CurrentFile.NoLintComment(rng.Pos()) {
		return
	}

	d.Pass.Report(analysis.Diagnostic{
		Pos:     rng.Pos(),
		End:     rng.End(),
		Message: d.message(validation, ctx),
	})
}

// message renders the user-facing text for a validation failure.
func (d *Dispatcher) message(validation access.Validation, ctx access.Context) string {
	name := validation.Property.Name

	switch validation.Result {
	case access.NotADirectAccess:
		return fmt.Sprintf("Accessor must be a function literal returning a single property access on its own parameter (rc:%s)", validation.Result)

	case access.TargetNotAProperty:
		return fmt.Sprintf("Accessed member is not a property (rc:%s)", validation.Result)

	case access.IndirectTargetAccess:
		return fmt.Sprintf("Accessor reaches the member through a conversion of its parameter; access the property on the bare parameter (rc:%s)", validation.Result)

	case access.MissingGetter:
		return fmt.Sprintf("Property '%s' has no getter (rc:%s)", name, validation.Result)

	case access.MissingSetter:
		return fmt.Sprintf("Property '%s' has no setter (rc:%s)", name, validation.Result)

	case access.GetterHasDisallowedAnnotation:
		return fmt.Sprintf("Getter of property '%s' carries a rename directive, name-based resolution is unreliable (rc:%s)", name, validation.Result)

	case access.SetterHasDisallowedAnnotation:
		return fmt.Sprintf("Setter of property '%s' carries a rename directive, name-based resolution is unreliable (rc:%s)", name, validation.Result)

	case access.PropertyIsReadOnlyTagged:
		return fmt.Sprintf("Property '%s' can only be set during construction (rc:%s)", name, validation.Result)

	case access.ValueTypeTooGeneral:
		return fmt.Sprintf("Value type %s is more general than the type %s of property '%s' (rc:%s)",
			d.typeString(ctx.ValueType), d.typeString(validation.Property.Type), name, validation.Result)

	case access.DelegateParameterMissingCapabilityTag:
		return fmt.Sprintf("Function-typed value is not a tagged accessor; mark its declaration with //record:accessor (rc:%s)", validation.Result)

	default:
		return fmt.Sprintf("Invalid accessor argument (rc:%s)", validation.Result)
	}
}

// typeString renders a type relative to the package under analysis.
func (d *Dispatcher) typeString(t types.Type) string {
	if t == nil {
		return "<unknown>"
	}

	return types.TypeString(t, types.RelativeTo(d.Pass.Pkg))
}

// valueTypeArg returns the call's inferred or explicit value type argument:
// the last type argument of the generic instantiation, nil when unresolved.
func (d *Dispatcher) valueTypeArg(call *ast.CallExpr) types.Type {
	id := calleeIdent(call.Fun)
	if id == nil {
		return nil
	}

	inst, ok := d.Pass.TypesInfo.Instances[id]
	if !ok || inst.TypeArgs == nil || inst.TypeArgs.Len() != 2 {
		return nil
	}

	return inst.TypeArgs.At(1)
}

// calleeIdent unwraps the identifier denoting the called function.
func calleeIdent(fun ast.Expr) *ast.Ident {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f

	case *ast.SelectorExpr:
		return f.Sel

	case *ast.IndexExpr:
		return calleeIdent(f.X)

	case *ast.IndexListExpr:
		return calleeIdent(f.X)

	default:
		return nil
	}
}
