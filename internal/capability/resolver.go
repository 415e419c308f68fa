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

// Package capability decides whether an expression already carries a
// pre-validated property capability, bypassing re-validation.
//
// Two independent recognition paths exist: the expression's static type is the
// runtime's Property wrapper, or the expression flows from a formal parameter
// marked with the //record:accessor directive, directly or through a named
// delegate type's tagged slot.
package capability

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/recordcheck/internal/recordtype"
)

// Kind classifies an expression for the validator's capability short-circuit.
type Kind uint8

const (
	// None means the expression carries no capability; shape validation applies.
	None Kind = iota

	// Capability means the expression is pre-validated and must not be
	// re-validated (nor rebound).
	Capability

	// Untagged means the expression is a plain function-typed value without a
	// capability tag. Reported distinctly so the author learns the fix is a
	// //record:accessor directive, not a different expression shape.
	Untagged

	// Unknown means tagging can be neither confirmed nor denied, e.g. a
	// delegate declared outside this package or indirection deeper than one
	// hop. Must be treated as a pass, never as an error.
	Unknown
)

// Resolver recognizes capability-carrying expressions.
type Resolver struct {
	Pass  *analysis.Pass
	API   recordtype.API
	Index *Index
}

// Classify determines the capability [Kind] of the argument expression at c.
func (r *Resolver) Classify(c inspector.Cursor) Kind {
	expr, ok := c.Node().(ast.Expr)
	if !ok {
		return None
	}

	expr = ast.Unparen(expr)

	// Structural path: the static type is the Property wrapper.
	if t := r.Pass.TypesInfo.TypeOf(expr); t != nil && r.API.IsPropertyType(t) {
		return Capability
	}

	// Nominal path: a reference to a tagged formal parameter.
	id, ok := expr.(*ast.Ident)
	if !ok {
		return None
	}

	param, ok := r.Pass.TypesInfo.Uses[id].(*types.Var)
	if !ok || param.IsField() {
		return None
	}

	if r.Index.Tagged(param) {
		return Capability
	}

	if kind := r.tracedTag(c, param); kind != None {
		return kind
	}

	// A function-typed value without any tag.
	if _, ok := param.Type().Underlying().(*types.Signature); ok {
		return Untagged
	}

	return None
}

// tracedTag handles the delegate propagation case: param is declared by a
// function literal that is itself passed as an argument to some call whose
// formal parameter type is a named delegate type with a tagged slot. The
// literal's parameter at the same ordinal is then capability-carrying for the
// literal's body.
//
// Only the single-hop case is supported; deeper chains of indirection yield
// [Unknown] rather than a false negative that would silently skip validation
// or a false positive that would block legitimate code.
func (r *Resolver) tracedTag(c inspector.Cursor, param *types.Var) Kind {
	lit, ordinal := r.declaringLiteral(c, param)
	if ordinal < 0 {
		return None // not declared by an enclosing function literal
	}

	kind, argIndex := lit.ParentEdge()
	if kind != edge.CallExpr_Args {
		return Unknown // the literal does not flow directly into a call
	}

	call, ok := lit.Parent().Node().(*ast.CallExpr)
	if !ok {
		return Unknown
	}

	formal := r.formalParamType(call, argIndex)
	if formal == nil {
		return Unknown
	}

	named, ok := types.Unalias(formal).(*types.Named)
	if !ok {
		return Unknown // unnamed function type, nowhere to attach a tag
	}

	if _, ok := named.Underlying().(*types.Signature); !ok {
		return Unknown
	}

	tn := named.Obj()
	if tn.Pkg() != r.Pass.Pkg {
		return Unknown // declaration comments are not visible across packages
	}

	slot, ok := r.Index.DelegateSlot(tn)
	if !ok || slot < 0 {
		return Untagged // delegate declaration is visible and carries no tag
	}

	if slot == ordinal {
		return Capability
	}

	return Untagged
}

// declaringLiteral finds the innermost enclosing function literal declaring
// param and returns its cursor plus the parameter's ordinal. The walk stops at
// the virtual root cursor, whose node is nil.
func (r *Resolver) declaringLiteral(c inspector.Cursor, param *types.Var) (lit inspector.Cursor, ordinal int) {
	for cur := c; cur.Node() != nil; cur = cur.Parent() {
		if fl, ok := cur.Node().(*ast.FuncLit); ok {
			if i := r.paramOrdinal(fl.Type, param); i >= 0 {
				return cur, i
			}
		}
	}

	return inspector.Cursor{}, -1
}

// paramOrdinal returns the flattened ordinal of param in ftype, -1 if absent.
func (r *Resolver) paramOrdinal(ftype *ast.FuncType, param *types.Var) int {
	if ftype == nil || ftype.Params == nil {
		return -1
	}

	ordinal := 0

	for _, field := range ftype.Params.List {
		for _, name := range field.Names {
			if r.Pass.TypesInfo.Defs[name] == param {
				return ordinal
			}

			ordinal++
		}
	}

	return -1
}

// formalParamType resolves the called function's formal parameter type at the
// given argument index, independent of call-site presentation. Returns nil
// when the callee's signature cannot be resolved.
func (r *Resolver) formalParamType(call *ast.CallExpr, argIndex int) types.Type {
	t := r.Pass.TypesInfo.TypeOf(call.Fun)
	if t == nil {
		return nil
	}

	sig, ok := t.Underlying().(*types.Signature)
	if !ok {
		return nil
	}

	params := sig.Params()
	switch {
	case argIndex < 0:
		return nil

	case argIndex < params.Len():
		return params.At(argIndex).Type()

	case sig.Variadic() && params.Len() > 0:
		last, ok := params.At(params.Len() - 1).Type().(*types.Slice)
		if !ok {
			return nil
		}

		return last.Elem()

	default:
		return nil
	}
}
