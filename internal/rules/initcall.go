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

package rules

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/recordcheck/internal/access"
)

// checkSetCall enforces the construction-time mutation rule.
//
// The structural checks come first: the receiver must be a bare identifier of
// the type under construction (direct self-access) and the call must sit
// inside a constructor of that type. Only then is the accessor argument
// validated, with construction-only properties permitted in this context.
func (d *Dispatcher) checkSetCall(c inspector.Cursor, call *ast.CallExpr, ctor *types.Named) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return // callee resolution guarantees a selector
	}

	if _, ok := ast.Unparen(sel.X).(*ast.Ident); !ok {
		d.reportStructural(sel.X, "Set must be called directly on the value under construction (rc:slf)")

		return
	}

	if ctor == nil {
		d.reportStructural(call, "Set mutates in place and is only allowed inside a constructor; use With elsewhere (rc:ctr)")

		return
	}

	if !d.constructedReceiver(sel.X, ctor) {
		d.reportStructural(sel.X, "Set must be called directly on the value under construction (rc:slf)")

		return
	}

	d.validateArg(c, call, 0, access.Context{
		RequireSetter: true,
		AllowInit:     true,
	})
}

// constructedReceiver reports whether the receiver expression has the type
// under construction. An unresolved type is inconclusive, never a failure.
func (d *Dispatcher) constructedReceiver(expr ast.Expr, ctor *types.Named) bool {
	t := d.Pass.TypesInfo.TypeOf(expr)
	if t == nil {
		return true
	}

	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	return types.Identical(t, ctor)
}

// reportStructural emits a diagnostic for a structural rule violation.
func (d *Dispatcher) reportStructural(rng analysis.Range, message string) {
	if d.CurrentFile.NoLintComment(rng.Pos()) {
		return
	}

	d.Pass.Report(analysis.Diagnostic{Pos: rng.Pos(), End: rng.End(), Message: message})
}
