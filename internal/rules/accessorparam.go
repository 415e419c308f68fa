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
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/recordcheck/internal/guard"
)

// CheckParams enforces the capability-parameter declaration rule: every
// parameter bearing the accessor tag must have the one-parameter,
// single-result function shape, and must never be rebound anywhere in the
// function body.
func (d *Dispatcher) CheckParams(fdecl *ast.FuncDecl) {
	if fdecl.Type == nil || fdecl.Type.Params == nil {
		return
	}

	for _, field := range fdecl.Type.Params.List {
		for _, name := range field.Names {
			param, ok := d.Pass.TypesInfo.Defs[name].(*types.Var)
			if !ok || !d.Index.Tagged(param) {
				continue
			}

			d.checkTaggedParam(name, param, fdecl.Body)
		}
	}
}

func (d *Dispatcher) checkTaggedParam(name *ast.Ident, param *types.Var, body *ast.BlockStmt) {
	if d.CurrentFile.NoLintComment(name.Pos()) {
		return
	}

	sig, ok := param.Type().Underlying().(*types.Signature)
	if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		d.Pass.Report(analysis.Diagnostic{
			Pos:     name.Pos(),
			End:     name.End(),
			Message: fmt.Sprintf("Accessor-tagged parameter '%s' must have a single-parameter, single-result function type (rc:sig)", name.Name),
		})

		return
	}

	for _, violation := range guard.Scan(d.Pass.TypesInfo, body, param) {
		var message string

		switch violation.Kind {
		case guard.Assigned:
			message = fmt.Sprintf("Accessor-tagged parameter '%s' must not be reassigned (rc:rea)", name.Name)

		case guard.AddressTaken:
			message = fmt.Sprintf("Accessor-tagged parameter '%s' must not have its address taken (rc:ref)", name.Name)
		}

		d.Pass.Report(analysis.Diagnostic{
			Pos:     violation.Ident.Pos(),
			End:     violation.Ident.End(),
			Message: message,
			Related: []analysis.RelatedInformation{{
				Pos:     name.Pos(),
				End:     name.End(),
				Message: "Tagged parameter declared here",
			}},
		})
	}
}
