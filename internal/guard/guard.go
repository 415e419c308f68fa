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

// Package guard verifies that capability-tagged parameters are never rebound.
//
// A tagged parameter is a trusted, pre-validated slot; rebinding it (or
// passing it by reference) would invalidate the guarantee for the remainder of
// the function body.
package guard

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Kind distinguishes how a tagged parameter was rebound.
type Kind uint8

const (
	// Assigned indicates the parameter is the target of an assignment.
	Assigned Kind = iota

	// AddressTaken indicates the parameter's address is taken, allowing
	// writes through a pointer.
	AddressTaken
)

// Violation records one rebinding of a tagged parameter.
type Violation struct {
	// Ident is the offending use of the parameter.
	Ident *ast.Ident

	// Kind classifies the rebinding.
	Kind Kind
}

// Scan performs a body-wide search for rebindings of param. The scan is purely
// syntactic over resolved identifiers; surrounding statements are irrelevant.
func Scan(info *types.Info, body *ast.BlockStmt, param *types.Var) []Violation {
	if body == nil || param == nil {
		return nil
	}

	var violations []Violation

	refersToParam := func(expr ast.Expr) *ast.Ident {
		id, ok := ast.Unparen(expr).(*ast.Ident)
		if !ok || info.Uses[id] != param {
			return nil
		}

		return id
	}

	ast.Inspect(body, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.AssignStmt:
			for _, lhs := range n.Lhs {
				if id := refersToParam(lhs); id != nil {
					violations = append(violations, Violation{Ident: id, Kind: Assigned})
				}
			}

		case *ast.IncDecStmt:
			if id := refersToParam(n.X); id != nil {
				violations = append(violations, Violation{Ident: id, Kind: Assigned})
			}

		case *ast.RangeStmt:
			if n.Tok != token.ASSIGN {
				break
			}

			for _, expr := range []ast.Expr{n.Key, n.Value} {
				if expr == nil {
					continue
				}

				if id := refersToParam(expr); id != nil {
					violations = append(violations, Violation{Ident: id, Kind: Assigned})
				}
			}

		case *ast.UnaryExpr:
			if n.Op != token.AND {
				break
			}

			if id := refersToParam(n.X); id != nil {
				violations = append(violations, Violation{Ident: id, Kind: AddressTaken})
			}
		}

		return true
	})

	return violations
}
