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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/recordcheck/internal/access"
)

// checkPropCall enforces the capability-creation rule. Prop is the sole way a
// tag-free capability value comes into existence, so the accessor is validated
// like a mutation: the resulting Property can later read and write, and must
// not be created broader than the property it denotes.
func (d *Dispatcher) checkPropCall(c inspector.Cursor, call *ast.CallExpr) {
	d.validateArg(c, call, 0, access.Context{
		RequireSetter: true,
		ValueType:     d.valueTypeArg(call),
	})
}
