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

package recordtype

import (
	"go/ast"
	"go/types"
)

// ConstructedType returns the record type constructed by fn: a plain function
// (not a method) counts as a constructor when one of its results is a
// contract-participating named type or a pointer to one.
//
// Construction-time mutation is only legal inside such a function.
func (a API) ConstructedType(info *types.Info, fn *ast.FuncDecl) (*types.Named, bool) {
	if fn == nil || fn.Recv != nil || fn.Type == nil || fn.Type.Results == nil {
		return nil, false
	}

	for _, result := range fn.Type.Results.List {
		t := info.TypeOf(result.Type)
		if t == nil {
			continue
		}

		t = types.Unalias(t)
		if ptr, ok := t.(*types.Pointer); ok {
			t = types.Unalias(ptr.Elem())
		}

		named, ok := t.(*types.Named)
		if !ok {
			continue
		}

		if a.ImplementsContract(named) {
			return named, true
		}
	}

	return nil, false
}
