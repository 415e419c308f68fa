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
	"path"

	"golang.org/x/tools/go/types/typeutil"
)

// Default names of the record runtime's symbols.
const (
	defaultPackage = "record"

	setName      = "Set"
	withName     = "With"
	propName     = "Prop"
	propertyName = "Property"
	baseName     = "Base"
)

// API identifies the record runtime's symbols in analyzed code.
//
// Identity is approximated structurally by symbol name, arity and the last
// element of the declaring package path. The analyzer and the analyzed program
// never share type objects, and consumers may vendor the runtime under a
// different module path, so full nominal identity cannot be checked. This is an
// accepted limitation, not a bug.
type API struct {
	pkg string
}

// New creates an [API] matcher for a record runtime package. An empty name
// selects the default package name.
func New(pkg string) API {
	if pkg == "" {
		pkg = defaultPackage
	}

	return API{pkg: pkg}
}

// fromRecordPackage reports whether pkg is the record runtime package.
func (a API) fromRecordPackage(pkg *types.Package) bool {
	return pkg != nil && path.Base(pkg.Path()) == a.pkg
}

// SetCallee returns the Set method called by a construction-time mutation call,
// or nil if the call is not one.
func (a API) SetCallee(info *types.Info, call *ast.CallExpr) *types.Func {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	selection, ok := info.Selections[sel]
	if !ok {
		return nil
	}

	fn, ok := selection.Obj().(*types.Func)
	if !ok || fn.Name() != setName || !a.fromRecordPackage(fn.Pkg()) {
		return nil
	}

	return fn
}

// WithCallee returns the record.With function called, or nil.
func (a API) WithCallee(info *types.Info, call *ast.CallExpr) *types.Func {
	return a.callee(info, call, withName)
}

// PropCallee returns the record.Prop function called, or nil.
func (a API) PropCallee(info *types.Info, call *ast.CallExpr) *types.Func {
	return a.callee(info, call, propName)
}

func (a API) callee(info *types.Info, call *ast.CallExpr, name string) *types.Func {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Name() != name || fn.Signature().Recv() != nil || !a.fromRecordPackage(fn.Pkg()) {
		return nil
	}

	return fn
}

// IsPropertyType reports whether t is the runtime's two-type-parameter
// capability wrapper record.Property[T, V].
func (a API) IsPropertyType(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Name() == propertyName && named.TypeArgs().Len() == 2 && a.fromRecordPackage(obj.Pkg())
}

// isBase reports whether t is the runtime's record.Base type.
func (a API) isBase(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Name() == baseName && a.fromRecordPackage(obj.Pkg())
}

// ImplementsContract reports whether t participates in the immutability
// contract, directly or through a chain of embedded types.
//
// This is an explicit query over static type structure: a type participates if
// its struct embeds record.Base, or embeds another participating type.
func (a API) ImplementsContract(t types.Type) bool {
	return a.implementsContract(t, make(map[types.Type]bool))
}

func (a API) implementsContract(t types.Type, seen map[types.Type]bool) bool {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	if seen[t] {
		return false
	}
	seen[t] = true

	if a.isBase(t) {
		return true
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	for field := range st.Fields() {
		if !field.Embedded() {
			continue
		}

		if a.implementsContract(field.Type(), seen) {
			return true
		}
	}

	return false
}
