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
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/recordcheck/internal/recordtype"
)

// CheckShape enforces the record-shape contract on a declared type: every
// property must have both accessors, neither accessor may carry a rename
// directive, and no field may be exported. Getter-shaped methods without
// backing state are exempt; they cannot be reached through an accessor
// literal, so they pose no soundness risk.
func (d *Dispatcher) CheckShape(tspec *ast.TypeSpec) {
	tn, ok := d.Pass.TypesInfo.Defs[tspec.Name].(*types.TypeName)
	if !ok {
		return
	}

	named, ok := tn.Type().(*types.Named)
	if !ok || !d.API.ImplementsContract(named) {
		return
	}

	if d.CurrentFile.NoLintComment(tspec.Name.Pos()) {
		return
	}

	d.checkFields(named)
	d.checkProperties(named)
	d.checkSetters(named)
}

// checkFields rejects exported fields: record state is only reachable through
// accessor pairs, an exported field is mutable by anyone.
func (d *Dispatcher) checkFields(named *types.Named) {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return
	}

	for field := range st.Fields() {
		if field.Embedded() || !field.Exported() {
			continue
		}

		d.reportObject(field, fmt.Sprintf("Exported field '%s' on record type %s breaks immutability; declare an accessor pair instead (rc:fld)",
			field.Name(), named.Obj().Name()))
	}
}

// checkProperties verifies each declared property's accessor pair.
func (d *Dispatcher) checkProperties(named *types.Named) {
	for _, prop := range recordtype.DeclaredProperties(named) {
		if !prop.HasSetter() {
			d.reportObject(prop.Getter, fmt.Sprintf("Property '%s' of record type %s has no setter (rc:set)",
				prop.Name, named.Obj().Name()))

			continue
		}

		if d.Index.MethodDirectives(prop.Getter).HasRename() {
			d.reportObject(prop.Getter, fmt.Sprintf("Getter of property '%s' carries a rename directive, name-based resolution is unreliable (rc:gan)",
				prop.Name))
		}

		if d.Index.MethodDirectives(prop.Setter).HasRename() {
			d.reportObject(prop.Setter, fmt.Sprintf("Setter of property '%s' carries a rename directive, name-based resolution is unreliable (rc:san)",
				prop.Name))
		}
	}
}

// checkSetters verifies that no setter is declared without its getter.
func (d *Dispatcher) checkSetters(named *types.Named) {
	for _, setter := range recordtype.DeclaredSetters(named) {
		name, ok := recordtype.PropertyNameOfSetter(setter.Name())
		if !ok {
			continue
		}

		obj, found := recordtype.LookupMember(named.Obj().Pkg(), named, name)
		if found {
			if fn, ok := obj.(*types.Func); ok && recordtype.IsGetterShaped(fn) {
				continue
			}
		}

		d.reportObject(setter, fmt.Sprintf("Property '%s' of record type %s has no getter (rc:get)",
			name, named.Obj().Name()))
	}
}

// reportObject emits a diagnostic at an object's declaration name.
func (d *Dispatcher) reportObject(obj types.Object, message string) {
	pos := obj.Pos()
	if d.CurrentFile.NoLintComment(pos) {
		return
	}

	d.Pass.Report(analysis.Diagnostic{
		Pos:     pos,
		End:     pos + token.Pos(len(obj.Name())),
		Message: message,
	})
}
