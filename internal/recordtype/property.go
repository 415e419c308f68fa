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
	"go/types"
	"unicode"
	"unicode/utf8"
)

// Property describes one property of a record type: an exported getter method
// F() V paired with a setter SetF(V), backed by an unexported field.
// Resolved from the type checker's view; immutable once resolved.
type Property struct {
	// Name is the property name (the getter's name).
	Name string

	// Getter is the niladic accessor method, nil if the property has none.
	Getter *types.Func

	// Setter is the SetF mutator method, nil if the property has none.
	Setter *types.Func

	// Field is the backing field, nil if not declared.
	Field *types.Var

	// Type is the property's declared value type.
	Type types.Type
}

// HasGetter reports whether the property can be read by the runtime.
func (p Property) HasGetter() bool { return p.Getter != nil }

// HasSetter reports whether the property can be written by the runtime.
func (p Property) HasSetter() bool { return p.Setter != nil }

// LookupMember resolves a member name on a record type to a getter method or a
// backing field. The boolean result is false when nothing is found, which on
// partially type-checked code must be treated as inconclusive.
func LookupMember(pkg *types.Package, typ types.Type, name string) (types.Object, bool) {
	obj, _, _ := types.LookupFieldOrMethod(typ, true, pkg, name)
	if obj == nil {
		return nil, false
	}

	return obj, true
}

// IsGetterShaped reports whether fn has the niladic single-result accessor shape.
func IsGetterShaped(fn *types.Func) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	return sig.Params().Len() == 0 && sig.Results().Len() == 1
}

// IsSetterShaped reports whether fn takes exactly one parameter and returns nothing.
func IsSetterShaped(fn *types.Func) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	return sig.Params().Len() == 1 && sig.Results().Len() == 0
}

// PropertyForGetter builds the [Property] for a resolved getter method.
func PropertyForGetter(pkg *types.Package, typ types.Type, getter *types.Func) Property {
	sig := getter.Type().(*types.Signature)

	p := Property{
		Name:   getter.Name(),
		Getter: getter,
		Type:   sig.Results().At(0).Type(),
	}

	p.Setter = SetterFor(pkg, typ, p.Name)
	p.Field = backingField(pkg, typ, p.Name)

	return p
}

// PropertyForField builds the [Property] for a directly accessed backing field.
// The getter is resolved by the capitalized field name, if declared.
func PropertyForField(pkg *types.Package, typ types.Type, field *types.Var) Property {
	name := Capitalize(field.Name())

	p := Property{
		Name:  name,
		Field: field,
		Type:  field.Type(),
	}

	if obj, _, _ := types.LookupFieldOrMethod(typ, true, pkg, name); obj != nil {
		if fn, ok := obj.(*types.Func); ok && IsGetterShaped(fn) {
			p.Getter = fn
		}
	}

	p.Setter = SetterFor(pkg, typ, name)

	return p
}

// SetterFor resolves the SetF method for property name on typ, or nil.
func SetterFor(pkg *types.Package, typ types.Type, name string) *types.Func {
	obj, _, _ := types.LookupFieldOrMethod(typ, true, pkg, "Set"+name)
	if obj == nil {
		return nil
	}

	fn, ok := obj.(*types.Func)
	if !ok || !IsSetterShaped(fn) {
		return nil
	}

	return fn
}

// backingField resolves the unexported backing field for property name, or nil.
func backingField(pkg *types.Package, typ types.Type, name string) *types.Var {
	obj, _, _ := types.LookupFieldOrMethod(typ, true, pkg, Decapitalize(name))
	if obj == nil {
		return nil
	}

	field, ok := obj.(*types.Var)
	if !ok || !field.IsField() {
		return nil
	}

	return field
}

// DeclaredProperties enumerates the properties declared by a named record type.
//
// A getter-shaped method is only a property when a backing field with the
// decapitalized name and an identical type exists; methods without backing
// state (interface implementations, computed values, promoted methods) carry
// no runtime-managed state and are exempt from the shape contract.
func DeclaredProperties(named *types.Named) []Property {
	pkg := named.Obj().Pkg()

	var props []Property

	for method := range named.Methods() {
		if !method.Exported() || !IsGetterShaped(method) {
			continue
		}

		field := backingField(pkg, named, method.Name())
		if field == nil {
			continue
		}

		sig := method.Type().(*types.Signature)
		if !types.Identical(field.Type(), sig.Results().At(0).Type()) {
			continue
		}

		props = append(props, Property{
			Name:   method.Name(),
			Getter: method,
			Setter: SetterFor(pkg, named, method.Name()),
			Field:  field,
			Type:   field.Type(),
		})
	}

	return props
}

// DeclaredSetters enumerates the SetF-shaped methods declared by a named type.
func DeclaredSetters(named *types.Named) []*types.Func {
	var setters []*types.Func

	for method := range named.Methods() {
		if !method.Exported() || !IsSetterShaped(method) {
			continue
		}

		if _, ok := propertyNameOfSetter(method.Name()); !ok {
			continue
		}

		setters = append(setters, method)
	}

	return setters
}

// PropertyNameOfSetter extracts the property name from a SetF method name.
func PropertyNameOfSetter(name string) (string, bool) {
	return propertyNameOfSetter(name)
}

func propertyNameOfSetter(name string) (string, bool) {
	const prefix = "Set"
	if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
		return "", false
	}

	rest := name[len(prefix):]
	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return "", false
	}

	return rest, true
}

// Capitalize upper-cases the first rune of a name.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(r)) + name[size:]
}

// Decapitalize lower-cases the first rune of a name.
func Decapitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToLower(r)) + name[size:]
}
