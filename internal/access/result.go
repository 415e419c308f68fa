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

package access

// Result classifies an argument expression of a property-access call.
//
// This closed set is the single channel through which every rule receives
// validation outcomes; rules map variants to diagnostics and never perform
// their own ad hoc checks.
type Result uint8

//go:generate go tool stringer -type Result -linecomment
const (
	// Ok indicates a compliant direct property access or a pre-validated capability.
	Ok Result = iota // ok

	// NotADirectAccess indicates the expression is not a bare accessor literal.
	NotADirectAccess // acc

	// TargetNotAProperty indicates the accessed member is not a property.
	TargetNotAProperty // prp

	// IndirectTargetAccess indicates the member is reached through a conversion
	// or type assertion of the parameter rather than the bare parameter. The
	// member is only visible through a different declared capability.
	IndirectTargetAccess // ind

	// MissingGetter indicates the property cannot be read by the runtime.
	MissingGetter // get

	// MissingSetter indicates the property cannot be written by the runtime.
	MissingSetter // set

	// GetterHasDisallowedAnnotation indicates a rename directive on the getter.
	GetterHasDisallowedAnnotation // gan

	// SetterHasDisallowedAnnotation indicates a rename directive on the setter.
	SetterHasDisallowedAnnotation // san

	// PropertyIsReadOnlyTagged indicates a construction-only property used
	// outside a construction context.
	PropertyIsReadOnlyTagged // ini

	// ValueTypeTooGeneral indicates the supplied value type is a strict
	// supertype of the property's declared type.
	ValueTypeTooGeneral // typ

	// DelegateParameterMissingCapabilityTag indicates a function-typed value
	// whose declaration slot lacks the //record:accessor directive.
	DelegateParameterMissingCapabilityTag // tag

	// Inconclusive indicates insufficient information. Never an error.
	Inconclusive // unk
)

// IsFailure reports whether the result must surface as a diagnostic.
// Ok and Inconclusive never produce one.
func (r Result) IsFailure() bool {
	return r != Ok && r != Inconclusive
}
