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

// Package variance rejects unsound widening of property value types.
//
// A property statically typed as a specific type must not be updated through a
// call whose value type parameter was inferred (or explicitly given) as a
// broader type, e.g. storing an arbitrary error into a property declared with
// a concrete implementation type.
package variance

import "go/types"

// IsAtLeastAsSpecific reports whether candidate equals propertyType or is a
// more specific type.
//
// Go has no subclassing; the inheritance-and-interface walk of the contract
// maps to type identity plus interface satisfaction: a candidate is more
// specific when the property type is an interface the candidate implements.
// Comparison is structural (the type checker canonicalizes named types), never
// pointer identity of type objects.
func IsAtLeastAsSpecific(candidate, propertyType types.Type) bool {
	if candidate == nil || propertyType == nil {
		return true // insufficient information, never a hard failure
	}

	candidate = types.Unalias(candidate)
	propertyType = types.Unalias(propertyType)

	if types.Identical(candidate, propertyType) {
		return true
	}

	iface, ok := propertyType.Underlying().(*types.Interface)
	if !ok {
		return false
	}

	if types.Implements(candidate, iface) {
		return true
	}

	// Methods with pointer receivers are in the pointer's method set.
	if _, isPtr := candidate.(*types.Pointer); !isPtr {
		if types.Implements(types.NewPointer(candidate), iface) {
			return true
		}
	}

	return false
}

// IsStrictlyMoreGeneral reports whether candidate is a strict supertype of
// propertyType: an interface that propertyType satisfies without being
// identical to it. This is the unsound direction the checker exists to reject.
func IsStrictlyMoreGeneral(candidate, propertyType types.Type) bool {
	if candidate == nil || propertyType == nil {
		return false
	}

	candidate = types.Unalias(candidate)
	propertyType = types.Unalias(propertyType)

	if types.Identical(candidate, propertyType) {
		return false
	}

	return IsAtLeastAsSpecific(propertyType, candidate)
}
