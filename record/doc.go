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

/*
Package record implements immutable records with name-free property access.

A record type embeds [Base] and declares each property as a getter method,
a Set-prefixed setter method and an unexported backing field:

	type Employee struct {
	    record.Base

	    name string
	}

	func (e Employee) Name() string { return e.name }

	func (e *Employee) SetName(value string) { e.name = value }

Construction happens through [New] and [Base.Set], which assigns each
property at most once:

	func NewEmployee(name string) *Employee {
	    e := record.New[Employee]()
	    e.Set(func(e Employee) string { return e.Name() }, name)

	    return e
	}

After construction records are only changed by copying: [With] replaces one
property in a copy, and [Prop] captures an accessor as a reusable
[Property] for [Get] and [Apply].

Accessors are plain Go expressions, so property references survive renames
and refactoring. The runtime resolves the property by probing candidate
setters, not by parsing names; the recordcheck analyzer proves at build
time that every accessor denotes exactly one property. Misuse that the
analyzer would have reported panics at runtime.
*/
package record
