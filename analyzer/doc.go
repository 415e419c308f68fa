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

// Package analyzer implements the recordcheck static analysis pass.
//
// # Overview
//
// Recordcheck validates the accessor arguments of record API calls. The
// record runtime resolves properties by name at runtime; the analyzer proves
// at build time that every Set, With and Prop call names exactly one property
// of a record type, directly and without indirection.
//
// # Example
//
// A compliant mutation during construction:
//
//	func NewEmployee(name string) *Employee {
//	    e := &Employee{}
//	    e.Set(func(e Employee) string { return e.Name() }, name)
//
//	    return e
//	}
//
// The accessor literal is the only accepted shape: a single-parameter
// function whose body returns one bare getter call (or backing field) on its
// own parameter. Conversions, chained calls and computed values are rejected.
//
// # Capability References
//
// Validated accessors can be passed along through parameters carrying a
// //record:accessor directive and through declared function types whose
// declaration carries one; such references are accepted without
// re-validation. Tagged parameters must keep the single-parameter,
// single-result shape and must never be reassigned or have their address
// taken.
//
// # Rule Sets
//
// The analyzer runs five independent rule sets, each of which can be
// disabled separately:
//
//   - init: Set calls, allowed only on the value under construction
//   - with: With calls, clone-and-mutate outside construction
//   - prop: Prop calls, creation of reusable property capabilities
//   - param: accessor-tagged parameter declarations
//   - shape: structural checks of record type declarations
//
// Constructors that never use some of their parameters additionally get a
// suggested fix populating the corresponding properties.
package analyzer
