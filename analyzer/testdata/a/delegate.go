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

package a

import "test/record"

// Mutator applies one change to an employee.
//
//record:accessor get
type Mutator func(e Employee, get func(Employee) string) Employee

func mutate(e Employee, m Mutator) Employee {
	return m(e, func(e Employee) string { return e.Name() })
}

func Tweak(e Employee) Employee {
	return mutate(e, func(e Employee, get func(Employee) string) Employee {
		return record.With(e, get, "x")
	})
}

func Rebound(e Employee) Employee {
	return mutate(e, func(e Employee, get func(Employee) string) Employee {
		other := get

		return record.With(e, other, "x") // want "rc:tag"
	})
}
