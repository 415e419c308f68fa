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

// Update applies a pre-validated accessor without re-validation.
//
//record:accessor get
func Update(e Employee, get func(Employee) string, v string) Employee {
	return record.With(e, get, v)
}

func UpdateUntagged(e Employee, get func(Employee) string, v string) Employee {
	return record.With(e, get, v) // want "rc:tag"
}

//record:accessor get
func Shift(e Employee, get func(Employee) string) Employee {
	get = nil    // want "rc:rea"
	escape(&get) // want "rc:ref"

	return e
}

func escape(get *func(Employee) string) {}

//record:accessor get
func Wrong(e Employee, get func(Employee)) { // want "rc:sig"
	_ = get
}

var sharedGet = func(e Employee) string { return e.Name() }

func UpdateShared(e Employee) Employee {
	return record.With(e, sharedGet, "x") // want "rc:tag"
}
