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

import (
	"fmt"

	"test/record"
)

func Promote(e Employee) Employee {
	return record.With(e, func(e Employee) int { return e.Age() }, 65)
}

func Concat(e Employee) Employee {
	return record.With(e, func(e Employee) string { return e.Name() + "!" }, "x") // want "rc:acc"
}

func Reissue(e Employee) Employee {
	return record.With(e, func(e Employee) string { return e.ID() }, "x") // want "rc:ini"
}

func MethodValue(e Employee) Employee {
	return record.With(e, func(e Employee) func(string) { return e.SetName }, nil) // want "rc:prp"
}

func Recount(b Broken) Broken {
	return record.With(b, func(b Broken) int { return b.Count() }, 1) // want "rc:set"
}

type Report struct {
	record.Base

	body fmt.Stringer
}

func (r Report) Body() fmt.Stringer { return r.body }

func (r *Report) SetBody(value fmt.Stringer) { r.body = value }

func Widen(r Report) Report {
	return record.With(r, func(r Report) any { return r.Body() }, nil) // want "rc:typ"
}

func Rebind(r Report) Report {
	return record.With(r, func(r Report) fmt.Stringer { return r.Body() }, nil)
}
