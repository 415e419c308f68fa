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

type Employee struct {
	record.Base

	name   string
	age    int
	id     string
	secret string
}

func (e Employee) Name() string { return e.name }

func (e *Employee) SetName(value string) { e.name = value }

func (e Employee) Age() int { return e.age }

func (e *Employee) SetAge(value int) { e.age = value }

// ID is assigned once when the employee is created.
//
//record:init
func (e Employee) ID() string { return e.id }

func (e *Employee) SetID(value string) { e.id = value }

func NewEmployee(name string, age int) *Employee {
	e := &Employee{}
	e.Set(func(e Employee) string { return e.Name() }, name)
	e.Set(func(e Employee) int { return e.Age() }, age)
	e.Set(func(e Employee) string { return e.ID() }, name)

	return e
}
