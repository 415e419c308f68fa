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

func NewContractor(name string) *Employee {
	e := &Employee{}
	e.Set(func(e Employee) string { return Employee(e).Name() }, name) // want "rc:ind"
	e.Set(42, name)                                                    // want "rc:acc"
	e.Set(func(e Employee) string { return e.secret }, name)           // want "rc:get"

	return e
}

func Rebadge(e *Employee, name string) {
	e.Set(func(e Employee) string { return e.Name() }, name) // want "rc:ctr"
}

func NewReport(e *Employee, name string) *Report {
	e.Set(func(e Employee) string { return e.Name() }, name) // want "rc:slf"
	e.Set(func(e Employee) string { return e.ID() }, name)   // want "rc:slf"

	return &Report{}
}

type directory struct {
	head *Employee
}

func (d directory) rename(name string) {
	d.head.Set(func(e Employee) string { return e.Name() }, name) // want "rc:slf"
}
