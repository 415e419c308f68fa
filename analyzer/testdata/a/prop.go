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

var NameProp = record.Prop(func(e Employee) string { return e.Name() })

var SecretProp = record.Prop(func(e Employee) string { return e.secret }) // want "rc:get"

func Rename(e Employee, name string) Employee {
	return record.Apply(e, NameProp, name)
}

func CurrentName(e Employee) string {
	return record.Get(e, NameProp)
}

func MakeProp(get func(Employee) string) record.Property[Employee, string] {
	return record.Prop(get) // want "rc:tag"
}

func ForwardProp(p record.Property[Employee, string], e Employee, name string) Employee {
	return record.Apply(e, p, name)
}
