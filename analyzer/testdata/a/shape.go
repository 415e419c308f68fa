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

type Broken struct {
	record.Base

	Title   string // want "rc:fld"
	count   int
	label   string
	caption string
}

func (b Broken) Count() int { return b.count } // want "rc:set"

//record:name Heading
func (b Broken) Label() string { return b.label } // want "rc:gan"

func (b *Broken) SetLabel(value string) { b.label = value }

func (b Broken) Caption() string { return b.caption }

//record:name SetHeading
func (b *Broken) SetCaption(value string) { b.caption = value } // want "rc:san"

func (b *Broken) SetMissing(value int) {} // want "rc:get"

// Tenured is computed, not backed by state, and therefore not a property.
func (b Broken) Tenured() bool { return b.count > 10 }

type plain struct {
	Exported string
}
