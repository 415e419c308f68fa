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

package astutil

import (
	"go/ast"
	"regexp"
)

// Directives holds the record directives attached to a declaration's doc comment.
//
// The record runtime resolves properties by name, so directives that rename a
// member make name-based resolution unreliable and are treated as disallowed
// on property accessors.
type Directives struct {
	// AccessorParam is the parameter named by a //record:accessor directive, or "".
	AccessorParam string

	// Rename is the replacement name given by a //record:name directive, or "".
	Rename string

	// Init reports a //record:init directive, marking a construction-only property.
	Init bool
}

// HasAccessor reports whether an accessor-carrying parameter is declared.
func (d Directives) HasAccessor() bool {
	return d.AccessorParam != ""
}

// HasRename reports whether the member is renamed for the runtime.
func (d Directives) HasRename() bool {
	return d.Rename != ""
}

var directivePattern = regexp.MustCompile(`^//record:(accessor|name|init)(?:[ \t]+(\S+))?\s*$`)

// ParseDirectives extracts record directives from a doc comment group.
// A nil group yields the zero value.
func ParseDirectives(doc *ast.CommentGroup) Directives {
	var d Directives
	if doc == nil {
		return d
	}

	for _, comment := range doc.List {
		matches := directivePattern.FindStringSubmatch(comment.Text)
		if matches == nil {
			continue
		}

		switch matches[1] {
		case "accessor":
			d.AccessorParam = matches[2]

		case "name":
			d.Rename = matches[2]

		case "init":
			d.Init = true
		}
	}

	return d
}
