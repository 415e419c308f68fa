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

package gclplugin

import recordcheck "fillmore-labs.com/recordcheck/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Init enables checks of construction-time mutation calls (Set).
	Init *bool `json:"init,omitzero"`
	// With enables checks of clone-and-mutate calls (With).
	With *bool `json:"with,omitzero"`
	// Prop enables checks of capability-creation calls (Prop).
	Prop *bool `json:"prop,omitzero"`
	// Param enables checks of accessor-tagged parameter declarations.
	Param *bool `json:"param,omitzero"`
	// Shape enables structural checks of record type declarations.
	Shape *bool `json:"shape,omitzero"`
	// Fill enables the constructor auto-populate suggestion.
	Fill *bool `json:"fill,omitzero"`
	// RecordPackage sets the package name of the record runtime to recognize.
	RecordPackage *string `json:"record-package,omitzero"`
}

// Options converts [Settings] into a list of [recordcheck.Option] for the recordcheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []recordcheck.Option {
	var opts []recordcheck.Option

	opts = appendOption(opts, s.Init, recordcheck.WithInit)
	opts = appendOption(opts, s.With, recordcheck.WithWith)
	opts = appendOption(opts, s.Prop, recordcheck.WithProp)
	opts = appendOption(opts, s.Param, recordcheck.WithParam)
	opts = appendOption(opts, s.Shape, recordcheck.WithShape)
	opts = appendOption(opts, s.Fill, recordcheck.WithSuggestFill)
	opts = appendOption(opts, s.RecordPackage, recordcheck.WithRecordPackage)

	return opts
}

// appendOption appends a non-nil setting to a [recordcheck.Option] list.
func appendOption[T any](opts []recordcheck.Option, value *T, constructor func(T) recordcheck.Option) []recordcheck.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
