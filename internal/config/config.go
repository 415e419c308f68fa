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

package config

// RuleFlags represents the individual rule sets of the analyzer.
type RuleFlags uint8

const (
	// InitRule enables checks of construction-time mutation calls (Set).
	InitRule RuleFlags = 1 << iota

	// WithRule enables checks of clone-and-mutate calls (With).
	WithRule

	// PropRule enables checks of capability-creation calls (Prop).
	PropRule

	// ParamRule enables checks of accessor-tagged parameter declarations.
	ParamRule

	// ShapeRule enables structural checks of record type declarations.
	ShapeRule
)

// Config represents behavioral options for the analyzers.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// SuggestFill enables the constructor auto-populate suggestion and its fix.
	SuggestFill
)
