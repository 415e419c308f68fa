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

package analyzer

import (
	"fillmore-labs.com/recordcheck/internal/config"
)

// runOptions represent the configuration of one recordcheck analyzer instance.
type runOptions struct {
	// rules represents the rule sets to be enabled.
	rules config.BitMask[config.RuleFlags]

	// behavior holds behavioral options.
	behavior config.BitMask[config.Config]

	// recordPackage is the package name of the record runtime to recognize.
	recordPackage string
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with
// default values: all rule sets enabled, constructor fill suggestions on,
// generated files skipped.
func defaultRunOptions() *runOptions {
	return &runOptions{
		rules: config.NewBitMask(
			config.InitRule | config.WithRule | config.PropRule | config.ParamRule | config.ShapeRule),
		behavior: config.NewBitMask(config.SuggestFill),
	}
}
