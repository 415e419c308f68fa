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
	"flag"

	"fillmore-labs.com/recordcheck/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	rule := func(value config.RuleFlags) flag.Value {
		return boolValue[config.RuleFlags, *config.BitMask[config.RuleFlags]]{flags: &r.rules, value: value}
	}
	behavior := func(value config.Config) flag.Value {
		return boolValue[config.Config, *config.BitMask[config.Config]]{flags: &r.behavior, value: value}
	}

	flags.Var(rule(config.InitRule), "init", "check construction-time Set calls")
	flags.Var(rule(config.WithRule), "with", "check clone-and-mutate With calls")
	flags.Var(rule(config.PropRule), "prop", "check capability-creation Prop calls")
	flags.Var(rule(config.ParamRule), "param", "check accessor-tagged parameter declarations")
	flags.Var(rule(config.ShapeRule), "shape", "check record type declarations")
	flags.Var(behavior(config.SuggestFill), "fill", "suggest populating constructors from unused parameters")
	flags.Var(behavior(config.IncludeGenerated), "generated", "check generated files")
	flags.StringVar(&r.recordPackage, "record-package", r.recordPackage, "package name of the record runtime")
}
