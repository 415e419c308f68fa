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
	"log/slog"

	"fillmore-labs.com/recordcheck/internal/config"
)

// Option configures specific behavior of a [New] recordcheck analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithInit is an [Option] to configure whether construction-time mutation
// calls (Set) are checked.
func WithInit(init bool) Option { return initOption{init: init} }

type initOption struct{ init bool }

func (o initOption) apply(r *runOptions) {
	r.rules.Set(config.InitRule, o.init)
}

func (o initOption) LogAttr() slog.Attr {
	return slog.Bool("init", o.init)
}

// WithWith is an [Option] to configure whether clone-and-mutate calls (With)
// are checked.
func WithWith(with bool) Option { return withOption{with: with} }

type withOption struct{ with bool }

func (o withOption) apply(r *runOptions) {
	r.rules.Set(config.WithRule, o.with)
}

func (o withOption) LogAttr() slog.Attr {
	return slog.Bool("with", o.with)
}

// WithProp is an [Option] to configure whether capability-creation calls
// (Prop) are checked.
func WithProp(prop bool) Option { return propOption{prop: prop} }

type propOption struct{ prop bool }

func (o propOption) apply(r *runOptions) {
	r.rules.Set(config.PropRule, o.prop)
}

func (o propOption) LogAttr() slog.Attr {
	return slog.Bool("prop", o.prop)
}

// WithParam is an [Option] to configure whether accessor-tagged parameter
// declarations are checked.
func WithParam(param bool) Option { return paramOption{param: param} }

type paramOption struct{ param bool }

func (o paramOption) apply(r *runOptions) {
	r.rules.Set(config.ParamRule, o.param)
}

func (o paramOption) LogAttr() slog.Attr {
	return slog.Bool("param", o.param)
}

// WithShape is an [Option] to configure whether record type declarations are
// checked structurally.
func WithShape(shape bool) Option { return shapeOption{shape: shape} }

type shapeOption struct{ shape bool }

func (o shapeOption) apply(r *runOptions) {
	r.rules.Set(config.ShapeRule, o.shape)
}

func (o shapeOption) LogAttr() slog.Attr {
	return slog.Bool("shape", o.shape)
}

// WithSuggestFill is an [Option] to configure the constructor auto-populate
// suggestion.
func WithSuggestFill(fill bool) Option { return fillOption{fill: fill} }

type fillOption struct{ fill bool }

func (o fillOption) apply(r *runOptions) {
	r.behavior.Set(config.SuggestFill, o.fill)
}

func (o fillOption) LogAttr() slog.Attr {
	return slog.Bool("fill", o.fill)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithRecordPackage is an [Option] to configure the package name of the
// record runtime to recognize. An empty name selects the default.
func WithRecordPackage(pkg string) Option { return packageOption{pkg: pkg} }

type packageOption struct{ pkg string }

func (o packageOption) apply(r *runOptions) {
	r.recordPackage = o.pkg
}

func (o packageOption) LogAttr() slog.Attr {
	return slog.String("record-package", o.pkg)
}
