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

// Package record is a minimal stand-in for the record runtime, just enough
// for the analyzer's symbol recognition.
package record

// Base is embedded by record types.
type Base struct{}

// Set assigns the property denoted by accessor during construction.
func (b *Base) Set(accessor, value any) {}

// Property is a reusable, pre-validated reference to one property.
type Property[T, V any] struct {
	accessor func(T) V
}

// Prop creates a [Property] from an accessor.
func Prop[T, V any](accessor func(T) V) Property[T, V] {
	return Property[T, V]{accessor: accessor}
}

// With returns a copy of r with the property denoted by accessor replaced.
func With[T, V any](r T, accessor func(T) V, value V) T {
	_ = accessor
	_ = value

	return r
}

// Get reads the property denoted by p.
func Get[T, V any](r T, p Property[T, V]) V {
	return p.accessor(r)
}

// Apply returns a copy of r with the property denoted by p replaced.
func Apply[T, V any](r T, p Property[T, V], value V) T {
	_ = p
	_ = value

	return r
}
