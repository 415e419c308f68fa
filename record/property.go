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

package record

import (
	"fmt"
	"reflect"
)

// Property is a reusable, pre-validated reference to one property of the
// record type T with value type V. Create it with [Prop]; the recordcheck
// analyzer validates the accessor at the point of creation, so holders of a
// Property never need re-validation.
type Property[T, V any] struct {
	accessor func(T) V
}

// Prop creates a [Property] from a direct property accessor.
func Prop[T, V any](accessor func(T) V) Property[T, V] {
	if accessor == nil {
		panic(fmt.Errorf("%w: nil accessor", ErrNotAnAccessor))
	}

	return Property[T, V]{accessor: accessor}
}

// With returns a copy of r with the property denoted by accessor replaced by
// value. The original record is never modified.
func With[T, V any](r T, accessor func(T) V, value V) T {
	return applyValue(r, accessor, value)
}

// Get reads the property denoted by p from r.
func Get[T, V any](r T, p Property[T, V]) V {
	return p.accessor(r)
}

// Apply returns a copy of r with the property denoted by p replaced by value.
func Apply[T, V any](r T, p Property[T, V], value V) T {
	return applyValue(r, p.accessor, value)
}

// applyValue clones r and routes value through the setter observed by the
// accessor.
func applyValue[T, V any](r T, accessor func(T) V, value V) T {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic(fmt.Errorf("%w: %s", ErrNotARecord, structType))
	}

	if accessor == nil {
		panic(fmt.Errorf("%w: nil accessor", ErrNotAnAccessor))
	}

	vv := reflect.ValueOf(&value).Elem()

	setter, err := findSetter(structType, reflect.ValueOf(accessor), vv)
	if err != nil {
		panic(err)
	}

	clone := r
	setter.Func.Call([]reflect.Value{reflect.ValueOf(&clone), vv})

	return clone
}
