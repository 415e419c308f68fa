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
	"errors"
	"reflect"
	"strings"
)

// Runtime misuse errors. These surface as panics; code accepted by the
// recordcheck analyzer never triggers them.
var (
	// ErrNotARecord means the type passed to [New] embeds no [Base].
	ErrNotARecord = errors.New("record: type embeds no record.Base")

	// ErrUnbound means Set was called on a record not created with [New].
	ErrUnbound = errors.New("record: value not constructed with record.New")

	// ErrNotAnAccessor means the accessor argument has the wrong shape.
	ErrNotAnAccessor = errors.New("record: not a property accessor")

	// ErrNoProperty means no settable property matches the accessor.
	ErrNoProperty = errors.New("record: no property matches accessor")

	// ErrAmbiguous means the value cannot distinguish candidate properties.
	ErrAmbiguous = errors.New("record: accessor match is ambiguous")

	// ErrAlreadySet means a property was assigned twice during construction.
	ErrAlreadySet = errors.New("record: property already set")
)

const setterPrefix = "Set"

// findSetter locates the setter method of the property the accessor reads.
//
// Discovery probes zero values: each candidate Set* method of *T is applied
// to a fresh zero T, and the accessor is evaluated against the result. The
// candidate whose effect the accessor observes is the property's setter.
// When value equals the accessor's output on an untouched zero record the
// probe is uninformative; in that case the match succeeds only if a single
// candidate accepts the value's type.
func findSetter(structType reflect.Type, accessor, value reflect.Value) (reflect.Method, error) {
	ptr := reflect.PointerTo(structType)

	baseline := accessor.Call([]reflect.Value{reflect.New(structType).Elem()})[0]
	informative := !reflect.DeepEqual(baseline.Interface(), value.Interface())

	var found []reflect.Method

	for i := range ptr.NumMethod() {
		m := ptr.Method(i)
		if !strings.HasPrefix(m.Name, setterPrefix) || len(m.Name) == len(setterPrefix) {
			continue
		}

		mt := m.Type
		if mt.NumIn() != 2 || mt.NumOut() != 0 || !value.Type().AssignableTo(mt.In(1)) {
			continue
		}

		if informative {
			probe := reflect.New(structType)
			m.Func.Call([]reflect.Value{probe, value})

			out := accessor.Call([]reflect.Value{probe.Elem()})[0]
			if !reflect.DeepEqual(out.Interface(), value.Interface()) {
				continue
			}
		}

		found = append(found, m)
	}

	switch len(found) {
	case 1:
		return found[0], nil

	case 0:
		return reflect.Method{}, ErrNoProperty

	default:
		return reflect.Method{}, ErrAmbiguous
	}
}
