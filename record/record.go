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
	"sync"
)

// Base makes an embedding struct a record type. It holds a pointer to the
// construction state, so records stay plain values: copying a record copies
// no lock, and all copies share the set-once bookkeeping.
//
// A record must be created with [New] before [Base.Set] can be used; the
// zero Base is unbound and rejects all mutation.
type Base struct {
	state *state
}

// state tracks the construction of one record, each property assigned at
// most once.
type state struct {
	mu       sync.Mutex
	self     any
	assigned map[string]bool
}

// New creates a record of type T and binds its embedded [Base] to it.
func New[T any]() *T {
	r := new(T)

	base := baseOf(reflect.ValueOf(r).Elem())
	if base == nil {
		panic(fmt.Errorf("%w: %T", ErrNotARecord, r))
	}

	base.state = &state{self: r}

	return r
}

// Set assigns the property denoted by accessor to value, exactly once.
//
// The accessor must be a direct property accessor of the embedding record
// type; the property's setter is resolved at runtime by name-free probing.
// Set panics on unbound receivers, unresolvable accessors and repeated
// assignment, all of which are programming errors the recordcheck analyzer
// reports at build time.
func (b *Base) Set(accessor, value any) {
	st := b.state
	if st == nil {
		panic(ErrUnbound)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	av := reflect.ValueOf(accessor)
	if av.Kind() != reflect.Func || av.Type().NumIn() != 1 || av.Type().NumOut() != 1 {
		panic(fmt.Errorf("%w: %T", ErrNotAnAccessor, accessor))
	}

	sv := reflect.ValueOf(st.self)
	if av.Type().In(0) != sv.Type().Elem() {
		panic(fmt.Errorf("%w: accessor of %s used on %s", ErrNotAnAccessor, av.Type().In(0), sv.Type().Elem()))
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		panic(fmt.Errorf("%w: untyped nil value", ErrNoProperty))
	}

	setter, err := findSetter(sv.Type().Elem(), av, rv)
	if err != nil {
		panic(err)
	}

	if st.assigned[setter.Name] {
		panic(fmt.Errorf("%w: %s", ErrAlreadySet, setter.Name))
	}

	if st.assigned == nil {
		st.assigned = make(map[string]bool)
	}
	st.assigned[setter.Name] = true

	setter.Func.Call([]reflect.Value{sv, rv})
}

// baseOf finds the embedded [Base] of an addressable struct value, walking
// chains of embedded record types.
func baseOf(v reflect.Value) *Base {
	if v.Kind() != reflect.Struct {
		return nil
	}

	for i := range v.NumField() {
		if !v.Type().Field(i).Anonymous {
			continue
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}

			fv = fv.Elem()
		}

		if !fv.CanAddr() || !fv.Addr().CanInterface() {
			continue
		}

		if base, ok := fv.Addr().Interface().(*Base); ok {
			return base
		}

		if base := baseOf(fv); base != nil {
			return base
		}
	}

	return nil
}
