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

package fill

import "test/record"

type Order struct {
	record.Base

	item string
}

func (o Order) Item() string { return o.item }

func (o *Order) SetItem(value string) { o.item = value }

func (o Order) Validate() {}

func NewOrder(item string, quantity int) *Order { // want "rc:fil"
	o := &Order{}

	o.Validate()

	return o
}

func NewFilled(item string) *Order {
	o := &Order{}
	o.Set(func(o Order) string { return o.Item() }, item)
	o.Validate()

	return o
}

func NewDirect(item string) *Order {
	return &Order{item: item}
}
