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

package config_test

import (
	"testing"

	. "fillmore-labs.com/recordcheck/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(InitRule, WithRule)

	if !b.Enabled(InitRule) || !b.Enabled(WithRule) {
		t.Error("Constructed flags are not enabled")
	}

	if b.Enabled(ShapeRule) {
		t.Error("Unset flag is enabled")
	}

	b.Disable(WithRule)

	if b.Enabled(WithRule) {
		t.Error("Disabled flag is still enabled")
	}

	b.Set(ShapeRule, true)

	if !b.Enabled(ShapeRule) {
		t.Error("Set flag is not enabled")
	}

	b.Set(ShapeRule, false)

	if b.Enabled(ShapeRule) {
		t.Error("Cleared flag is still enabled")
	}

	if !b.Enabled(InitRule) {
		t.Error("Untouched flag was cleared")
	}
}
