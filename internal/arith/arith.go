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


// Package arith finds fixed-width integer arithmetic whose result depends on
// the operand width: sign-extending conversions and wrapping accumulations.
package arith

import (
	"go/types"
)

// integer returns the basic integer type underlying t, or nil.
func integer(t types.Type) *types.Basic {
	if t == nil {
		return nil
	}

	b, ok := t.Underlying().(*types.Basic)
	if !ok || b.Info()&types.IsInteger == 0 || b.Info()&types.IsUntyped != 0 {
		return nil
	}

	return b
}

// fixedWidth returns the integer type underlying t when its size does not depend on
// the platform, or nil.
func fixedWidth(t types.Type) *types.Basic {
	b := integer(t)
	if b == nil {
		return nil
	}

	switch b.Kind() {
	case types.Int, types.Uint, types.Uintptr:
		return nil

	default:
		return b
	}
}

func unsigned(b *types.Basic) bool {
	return b.Info()&types.IsUnsigned != 0
}
