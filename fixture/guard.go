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

package fixture

import "fmt"

// Fixed secrets compared byte for byte against the credentials.
const (
	Password      = "c00lpass1337"
	AdminPassword = "secretadminpass"
)

// OverflowTarget is the wrapped sum that triggers the [Overflow] clause.
const OverflowTarget uint32 = 0x98989898

// Status codes returned by the guard clauses.
const (
	StatusCredential1     int32 = -0x3ffe0ff3 // bit pattern 0xc001f00d
	StatusCredential2     int32 = 0xa1f
	StatusEquality        int32 = 0xc0bb13
	StatusOverflow        int32 = 0x8000
	StatusExtendedDefault int32 = 0
)

// Output codes returned by the guard clauses.
const (
	OutputCredential1 int32 = 1234
	OutputCredential2 int32 = 3456
	OutputEquality    int32 = 4567
	OutputOverflow    int32 = 345987
	OutputNoMatch     int32 = -1
)

// Result is the outcome of one guard evaluation.
type Result struct {
	Status int32
	Output int32
	Clause Clause
}

// String renders the status as its 32-bit pattern.
func (r Result) String() string {
	return fmt.Sprintf("status=%#x output=%d clause=%s", uint32(r.Status), r.Output, r.Clause)
}

// Evaluate runs the basic guard chain.
//
// On the default path the status is a itself.
func Evaluate(a int32, b int8, cred1, cred2 string) Result {
	if cred1 == Password {
		return Result{Status: StatusCredential1, Output: OutputCredential1, Clause: Credential1}
	}

	if cred2 == AdminPassword {
		return Result{Status: StatusCredential2, Output: OutputCredential2, Clause: Credential2}
	}

	if int32(b) == a {
		return Result{Status: StatusEquality, Output: OutputEquality, Clause: Equality}
	}

	return Result{Status: a, Output: OutputNoMatch, Clause: Default}
}

// EvaluateExtended runs the guard chain with the additional [Overflow] clause.
//
// The numerics c, d and e are summed by their 32-bit patterns modulo 2^32.
// Unlike [Evaluate], the default status is the constant [StatusExtendedDefault].
func EvaluateExtended(a int32, b int8, c int16, d uint32, e int32, cred1, cred2 string) Result {
	if cred1 == Password {
		return Result{Status: StatusCredential1, Output: OutputCredential1, Clause: Credential1}
	}

	if cred2 == AdminPassword {
		return Result{Status: StatusCredential2, Output: OutputCredential2, Clause: Credential2}
	}

	if int32(b) == a {
		return Result{Status: StatusEquality, Output: OutputEquality, Clause: Equality}
	}

	if uint32(c)+d+uint32(e) == OverflowTarget {
		return Result{Status: StatusOverflow, Output: OutputOverflow, Clause: Overflow}
	}

	return Result{Status: StatusExtendedDefault, Output: OutputNoMatch, Clause: Default}
}
