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

//go:generate go tool stringer -type Clause -linecomment

// Clause identifies the guard clause that determined a [Result].
// Constants are declared in evaluation order.
type Clause uint8

const (
	// Credential1 fires when the first credential equals the fixed password.
	Credential1 Clause = iota // credential1

	// Credential2 fires when the second credential equals the fixed admin password.
	Credential2 // credential2

	// Equality fires when the sign-extended narrow comparand equals the wide comparand.
	Equality // equality

	// Overflow fires when the wrapped sum of the extended numerics equals [OverflowTarget].
	// Only [EvaluateExtended] checks this clause.
	Overflow // overflow

	// Default is the fallthrough when no other clause matched.
	Default // default
)

// Matched reports whether a clause other than [Default] fired.
func (c Clause) Matched() bool { return c != Default }
