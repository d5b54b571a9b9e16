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

// Package fixture contains instrumentation fixtures for the guardchain analyzer
// and for tracers that need functions with several distinct branch outcomes.
//
// # Guard Evaluator
//
// [Evaluate] and [EvaluateExtended] walk an ordered list of guard clauses.
// The first clause whose condition holds determines the [Result]:
//
//  1. [Credential1]: the first credential equals the fixed password
//  2. [Credential2]: the second credential equals the fixed admin password
//  3. [Equality]: the sign-extended narrow comparand equals the wide one
//  4. [Overflow]: (extended only) the wrapped 32-bit sum hits a magic value
//  5. [Default]: nothing matched
//
// # Loop Accumulator
//
// [Loop] runs a fixed 200×50 nested loop, subtracting a shifted product
// in 32-bit wraparound arithmetic.
//
// All functions are pure and synchronous.
package fixture
