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


// Package analyzer implements the guardchain static analysis pass.
//
// # Overview
//
// guardchain recognizes the constructs that make a function interesting for
// branch tracing and width-sensitive arithmetic:
//
//   - gc:chain: a run of consecutive guard clauses (if without else, ending in
//     return) forming an ordered priority list
//   - gc:dup: a guard clause repeating the condition of an earlier clause, so it never fires
//   - gc:sext: a conversion of a signed integer to a wider unsigned type
//   - gc:wrap: a shifted value accumulated with -= or += inside a loop
//
// # Example
//
//	func evaluate(a int32, b int8, c int16, d uint32) int32 {
//	    if int32(b) == a {           // gc:chain
//	        return 1
//	    }
//	    if uint32(c)+d == 0x9898 {   // gc:sext on uint32(c)
//	        return 2
//	    }
//	    return 0
//	}
//
// Diagnostics are suppressed by a `//nolint:guardchain` comment on the same
// line, on the function doc or on the package doc.
package analyzer
