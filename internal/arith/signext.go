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


package arith

import (
	"go/ast"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/inspector"
)

// Conversion is a conversion of a signed integer to a wider unsigned integer type.
// The sign bit of the operand is replicated into the upper bits.
type Conversion struct {
	Call     *ast.CallExpr
	From, To *types.Basic
}

// SignExtensions yields all sign-extending conversions below root.
// Constant operands are skipped, since their conversion is checked by the compiler.
func SignExtensions(info *types.Info, sizes types.Sizes, root inspector.Cursor) iter.Seq[Conversion] {
	return func(yield func(Conversion) bool) {
		for c := range root.Preorder((*ast.CallExpr)(nil)) {
			call := c.Node().(*ast.CallExpr)
			if len(call.Args) != 1 || !info.Types[call.Fun].IsType() {
				continue
			}

			to := integer(info.TypeOf(call.Fun))
			if to == nil || !unsigned(to) {
				continue
			}

			arg, ok := info.Types[call.Args[0]]
			if !ok || arg.Value != nil {
				continue
			}

			from := integer(arg.Type)
			if from == nil || unsigned(from) || sizes.Sizeof(from) >= sizes.Sizeof(to) {
				continue
			}

			if !yield(Conversion{Call: call, From: from, To: to}) {
				return
			}
		}
	}
}
