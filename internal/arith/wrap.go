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
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/inspector"
)

// Accumulation is a `-=` or `+=` of a shifted value into a fixed-width integer inside a loop.
// Repeated accumulation wraps modulo 2^Bits.
type Accumulation struct {
	Assign *ast.AssignStmt
	Bits   int
}

// Target returns the accumulated expression.
func (a Accumulation) Target() ast.Expr {
	return a.Assign.Lhs[0]
}

// ShiftAccumulations yields all shifted accumulations in loops below root.
// Loops enclosing a function literal do not count for statements inside the literal.
func ShiftAccumulations(info *types.Info, sizes types.Sizes, root inspector.Cursor) iter.Seq[Accumulation] {
	return func(yield func(Accumulation) bool) {
		for c := range root.Preorder((*ast.AssignStmt)(nil)) {
			assign := c.Node().(*ast.AssignStmt)
			if assign.Tok != token.SUB_ASSIGN && assign.Tok != token.ADD_ASSIGN || len(assign.Lhs) != 1 {
				continue
			}

			t := fixedWidth(info.TypeOf(assign.Lhs[0]))
			if t == nil || !inLoop(c) || !hasShift(assign.Rhs[0]) {
				continue
			}

			if !yield(Accumulation{Assign: assign, Bits: 8 * int(sizes.Sizeof(t))}) {
				return
			}
		}
	}
}

func inLoop(c inspector.Cursor) bool {
	for e := range c.Enclosing((*ast.ForStmt)(nil), (*ast.RangeStmt)(nil), (*ast.FuncLit)(nil), (*ast.FuncDecl)(nil)) {
		switch e.Node().(type) {
		case *ast.ForStmt, *ast.RangeStmt:
			return true

		default:
			return false
		}
	}

	return false
}

func hasShift(expr ast.Expr) bool {
	found := false

	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.BinaryExpr:
			if n.Op == token.SHL {
				found = true
			}

		case *ast.FuncLit:
			return false
		}

		return !found
	})

	return found
}
