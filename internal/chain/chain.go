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


// Package chain finds ordered guard chains in function bodies.
//
// A guard clause is an if statement without else whose body ends in a return
// or in a call that never returns.
// A run of consecutive guard clauses at the top level of a function body forms
// a chain: the first clause whose condition holds determines the result, so
// the order of clauses is a priority list.
package chain

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/guardchain/internal/noreturn"
)

// Clause is one guard clause of a [Chain].
type Clause struct {
	If *ast.IfStmt

	// Repeats is the index of an earlier clause with an identical condition, or -1.
	// A repeated clause never fires.
	Repeats int
}

// Chain is a run of consecutive guard clauses.
type Chain struct {
	Clauses []Clause

	// Default is the return statement following the chain, or nil.
	Default *ast.ReturnStmt
}

// Collect returns all chains of at least minClauses clauses in body, in source order.
// info may be nil, then every call in a condition counts as a side effect.
func Collect(info *types.Info, body *ast.BlockStmt, minClauses int) []Chain {
	if body == nil {
		return nil
	}

	var (
		chains []Chain
		run    []Clause
	)

	flush := func(next ast.Stmt) {
		if len(run) >= minClauses && len(run) > 0 {
			def, _ := next.(*ast.ReturnStmt)
			chains = append(chains, Chain{Clauses: run, Default: def})
		}

		run = nil
	}

	for _, stmt := range body.List {
		ifStmt, ok := stmt.(*ast.IfStmt)
		if !ok || !IsGuard(info, ifStmt) {
			flush(stmt)

			continue
		}

		run = append(run, Clause{If: ifStmt, Repeats: repeats(info, run, ifStmt)})
	}

	flush(nil)

	return chains
}

// IsGuard reports whether stmt is a guard clause.
// Without type information only return statements terminate a clause.
func IsGuard(info *types.Info, stmt *ast.IfStmt) bool {
	if stmt.Else != nil || len(stmt.Body.List) == 0 {
		return false
	}

	switch last := stmt.Body.List[len(stmt.Body.List)-1].(type) {
	case *ast.ReturnStmt:
		return true

	case *ast.ExprStmt:
		return info != nil && noreturn.Stmt(info, last)

	default:
		return false
	}
}

// repeats finds an earlier clause with the same condition.
// Clauses with an init statement or a condition that may have side effects never repeat.
// An init statement may assign variables, so only clauses after the last one with an
// init statement are compared.
func repeats(info *types.Info, run []Clause, stmt *ast.IfStmt) int {
	if stmt.Init != nil || !stable(info, stmt.Cond) {
		return -1
	}

	start := 0

	for i, c := range run {
		if c.If.Init != nil {
			start = i + 1
		}
	}

	cond := types.ExprString(stmt.Cond)

	for i := start; i < len(run); i++ {
		if types.ExprString(run[i].If.Cond) == cond {
			return i
		}
	}

	return -1
}

// stable reports whether expr contains no function calls or channel receives.
// Type conversions are stable.
func stable(info *types.Info, expr ast.Expr) bool {
	ok := true

	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CallExpr:
			if info == nil || !info.Types[n.Fun].IsType() {
				ok = false
			}

		case *ast.UnaryExpr:
			if n.Op == token.ARROW {
				ok = false
			}

		case *ast.FuncLit:
			return false
		}

		return ok
	})

	return ok
}
