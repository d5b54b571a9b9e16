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


// Package report turns collected findings into analysis diagnostics.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/guardchain/internal/arith"
	"fillmore-labs.com/guardchain/internal/astutil"
	"fillmore-labs.com/guardchain/internal/chain"
)

// Diagnostics holds the findings for one function declaration.
type Diagnostics struct {
	CurrentFile   astutil.CurrentFile
	Func          *ast.FuncDecl
	Chains        []chain.Chain
	Conversions   []arith.Conversion
	Accumulations []arith.Accumulation
}

// ProcessDiagnostics reports all findings, skipping those on lines with a nolint comment.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, diagnostics Diagnostics) {
	defer trace.StartRegion(ctx, "Report").End()

	reportChains(p, diagnostics.CurrentFile, diagnostics.Func.Name.Name, diagnostics.Chains)
	reportConversions(p, diagnostics.CurrentFile, diagnostics.Conversions)
	reportAccumulations(p, diagnostics.CurrentFile, diagnostics.Accumulations)
}

func reportChains(p *analysis.Pass, currentFile astutil.CurrentFile, funcName string, chains []chain.Chain) {
	for _, ch := range chains {
		first := ch.Clauses[0].If
		if currentFile.NoLintComment(first.Pos()) {
			continue
		}

		format := "Function '%s' has an ordered guard chain of %d clauses (gc:chain)"
		if len(ch.Clauses) == 1 {
			format = "Function '%s' has an ordered guard chain of %d clause (gc:chain)"
		}

		diagnostic := analysis.Diagnostic{
			Pos:      first.Pos(),
			End:      first.Cond.End(),
			Category: "chain",
			Message:  fmt.Sprintf(format, funcName, len(ch.Clauses)),
		}

		if ch.Default != nil {
			diagnostic.Related = []analysis.RelatedInformation{{
				Pos:     ch.Default.Pos(),
				End:     ch.Default.End(),
				Message: "Default when no clause matches",
			}}
		}

		p.Report(diagnostic)

		for i, cl := range ch.Clauses {
			if cl.Repeats < 0 || currentFile.NoLintComment(cl.If.Pos()) {
				continue
			}

			earlier := ch.Clauses[cl.Repeats].If

			p.Report(analysis.Diagnostic{
				Pos:      cl.If.Pos(),
				End:      cl.If.Cond.End(),
				Category: "chain",
				Message:  fmt.Sprintf("Guard clause %d repeats clause %d and never fires (gc:dup)", i+1, cl.Repeats+1),
				Related:  []analysis.RelatedInformation{{Pos: earlier.Pos(), End: earlier.Cond.End(), Message: "Shadowed by this clause"}},
			})
		}
	}
}

func reportConversions(p *analysis.Pass, currentFile astutil.CurrentFile, conversions []arith.Conversion) {
	for _, conv := range conversions {
		if currentFile.NoLintComment(conv.Call.Pos()) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      conv.Call.Pos(),
			End:      conv.Call.End(),
			Category: "sext",
			Message:  fmt.Sprintf("Conversion of %s to %s sign-extends (gc:sext)", conv.From.Name(), conv.To.Name()),
		})
	}
}

func reportAccumulations(p *analysis.Pass, currentFile astutil.CurrentFile, accumulations []arith.Accumulation) {
	for _, acc := range accumulations {
		if currentFile.NoLintComment(acc.Assign.Pos()) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      acc.Assign.Pos(),
			End:      acc.Assign.End(),
			Category: "wrap",
			Message:  fmt.Sprintf("Shifted accumulation into '%s' wraps modulo 2^%d (gc:wrap)", types.ExprString(acc.Target()), acc.Bits),
		})
	}
}
