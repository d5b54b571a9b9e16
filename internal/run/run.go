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


// Package run drives the guardchain checks over the files of an analysis pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/guardchain/internal/arith"
	"fillmore-labs.com/guardchain/internal/astutil"
	"fillmore-labs.com/guardchain/internal/chain"
	"fillmore-labs.com/guardchain/internal/config"
	"fillmore-labs.com/guardchain/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the guardchain pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("guardchain: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Analyzers.Empty() {
		return nil, nil
	}

	ctx, task := trace.NewTask(context.Background(), "GuardChain")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Loop over all files
	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			astutil.InternalError(p, f.Node(), "Unexpected root node %T", f.Node())

			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if astutil.DocHasNoLint(fun.Doc) {
				continue
			}

			body := c.ChildAt(edge.FuncDecl_Body, -1)

			report.ProcessDiagnostics(ctx, p, r.collect(ctx, p, currentFile, fun, body))
		}
	}

	return nil, nil
}

func (r *Options) collect(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, fun *ast.FuncDecl, body inspector.Cursor) report.Diagnostics {
	defer trace.StartRegion(ctx, "Collect").End()

	diagnostics := report.Diagnostics{CurrentFile: currentFile, Func: fun}

	if r.Analyzers.Enabled(config.ChainAnalyzer) {
		diagnostics.Chains = chain.Collect(p.TypesInfo, fun.Body, r.MinClauses)
	}

	if r.Analyzers.Enabled(config.SignExtendAnalyzer) {
		diagnostics.Conversions = slices.Collect(arith.SignExtensions(p.TypesInfo, p.TypesSizes, body))
	}

	if r.Analyzers.Enabled(config.WrapAnalyzer) {
		diagnostics.Accumulations = slices.Collect(arith.ShiftAccumulations(p.TypesInfo, p.TypesSizes, body))
	}

	return diagnostics
}
