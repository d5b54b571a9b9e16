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


package run

import "fillmore-labs.com/guardchain/internal/config"

// Options configures a guardchain run.
type Options struct {
	// Analyzers represent the checks to be enabled.
	Analyzers config.Analyzers

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// MinClauses is the smallest number of consecutive guard clauses reported as a chain.
	MinClauses int
}

// DefaultOptions returns the default configuration: all checks enabled, generated files skipped.
func DefaultOptions() *Options {
	return &Options{
		Analyzers:  config.DefaultAnalyzers(),
		Behavior:   config.DefaultBehavior(),
		MinClauses: config.DefaultMinClauses,
	}
}
