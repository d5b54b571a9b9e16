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


package config

// AnalyzerFlags selects the checks of the guardchain analyzer.
type AnalyzerFlags uint8

const (
	// ChainAnalyzer enables detection of ordered guard chains and repeated guard clauses.
	ChainAnalyzer AnalyzerFlags = 1 << iota

	// SignExtendAnalyzer enables detection of signed to wider unsigned conversions.
	SignExtendAnalyzer

	// WrapAnalyzer enables detection of shifted accumulations inside loops.
	WrapAnalyzer
)

// Config holds behavioral flags.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Analyzers is the set of enabled checks.
type Analyzers = BitMask[AnalyzerFlags]

// Behavior is the set of behavioral flags.
type Behavior = BitMask[Config]

// DefaultAnalyzers enables all checks.
func DefaultAnalyzers() Analyzers {
	return NewBitMask(ChainAnalyzer, SignExtendAnalyzer, WrapAnalyzer)
}

// DefaultBehavior excludes generated files.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}

// DefaultMinClauses is the smallest number of guard clauses reported as a chain.
const DefaultMinClauses = 2
