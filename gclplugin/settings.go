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


package gclplugin

import guardchain "fillmore-labs.com/guardchain/analyzer"

// Settings represents the configuration options for a guardchain run.
type Settings struct {
	// Chain enables guard chain checks.
	Chain *bool `json:"chain,omitzero"`
	// SignExtend enables sign extension checks.
	SignExtend *bool `json:"sext,omitzero"`
	// Wrap enables wrapping accumulation checks.
	Wrap *bool `json:"wrap,omitzero"`
	// MinClauses sets the smallest guard chain that is reported.
	MinClauses *int `json:"min-clauses,omitzero"`
}

// Options converts the settings to a list of [guardchain.Option].
func (s Settings) Options() []guardchain.Option {
	var opts []guardchain.Option

	opts = appendOption(opts, s.Chain, guardchain.WithChain)
	opts = appendOption(opts, s.SignExtend, guardchain.WithSignExtend)
	opts = appendOption(opts, s.Wrap, guardchain.WithWrap)
	opts = appendOption(opts, s.MinClauses, guardchain.WithMinClauses)

	return opts
}

func appendOption[T any](opts []guardchain.Option, value *T, constructor func(T) guardchain.Option) []guardchain.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
