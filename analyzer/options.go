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


package analyzer

import (
	"log/slog"

	"fillmore-labs.com/guardchain/internal/config"
	"fillmore-labs.com/guardchain/internal/run"
)

// Option configures specific behavior of a [New] guardchain analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMinClauses is an [Option] to configure the smallest guard chain that is reported.
func WithMinClauses(minClauses int) Option { return minClausesOption{minClauses: minClauses} }

type minClausesOption struct{ minClauses int }

func (o minClausesOption) apply(r *run.Options) {
	r.MinClauses = o.minClauses
}

func (o minClausesOption) LogAttr() slog.Attr {
	return slog.Int("min-clauses", o.minClauses)
}

// WithChain is an [Option] to configure whether guard chain checks are enabled.
func WithChain(chain bool) Option { return chainOption{chain: chain} }

type chainOption struct{ chain bool }

func (o chainOption) apply(r *run.Options) {
	r.Analyzers.Set(config.ChainAnalyzer, o.chain)
}

func (o chainOption) LogAttr() slog.Attr {
	return slog.Bool("chain", o.chain)
}

// WithSignExtend is an [Option] to configure whether sign extension checks are enabled.
func WithSignExtend(signExtend bool) Option { return signExtendOption{signExtend: signExtend} }

type signExtendOption struct{ signExtend bool }

func (o signExtendOption) apply(r *run.Options) {
	r.Analyzers.Set(config.SignExtendAnalyzer, o.signExtend)
}

func (o signExtendOption) LogAttr() slog.Attr {
	return slog.Bool("sext", o.signExtend)
}

// WithWrap is an [Option] to configure whether wrapping accumulation checks are enabled.
func WithWrap(wrap bool) Option { return wrapOption{wrap: wrap} }

type wrapOption struct{ wrap bool }

func (o wrapOption) apply(r *run.Options) {
	r.Analyzers.Set(config.WrapAnalyzer, o.wrap)
}

func (o wrapOption) LogAttr() slog.Attr {
	return slog.Bool("wrap", o.wrap)
}
