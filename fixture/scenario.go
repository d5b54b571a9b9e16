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

package fixture

import (
	"log/slog"
	"strconv"
)

// Scenario is one literal call of a fixture together with its expected outcome.
type Scenario struct {
	// Name identifies the scenario, e.g. "basic/admin".
	Name string

	// Message is printed when the scenario passes.
	Message string

	// Attrs describe the call arguments for logging.
	Attrs []slog.Attr

	call func() string
	want string
}

// Verdict is the outcome of [Scenario.Check].
type Verdict struct {
	Name    string
	Message string
	Got     string
	Want    string
	Passed  bool
}

// Check runs the scenario and compares the outcome with the expectation.
func (s Scenario) Check() Verdict {
	got := s.call()

	return Verdict{
		Name:    s.Name,
		Message: s.Message,
		Got:     got,
		Want:    s.want,
		Passed:  got == s.want,
	}
}

// LogValue implements [slog.LogValuer].
func (s Scenario) LogValue() slog.Value {
	return slog.GroupValue(s.Attrs...)
}

// unterminated is the 24 character buffer passed where a credential does not matter.
const unterminated = "8*3+1 ch" + "ars of s" + "tring..."

// LoopSeed is the starting value of the loop scenario.
const LoopSeed int32 = 0xc0ff

// Scenarios returns the literal scenarios in harness order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:    "basic/admin",
			Message: "admin pass accepted",
			Attrs:   basicAttrs(2345, 'x', unterminated, AdminPassword),
			call: func() string {
				return Evaluate(2345, 'x', unterminated, AdminPassword).String()
			},
			want: Result{Status: StatusCredential2, Output: OutputCredential2, Clause: Credential2}.String(),
		},
		{
			Name:    "basic/normal",
			Message: "normal pass accepted",
			Attrs:   basicAttrs(84739, 'z', Password, unterminated),
			call: func() string {
				return Evaluate(84739, 'z', Password, unterminated).String()
			},
			want: Result{Status: StatusCredential1, Output: OutputCredential1, Clause: Credential1}.String(),
		},
		{
			Name:    "basic/equal",
			Message: "asdfqwer",
			Attrs:   basicAttrs(72, 72, "asdf", "qwer"),
			call: func() string {
				return Evaluate(72, 72, "asdf", "qwer").String()
			},
			want: Result{Status: StatusEquality, Output: OutputEquality, Clause: Equality}.String(),
		},
		{
			Name:    "extended/default",
			Message: "default case",
			Attrs: append(basicAttrs(72, 71, "asdf", "qwer"),
				slog.Int("c", 2847), slog.Uint64("d", 9308), slog.Int("e", 12345)),
			call: func() string {
				return EvaluateExtended(72, 71, 2847, 9308, 12345, "asdf", "qwer").String()
			},
			want: Result{Status: StatusExtendedDefault, Output: OutputNoMatch, Clause: Default}.String(),
		},
		{
			Name:    "loop",
			Message: "n = " + strconv.Itoa(int(loopWant)),
			Attrs:   []slog.Attr{slog.Int("n", int(LoopSeed))},
			call: func() string {
				return strconv.Itoa(int(Loop(LoopSeed)))
			},
			want: strconv.Itoa(int(loopWant)),
		},
	}
}

// loopWant is Loop(LoopSeed), bit pattern 0x8c0824ff.
const loopWant int32 = -1945623297

func basicAttrs(a int32, b int8, cred1, cred2 string) []slog.Attr {
	return []slog.Attr{
		slog.Int("a", int(a)),
		slog.Int("b", int(b)),
		slog.String("cred1", cred1),
		slog.String("cred2", cred2),
	}
}
