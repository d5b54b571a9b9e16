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


package fixture_test

import (
	"log/slog"
	"strings"
	"testing"

	. "fillmore-labs.com/guardchain/fixture"
)

func TestScenarios(t *testing.T) {
	t.Parallel()

	wantNames := []string{"basic/admin", "basic/normal", "basic/equal", "extended/default", "loop"}

	scenarios := Scenarios()
	if len(scenarios) != len(wantNames) {
		t.Fatalf("Got %d scenarios, want %d", len(scenarios), len(wantNames))
	}

	for i, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			t.Parallel()

			if s.Name != wantNames[i] {
				t.Errorf("Scenario %d name = %q, want %q", i, s.Name, wantNames[i])
			}

			v := s.Check()
			if !v.Passed {
				t.Errorf("Scenario %s failed: got %s, want %s", v.Name, v.Got, v.Want)
			}

			if v.Message == "" {
				t.Errorf("Scenario %s has no message", v.Name)
			}
		})
	}
}

func TestScenarioLogValue(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))

	for _, s := range Scenarios() {
		if s.Name == "extended/default" {
			logger.Info("scenario", "args", s)
		}
	}

	const want = "level=INFO msg=scenario args.a=72 args.b=71 args.cred1=asdf args.cred2=qwer args.c=2847 args.d=9308 args.e=12345\n"

	if got := out.String(); got != want {
		t.Errorf("Logged %q, want %q", got, want)
	}
}
