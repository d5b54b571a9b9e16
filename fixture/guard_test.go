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
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/guardchain/fixture"
)

const buf = "8*3+1 chars of string..."

var (
	credential1 = Result{Status: StatusCredential1, Output: OutputCredential1, Clause: Credential1}
	credential2 = Result{Status: StatusCredential2, Output: OutputCredential2, Clause: Credential2}
	equality    = Result{Status: StatusEquality, Output: OutputEquality, Clause: Equality}
	overflow    = Result{Status: StatusOverflow, Output: OutputOverflow, Clause: Overflow}
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		a            int32
		b            int8
		cred1, cred2 string
		want         Result
	}{
		{"admin", 2345, 'x', buf, "secretadminpass", credential2},
		{"normal", 84739, 'z', "c00lpass1337", buf, credential1},
		{"equal", 72, 72, "asdf", "qwer", equality},
		{"both_credentials", 72, 72, "c00lpass1337", "secretadminpass", credential1},
		{"admin_over_equal", 72, 72, "asdf", "secretadminpass", credential2},
		{"negative_equal", -1, -1, "", "", equality},
		{"min_equal", -128, -128, "", "", equality},
		{"no_truncation", 256 + 72, 72, "", "", Result{Status: 256 + 72, Output: OutputNoMatch, Clause: Default}},
		{"case_sensitive", 1, 2, "C00LPASS1337", "SecretAdminPass", Result{Status: 1, Output: OutputNoMatch, Clause: Default}},
		{"prefix", 84739, 'z', "c00lpass1337\x00", "secretadminpass ", Result{Status: 84739, Output: OutputNoMatch, Clause: Default}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Evaluate(tt.a, tt.b, tt.cred1, tt.cred2)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluateExtended(t *testing.T) {
	t.Parallel()

	extendedDefault := Result{Status: StatusExtendedDefault, Output: OutputNoMatch, Clause: Default}

	tests := []struct {
		name         string
		a            int32
		b            int8
		c            int16
		d            uint32
		e            int32
		cred1, cred2 string
		want         Result
	}{
		{"literal_numerics", 2345, 'x', 2847, 9308, 12345, "asdf", "qwer", extendedDefault},
		{"admin", 2345, 'x', 2847, 9308, 12345, buf, "secretadminpass", credential2},
		{"normal", 84739, 'z', 0, OverflowTarget, 0, "c00lpass1337", buf, credential1},
		{"equal_over_overflow", 72, 72, 0, OverflowTarget, 0, "asdf", "qwer", equality},
		{"exact_target", 1, 2, 0, 0x98989898, 0, "", "", overflow},
		{"split_target", 1, 2, 0x1898, 0x98988000, 0, "", "", overflow},
		{"sign_extended_c", 1, 2, -1, 0x98989899, 0, "", "", overflow},
		{"negative_e", 1, 2, 0, 0x98989898 + 5, -5, "", "", overflow},
		{"wraps_past_zero", 1, 2, 0x7fff, 0xffffffff, -1734862694, "", "", overflow},
		{"default_not_a", 84739, 'z', 0, 0, 0, "", "", extendedDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EvaluateExtended(tt.a, tt.b, tt.c, tt.d, tt.e, tt.cred1, tt.cred2)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("EvaluateExtended() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStatusBitPatterns(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		status int32
		want   uint32
	}{
		{"credential1", StatusCredential1, 0xc001f00d},
		{"credential2", StatusCredential2, 0xa1f},
		{"equality", StatusEquality, 0xc0bb13},
		{"overflow", StatusOverflow, 0x8000},
	}

	for _, tt := range tests {
		if got := uint32(tt.status); got != tt.want {
			t.Errorf("%s status = %#x, want %#x", tt.name, got, tt.want)
		}
	}
}

func TestResultString(t *testing.T) {
	t.Parallel()

	const want = "status=0xc001f00d output=1234 clause=credential1"

	if got := credential1.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestClauseString(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		clause Clause
		want   string
	}{
		{Credential1, "credential1"},
		{Credential2, "credential2"},
		{Equality, "equality"},
		{Overflow, "overflow"},
		{Default, "default"},
		{Default + 1, "Clause(5)"},
	}

	for _, tt := range tests {
		if got := tt.clause.String(); got != tt.want {
			t.Errorf("Clause(%d).String() = %q, want %q", uint8(tt.clause), got, tt.want)
		}
	}

	if Default.Matched() {
		t.Error("Default.Matched() = true, want false")
	}
}
