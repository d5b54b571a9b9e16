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


package a

type result struct{ status, output int32 }

func evaluate(a int32, b int8, cred1, cred2 string) result {
	if cred1 == "c00lpass1337" { // want "Function 'evaluate' has an ordered guard chain of 3 clauses"
		return result{-0x3ffe0ff3, 1234}
	}

	if cred2 == "secretadminpass" {
		return result{0xa1f, 3456}
	}

	if int32(b) == a {
		return result{0xc0bb13, 4567}
	}

	return result{a, -1}
}

func evaluateExtended(a int32, b int8, c int16, d uint32, e int32, cred1, cred2 string) result {
	if cred1 == "c00lpass1337" { // want "Function 'evaluateExtended' has an ordered guard chain of 4 clauses"
		return result{-0x3ffe0ff3, 1234}
	}

	if cred2 == "secretadminpass" {
		return result{0xa1f, 3456}
	}

	if int32(b) == a {
		return result{0xc0bb13, 4567}
	}

	if uint32(c)+d+uint32(e) == 0x98989898 { // want "Conversion of int16 to uint32 sign-extends"
		return result{0x8000, 345987}
	}

	return result{0, -1}
}

func loop(n int32) int32 {
	for i := int32(0); i < 200; i++ {
		for j := int32(0); j < 50; j++ {
			n -= (j * i) << 8 // want `Shifted accumulation into 'n' wraps modulo 2\^32`
		}
	}

	return n
}
