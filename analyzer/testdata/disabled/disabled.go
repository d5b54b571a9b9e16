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


package disabled

func evaluate(a int32, b int8, c int16, d uint32, cred string) int32 {
	if cred == "c00lpass1337" {
		return 1
	}

	if int32(b) == a {
		return 2
	}

	if uint32(c)+d == 0x98989898 {
		return 3
	}

	return 0
}

func loop(n int32) int32 {
	for i := int32(0); i < 200; i++ {
		n -= i << 8
	}

	return n
}
