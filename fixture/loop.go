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

// Loop bounds and shift of [Loop].
const (
	LoopOuter = 200
	LoopInner = 50
	LoopShift = 8
)

// Loop subtracts (j*i)<<8 from n for every i in [0,200) and j in [0,50),
// i outer and j inner. Overflow wraps modulo 2^32.
func Loop(n int32) int32 {
	for i := int32(0); i < LoopOuter; i++ {
		for j := int32(0); j < LoopInner; j++ {
			n -= (j * i) << LoopShift
		}
	}

	return n
}
