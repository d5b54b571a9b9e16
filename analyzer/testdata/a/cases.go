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

func repeated(x int, s string) int {
	if x == 1 { // want "ordered guard chain of 3 clauses"
		return 1
	}

	if s != "" && x > 2 {
		return 2
	}

	if x == 1 { // want "Guard clause 3 repeats clause 1 and never fires"
		return 3
	}

	return 0
}

func initAssigns(x int) int {
	if x == 1 { // want "ordered guard chain of 4 clauses"
		return 1
	}

	if x = x + 1; x == 5 {
		return 2
	}

	if x == 1 {
		return 3
	}

	if x == 1 { // want "Guard clause 4 repeats clause 3 and never fires"
		return 4
	}

	return 0
}

func next() int { return 0 }

func sideEffects() int {
	if next() == 1 { // want "ordered guard chain of 2 clauses"
		return 1
	}

	if next() == 1 {
		return 2
	}

	return 0
}

func single(x int) int {
	if x == 1 {
		return 1
	}

	return 0
}

func elseBranch(x int) int {
	if x == 1 {
		return 1
	}

	if x == 2 {
		return 2
	} else {
		x++
	}

	return x
}

func narrowing(a int64, b int8, c uint8) (uint32, int64, uint64) {
	return uint32(a), int64(b), uint64(c)
}

func widening(a int8) uint16 {
	return uint16(a) // want "Conversion of int8 to uint16 sign-extends"
}

func suppressed(a int8) uint16 {
	return uint16(a) //nolint:guardchain
}

//nolint:guardchain
func suppressedFunc(x int16) uint32 {
	if x == 1 {
		return 1
	}

	if x == 2 {
		return uint32(x)
	}

	return 0
}

func noLoop(n, i uint16) uint16 {
	n -= i << 2

	return n
}

func platformWidth(n int, xs []uintptr) (int, uintptr) {
	var p uintptr
	for i := range xs {
		n -= i << 8
		p += xs[i] << 1
	}

	return n, p
}

func rangeLoop(xs []uint8) (s uint16) {
	for _, x := range xs {
		s += uint16(x) << 4 // want `Shifted accumulation into 's' wraps modulo 2\^16`
	}

	return s
}

func closure(n int32) int32 {
	for i := range int32(3) {
		add := func() { n += i << 1 }
		add()
	}

	return n
}

func validate(x int) int {
	if x < 0 { // want "Function 'validate' has an ordered guard chain of 2 clauses"
		panic("negative")
	}

	if x > 100 {
		return 100
	}

	return x
}
