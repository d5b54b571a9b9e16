// Code generated by hand for tests. DO NOT EDIT.

package generated

func generatedChain(x int) int {
	if x == 1 { // want "Function 'generatedChain' has an ordered guard chain of 2 clauses"
		return 1
	}

	if x == 2 {
		return 2
	}

	return 0
}
