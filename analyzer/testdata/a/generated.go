// Code generated by hand for tests. DO NOT EDIT.

package a

func generatedChain(x int) int {
	if x == 1 {
		return 1
	}

	if x == 2 {
		return 2
	}

	return 0
}
