package sorting

import "cmp"

// Insertion sorts elems in place using straight insertion: each element is
// inserted into the already-sorted prefix to its left.
//
// Stable. Complexity: Time O(n²) worst, O(n) on sorted input; Space O(1).
func Insertion[T cmp.Ordered](elems []T) {
	for i := 1; i < len(elems); i++ {
		cur := elems[i]
		j := i - 1
		// Shift greater elements of the sorted prefix one slot right.
		for j >= 0 && elems[j] > cur {
			elems[j+1] = elems[j]
			j--
		}
		elems[j+1] = cur
	}
}

// Shell sorts elems in place using Shell's method with the increment
// sequence n/2, n/4, …, 1. Each pass runs insertion sort on the
// interleaved subsequences at the current increment.
//
// Unstable. Complexity: Time ~O(n^1.3) empirically; Space O(1).
func Shell[T cmp.Ordered](elems []T) {
	for inc := len(elems) / 2; inc >= 1; inc /= 2 {
		shellInsert(elems, inc)
	}
}

// ShellWith sorts elems using a caller-supplied decreasing increment
// sequence. The last increment must be 1 for the result to be sorted;
// this mirrors the course interface where the sequence is an input.
func ShellWith[T cmp.Ordered](elems []T, incs []int) {
	for _, inc := range incs {
		if inc < 1 {
			continue
		}
		shellInsert(elems, inc)
	}
}

// shellInsert is one insertion pass over the subsequences with stride inc.
func shellInsert[T cmp.Ordered](elems []T, inc int) {
	for i := inc; i < len(elems); i++ {
		cur := elems[i]
		j := i - inc
		for j >= 0 && elems[j] > cur {
			elems[j+inc] = elems[j]
			j -= inc
		}
		elems[j+inc] = cur
	}
}
