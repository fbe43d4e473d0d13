package sorting

import "cmp"

// Bubble sorts elems in place by repeatedly swapping adjacent
// out-of-order pairs. A pass with no swaps terminates the sort early, so
// already-sorted input costs a single pass.
//
// Stable. Complexity: Time O(n²) worst, O(n) best; Space O(1).
func Bubble[T cmp.Ordered](elems []T) {
	n := len(elems)
	for swapped := true; swapped && n > 1; n-- {
		swapped = false
		for j := 1; j < n; j++ {
			if elems[j-1] > elems[j] {
				elems[j-1], elems[j] = elems[j], elems[j-1]
				swapped = true
			}
		}
	}
}

// Quick sorts elems in place using quicksort with the first element of
// each range as the pivot, the partition scheme of the course.
//
// Unstable. Complexity: Time O(n·log n) average, O(n²) on sorted input
// with this pivot choice; Space O(log n) recursion.
func Quick[T cmp.Ordered](elems []T) {
	quick(elems, 0, len(elems)-1)
}

func quick[T cmp.Ordered](elems []T, low, high int) {
	if low >= high {
		return
	}
	p := partition(elems, low, high)
	quick(elems, low, p-1)
	quick(elems, p+1, high)
}

// partition places elems[low] (the pivot) at its final position within
// elems[low:high+1] and returns that position. Scans alternate from the
// high end and the low end, moving elements across the hole left by the
// pivot.
func partition[T cmp.Ordered](elems []T, low, high int) int {
	pivot := elems[low]
	for low < high {
		for low < high && elems[high] >= pivot {
			high--
		}
		elems[low] = elems[high]
		for low < high && elems[low] <= pivot {
			low++
		}
		elems[high] = elems[low]
	}
	elems[low] = pivot

	return low
}
