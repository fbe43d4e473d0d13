package sorting

import "cmp"

// Merge sorts elems in place using top-down merge sort with a single
// auxiliary buffer shared by every merge step.
//
// Stable. Complexity: Time O(n·log n) always; Space O(n).
func Merge[T cmp.Ordered](elems []T) {
	if len(elems) < 2 {
		return
	}
	tmp := make([]T, len(elems))
	mergeSort(elems, tmp, 0, len(elems)-1)
}

// mergeSort recursively sorts elems[low:high+1].
func mergeSort[T cmp.Ordered](elems, tmp []T, low, high int) {
	if low >= high {
		return
	}
	mid := low + (high-low)/2
	mergeSort(elems, tmp, low, mid)
	mergeSort(elems, tmp, mid+1, high)
	merge(elems, tmp, low, mid, high)
}

// merge combines the sorted runs elems[low:mid+1] and elems[mid+1:high+1]
// through tmp. Ties take from the left run, which is what makes the sort
// stable.
func merge[T cmp.Ordered](elems, tmp []T, low, mid, high int) {
	i, j, k := low, mid+1, low
	for i <= mid && j <= high {
		if elems[i] <= elems[j] {
			tmp[k] = elems[i]
			i++
		} else {
			tmp[k] = elems[j]
			j++
		}
		k++
	}
	for i <= mid {
		tmp[k] = elems[i]
		i++
		k++
	}
	for j <= high {
		tmp[k] = elems[j]
		j++
		k++
	}
	copy(elems[low:high+1], tmp[low:high+1])
}
