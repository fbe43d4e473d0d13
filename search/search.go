package search

import "cmp"

// Sequential scans elems front to back and returns the index of the
// first element equal to key, or -1.
//
// Complexity: Time O(n), Space O(1).
func Sequential[T comparable](elems []T, key T) int {
	for i, e := range elems {
		if e == key {
			return i
		}
	}

	return -1
}

// Binary locates key in a sorted slice and returns its index, or -1.
// elems must be in ascending order.
//
// Complexity: Time O(log n), Space O(1).
func Binary[T cmp.Ordered](elems []T, key T) int {
	low, high := 0, len(elems)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case elems[mid] == key:
			return mid
		case elems[mid] < key:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return -1
}
