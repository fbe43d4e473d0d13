package sorting

import "cmp"

// Selection sorts elems in place with simple selection: pass i finds the
// minimum of elems[i:] and swaps it into position i.
//
// Unstable. Complexity: Time O(n²) always; Space O(1).
func Selection[T cmp.Ordered](elems []T) {
	for i := 0; i < len(elems)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(elems); j++ {
			if elems[j] < elems[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			elems[i], elems[minIdx] = elems[minIdx], elems[i]
		}
	}
}

// Heap sorts elems in place: build a max-heap over the whole slice, then
// repeatedly swap the root with the last unsorted element and sift the new
// root down over the shrunk heap.
//
// Unstable. Complexity: Time O(n·log n) always; Space O(1).
func Heap[T cmp.Ordered](elems []T) {
	n := len(elems)
	// Build phase: sift down every internal node, last parent first.
	for start := n/2 - 1; start >= 0; start-- {
		siftDown(elems, start, n-1)
	}
	// Extraction phase: move the current maximum to the end of the heap.
	for end := n - 1; end > 0; end-- {
		elems[0], elems[end] = elems[end], elems[0]
		siftDown(elems, 0, end-1)
	}
}

// siftDown restores the max-heap property for the subtree rooted at start,
// considering only indices start..end.
func siftDown[T cmp.Ordered](elems []T, start, end int) {
	root := start
	for {
		child := 2*root + 1
		if child > end {
			return
		}
		// Pick the larger of the two children.
		if child+1 <= end && elems[child+1] > elems[child] {
			child++
		}
		if elems[root] >= elems[child] {
			return
		}
		elems[root], elems[child] = elems[child], elems[root]
		root = child
	}
}
