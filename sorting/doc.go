// Package sorting implements the internal sorting algorithms of the
// course: insertion, shell, bubble, quick, selection, heap, merge and LSD
// radix sort.
//
// All comparison sorts are generic over cmp.Ordered and sort the slice in
// place, ascending. Every algorithm satisfies the same contract: the
// output is a permutation of the input in non-decreasing order.
//
// Complexity summary (n = len(elems)):
//
//	Insertion  Time O(n²)        Space O(1)   stable
//	Shell      Time ~O(n^1.3)    Space O(1)   unstable
//	Bubble     Time O(n²)        Space O(1)   stable, early exit
//	Quick      Time O(n·log n)*  Space O(log n) unstable (*O(n²) worst)
//	Selection  Time O(n²)        Space O(1)   unstable
//	Heap       Time O(n·log n)   Space O(1)   unstable
//	Merge      Time O(n·log n)   Space O(n)   stable
//	RadixLSD   Time O(d·(n+r))   Space O(n+r) stable, non-negative ints
//
// None of the functions allocate unless noted, and all of them are no-ops
// on slices of length < 2.
package sorting
