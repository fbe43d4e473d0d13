// Package search provides search tables over ordered keys: sequential
// and binary lookup on slices, a binary search tree, a height-balanced
// AVL tree and a read-only multiway B-tree node.
//
// # What this package offers
//
//   - Sequential: O(n) scan of an arbitrary slice.
//   - Binary: O(log n) lookup on a sorted slice; overflow-safe midpoint.
//   - BST: unbalanced binary search tree with Insert, Search, Delete
//     and sorted InOrder traversal. Worst case degenerates to O(n).
//   - AVL: self-balancing search tree. Insert rebalances with the four
//     classic rotations (LL, RR, LR, RL) so every node's balance
//     factor stays within [-1, 1]; all operations are O(log n).
//   - BTree: lookup over a prebuilt multiway node structure, the way
//     a disk-resident index is probed.
//
// Keys are constrained by cmp.Ordered; trees carry an associated value
// per key.
//
// # Quick start
//
//	t := search.NewBST[int, string]()
//	t.Insert(45, "a")
//	t.Insert(24, "b")
//	v, ok := t.Search(24)
package search
