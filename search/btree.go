package search

import "cmp"

// BTreeNode is one node of a multiway search tree: Keys in ascending
// order and len(Keys)+1 Children for an internal node, nil Children
// for a leaf. The structure is built by the caller and probed with
// Search, the way a disk-resident index is read.
type BTreeNode[K cmp.Ordered] struct {
	Keys     []K
	Children []*BTreeNode[K]
}

// Leaf reports whether the node has no children.
func (n *BTreeNode[K]) Leaf() bool { return len(n.Children) == 0 }

// Search probes the subtree rooted at n for key. Within a node the
// keys are scanned with binary search; on a miss the probe descends
// into the child between the two enclosing keys.
//
// Complexity: Time O(log_m n · log m), m the branching factor.
func (n *BTreeNode[K]) Search(key K) bool {
	for n != nil {
		// i is the first key >= key.
		low, high := 0, len(n.Keys)
		for low < high {
			mid := low + (high-low)/2
			if n.Keys[mid] < key {
				low = mid + 1
			} else {
				high = mid
			}
		}
		if low < len(n.Keys) && n.Keys[low] == key {
			return true
		}
		if n.Leaf() {
			return false
		}
		n = n.Children[low]
	}

	return false
}
