package search

import "cmp"

// avlNode is one node of a height-balanced search tree. height is the
// node's subtree height, 1 for a leaf.
type avlNode[K cmp.Ordered, V any] struct {
	key         K
	val         V
	height      int
	left, right *avlNode[K, V]
}

// AVL is a height-balanced binary search tree. Every node's balance
// factor, height(left) minus height(right), stays within [-1, 1], so
// Search and Insert are O(log n) in the worst case.
// Construct with NewAVL.
type AVL[K cmp.Ordered, V any] struct {
	root *avlNode[K, V]
	n    int
}

// NewAVL returns an empty AVL tree.
func NewAVL[K cmp.Ordered, V any]() *AVL[K, V] {
	return &AVL[K, V]{}
}

// Len reports the number of keys in the tree.
func (t *AVL[K, V]) Len() int { return t.n }

// Height reports the tree height; 0 for an empty tree.
func (t *AVL[K, V]) Height() int { return height(t.root) }

func height[K cmp.Ordered, V any](n *avlNode[K, V]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func update[K cmp.Ordered, V any](n *avlNode[K, V]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func balance[K cmp.Ordered, V any](n *avlNode[K, V]) int {
	return height(n.left) - height(n.right)
}

// rotateRight handles the LL shape: the left child becomes the root of
// the subtree.
func rotateRight[K cmp.Ordered, V any](n *avlNode[K, V]) *avlNode[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	update(n)
	update(l)

	return l
}

// rotateLeft handles the RR shape symmetrically.
func rotateLeft[K cmp.Ordered, V any](n *avlNode[K, V]) *avlNode[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	update(n)
	update(r)

	return r
}

// rebalance restores the balance invariant at n after an insert below
// it, applying one of the four rotation cases.
func rebalance[K cmp.Ordered, V any](n *avlNode[K, V]) *avlNode[K, V] {
	update(n)
	switch b := balance(n); {
	case b > 1 && balance(n.left) >= 0: // LL
		return rotateRight(n)
	case b > 1: // LR
		n.left = rotateLeft(n.left)

		return rotateRight(n)
	case b < -1 && balance(n.right) <= 0: // RR
		return rotateLeft(n)
	case b < -1: // RL
		n.right = rotateRight(n.right)

		return rotateLeft(n)
	}

	return n
}

// Insert adds key with val, replacing the value of an existing key,
// and rebalances along the insertion path.
//
// Complexity: Time O(log n).
func (t *AVL[K, V]) Insert(key K, val V) {
	t.root = t.insert(t.root, key, val)
}

func (t *AVL[K, V]) insert(n *avlNode[K, V], key K, val V) *avlNode[K, V] {
	if n == nil {
		t.n++

		return &avlNode[K, V]{key: key, val: val, height: 1}
	}
	switch {
	case key < n.key:
		n.left = t.insert(n.left, key, val)
	case key > n.key:
		n.right = t.insert(n.right, key, val)
	default:
		n.val = val

		return n
	}

	return rebalance(n)
}

// Search returns the value stored under key.
//
// Complexity: Time O(log n).
func (t *AVL[K, V]) Search(key K) (V, bool) {
	cur := t.root
	for cur != nil {
		switch {
		case key < cur.key:
			cur = cur.left
		case key > cur.key:
			cur = cur.right
		default:
			return cur.val, true
		}
	}
	var zero V

	return zero, false
}

// InOrder visits every key/value pair in ascending key order.
func (t *AVL[K, V]) InOrder(visit func(K, V)) {
	var walk func(n *avlNode[K, V])
	walk = func(n *avlNode[K, V]) {
		if n == nil {
			return
		}
		walk(n.left)
		visit(n.key, n.val)
		walk(n.right)
	}
	walk(t.root)
}

// Keys returns all keys in ascending order.
func (t *AVL[K, V]) Keys() []K {
	out := make([]K, 0, t.n)
	t.InOrder(func(k K, _ V) { out = append(out, k) })

	return out
}
