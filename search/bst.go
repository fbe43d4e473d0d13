package search

import "cmp"

// bstNode is one node of an unbalanced binary search tree.
type bstNode[K cmp.Ordered, V any] struct {
	key         K
	val         V
	left, right *bstNode[K, V]
}

// BST is a binary search tree mapping ordered keys to values. It is
// not self-balancing; sorted insert order degenerates it into a list.
// The zero value is not usable; construct with NewBST.
type BST[K cmp.Ordered, V any] struct {
	root *bstNode[K, V]
	n    int
}

// NewBST returns an empty binary search tree.
func NewBST[K cmp.Ordered, V any]() *BST[K, V] {
	return &BST[K, V]{}
}

// Len reports the number of keys in the tree.
func (t *BST[K, V]) Len() int { return t.n }

// Insert adds key with val, replacing the value of an existing key.
//
// Complexity: Time O(h), h the tree height.
func (t *BST[K, V]) Insert(key K, val V) {
	p := &t.root
	for *p != nil {
		switch {
		case key < (*p).key:
			p = &(*p).left
		case key > (*p).key:
			p = &(*p).right
		default:
			(*p).val = val

			return
		}
	}
	*p = &bstNode[K, V]{key: key, val: val}
	t.n++
}

// Search returns the value stored under key.
//
// Complexity: Time O(h).
func (t *BST[K, V]) Search(key K) (V, bool) {
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

// Delete removes key and reports whether it was present. A node with
// two children is replaced by its in-order predecessor, the maximum of
// its left subtree.
//
// Complexity: Time O(h).
func (t *BST[K, V]) Delete(key K) bool {
	p := &t.root
	for *p != nil {
		switch {
		case key < (*p).key:
			p = &(*p).left
		case key > (*p).key:
			p = &(*p).right
		default:
			t.removeAt(p)
			t.n--

			return true
		}
	}

	return false
}

// removeAt unlinks the node *p using the three deletion cases.
func (t *BST[K, V]) removeAt(p **bstNode[K, V]) {
	n := *p
	switch {
	case n.left == nil:
		*p = n.right
	case n.right == nil:
		*p = n.left
	default:
		// Two children: splice in the in-order predecessor.
		pred := &n.left
		for (*pred).right != nil {
			pred = &(*pred).right
		}
		n.key, n.val = (*pred).key, (*pred).val
		*pred = (*pred).left
	}
}

// Min returns the smallest key in the tree.
func (t *BST[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var zk K
		var zv V

		return zk, zv, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.key, cur.val, true
}

// Max returns the largest key in the tree.
func (t *BST[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var zk K
		var zv V

		return zk, zv, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.key, cur.val, true
}

// InOrder visits every key/value pair in ascending key order.
func (t *BST[K, V]) InOrder(visit func(K, V)) {
	var walk func(n *bstNode[K, V])
	walk = func(n *bstNode[K, V]) {
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
func (t *BST[K, V]) Keys() []K {
	out := make([]K, 0, t.n)
	t.InOrder(func(k K, _ V) { out = append(out, k) })

	return out
}
