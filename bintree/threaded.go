package bintree

// ThreadedNode is a node of an inorder-threaded binary tree. When LTag
// is true, Left points at the inorder predecessor instead of a child;
// RTag likewise for the successor.
type ThreadedNode[T any] struct {
	Val   T
	Left  *ThreadedNode[T]
	Right *ThreadedNode[T]
	LTag  bool
	RTag  bool
}

// Threaded is an inorder-threaded copy of a binary tree with a head
// sentinel. The head's Left child is the root; the first and last
// inorder nodes thread back to the head, closing the walk into a loop.
type Threaded[T any] struct {
	head *ThreadedNode[T]
}

// NewThreaded copies tree and threads it inorder. The source tree is
// not modified. A nil tree yields an empty (but walkable) structure.
func NewThreaded[T any](root *Node[T]) *Threaded[T] {
	t := &Threaded[T]{head: &ThreadedNode[T]{}}
	t.head.Left = copyTree(root)
	t.head.RTag = true
	t.head.Right = t.head

	prev := t.head
	thread(t.head.Left, &prev)
	// Close the loop: the last inorder node threads back to the head.
	prev.RTag = true
	prev.Right = t.head
	if t.head.Left == nil {
		t.head.LTag = true
		t.head.Left = t.head
	}

	return t
}

// copyTree clones the plain tree into threaded nodes with child
// semantics; tags are filled in during threading.
func copyTree[T any](n *Node[T]) *ThreadedNode[T] {
	if n == nil {
		return nil
	}

	return &ThreadedNode[T]{
		Val:   n.Val,
		Left:  copyTree(n.Left),
		Right: copyTree(n.Right),
	}
}

// thread performs the inorder threading pass; prev trails the walk as
// the inorder predecessor of the current node. A nil Left becomes the
// predecessor thread of the node, a nil Right becomes the successor
// thread of the predecessor.
func thread[T any](p *ThreadedNode[T], prev **ThreadedNode[T]) {
	if p == nil {
		return
	}
	thread(p.Left, prev)
	if p.Left == nil {
		p.LTag = true
		p.Left = *prev
	}
	if (*prev).Right == nil {
		(*prev).RTag = true
		(*prev).Right = p
	}
	*prev = p
	if !p.RTag {
		thread(p.Right, prev)
	}
}

// First returns the first inorder node, or nil for the empty tree.
func (t *Threaded[T]) First() *ThreadedNode[T] {
	p := t.head.Left
	if p == t.head {
		return nil
	}
	for !p.LTag {
		p = p.Left
	}

	return p
}

// Next returns the inorder successor of p, or nil after the last node.
// A threaded right pointer leads straight to the successor; a child
// pointer leads to the leftmost node of the right subtree.
func (t *Threaded[T]) Next(p *ThreadedNode[T]) *ThreadedNode[T] {
	if p == nil {
		return nil
	}
	if p.RTag {
		if p.Right == t.head {
			return nil
		}

		return p.Right
	}
	q := p.Right
	for !q.LTag {
		q = q.Left
	}

	return q
}

// InOrder walks the whole tree in inorder using only threads and child
// pointers - no stack, no recursion.
func (t *Threaded[T]) InOrder(visit func(T)) {
	for p := t.First(); p != nil; p = t.Next(p) {
		visit(p.Val)
	}
}
