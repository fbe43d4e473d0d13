package bintree

import "errors"

// ErrBadTraversal indicates preorder/inorder slices that cannot come
// from one binary tree.
var ErrBadTraversal = errors.New("bintree: inconsistent traversal pair")

// Node is a binary tree node; a nil *Node is the empty tree.
type Node[T any] struct {
	Val   T
	Left  *Node[T]
	Right *Node[T]
}

// PreOrder visits root, left subtree, right subtree.
func PreOrder[T any](n *Node[T], visit func(T)) {
	if n == nil {
		return
	}
	visit(n.Val)
	PreOrder(n.Left, visit)
	PreOrder(n.Right, visit)
}

// InOrder visits left subtree, root, right subtree.
func InOrder[T any](n *Node[T], visit func(T)) {
	if n == nil {
		return
	}
	InOrder(n.Left, visit)
	visit(n.Val)
	InOrder(n.Right, visit)
}

// PostOrder visits left subtree, right subtree, root.
func PostOrder[T any](n *Node[T], visit func(T)) {
	if n == nil {
		return
	}
	PostOrder(n.Left, visit)
	PostOrder(n.Right, visit)
	visit(n.Val)
}

// LevelOrder visits nodes top to bottom, left to right, driven by a
// queue.
func LevelOrder[T any](n *Node[T], visit func(T)) {
	if n == nil {
		return
	}
	q := []*Node[T]{n}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		visit(cur.Val)
		if cur.Left != nil {
			q = append(q, cur.Left)
		}
		if cur.Right != nil {
			q = append(q, cur.Right)
		}
	}
}

// InOrderIterative is the stack-driven inorder walk: run down the left
// spine pushing nodes, then visit and turn right.
func InOrderIterative[T any](n *Node[T], visit func(T)) {
	var st []*Node[T]
	for n != nil || len(st) > 0 {
		for n != nil {
			st = append(st, n)
			n = n.Left
		}
		n = st[len(st)-1]
		st = st[:len(st)-1]
		visit(n.Val)
		n = n.Right
	}
}

// Collect runs a traversal and returns the visited values in order.
func Collect[T any](n *Node[T], traverse func(*Node[T], func(T))) []T {
	var out []T
	traverse(n, func(v T) { out = append(out, v) })

	return out
}

// Height reports the number of levels; the empty tree has height 0.
func Height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	lh := Height(n.Left)
	rh := Height(n.Right)
	if lh > rh {
		return lh + 1
	}

	return rh + 1
}

// CountNodes reports the total node count.
func CountNodes[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + CountNodes(n.Left) + CountNodes(n.Right)
}

// CountLeaves reports the number of nodes with no children.
func CountLeaves[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	if n.Left == nil && n.Right == nil {
		return 1
	}

	return CountLeaves(n.Left) + CountLeaves(n.Right)
}

// Mirror swaps the children of every node in place and returns the
// root.
func Mirror[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	n.Left, n.Right = Mirror(n.Right), Mirror(n.Left)

	return n
}

// BuildPreIn reconstructs the unique binary tree with the given
// preorder and inorder traversals. Values must be distinct within the
// slices; inconsistent input returns ErrBadTraversal.
//
// Complexity: Time O(n²) worst case (linear root search per level),
// matching the course formulation.
func BuildPreIn[T comparable](pre, in []T) (*Node[T], error) {
	if len(pre) != len(in) {
		return nil, ErrBadTraversal
	}
	if len(pre) == 0 {
		return nil, nil
	}
	// pre[0] is the root; find it in the inorder sequence to split the
	// subtrees.
	rootIdx := -1
	for i, v := range in {
		if v == pre[0] {
			rootIdx = i

			break
		}
	}
	if rootIdx < 0 {
		return nil, ErrBadTraversal
	}
	left, err := BuildPreIn(pre[1:rootIdx+1], in[:rootIdx])
	if err != nil {
		return nil, err
	}
	right, err := BuildPreIn(pre[rootIdx+1:], in[rootIdx+1:])
	if err != nil {
		return nil, err
	}

	return &Node[T]{Val: pre[0], Left: left, Right: right}, nil
}
