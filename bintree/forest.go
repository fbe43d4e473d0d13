package bintree

// GNode is a node of a general tree in child-sibling representation: a
// pointer to the first child and a pointer to the next sibling. A
// forest is a chain of roots linked through NextSibling.
type GNode[T any] struct {
	Val         T
	FirstChild  *GNode[T]
	NextSibling *GNode[T]
}

// PreOrderForest visits each tree of the forest root-first: the root,
// then its subtree forest, then the remaining trees.
func PreOrderForest[T any](f *GNode[T], visit func(T)) {
	if f == nil {
		return
	}
	visit(f.Val)
	PreOrderForest(f.FirstChild, visit)
	PreOrderForest(f.NextSibling, visit)
}

// PostOrderForest visits each tree's subtree forest before its root.
func PostOrderForest[T any](f *GNode[T], visit func(T)) {
	if f == nil {
		return
	}
	PostOrderForest(f.FirstChild, visit)
	visit(f.Val)
	PostOrderForest(f.NextSibling, visit)
}

// ForestToBinary converts a forest to its corresponding binary tree:
// the first child becomes the left child, the next sibling the right.
// The forest is not modified.
func ForestToBinary[T any](f *GNode[T]) *Node[T] {
	if f == nil {
		return nil
	}

	return &Node[T]{
		Val:   f.Val,
		Left:  ForestToBinary(f.FirstChild),
		Right: ForestToBinary(f.NextSibling),
	}
}

// BinaryToForest inverts ForestToBinary: the left child becomes the
// first child, the right child the next sibling. The tree is not
// modified.
func BinaryToForest[T any](b *Node[T]) *GNode[T] {
	if b == nil {
		return nil
	}

	return &GNode[T]{
		Val:         b.Val,
		FirstChild:  BinaryToForest(b.Left),
		NextSibling: BinaryToForest(b.Right),
	}
}

// TreeDegree reports the maximum child count over all nodes of the
// forest.
func TreeDegree[T any](f *GNode[T]) int {
	if f == nil {
		return 0
	}
	n := 0
	for c := f.FirstChild; c != nil; c = c.NextSibling {
		n++
	}
	if d := TreeDegree(f.FirstChild); d > n {
		n = d
	}
	if d := TreeDegree(f.NextSibling); d > n {
		n = d
	}

	return n
}
