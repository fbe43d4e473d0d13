package bintree_test

import (
	"fmt"

	"github.com/dastralib/dastra/bintree"
)

// ExampleBuildPreIn rebuilds a tree from its preorder and inorder
// sequences, then reads it back in postorder.
func ExampleBuildPreIn() {
	root, _ := bintree.BuildPreIn(
		[]string{"A", "B", "D", "C"},
		[]string{"D", "B", "A", "C"},
	)

	fmt.Println(bintree.Collect(root, bintree.PostOrder[string]))
	fmt.Println(bintree.Height(root))
	// Output:
	// [D B C A]
	// 3
}
