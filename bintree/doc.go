// Package bintree implements the tree chapter: plain binary trees with
// the four traversals, reconstruction from traversal pairs, inorder
// threading, and child-sibling trees/forests with their binary-tree
// correspondence.
//
// A binary tree is a *Node[T]; nil is the empty tree. Traversals take a
// visitor callback, matching the function-pointer style of the course.
//
// Threaded[T] copies a tree and replaces nil child pointers with inorder
// predecessor/successor threads, so a full inorder walk needs neither a
// stack nor recursion - the classic trade of two tag bits for O(1)
// auxiliary space.
//
// GNode[T] is the child-sibling (first-child / next-sibling)
// representation of a general tree; a forest is a chain of those through
// NextSibling. ForestToBinary and BinaryToForest implement the standard
// bijection: first child becomes the left child, next sibling the right.
package bintree
