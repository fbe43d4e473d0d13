// Package dastra is a teaching library of classic data structures and
// algorithms, one package per course topic.
//
// Each subpackage is independent and self-demonstrating: it ships its own
// types, sentinel errors, tests and runnable examples. Nothing here depends
// on anything outside its own package except the graph algorithms, which
// share the core graph type.
//
// Topics:
//
//	strmatch/     - brute-force and KMP string pattern matching
//	editor/       - line-oriented text buffer built on a doubly linked list
//	list/         - array list, singly/doubly/circular linked lists, Josephus
//	stack/        - array, linked and dual-shared stacks; brackets; infix eval
//	queue/        - linked queue and fixed-capacity ring queue
//	matrix/       - dense, symmetric, triangular, tridiagonal and sparse
//	                (triple-table) matrices with fast transpose
//	glist/        - generalized (nested) lists with a small parser
//	bintree/      - binary trees, inorder threading, child-sibling forests
//	huffman/      - Huffman trees, prefix codes, WPL
//	sorting/      - insertion, shell, bubble, quick, selection, heap, merge,
//	                LSD radix
//	search/       - sequential/binary search, BST, AVL, B-tree lookup
//	hashtable/    - open addressing and separate chaining
//	graph/        - adjacency-list graph shared by the graph algorithms
//	graph/traverse/     - BFS, DFS
//	graph/shortestpath/ - Dijkstra, Floyd-Warshall
//	graph/mst/          - Prim, Kruskal
//	graph/dag/          - topological sort, AOE critical path
//
// The cmd/dastra CLI drives a scripted demonstration of every topic.
package dastra
