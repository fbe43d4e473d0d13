// Package huffman implements Huffman trees and prefix codes.
//
// Build constructs the optimal prefix-free code for a symbol frequency
// table by repeatedly merging the two lowest-weight subtrees, using a
// min-heap ordered by weight with creation order as the tie-break, so
// the resulting tree - and therefore every code - is deterministic for a
// given table.
//
// Codes follow the course convention: left edges emit '0', right edges
// emit '1'. Decode walks the tree bit by bit and restarts at the root
// after each leaf. WPL (weighted path length) is Σ weight(leaf) ·
// depth(leaf), the cost function the construction minimizes.
//
// A single-symbol alphabet is a corner the formula misses: its lone
// leaf sits at depth 0, so it is assigned the one-bit code "0".
package huffman
