// Package mst computes minimum spanning trees of undirected weighted
// graphs.
//
//   - Prim grows the tree from a root vertex, pulling the cheapest
//     crossing edge off a min-heap. Time O(E log V).
//   - Kruskal sorts all edges and joins components through a
//     union-find with path compression and union by rank.
//     Time O(E log E).
//
// Both return the tree's edges and total weight, and ErrDisconnected
// when the graph has no spanning tree. With equal-weight edges the two
// algorithms may pick different trees of the same total weight; edge
// ties break on edge ID, so each algorithm is itself deterministic.
package mst
