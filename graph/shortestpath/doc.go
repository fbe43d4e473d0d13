// Package shortestpath computes shortest paths on weighted graphs.
//
// Two algorithms are provided:
//
//   - Dijkstra: single-source distances on non-negative weights, using
//     a min-heap with lazy decrease-key. Time O((V + E) log V), space
//     O(V + E).
//   - FloydWarshall: all-pairs distances on a dense matrix, with a
//     successor matrix for path reconstruction. Negative edges are
//     allowed; a negative cycle surfaces ErrNegativeCycle.
//     Time O(V³), space O(V²).
//
// Both require a graph built with graph.WithWeighted.
//
// # Quick start
//
//	dist, prev, err := shortestpath.Dijkstra(g, "A",
//		shortestpath.WithReturnPath())
//	ap, err := shortestpath.FloydWarshall(g)
//	route, err := ap.Path("A", "F")
package shortestpath
