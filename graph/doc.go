// Package graph provides the adjacency-list Graph type the algorithm
// packages under graph/ operate on.
//
// # Model
//
// Vertices are string IDs; edges carry an auto-generated ID, their two
// endpoints and an int64 weight. A Graph is configured at construction
// with functional options:
//
//   - WithDirected(true): edges run one way.
//   - WithWeighted(): non-zero edge weights are allowed.
//   - WithLoops(): self-loops are allowed.
//   - WithMultiEdges(): parallel edges between the same pair.
//
// The default is undirected, unweighted, no loops, no parallel edges.
//
// # Guarantees
//
//   - All iteration orders are deterministic: Vertices sorts by ID,
//     Edges and Neighbors sort by edge ID.
//   - All methods are safe for concurrent use; a single sync.RWMutex
//     guards the structure.
//   - Mutations are O(1) amortized except RemoveVertex, which sweeps
//     the edge set in O(E).
//
// # Quick start
//
//	g := graph.New(graph.WithWeighted())
//	_, _ = g.AddEdge("A", "B", 4)
//	_, _ = g.AddEdge("B", "C", 7)
//	for _, e := range g.Edges() {
//		fmt.Println(e.From, e.To, e.Weight)
//	}
package graph
