// Package traverse provides breadth-first and depth-first search over
// a graph.Graph, with functional options for visitor hooks, depth
// limits and neighbor filtering.
//
// Both searches visit neighbors in sorted vertex-ID order, so a given
// graph always produces the same traversal.
//
// # Complexity
//
//   - BFS: Time O(V + E log E), Space O(V). The log factor comes from
//     sorting each adjacency list for determinism.
//   - DFS: same bounds; the walk is iterative, so deep graphs do not
//     grow the goroutine stack.
//
// # Quick start
//
//	res, err := traverse.BFS(g, "A",
//		traverse.WithOnVisit(func(id string, depth int) error {
//			fmt.Println(id, depth)
//			return nil
//		}),
//	)
//	path, _ := res.PathTo("F")
package traverse
