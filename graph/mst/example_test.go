package mst_test

import (
	"fmt"

	"github.com/dastralib/dastra/graph"
	"github.com/dastralib/dastra/graph/mst"
)

// ExampleKruskal drops the heaviest edge of a triangle.
func ExampleKruskal() {
	g := graph.New(graph.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	tree, total, _ := mst.Kruskal(g)
	for _, e := range tree {
		fmt.Printf("%s-%s %d\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", total)
	// Output:
	// A-B 1
	// B-C 2
	// total: 3
}
