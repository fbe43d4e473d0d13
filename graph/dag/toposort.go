package dag

import (
	"container/heap"
	"errors"

	"github.com/dastralib/dastra/graph"
)

// Sentinel errors for DAG algorithms.
var (
	// ErrNilGraph indicates a nil graph pointer.
	ErrNilGraph = errors.New("dag: graph is nil")

	// ErrNotDirected indicates the graph is undirected.
	ErrNotDirected = errors.New("dag: requires a directed graph")

	// ErrCycle indicates the graph contains a directed cycle.
	ErrCycle = errors.New("dag: graph contains a cycle")

	// ErrUnweighted indicates CriticalPath needs graph.WithWeighted.
	ErrUnweighted = errors.New("dag: requires a weighted graph")
)

// idHeap is a min-heap of vertex IDs; it keeps Kahn's ready set
// ordered so the topological order is deterministic.
type idHeap []string

func (h idHeap) Len() int            { return len(h) }
func (h idHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)         { *h = append(*h, x.(string)) }
func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// TopoSort returns a topological order of g using Kahn's algorithm.
// Ties between ready vertices break on vertex ID, smallest first.
//
// Complexity: Time O(V log V + E), Space O(V).
func TopoSort(g *graph.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	indeg := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		indeg[v] = 0
	}
	for _, e := range g.Edges() {
		indeg[e.To]++
	}

	ready := &idHeap{}
	for _, v := range g.Vertices() {
		if indeg[v] == 0 {
			*ready = append(*ready, v)
		}
	}
	heap.Init(ready)

	order := make([]string, 0, g.VertexCount())
	for ready.Len() > 0 {
		v := heap.Pop(ready).(string)
		order = append(order, v)
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				heap.Push(ready, e.To)
			}
		}
	}

	if len(order) != g.VertexCount() {
		return nil, ErrCycle
	}

	return order, nil
}
