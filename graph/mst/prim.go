package mst

import (
	"container/heap"

	"github.com/dastralib/dastra/graph"
)

// edgeHeap orders candidate edges by weight, then edge ID for
// determinism.
type edgeHeap []graph.Edge

func (h edgeHeap) Len() int { return len(h) }
func (h edgeHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	a, b := h[i].ID, h[j].ID
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
func (h edgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x any)        { *h = append(*h, x.(graph.Edge)) }
func (h *edgeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// Prim computes a minimum spanning tree by growing from root: at each
// step the cheapest edge leaving the tree joins a new vertex. Returns
// the tree's edges in the order they were added and the total weight.
//
// Complexity: Time O(E log E), Space O(E).
func Prim(g *graph.Graph, root string) ([]graph.Edge, int64, error) {
	if g == nil || g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}

	inTree := map[string]bool{root: true}
	h := &edgeHeap{}
	grow := func(v string) error {
		edges, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range edges {
			heap.Push(h, e)
		}

		return nil
	}
	if err := grow(root); err != nil {
		return nil, 0, err
	}

	var tree []graph.Edge
	var total int64
	for h.Len() > 0 && len(inTree) < g.VertexCount() {
		e := heap.Pop(h).(graph.Edge)
		// The new endpoint, if any; edges inside the tree are stale.
		v := ""
		switch {
		case inTree[e.From] && !inTree[e.To]:
			v = e.To
		case inTree[e.To] && !inTree[e.From]:
			v = e.From
		default:
			continue
		}
		inTree[v] = true
		tree = append(tree, e)
		total += e.Weight
		if err := grow(v); err != nil {
			return nil, 0, err
		}
	}

	if len(inTree) < g.VertexCount() {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
