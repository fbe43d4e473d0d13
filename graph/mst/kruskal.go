package mst

import (
	"sort"

	"github.com/dastralib/dastra/graph"
)

// unionFind is a disjoint-set forest with path compression and union
// by rank.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(verts []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(verts)),
		rank:   make(map[string]int, len(verts)),
	}
	for _, v := range verts {
		uf.parent[v] = v
	}

	return uf
}

func (uf *unionFind) find(v string) string {
	for uf.parent[v] != v {
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}

	return v
}

// union joins the sets of a and b; reports false when they were
// already one set.
func (uf *unionFind) union(a, b string) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}

	return true
}

// Kruskal computes a minimum spanning tree by scanning edges in
// ascending weight order and keeping every edge that joins two
// components. Returns the tree's edges in acceptance order and the
// total weight.
//
// Complexity: Time O(E log E), Space O(V + E).
func Kruskal(g *graph.Graph) ([]graph.Edge, int64, error) {
	if g == nil || g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	verts := g.Vertices()
	uf := newUnionFind(verts)
	var tree []graph.Edge
	var total int64
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		if uf.union(e.From, e.To) {
			tree = append(tree, e)
			total += e.Weight
			if len(tree) == len(verts)-1 {
				break
			}
		}
	}

	if len(tree) != len(verts)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
