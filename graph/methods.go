// Package graph: thread-safe Graph operations. Every public query
// that returns a collection sorts it, so traversal packages built on
// top produce reproducible orders.
package graph

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex; adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty ID.
//
// Complexity: Time O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adj[id] = make(map[string][]string)
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every incident edge.
//
// Complexity: Time O(E).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.unlinkLocked(e)
			delete(g.edges, eid)
		}
	}
	delete(g.adj, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge creates an edge from, to with the given weight, inserting
// missing endpoints, and returns its generated ID. Undirected edges
// are linked under both endpoints.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed or
// ErrMultiEdgeNotAllowed.
//
// Complexity: Time O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.allowMulti && len(g.adj[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdge++
	eid := fmt.Sprintf("e%d", g.nextEdge)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	g.adj[from][to] = append(g.adj[from][to], eid)
	if !g.directed && from != to {
		g.adj[to][from] = append(g.adj[to][from], eid)
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(e)
	delete(g.edges, eid)

	return nil
}

// unlinkLocked removes e's ID from both adjacency orientations.
func (g *Graph) unlinkLocked(e *Edge) {
	g.adj[e.From][e.To] = dropID(g.adj[e.From][e.To], e.ID)
	if len(g.adj[e.From][e.To]) == 0 {
		delete(g.adj[e.From], e.To)
	}
	if !g.directed && e.From != e.To {
		g.adj[e.To][e.From] = dropID(g.adj[e.To][e.From], e.ID)
		if len(g.adj[e.To][e.From]) == 0 {
			delete(g.adj[e.To], e.From)
		}
	}
}

func dropID(ids []string, eid string) []string {
	for i, id := range ids {
		if id == eid {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}

// HasEdge reports whether at least one edge runs from, to. For an
// undirected graph the order of the endpoints does not matter.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[from][to]) > 0
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(eid string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Neighbors returns every edge leaving id, sorted by edge ID. For an
// undirected graph that includes edges recorded from either side.
//
// Complexity: Time O(d log d), d the degree.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []Edge
	for _, eids := range g.adj[id] {
		for _, eid := range eids {
			out = append(out, *g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the sorted IDs of id's adjacent vertices.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		other := e.To
		if e.From != id {
			other = e.From
		}
		seen[other] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns every vertex ID in sorted order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge sorted by ID.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sortEdges(out)

	return out
}

// VertexCount reports the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount reports the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Degree returns the in- and out-degree of id. For an undirected graph
// both counts include every incident edge, and a self-loop counts
// twice on each side.
func (g *Graph) Degree(id string) (in, out int, err error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, 0, err
	}
	for _, e := range edges {
		switch {
		case e.From == id && e.To == id:
			if g.directed {
				in, out = in+1, out+1
			} else {
				in, out = in+2, out+2
			}
		case g.directed:
			out++
		default:
			in++
			out++
		}
	}
	if g.directed {
		for _, e := range g.Edges() {
			if e.To == id && e.From != id {
				in++
			}
		}
	}

	return in, out, nil
}

// CloneEmpty returns a graph with the same configuration and vertices
// but no edges.
//
// Complexity: Time O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := New(
		WithDirected(g.directed),
	)
	clone.weighted = g.weighted
	clone.allowLoops = g.allowLoops
	clone.allowMulti = g.allowMulti
	for id := range g.vertices {
		clone.addVertexLocked(id)
	}

	return clone
}

// Clone returns a deep copy of the graph.
//
// Complexity: Time O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.mu.RLock()
	defer g.mu.RUnlock()
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		clone.adj[e.From][e.To] = append(clone.adj[e.From][e.To], eid)
		if !g.directed && e.From != e.To {
			clone.adj[e.To][e.From] = append(clone.adj[e.To][e.From], eid)
		}
	}
	clone.nextEdge = g.nextEdge

	return clone
}

// sortEdges orders edges by the numeric suffix of their IDs, so "e10"
// sorts after "e9".
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i].ID, edges[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}

		return a < b
	})
}
