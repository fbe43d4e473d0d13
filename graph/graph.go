// Package graph: Graph, Edge, options, sentinel errors and the
// constructor. Method implementations live in methods.go.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph mutations and queries.
var (
	// ErrEmptyVertexID indicates an empty string where a vertex ID is
	// required.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex the
	// graph does not contain.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent
	// edge ID.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("graph: non-zero weight on unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop on a graph built without
	// WithLoops.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge on a graph built
	// without WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("graph: parallel edge not allowed")
)

// Edge is one connection in a Graph. ID is unique within the graph and
// generated by AddEdge; edge IDs order edges deterministically.
type Edge struct {
	ID     string
	From   string
	To     string
	Weight int64
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected sets whether edges run from From to To only.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops allows self-loops.
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges allows parallel edges between the same endpoints.
func WithMultiEdges() Option {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an adjacency-list graph over string vertex IDs. The zero
// value is not usable; construct with New.
//
// adj[from][to] holds the IDs of every edge between the pair. For an
// undirected edge both orientations are recorded, so neighbor lookups
// never scan the full edge set.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	nextEdge uint64
	vertices map[string]struct{}
	edges    map[string]*Edge
	adj      map[string]map[string][]string
}

// New returns an empty Graph configured by opts. The default is
// undirected, unweighted, no loops, no parallel edges.
func New(opts ...Option) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		adj:      make(map[string]map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges run one way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// MultiEdged reports whether parallel edges are allowed.
func (g *Graph) MultiEdged() bool { return g.allowMulti }
