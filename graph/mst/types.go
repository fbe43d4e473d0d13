package mst

import "errors"

// Sentinel errors for MST computation.
var (
	// ErrInvalidGraph indicates the graph is nil, directed or
	// unweighted; spanning trees are defined on undirected weighted
	// graphs.
	ErrInvalidGraph = errors.New("mst: requires an undirected weighted graph")

	// ErrEmptyRoot indicates Prim was called without a root vertex.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrRootNotFound indicates the Prim root is absent from the graph.
	ErrRootNotFound = errors.New("mst: root vertex not found")

	// ErrDisconnected indicates no tree spans every vertex.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)
