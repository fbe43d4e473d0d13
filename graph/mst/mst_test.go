package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dastralib/dastra/graph"
	"github.com/dastralib/dastra/graph/mst"
)

// networkGraph is the classic six-vertex network whose minimum
// spanning tree weighs 15.
func networkGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(graph.WithWeighted())
	edges := []struct {
		from, to string
		w        int64
	}{
		{"1", "2", 6}, {"1", "3", 1}, {"1", "4", 5},
		{"2", "3", 5}, {"2", "5", 3},
		{"3", "4", 5}, {"3", "5", 6}, {"3", "6", 4},
		{"4", "6", 2}, {"5", "6", 6},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func treeIsSpanning(t *testing.T, g *graph.Graph, tree []graph.Edge) {
	t.Helper()
	require.Len(t, tree, g.VertexCount()-1)
	reach := map[string]bool{tree[0].From: true}
	// The edges of a tree connect one component; grow until stable.
	for changed := true; changed; {
		changed = false
		for _, e := range tree {
			if reach[e.From] != reach[e.To] {
				reach[e.From], reach[e.To] = true, true
				changed = true
			}
		}
	}
	assert.Len(t, reach, g.VertexCount())
}

func TestPrim(t *testing.T) {
	g := networkGraph(t)
	tree, total, err := mst.Prim(g, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	treeIsSpanning(t, g, tree)
	assert.Equal(t, "1", tree[0].From, "the first edge leaves the root")
}

func TestKruskal(t *testing.T) {
	g := networkGraph(t)
	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	treeIsSpanning(t, g, tree)

	// Kruskal accepts edges in ascending weight order.
	for i := 1; i < len(tree); i++ {
		assert.LessOrEqual(t, tree[i-1].Weight, tree[i].Weight)
	}
}

func TestPrim_AnyRootSameWeight(t *testing.T) {
	g := networkGraph(t)
	for _, root := range g.Vertices() {
		_, total, err := mst.Prim(g, root)
		require.NoError(t, err)
		assert.Equal(t, int64(15), total, "root %s", root)
	}
}

func TestDisconnected(t *testing.T) {
	g := graph.New(graph.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("Z"))

	_, _, err = mst.Prim(g, "A")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestKruskal_EmptyGraph(t *testing.T) {
	g := graph.New(graph.WithWeighted())

	_, _, err := mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestSingleVertex(t *testing.T) {
	g := graph.New(graph.WithWeighted())
	require.NoError(t, g.AddVertex("A"))

	tree, total, err := mst.Prim(g, "A")
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)

	tree, total, err = mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)
}

func TestInvalidGraphs(t *testing.T) {
	_, _, err := mst.Prim(nil, "A")
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)
	_, _, err = mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)

	directed := graph.New(graph.WithDirected(true), graph.WithWeighted())
	_, _, err = mst.Kruskal(directed)
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)

	unweighted := graph.New()
	_, _, err = mst.Prim(unweighted, "A")
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)

	g := graph.New(graph.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	_, _, err = mst.Prim(g, "")
	assert.ErrorIs(t, err, mst.ErrEmptyRoot)
	_, _, err = mst.Prim(g, "Z")
	assert.ErrorIs(t, err, mst.ErrRootNotFound)
}
