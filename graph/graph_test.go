package graph

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex(t *testing.T) {
	g := New()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "re-adding is a no-op")
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.AddVertex(""), ErrEmptyVertexID)
}

func TestAddEdge_InsertsEndpoints(t *testing.T) {
	g := New()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"), "undirected edge is visible both ways")
}

func TestAddEdge_Constraints(t *testing.T) {
	g := New()
	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, ErrBadWeight)
	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, ErrMultiEdgeNotAllowed,
		"the mirror orientation is the same undirected edge")
}

func TestAddEdge_Permissive(t *testing.T) {
	g := New(WithWeighted(), WithLoops(), WithMultiEdges())
	_, err := g.AddEdge("A", "A", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 7)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestDirected(t *testing.T) {
	g := New(WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids)
	ids, err = g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Empty(t, ids)

	in, out, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 0, out)
}

func TestRemoveEdge(t *testing.T) {
	g := New()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.ErrorIs(t, g.RemoveEdge(eid), ErrEdgeNotFound)
	assert.True(t, g.HasVertex("A"), "endpoints survive edge removal")
}

func TestRemoveVertex(t *testing.T) {
	g := New(WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("B"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.EdgeCount(), "only C->A survives")
	assert.True(t, g.HasEdge("C", "A"))

	assert.ErrorIs(t, g.RemoveVertex("B"), ErrVertexNotFound)
}

func TestDeterministicOrder(t *testing.T) {
	g := New(WithWeighted())
	for _, pair := range [][2]string{{"D", "B"}, {"A", "C"}, {"B", "A"}} {
		_, err := g.AddEdge(pair[0], pair[1], 1)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, []string{"e1", "e2", "e3"},
		[]string{edges[0].ID, edges[1].ID, edges[2].ID})

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)
}

func TestEdgeIDOrder_BeyondNine(t *testing.T) {
	g := New(WithMultiEdges())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B", 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	assert.Equal(t, "e9", edges[8].ID)
	assert.Equal(t, "e10", edges[9].ID, "numeric suffix ordering")
}

func TestClone(t *testing.T) {
	g := New(WithDirected(true), WithWeighted())
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 7)
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.Edges(), c.Edges())
	assert.True(t, c.Directed())
	assert.True(t, c.Weighted())

	// Mutating the clone leaves the original untouched.
	_, err = c.AddEdge("C", "D", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())

	empty := g.CloneEmpty()
	assert.Equal(t, g.Vertices(), empty.Vertices())
	assert.Equal(t, 0, empty.EdgeCount())
}

func TestConcurrentMutation(t *testing.T) {
	g := New(WithWeighted(), WithMultiEdges())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := g.AddEdge("A", "B", int64(j))
				assert.NoError(t, err)
				g.Edges()
				g.HasEdge("A", "B")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, g.EdgeCount())
}
