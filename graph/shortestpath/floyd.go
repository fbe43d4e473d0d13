package shortestpath

import (
	"fmt"

	"github.com/dastralib/dastra/graph"
)

// AllPairs is the outcome of FloydWarshall: dense distance and
// successor matrices indexed by position in Verts, which lists the
// graph's vertices in sorted order.
type AllPairs struct {
	Verts []string
	Dist  [][]int64

	index map[string]int
	next  [][]int // next[i][j] is the vertex after i on an i→j path, -1 if none
}

// FloydWarshall computes shortest distances between every vertex pair
// of the weighted graph g. Negative edge weights are allowed; a cycle
// of negative total weight surfaces ErrNegativeCycle.
//
// Complexity: Time O(V³), Space O(V²).
func FloydWarshall(g *graph.Graph) (*AllPairs, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweighted
	}

	verts := g.Vertices()
	n := len(verts)
	ap := &AllPairs{
		Verts: verts,
		Dist:  make([][]int64, n),
		index: make(map[string]int, n),
		next:  make([][]int, n),
	}
	for i, v := range verts {
		ap.index[v] = i
		ap.Dist[i] = make([]int64, n)
		ap.next[i] = make([]int, n)
		for j := range ap.Dist[i] {
			ap.Dist[i][j] = Unreachable
			ap.next[i][j] = -1
		}
		ap.Dist[i][i] = 0
		ap.next[i][i] = i
	}

	// Seed with edge weights; parallel edges keep the lightest.
	seed := func(i, j int, w int64) {
		if w < ap.Dist[i][j] {
			ap.Dist[i][j] = w
			ap.next[i][j] = j
		}
	}
	for _, e := range g.Edges() {
		i, j := ap.index[e.From], ap.index[e.To]
		seed(i, j, e.Weight)
		if !g.Directed() {
			seed(j, i, e.Weight)
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if ap.Dist[i][k] == Unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				if ap.Dist[k][j] == Unreachable {
					continue
				}
				if d := ap.Dist[i][k] + ap.Dist[k][j]; d < ap.Dist[i][j] {
					ap.Dist[i][j] = d
					ap.next[i][j] = ap.next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if ap.Dist[i][i] < 0 {
			return nil, fmt.Errorf("%w: through %q", ErrNegativeCycle, verts[i])
		}
	}

	return ap, nil
}

// Distance reports the shortest distance from, to. ok is false when
// either vertex is unknown or no path connects them.
func (ap *AllPairs) Distance(from, to string) (int64, bool) {
	i, okF := ap.index[from]
	j, okT := ap.index[to]
	if !okF || !okT || ap.Dist[i][j] == Unreachable {
		return 0, false
	}

	return ap.Dist[i][j], true
}

// Path reconstructs a shortest path from, to by following the
// successor matrix.
func (ap *AllPairs) Path(from, to string) ([]string, error) {
	i, okF := ap.index[from]
	j, okT := ap.index[to]
	if !okF || !okT || ap.next[i][j] < 0 {
		return nil, fmt.Errorf("%w: %q to %q", ErrNoPath, from, to)
	}
	path := []string{from}
	for i != j {
		i = ap.next[i][j]
		path = append(path, ap.Verts[i])
	}

	return path, nil
}
