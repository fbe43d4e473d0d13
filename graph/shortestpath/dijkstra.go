package shortestpath

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/dastralib/dastra/graph"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors shared by the shortest-path algorithms.
var (
	// ErrNilGraph indicates a nil graph pointer.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrUnweighted indicates the graph was not built with
	// graph.WithWeighted.
	ErrUnweighted = errors.New("shortestpath: graph must be weighted")

	// ErrSourceNotFound indicates the source vertex is absent.
	ErrSourceNotFound = errors.New("shortestpath: source vertex not found")

	// ErrNegativeWeight indicates Dijkstra met a negative edge weight.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight")

	// ErrNegativeCycle indicates FloydWarshall found a cycle with
	// negative total weight, under which shortest paths are undefined.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle")

	// ErrNoPath indicates a path was requested between unconnected
	// vertices.
	ErrNoPath = errors.New("shortestpath: no path")
)

// dijkstraOptions holds per-run Dijkstra parameters.
type dijkstraOptions struct {
	returnPath  bool
	maxDistance int64
}

// DijkstraOption configures a Dijkstra run.
type DijkstraOption func(*dijkstraOptions)

// WithReturnPath requests the predecessor map; without it the second
// return value of Dijkstra is nil.
func WithReturnPath() DijkstraOption {
	return func(o *dijkstraOptions) { o.returnPath = true }
}

// WithMaxDistance stops exploring vertices farther than limit from the
// source; their distance stays Unreachable.
func WithMaxDistance(limit int64) DijkstraOption {
	return func(o *dijkstraOptions) { o.maxDistance = limit }
}

// pqItem pairs a vertex with a candidate distance. Stale entries are
// skipped on pop, the lazy decrease-key pattern.
type pqItem struct {
	id   string
	dist int64
}

type pq []pqItem

func (q pq) Len() int            { return len(q) }
func (q pq) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pq) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x any)         { *q = append(*q, x.(pqItem)) }
func (q *pq) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]

	return x
}

// Dijkstra computes shortest distances from source to every vertex of
// the weighted graph g. Unreached vertices map to Unreachable. With
// WithReturnPath the second result maps each reached vertex to its
// predecessor on a shortest path; otherwise it is nil.
//
// All edge weights must be non-negative; a violation surfaces
// ErrNegativeWeight before any exploration.
//
// Complexity: Time O((V + E) log V), Space O(V + E).
func Dijkstra(g *graph.Graph, source string, opts ...DijkstraOption) (map[string]int64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweighted
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrSourceNotFound
	}
	o := dijkstraOptions{maxDistance: math.MaxInt64}
	for _, opt := range opts {
		opt(&o)
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: %s-%s weight %d",
				ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	dist := make(map[string]int64, g.VertexCount())
	for _, v := range g.Vertices() {
		dist[v] = Unreachable
	}
	dist[source] = 0
	var prev map[string]string
	if o.returnPath {
		prev = make(map[string]string, g.VertexCount())
	}

	done := make(map[string]bool, g.VertexCount())
	q := pq{{id: source}}
	heap.Init(&q)

	for q.Len() > 0 {
		item := heap.Pop(&q).(pqItem)
		if done[item.id] {
			continue
		}
		if item.dist > o.maxDistance {
			break
		}
		done[item.id] = true

		edges, err := g.Neighbors(item.id)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range edges {
			v := e.To
			if v == item.id && e.From != item.id {
				v = e.From
			}
			nd := item.dist + e.Weight
			if nd > o.maxDistance || nd >= dist[v] {
				continue
			}
			dist[v] = nd
			if prev != nil {
				prev[v] = item.id
			}
			heap.Push(&q, pqItem{id: v, dist: nd})
		}
	}

	return dist, prev, nil
}

// PathTo rebuilds the source-to-dest path from a Dijkstra predecessor
// map. dist is the distance map from the same run.
func PathTo(dist map[string]int64, prev map[string]string, dest string) ([]string, error) {
	d, ok := dist[dest]
	if !ok || d == Unreachable {
		return nil, fmt.Errorf("%w: to %q", ErrNoPath, dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
