package traverse

import (
	"github.com/dastralib/dastra/graph"
)

// BFS walks g breadth-first from start, visiting vertices in
// non-decreasing distance and, within one depth, in sorted ID order.
//
// Complexity: Time O(V + E log E), Space O(V).
func BFS(g *graph.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartNotFound
	}

	res := &Result{
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string),
	}
	queue := []string{start}
	o.onEnqueue(start, 0)
	for len(queue) > 0 {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		curr := queue[0]
		queue = queue[1:]
		depth := res.Depth[curr]
		o.onDequeue(curr, depth)

		res.Order = append(res.Order, curr)
		if err := o.onVisit(curr, depth); err != nil {
			return nil, err
		}
		if o.maxDepth > 0 && depth >= o.maxDepth {
			continue
		}

		ids, err := g.NeighborIDs(curr)
		if err != nil {
			return nil, err
		}
		for _, nb := range ids {
			if _, seen := res.Depth[nb]; seen || !o.filter(curr, nb) {
				continue
			}
			res.Depth[nb] = depth + 1
			res.Parent[nb] = curr
			queue = append(queue, nb)
			o.onEnqueue(nb, depth+1)
		}
	}

	return res, nil
}
