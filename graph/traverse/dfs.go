package traverse

import (
	"github.com/dastralib/dastra/graph"
)

// DFS walks g depth-first from start. Neighbors are explored in
// sorted ID order, so the visit sequence matches the recursive
// preorder a textbook walk would produce; the implementation is
// iterative with an explicit stack.
//
// Complexity: Time O(V + E log E), Space O(V).
func DFS(g *graph.Graph, start string, opts ...Option) (*Result, error) {
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
		Depth:  make(map[string]int),
		Parent: make(map[string]string),
	}
	type frame struct {
		id     string
		parent string
		depth  int
	}
	stack := []frame{{id: start}}
	o.onEnqueue(start, 0)
	visited := make(map[string]bool)

	for len(stack) > 0 {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top.id] {
			continue
		}
		o.onDequeue(top.id, top.depth)
		visited[top.id] = true
		res.Depth[top.id] = top.depth
		if top.id != start {
			res.Parent[top.id] = top.parent
		}
		res.Order = append(res.Order, top.id)
		if err := o.onVisit(top.id, top.depth); err != nil {
			return nil, err
		}
		if o.maxDepth > 0 && top.depth >= o.maxDepth {
			continue
		}

		ids, err := g.NeighborIDs(top.id)
		if err != nil {
			return nil, err
		}
		// Push in reverse so the smallest ID is popped first.
		for i := len(ids) - 1; i >= 0; i-- {
			nb := ids[i]
			if visited[nb] || !o.filter(top.id, nb) {
				continue
			}
			stack = append(stack, frame{id: nb, parent: top.id, depth: top.depth + 1})
			o.onEnqueue(nb, top.depth+1)
		}
	}

	return res, nil
}
