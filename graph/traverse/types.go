// Package traverse: options, sentinel errors and the Result type
// shared by BFS and DFS.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilGraph indicates a nil graph pointer.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrStartNotFound indicates the start vertex is absent.
	ErrStartNotFound = errors.New("traverse: start vertex not found")

	// ErrBadOption indicates an invalid option value, surfaced when the
	// traversal runs.
	ErrBadOption = errors.New("traverse: invalid option")

	// ErrNoPath indicates PathTo was asked for an unreached vertex.
	ErrNoPath = errors.New("traverse: no path to vertex")
)

// options holds traversal parameters and callbacks.
type options struct {
	ctx       context.Context
	onVisit   func(id string, depth int) error
	onEnqueue func(id string, depth int)
	onDequeue func(id string, depth int)
	maxDepth  int
	filter    func(curr, neighbor string) bool
	err       error
}

// Option configures a traversal via functional arguments.
type Option func(*options)

func defaultOptions() options {
	return options{
		ctx:       context.Background(),
		onVisit:   func(string, int) error { return nil },
		onEnqueue: func(string, int) {},
		onDequeue: func(string, int) {},
		maxDepth:  0,
		filter:    func(_, _ string) bool { return true },
	}
}

// WithContext sets a context for cancellation; the traversal checks it
// before each visit.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked at each visited vertex with
// its depth from the start. A non-nil return aborts the traversal and
// propagates the error.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback invoked when a vertex enters the
// frontier (the BFS queue or DFS stack), before it is visited.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback invoked when a vertex leaves the
// frontier, immediately before its visit.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onDequeue = fn
		}
	}
}

// WithMaxDepth stops exploring past depth d edges from the start.
// Zero means no limit; negative values surface ErrBadOption.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrBadOption, d)

			return
		}
		o.maxDepth = d
	}
}

// WithFilterNeighbor skips the edge curr to neighbor when fn returns
// false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// Result is the outcome of a traversal: the visit order, each reached
// vertex's depth in edges from the start, and its parent in the
// traversal tree. The start vertex has no parent entry.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the start-to-dest path along traversal-tree
// parents. Returns ErrNoPath when dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
