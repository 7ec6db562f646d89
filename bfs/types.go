// Package bfs provides tunable options and error definitions
// for breadth-first walks over a walk.HalfEdgeGraph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start index is outside the graph.
	ErrStartNotFound = errors.New("bfs: start entity not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for an entity that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger, if non-nil, receives debug traces of the underlying walk.
	Logger *log.Logger

	// OnEnqueue is called when an entity is queued, with its depth.
	// An entity may be queued more than once before it is visited.
	OnEnqueue func(entity, depth int)

	// OnDequeue is called immediately before visiting an entity.
	OnDequeue func(entity, depth int)

	// OnVisit is called when visiting an entity. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(entity, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each non-boundary edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no logger
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l *log.Logger) Option {
	return func(o *BFSOptions) {
		o.Logger = l
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(entity, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(entity, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(entity, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: entities visited, in visit sequence.
//   - Depth: per-entity distance (in edges) from the start, -1 if unreached.
//   - Parent: per-entity predecessor in the BFS tree, -1 for the start
//     and unreached entities.
//   - ParentEdge: the edge each entity was reached through, -1 if none.
type BFSResult struct {
	Order      []int
	Depth      []int
	Parent     []int
	ParentEdge []int
}

// newResult allocates a result for n entities with everything unreached.
func newResult(n int) *BFSResult {
	r := &BFSResult{
		Order:      make([]int, 0, n),
		Depth:      make([]int, n),
		Parent:     make([]int, n),
		ParentEdge: make([]int, n),
	}
	for i := 0; i < n; i++ {
		r.Depth[i], r.Parent[i], r.ParentEdge[i] = -1, -1, -1
	}
	return r
}

// Reached reports whether entity was visited.
func (r *BFSResult) Reached(entity int) bool {
	return entity >= 0 && entity < len(r.Depth) && r.Depth[entity] >= 0
}

// PathTo reconstructs the path from the start entity to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
