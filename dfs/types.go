// Package dfs defines types and options for depth-first walks, including
// cancellation, visit hooks, depth limiting, neighbor filtering, full-graph
// (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/charmbracelet/log"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start index is outside the graph.
	ErrStartNotFound = errors.New("dfs: start entity not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O((V+E) log E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Logger, if non-nil, receives debug traces of the underlying walk.
	Logger *log.Logger

	// OnVisit, if non-nil, is invoked when an entity is visited (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(entity int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the start entity. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before it is
	// queued. Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(entity int) bool

	// FullTraversal, if true, continues from every unvisited entity after
	// the start's tree is done, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l *log.Logger) Option {
	return func(o *DFSOptions) {
		o.Logger = l
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(entity int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start entity is visited; a negative limit
// means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(entity) == false, that neighbor is skipped and counted in
// SkippedNeighbors.
func WithFilterNeighbor(fn func(entity int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records entities in the sequence they were visited (pre-order).
	Order []int

	// Depth is the per-entity distance (#edges) from its tree root,
	// -1 if unreached.
	Depth []int

	// Parent is the neighbor whose queued copy of the entity popped first,
	// i.e. the first neighbor that queued it at the greatest depth;
	// -1 for tree roots and unreached entities.
	Parent []int

	// Visited holds the reached entities.
	Visited *roaring.Bitmap

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}
