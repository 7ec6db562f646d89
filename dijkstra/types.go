// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on topology graphs.
//
// Options:
//
//	– Source:           index of the starting entity (required, must be in range).
//	– ReturnPath:       if true, Result carries Prev/PrevEdge for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; entities beyond are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no Source option was provided.
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNilWeight       if the edge weight function is nil.
//	– ErrVertexNotFound  if the source index is out of range.
//	– ErrNegativeWeight  if a negative edge weight is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrUnreachable     from PathTo for an entity that was not reached.
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was provided.
	ErrNoSource = errors.New("dijkstra: source is not set")

	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeight indicates that a nil edge weight function was passed.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrVertexNotFound indicates that the source index is out of range.
	ErrVertexNotFound = errors.New("dijkstra: source not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable is returned by PathTo for an entity that was not reached.
	ErrUnreachable = errors.New("dijkstra: entity not reached")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Distances and thresholds are compared as float64 so one Options type
// serves every numeric weight type.
type Options struct {
	Ctx              context.Context // cancellation, checked once per pop
	Logger           *log.Logger     // debug traces of the underlying walk
	Source           int             // index of the source entity, -1 if unset
	ReturnPath       bool            // whether to fill Prev/PrevEdge
	MaxDistance      float64         // maximum distance to explore
	InfEdgeThreshold float64         // weight at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the index of the source entity.
// Must be given to specify the starting entity.
func Source(entity int) Option {
	return func(o *Options) {
		o.Source = entity
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithReturnPath enables predecessor tracking in the result.
// If not set, Prev and PrevEdge are nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Entities whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Ctx:              context.Background()
//   - Source:           -1 (unset; Dijkstra fails with ErrNoSource).
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Source:           -1,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
