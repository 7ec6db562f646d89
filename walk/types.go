// Package walk defines options, results and sentinel errors for the traversal driver.
package walk

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Sentinel errors for walk execution.
var (
	// ErrGraphNil is returned if a nil Graph is passed to Walk.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrQueueNil is returned if a nil Queue is passed to Walk.
	ErrQueueNil = errors.New("walk: queue is nil")

	// ErrVisitNil is returned if the visit callback is nil.
	ErrVisitNil = errors.New("walk: visit callback is nil")

	// ErrRootOutOfRange is returned when a root index is outside [0, g.Len()).
	ErrRootOutOfRange = errors.New("walk: root index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// NoEdge marks an Item that was not reached through an edge: roots and
// neighbors queued by index.
const NoEdge = -1

// Option configures Walk behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds parameters and hooks that customize a walk.
type Options struct {
	// Ctx allows cancellation; checked once per pop.
	Ctx context.Context

	// Logger, if non-nil, receives debug-level traces of the walk.
	Logger *log.Logger

	// MaxDepth, if > 0, drops neighbors that would be queued deeper than it.
	// 0 disables the limit.
	MaxDepth int

	// SeedEdges switches root seeding: each root is marked visited up front
	// and the far entities of its non-boundary edges are queued at depth 1.
	// Roots themselves are then never passed to the callback.
	SeedEdges bool

	// OnEnqueue is called for every item pushed, with its entity and depth.
	OnEnqueue func(entity, depth int)

	// OnDequeue is called for every popped item that is about to be visited.
	OnDequeue func(entity, depth int)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no logger
//   - no depth limit
//   - canonical root seeding (roots are queued and visited)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    nil,
		MaxDepth:  0,
		SeedEdges: false,
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
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

// WithMaxDepth limits how deep neighbors may be queued.
//
//	d > 0: neighbors deeper than d are dropped
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithSeedEdges marks roots visited immediately and queues their neighbors
// through their edges instead of queueing the roots.
func WithSeedEdges() Option {
	return func(o *Options) {
		o.SeedEdges = true
	}
}

// WithOnEnqueue registers a hook run on every push.
func WithOnEnqueue(fn func(entity, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a hook run right before an item is visited.
func WithOnDequeue(fn func(entity, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// debug logs through the configured logger, if any.
func (o *Options) debug(msg string, keyvals ...interface{}) {
	if o.Logger != nil {
		o.Logger.Debug(msg, keyvals...)
	}
}

// Result holds the outcome of a walk.
type Result struct {
	// Visited has exactly the entities that were finalized.
	Visited *Visited

	// Visits counts callback invocations, including ignored and broken ones.
	Visits int

	// Broken reports whether the callback stopped the walk with Break.
	Broken bool
}
