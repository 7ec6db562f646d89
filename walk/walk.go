package walk

import "fmt"

// walker encapsulates the mutable state of one walk.
type walker[T Number] struct {
	opts    Options
	queue   Queue[T]
	visit   VisitFunc[T]
	visitor *Visitor[T]
	res     *Result
}

// Walk traverses g from roots in the order decided by q, calling fn once
// per popped entity that is not yet visited.
//
// The queue is used as given: items already in it are processed along with
// the seeded roots. An empty roots slice performs no work.
//
// Returns ErrGraphNil, ErrQueueNil, ErrVisitNil or ErrRootOutOfRange for
// invalid input, ErrOptionViolation for bad options, the context error on
// cancellation, or the wrapped error returned by fn. The Result is non-nil
// whenever validation passed, including on abort.
func Walk[T Number](g Graph, roots []int, q Queue[T], fn VisitFunc[T], opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if q == nil {
		return nil, ErrQueueNil
	}
	if fn == nil {
		return nil, ErrVisitNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	for _, r := range roots {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, r, n)
		}
	}

	w := &walker[T]{
		opts:  o,
		queue: q,
		visit: fn,
		res:   &Result{Visited: NewVisited(n)},
	}
	w.visitor = &Visitor[T]{
		graph:   g,
		queue:   q,
		visited: w.res.Visited,
		opts:    &w.opts,
	}

	if len(roots) == 0 {
		return w.res, nil
	}

	w.opts.debug("walk started", "roots", len(roots), "entities", n, "seedEdges", o.SeedEdges)
	w.seed(roots)
	if err := w.loop(); err != nil {
		w.opts.debug("walk aborted", "visits", w.res.Visits, "err", err)
		return w.res, err
	}
	w.opts.debug("walk finished",
		"visits", w.res.Visits, "marked", w.res.Visited.Count(), "broken", w.res.Broken)

	return w.res, nil
}

// seed queues the roots, or their edge neighbors under SeedEdges.
func (w *walker[T]) seed(roots []int) {
	if !w.opts.SeedEdges {
		for _, r := range roots {
			w.opts.OnEnqueue(r, 0)
			w.queue.Push(Item[T]{Entity: r, Edge: NoEdge, Depth: 0})
		}
		return
	}

	// Mark every root first so no root is queued as another root's neighbor.
	for _, r := range roots {
		w.res.Visited.Mark(r)
	}
	for _, r := range roots {
		w.visitor.reset(Item[T]{Entity: r, Edge: NoEdge, Depth: 0})
		w.visitor.VisitAllNeighbors()
	}
}

// loop pops until the queue is empty, the callback breaks or fails, or the
// context is cancelled.
func (w *walker[T]) loop() error {
	v := w.visitor
	visited := w.res.Visited
	for !w.queue.Empty() {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item, ok := w.queue.Pop()
		if !ok {
			return nil
		}
		if visited.Has(item.Entity) {
			continue
		}

		w.opts.OnDequeue(item.Entity, item.Depth)
		v.reset(item)
		w.res.Visits++
		if err := w.visit(v); err != nil {
			return fmt.Errorf("walk: visit of %d at depth %d: %w", item.Entity, item.Depth, err)
		}

		if v.brk {
			w.res.Broken = true
			w.opts.debug("walk broken", "entity", item.Entity, "depth", item.Depth)
			return nil
		}
		if !v.ignore {
			visited.Mark(item.Entity)
		}
	}
	return nil
}
