package walk

// VisitFunc is called once per popped, unvisited item.
// Returning a non-nil error aborts the walk with that error.
// The Visitor must not be retained after the call returns.
type VisitFunc[T Number] func(v *Visitor[T]) error

// Visitor is the mutable context handed to the visit callback.
// A walk owns exactly one Visitor and resets it before each callback.
type Visitor[T Number] struct {
	graph   Graph
	queue   Queue[T]
	visited *Visited
	opts    *Options

	item   Item[T]
	ignore bool
	brk    bool
}

// reset loads item and clears both control flags.
func (v *Visitor[T]) reset(item Item[T]) {
	v.item = item
	v.ignore = false
	v.brk = false
}

// Entity returns the entity being visited.
func (v *Visitor[T]) Entity() int { return v.item.Entity }

// Edge returns the edge the current entity was reached through, or NoEdge.
func (v *Visitor[T]) Edge() int { return v.item.Edge }

// Depth returns the number of edge hops from the root.
func (v *Visitor[T]) Depth() int { return v.item.Depth }

// Distance returns the accumulated distance of the current item.
func (v *Visitor[T]) Distance() T { return v.item.Distance }

// Item returns a copy of the current item.
func (v *Visitor[T]) Item() Item[T] { return v.item }

// IsVisited reports whether entity is already finalized.
func (v *Visitor[T]) IsVisited(entity int) bool { return v.visited.Has(entity) }

// VisitNeighbor queues entity one level deeper, carrying the current distance.
func (v *Visitor[T]) VisitNeighbor(entity int) {
	v.push(entity, NoEdge, v.item.Distance)
}

// VisitNeighborAt queues entity one level deeper with the given distance.
func (v *Visitor[T]) VisitNeighborAt(entity int, distance T) {
	v.push(entity, NoEdge, distance)
}

// VisitEdge queues the far entity of edge one level deeper. The item carries
// the current distance and the edge, so a DistanceQueue adds the edge length.
// Boundary edges are skipped.
func (v *Visitor[T]) VisitEdge(edge int) {
	if v.graph.Boundary(edge) {
		return
	}
	v.push(v.graph.Far(edge), edge, v.item.Distance)
}

// VisitAllNeighbors calls VisitEdge for every non-boundary edge of the
// current entity whose far entity is not yet visited.
func (v *Visitor[T]) VisitAllNeighbors() {
	for e := range v.graph.Edges(v.item.Entity) {
		if v.graph.Boundary(e) {
			continue
		}
		far := v.graph.Far(e)
		if v.visited.Has(far) {
			continue
		}
		v.push(far, e, v.item.Distance)
	}
}

// RevisitNeighbor clears the visited bit of entity, then queues it like
// VisitNeighbor.
func (v *Visitor[T]) RevisitNeighbor(entity int) {
	v.visited.Clear(entity)
	v.push(entity, NoEdge, v.item.Distance)
}

// RevisitNeighborAt clears the visited bit of entity, then queues it with
// the given distance.
func (v *Visitor[T]) RevisitNeighborAt(entity int, distance T) {
	v.visited.Clear(entity)
	v.push(entity, NoEdge, distance)
}

// RevisitEdge clears the visited bit of the far entity of edge, then queues
// it like VisitEdge. Boundary edges are skipped.
func (v *Visitor[T]) RevisitEdge(edge int) {
	if v.graph.Boundary(edge) {
		return
	}
	far := v.graph.Far(edge)
	v.visited.Clear(far)
	v.push(far, edge, v.item.Distance)
}

// Ignore keeps the current entity unmarked after the callback returns, so
// another queued path may visit it again.
func (v *Visitor[T]) Ignore() { v.ignore = true }

// Break stops the walk after the callback returns. The current entity is
// not marked visited.
func (v *Visitor[T]) Break() { v.brk = true }

// push queues entity at depth+1 unless it exceeds MaxDepth.
// Entities outside [0, Len) are dropped.
func (v *Visitor[T]) push(entity, edge int, distance T) {
	if entity < 0 || entity >= v.visited.Len() {
		return
	}
	depth := v.item.Depth + 1
	if v.opts.MaxDepth > 0 && depth > v.opts.MaxDepth {
		return
	}
	v.opts.OnEnqueue(entity, depth)
	v.queue.Push(Item[T]{Entity: entity, Edge: edge, Depth: depth, Distance: distance})
}
