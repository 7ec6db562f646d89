package walk

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// Queue is the push/pop backend that decides visit order.
// Pop on an empty queue returns false; that is normal termination.
type Queue[T Number] interface {
	Push(item Item[T])
	Pop() (Item[T], bool)
	Empty() bool
	Len() int
	Clear()
}

// Compile-time checks.
var (
	_ Queue[int]     = (*Stack[int])(nil)
	_ Queue[float64] = (*Ordered[float64])(nil)
	_ Queue[uint32]  = (*Random[uint32])(nil)
	_ Queue[float32] = (*DistanceQueue[float32])(nil)
)

// Stack pops the most recently pushed item (arbitrary order).
type Stack[T Number] struct {
	s *arraystack.Stack
}

// NewStack returns an empty LIFO queue.
func NewStack[T Number]() *Stack[T] {
	return &Stack[T]{s: arraystack.New()}
}

// Push adds item on top.
func (q *Stack[T]) Push(item Item[T]) { q.s.Push(item) }

// Pop removes the top item.
func (q *Stack[T]) Pop() (Item[T], bool) {
	v, ok := q.s.Pop()
	if !ok {
		return Item[T]{}, false
	}
	return v.(Item[T]), true
}

// Empty reports whether no items are queued.
func (q *Stack[T]) Empty() bool { return q.s.Empty() }

// Len returns the number of queued items.
func (q *Stack[T]) Len() int { return q.s.Size() }

// Clear drops every queued item.
func (q *Stack[T]) Clear() { q.s.Clear() }

// heapEntry pairs an item with its push sequence so ties leave in push order.
type heapEntry[T Number] struct {
	item Item[T]
	seq  uint64
}

// Ordered is a binary heap ordered by an areOrdered predicate.
type Ordered[T Number] struct {
	areOrdered Ordering[T]
	h          *binaryheap.Heap
	seq        uint64
}

// NewOrdered returns a priority queue popping items for which areOrdered
// holds against the rest first. A nil predicate falls back to ByDepth.
func NewOrdered[T Number](areOrdered Ordering[T]) *Ordered[T] {
	if areOrdered == nil {
		areOrdered = ByDepth[T]
	}
	q := &Ordered[T]{areOrdered: areOrdered}
	q.h = binaryheap.NewWith(q.compare)
	return q
}

// BreadthFirst returns an Ordered queue popping the shallowest item first.
func BreadthFirst[T Number]() *Ordered[T] {
	return NewOrdered[T](ByDepth[T])
}

// DepthFirst returns an Ordered queue popping the deepest item first.
func DepthFirst[T Number]() *Ordered[T] {
	return NewOrdered[T](ByDepthDescending[T])
}

// compare turns the boolean predicate into a gods comparator.
// Both-or-neither ordered means a tie, settled by push sequence.
func (q *Ordered[T]) compare(a, b interface{}) int {
	x, y := a.(heapEntry[T]), b.(heapEntry[T])
	xy := q.areOrdered(x.item, y.item)
	yx := q.areOrdered(y.item, x.item)
	switch {
	case xy && !yx:
		return -1
	case yx && !xy:
		return 1
	}
	return utils.UInt64Comparator(x.seq, y.seq)
}

// Push inserts item.
func (q *Ordered[T]) Push(item Item[T]) {
	q.h.Push(heapEntry[T]{item: item, seq: q.seq})
	q.seq++
}

// Pop removes the first item in order.
func (q *Ordered[T]) Pop() (Item[T], bool) {
	v, ok := q.h.Pop()
	if !ok {
		return Item[T]{}, false
	}
	return v.(heapEntry[T]).item, true
}

// Peek returns the next item without removing it.
func (q *Ordered[T]) Peek() (Item[T], bool) {
	v, ok := q.h.Peek()
	if !ok {
		return Item[T]{}, false
	}
	return v.(heapEntry[T]).item, true
}

// Empty reports whether no items are queued.
func (q *Ordered[T]) Empty() bool { return q.h.Empty() }

// Len returns the number of queued items.
func (q *Ordered[T]) Len() int { return q.h.Size() }

// Clear drops every queued item and restarts the push sequence.
func (q *Ordered[T]) Clear() {
	q.h.Clear()
	q.seq = 0
}

// DistanceQueue is an Ordered queue that derives distances at push time:
// an item reached through an edge gets
//
//	Distance = accumulate(parentDistance, edgeDistance(Edge))
//
// where parentDistance is the Distance the item was pushed with.
// Items pushed with NoEdge keep their distance as given.
type DistanceQueue[T Number] struct {
	*Ordered[T]
	edgeDistance EdgeDistance[T]
	accumulate   Accumulator[T]
}

// NewDistanceQueue returns a DistanceQueue. A nil accumulate means addition;
// a nil edgeDistance makes every edge length zero.
func NewDistanceQueue[T Number](areOrdered Ordering[T], edgeDistance EdgeDistance[T], accumulate Accumulator[T]) *DistanceQueue[T] {
	if accumulate == nil {
		accumulate = Accumulate[T]
	}
	if edgeDistance == nil {
		edgeDistance = func(int) T { return 0 }
	}
	return &DistanceQueue[T]{
		Ordered:      NewOrdered[T](areOrdered),
		edgeDistance: edgeDistance,
		accumulate:   accumulate,
	}
}

// NearestByEdge returns a DistanceQueue popping the smallest accumulated
// distance first.
func NearestByEdge[T Number](edgeDistance EdgeDistance[T]) *DistanceQueue[T] {
	return NewDistanceQueue[T](NearestFirst[T], edgeDistance, nil)
}

// FarthestByEdge returns a DistanceQueue popping the largest accumulated
// distance first.
func FarthestByEdge[T Number](edgeDistance EdgeDistance[T]) *DistanceQueue[T] {
	return NewDistanceQueue[T](FarthestFirst[T], edgeDistance, nil)
}

// Push derives the distance of item from its edge, then inserts it.
func (q *DistanceQueue[T]) Push(item Item[T]) {
	if item.Edge != NoEdge {
		item.Distance = q.accumulate(item.Distance, q.edgeDistance(item.Edge))
	}
	q.Ordered.Push(item)
}
