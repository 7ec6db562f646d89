package walk

import "golang.org/x/exp/constraints"

// Number is any type a distance can be accumulated in.
type Number interface {
	constraints.Integer | constraints.Float
}

// Item is one queued position of a walk.
// Two items are the same position when their Entity matches; Depth, Edge
// and Distance only describe the path the item was queued from.
type Item[T Number] struct {
	Entity   int // vertex or face index
	Edge     int // edge the item was reached through, NoEdge otherwise
	Depth    int // edge hops from the root the path started at
	Distance T   // accumulated distance along that path
}

// Ordering reports whether lhs may be popped before rhs.
// It is the areOrdered predicate of an ordered queue.
type Ordering[T Number] func(lhs, rhs Item[T]) bool

// EdgeDistance returns the length of one edge.
type EdgeDistance[T Number] func(edge int) T

// Accumulator combines a parent distance with an edge length.
type Accumulator[T Number] func(a, b T) T

// Accumulate adds two distances.
func Accumulate[T Number](a, b T) T {
	return a + b
}

// ByDepth orders shallower items first (breadth-first).
func ByDepth[T Number](lhs, rhs Item[T]) bool {
	return lhs.Depth <= rhs.Depth
}

// ByDepthDescending orders deeper items first (depth-first approximation).
func ByDepthDescending[T Number](lhs, rhs Item[T]) bool {
	return lhs.Depth >= rhs.Depth
}

// NearestFirst orders smaller accumulated distances first.
func NearestFirst[T Number](lhs, rhs Item[T]) bool {
	return lhs.Distance <= rhs.Distance
}

// FarthestFirst orders larger accumulated distances first.
func FarthestFirst[T Number](lhs, rhs Item[T]) bool {
	return lhs.Distance >= rhs.Distance
}
