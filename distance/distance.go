package distance

import (
	"github.com/againey/MakeIt.Tile-sub003/walk"
)

// Endpoints resolves both ends of an edge.
// topology.VertexGraph and topology.FaceGraph satisfy it.
type Endpoints interface {
	Near(edge int) int
	Far(edge int) int
}

// Constant returns a source giving every edge length c.
func Constant[T walk.Number](c T) walk.EdgeDistance[T] {
	return func(int) T { return c }
}

// Edge returns a source reading values[edge].
// values must be indexed like the edges of the walked graph.
func Edge[T walk.Number](values []T) walk.EdgeDistance[T] {
	return func(edge int) T { return values[edge] }
}

// Far returns a source reading the attribute of the entity the edge points
// at, e.g. a per-vertex traversal cost.
func Far[T walk.Number](g Endpoints, values []T) walk.EdgeDistance[T] {
	return func(edge int) T { return values[g.Far(edge)] }
}

// Euclidean returns a source measuring the straight-line distance between
// the positions of an edge's endpoints.
func Euclidean(g Endpoints, positions []Vector3) walk.EdgeDistance[float64] {
	return func(edge int) float64 {
		return positions[g.Far(edge)].Sub(positions[g.Near(edge)]).Length()
	}
}

// Spherical returns a source measuring the great-circle distance between
// the endpoint positions on a sphere of the given radius: the angle between
// the two position vectors times radius. Positions need not be normalized.
func Spherical(g Endpoints, positions []Vector3, radius float64) walk.EdgeDistance[float64] {
	return func(edge int) float64 {
		return Angle(positions[g.Near(edge)], positions[g.Far(edge)]) * radius
	}
}

// Convert adapts a source to another numeric type with a plain conversion.
// Converting floats to integers truncates toward zero.
func Convert[From, To walk.Number](d walk.EdgeDistance[From]) walk.EdgeDistance[To] {
	return func(edge int) To { return To(d(edge)) }
}
