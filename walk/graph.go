package walk

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Graph is the adjacency contract a walk consumes.
// The engine trusts it: edges and far entities must be in range.
type Graph interface {
	// Len returns the number of entities (vertex count or face count).
	Len() int

	// Edges yields the outgoing half-edges of entity.
	Edges(entity int) iter.Seq[int]

	// Far returns the entity edge points at.
	Far(edge int) int

	// Boundary reports whether edge leaves the mesh and has no far entity.
	Boundary(edge int) bool
}

// HalfEdgeGraph is a Graph that also resolves the entity an edge leaves
// from, which path-reconstructing walks need.
type HalfEdgeGraph interface {
	Graph

	// Near returns the entity edge leaves from.
	Near(edge int) int
}

// indexGraph is an edge-less Graph of n entities.
type indexGraph int

// Indices returns a Graph of n entities without edges, for walks whose
// callback queues neighbors by index itself.
func Indices(n int) Graph {
	return indexGraph(n)
}

func (g indexGraph) Len() int { return int(g) }

func (indexGraph) Edges(int) iter.Seq[int] {
	return func(func(int) bool) {}
}

func (indexGraph) Far(int) int { return NoEdge }

func (indexGraph) Boundary(int) bool { return true }

// Reachable returns every entity reachable from roots through non-boundary
// edges, roots included.
func Reachable(g Graph, roots []int, opts ...Option) (*roaring.Bitmap, error) {
	res, err := Walk(g, roots, NewStack[int](), func(v *Visitor[int]) error {
		v.VisitAllNeighbors()
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return res.Visited.Snapshot(), nil
}
