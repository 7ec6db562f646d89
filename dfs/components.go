package dfs

import (
	"context"

	"github.com/againey/MakeIt.Tile-sub003/walk"
)

// ComponentsResult labels every entity with its connected component.
type ComponentsResult struct {
	// Label maps each entity to its component, numbered in discovery order.
	Label []int

	// Sizes holds the entity count of each component.
	Sizes []int

	// HalfEdges holds the non-boundary half-edge count of each component.
	HalfEdges []int
}

// Count returns the number of components.
func (r *ComponentsResult) Count() int { return len(r.Sizes) }

// Cyclic reports whether component c contains a cycle. Half-edges come in
// twin pairs, so a component is a tree exactly when it has Sizes[c]-1 pairs.
func (r *ComponentsResult) Cyclic(c int) bool { return r.HalfEdges[c]/2 >= r.Sizes[c] }

// Components labels the connected components of g with a single depth-first
// walk rooted at every entity. A popped entity reached without an edge starts
// a new component; any other entity inherits the label of the entity that
// queued it.
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
func Components(ctx context.Context, g walk.HalfEdgeGraph) (*ComponentsResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.Len()
	res := &ComponentsResult{Label: make([]int, n)}
	roots := make([]int, n)
	for i := range roots {
		roots[i] = i
		res.Label[i] = -1
	}

	visit := func(v *walk.Visitor[int]) error {
		u := v.Entity()
		var c int
		if e := v.Edge(); e == walk.NoEdge {
			c = len(res.Sizes)
			res.Sizes = append(res.Sizes, 0)
			res.HalfEdges = append(res.HalfEdges, 0)
		} else {
			c = res.Label[g.Near(e)]
		}
		res.Label[u] = c
		res.Sizes[c]++
		for e := range g.Edges(u) {
			if !g.Boundary(e) {
				res.HalfEdges[c]++
			}
		}
		v.VisitAllNeighbors()
		return nil
	}

	if _, err := walk.Walk(g, roots, walk.DepthFirst[int](), visit, walk.WithContext(ctx)); err != nil {
		return nil, err
	}

	return res, nil
}

// HasCycle reports whether any component of g contains a cycle.
func HasCycle(ctx context.Context, g walk.HalfEdgeGraph) (bool, error) {
	res, err := Components(ctx, g)
	if err != nil {
		return false, err
	}
	for c := 0; c < res.Count(); c++ {
		if res.Cyclic(c) {
			return true, nil
		}
	}
	return false, nil
}
