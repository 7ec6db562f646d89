// Package dfs implements depth-first traversal and connected components on
// a walk.HalfEdgeGraph.
package dfs

import (
	"fmt"

	"github.com/againey/MakeIt.Tile-sub003/walk"
)

// DFS performs a depth-first traversal of g starting from start.
//
// The walk pops the deepest queued entity first (walk.DepthFirst); depth ties
// pop in push order. This approximates recursive DFS: sibling subtrees are
// explored one after another, but an entity is parented by the first
// neighbor that queued it at the greatest depth.
//
// Errors:
//   - ErrGraphNil, ErrStartNotFound for invalid input.
//   - context errors and wrapped OnVisit errors; the partial result is
//     returned alongside.
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
func DFS(g walk.HalfEdgeGraph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartNotFound, start, n)
	}

	roots := []int{start}
	if o.FullTraversal {
		for i := 0; i < n; i++ {
			if i != start {
				roots = append(roots, i)
			}
		}
	}

	res := &DFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i], res.Parent[i] = -1, -1
	}

	visit := func(v *walk.Visitor[int]) error {
		u, d := v.Entity(), v.Depth()
		res.Order = append(res.Order, u)
		res.Depth[u] = d
		if e := v.Edge(); e != walk.NoEdge {
			res.Parent[u] = g.Near(e)
		}
		if o.OnVisit != nil {
			if err := o.OnVisit(u); err != nil {
				return fmt.Errorf("dfs: OnVisit(%d): %w", u, err)
			}
		}
		if o.MaxDepth >= 0 && d >= o.MaxDepth {
			return nil
		}
		for e := range g.Edges(u) {
			if g.Boundary(e) {
				continue
			}
			far := g.Far(e)
			if v.IsVisited(far) {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(far) {
				res.SkippedNeighbors++
				continue
			}
			v.VisitEdge(e)
		}
		return nil
	}

	wr, err := walk.Walk(g, roots, walk.DepthFirst[int](), visit,
		walk.WithContext(o.Ctx),
		walk.WithLogger(o.Logger),
	)
	if wr != nil {
		res.Visited = wr.Visited.Snapshot()
	}

	return res, err
}
