// Package bfs provides breadth-first search over a walk.HalfEdgeGraph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/againey/MakeIt.Tile-sub003/walk"
)

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. On abort the partial result is returned
// together with the error.
func BFS(g walk.HalfEdgeGraph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartNotFound, start, n)
	}

	res := newResult(n)
	visit := func(v *walk.Visitor[int]) error {
		u, d := v.Entity(), v.Depth()
		res.Order = append(res.Order, u)
		res.Depth[u] = d
		if e := v.Edge(); e != walk.NoEdge {
			res.Parent[u] = g.Near(e)
			res.ParentEdge[u] = e
		}
		if err := o.OnVisit(u, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		for e := range g.Edges(u) {
			if g.Boundary(e) {
				continue
			}
			far := g.Far(e)
			if v.IsVisited(far) || !o.FilterNeighbor(u, far) {
				continue
			}
			v.VisitEdge(e)
		}
		return nil
	}

	_, err := walk.Walk(g, []int{start}, walk.BreadthFirst[int](), visit,
		walk.WithContext(o.Ctx),
		walk.WithLogger(o.Logger),
		walk.WithMaxDepth(o.MaxDepth),
		walk.WithOnEnqueue(o.OnEnqueue),
		walk.WithOnDequeue(o.OnDequeue),
	)
	if err != nil {
		return res, err
	}

	return res, nil
}
