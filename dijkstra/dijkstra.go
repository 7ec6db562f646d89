// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// walk.HalfEdgeGraph with non-negative edge weights.
package dijkstra

import (
	"fmt"

	"github.com/againey/MakeIt.Tile-sub003/walk"
)

// Result holds the outcome of one Dijkstra run.
type Result[T walk.Number] struct {
	// Dist is the shortest distance per entity; zero for unreached entities.
	Dist []T

	// Prev is the predecessor entity on the shortest path, -1 for the source
	// and unreached entities. Nil unless WithReturnPath was given.
	Prev []int

	// PrevEdge is the edge the shortest path arrives through, -1 if none.
	// Nil unless WithReturnPath was given.
	PrevEdge []int

	reached *walk.Visited
}

// Reached reports whether entity's shortest distance was finalized.
func (r *Result[T]) Reached(entity int) bool { return r.reached.Has(entity) }

// PathTo returns the entities from the source to dest, inclusive.
// Requires WithReturnPath; returns ErrUnreachable if dest was not reached.
func (r *Result[T]) PathTo(dest int) ([]int, error) {
	if r.Prev == nil || !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}
	var path []int
	for cur := dest; cur >= 0; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Dijkstra computes shortest distances from the source entity to every
// reachable entity of g, where weight gives the length of each half-edge.
//
// It runs walk.Walk with a walk.NearestByEdge queue: the queue derives each
// item's distance from its parent's distance plus the edge weight, so pops
// come in non-decreasing distance. Improving a tentative distance pushes a
// new item; stale items are discarded by the walk's visited set (lazy
// decrease-key).
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph), weight non-nil (ErrNilWeight).
//  3. Source must be in range (ErrVertexNotFound).
//  4. No traversable edge may have a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Dijkstra[T walk.Number](g walk.HalfEdgeGraph, weight walk.EdgeDistance[T], opts ...Option) (*Result[T], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source < 0 {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if weight == nil {
		return nil, ErrNilWeight
	}
	n := g.Len()
	if cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexNotFound, cfg.Source, n)
	}

	// Pre-scan all edges to fail fast on negative weights.
	for u := 0; u < n; u++ {
		for e := range g.Edges(u) {
			if g.Boundary(e) {
				continue
			}
			if w := weight(e); w < 0 {
				return nil, fmt.Errorf("%w: edge %d (%d→%d) weight=%v", ErrNegativeWeight, e, u, g.Far(e), w)
			}
		}
	}

	res := &Result[T]{Dist: make([]T, n)}
	if cfg.ReturnPath {
		res.Prev = make([]int, n)
		res.PrevEdge = make([]int, n)
		for i := 0; i < n; i++ {
			res.Prev[i], res.PrevEdge[i] = -1, -1
		}
	}

	// best holds tentative distances; queued marks entities that have one.
	best := make([]T, n)
	queued := make([]bool, n)
	queued[cfg.Source] = true

	visit := func(v *walk.Visitor[T]) error {
		u, d := v.Entity(), v.Distance()
		if float64(d) > cfg.MaxDistance {
			// Pops are non-decreasing: nothing closer remains.
			v.Break()
			return nil
		}
		res.Dist[u] = d
		if cfg.ReturnPath {
			if e := v.Edge(); e != walk.NoEdge {
				res.Prev[u] = g.Near(e)
				res.PrevEdge[u] = e
			}
		}

		for e := range g.Edges(u) {
			if g.Boundary(e) {
				continue
			}
			w := weight(e)
			if float64(w) >= cfg.InfEdgeThreshold {
				continue
			}
			far := g.Far(e)
			if v.IsVisited(far) {
				continue
			}
			nd := d + w
			if queued[far] && nd >= best[far] {
				continue
			}
			best[far], queued[far] = nd, true
			v.VisitEdge(e)
		}
		return nil
	}

	wr, err := walk.Walk(g, []int{cfg.Source}, walk.NearestByEdge(weight), visit,
		walk.WithContext(cfg.Ctx),
		walk.WithLogger(cfg.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	res.reached = wr.Visited

	return res, nil
}
