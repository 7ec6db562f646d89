package topology

import (
	"fmt"
	"iter"
)

// pair identifies all half-edges running from one entity to another.
type pair struct{ near, far int }

// New builds a Topology from per-entity neighbor rings.
//
// vertexNeighbors[u] lists the vertices adjacent to u in ring order; every
// entry must be in range. faceNeighbors[f] lists the faces adjacent to f in
// ring order; an entry of None marks a boundary edge. Either slice may be nil.
//
// Parallel entries are allowed: the k-th u→v edge is twinned with the k-th
// v→u edge.
//
// Complexity: O(V + F + E) time and memory.
func New(vertexNeighbors, faceNeighbors [][]int) (*Topology, error) {
	vt, err := buildTable(vertexNeighbors, false)
	if err != nil {
		return nil, fmt.Errorf("vertices: %w", err)
	}
	ft, err := buildTable(faceNeighbors, true)
	if err != nil {
		return nil, fmt.Errorf("faces: %w", err)
	}
	return &Topology{vertices: vt, faces: ft}, nil
}

// buildTable lays out half-edges contiguously per entity, rings them with
// Next/Prev and pairs twins.
func buildTable(neighbors [][]int, allowBoundary bool) (table, error) {
	n := len(neighbors)
	total := 0
	for _, ring := range neighbors {
		total += len(ring)
	}
	t := table{
		first: make([]int, n),
		edges: make([]HalfEdge, 0, total),
	}

	byPair := make(map[pair][]int, total)
	for u, ring := range neighbors {
		if len(ring) == 0 {
			t.first[u] = None
			continue
		}
		base := len(t.edges)
		t.first[u] = base
		k := len(ring)
		for i, v := range ring {
			switch {
			case v == None && allowBoundary:
			case v < 0 || v >= n:
				return table{}, fmt.Errorf("%w: %d→%d with %d entities", ErrIndexOutOfRange, u, v, n)
			case v == u:
				return table{}, fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
			}
			e := base + i
			t.edges = append(t.edges, HalfEdge{
				Near: u,
				Far:  v,
				Twin: None,
				Next: base + (i+1)%k,
				Prev: base + (i+k-1)%k,
			})
			if v != None {
				byPair[pair{u, v}] = append(byPair[pair{u, v}], e)
			}
		}
	}

	for p, es := range byPair {
		back := byPair[pair{p.far, p.near}]
		if len(back) != len(es) {
			return table{}, fmt.Errorf("%w: %d→%d appears %d times, %d→%d appears %d times",
				ErrMissingTwin, p.near, p.far, len(es), p.far, p.near, len(back))
		}
		for k, e := range es {
			t.edges[e].Twin = back[k]
		}
	}

	return t, nil
}

// ring yields the edges around entity, starting at its first edge.
func (t *table) ring(entity int) iter.Seq[int] {
	return func(yield func(int) bool) {
		start := t.first[entity]
		if start == None {
			return
		}
		for e := start; ; {
			if !yield(e) {
				return
			}
			e = t.edges[e].Next
			if e == start {
				return
			}
		}
	}
}

// degree returns the number of edges around entity.
func (t *table) degree(entity int) int {
	d := 0
	for range t.ring(entity) {
		d++
	}
	return d
}
