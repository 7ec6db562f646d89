// Package bfs provides a breadth-first search over a walk.HalfEdgeGraph
// (the vertex or face view of a topology.Topology), returning unweighted
// shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore entities in non-decreasing distance (edge count) from a start entity.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: entity → distance (edges) from start, -1 if unreached
//   - Parent / ParentEdge: predecessor entity and edge in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (an entity is queued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Boundary face edges are never followed.
//
// Implementation
//
//	BFS is a thin front-end over walk.Walk with a walk.BreadthFirst queue.
//	Neighbors are queued through their edge, so the edge an entity was first
//	reached through becomes its ParentEdge. An entity may be queued more than
//	once; the walk's visited set drops the later copies.
//
// Determinism
//
//	Neighbors are queued in ring order and depth ties pop first-in first-out,
//	so the visit sequence is fully reproducible for a given topology.
//
// Complexity (V = entities, E = half-edges)
//
//   - Time:   O((V + E) log E)   (heap-backed queue)
//   - Memory: O(V + E)
//
// Usage
//
//	res, err := bfs.BFS(topo.VertexGraph(), 0,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(7)
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrStartNotFound    if the start index is out of range.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from PathTo for an unreached entity.
//   - context errors and wrapped OnVisit errors.
package bfs
