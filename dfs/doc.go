// Package dfs implements depth-first traversal and connected-component
// labeling over a walk.HalfEdgeGraph (the vertex or face view of a
// topology.Topology).
//
// What:
//
//   - DFS: explores as deep as possible along each branch before moving to
//     the next sibling. Supports:
//   - Pre-order visit hook
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Full (forest) traversal
//   - Components: labels connected components in one walk, with per-component
//     entity and half-edge counts.
//   - HasCycle: reports whether any component has more edges than a tree.
//
// Implementation:
//
//	Both operations run on walk.Walk with a walk.DepthFirst queue, which pops
//	the deepest queued entity first. This is the comparator approximation of
//	DFS: there is no recursion stack and no post-order.
//
// Complexity:
//
//   - DFS:        Time O((V+E) log E), Memory O(V+E)
//   - Components: Time O((V+E) log E), Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil       graph is nil
//   - ErrStartNotFound  start index not in graph
//   - context.Canceled  walk canceled via context
//   - hook errors       propagated from OnVisit
package dfs
