// Package dijkstra computes single-source shortest paths over the vertex or
// face adjacency of a topology, for any numeric weight type.
//
// Weights come from a walk.EdgeDistance: a per-edge slice (distance.Edge),
// the geometric length of the edge (distance.Euclidean, distance.Spherical),
// or any caller-supplied function. Twin half-edges may carry different
// weights; the walk follows half-edges as given.
//
// Dijkstra processes entities in order of increasing distance using
// walk.NearestByEdge, relaxing edges and pushing improved tentative
// distances (lazy decrease-key).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - All edges are scanned upfront (O(E)) to detect negative weights and fail fast.
//   - Any edge with weight ≥ InfEdgeThreshold is treated as an impassable wall.
//   - Exploration stops once the nearest queued distance exceeds MaxDistance.
//
// Example:
//
//	g := topo.VertexGraph()
//	res, err := dijkstra.Dijkstra(g, distance.Euclidean(g, positions),
//	    dijkstra.Source(0), dijkstra.WithReturnPath())
//	path, _ := res.PathTo(7)
package dijkstra
