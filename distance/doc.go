// Package distance provides edge distance sources for distance-aware walks.
//
// Every source returns a walk.EdgeDistance: a pure function from an edge
// index to its length. The engine only adds and compares the results.
//
// # Sources
//
//   - Edge:      per-edge attribute lookup (edge-indexed slice)
//   - Far:       attribute of the entity the edge points at
//   - Euclidean: straight-line distance between the two endpoint positions
//   - Spherical: great-circle distance between the two endpoint positions
//     projected on a sphere of the given radius
//   - Constant:  the same length for every edge
//   - Convert:   adapts a source to another numeric type
//
// # Usage
//
//	g := topo.VertexGraph()
//	q := walk.NearestByEdge(distance.Euclidean(g, positions))
package distance
