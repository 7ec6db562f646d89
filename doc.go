// Package tile is an in-memory traversal engine for index-based half-edge
// topologies: vertex and face adjacency stored as integer-indexed
// half-edge tables, walked in a caller-chosen order.
//
// The module is organized as:
//
//	topology/    immutable vertex and face half-edge tables, entity refs, graph views
//	walk/        the generic walk driver, queue backends, visited set, visitor
//	distance/    edge distance sources (attribute, euclidean, spherical)
//	bfs/         breadth-first front-end with parents and path reconstruction
//	dfs/         depth-first front-end, connected components, cycle detection
//	dijkstra/    nearest-first shortest distances with lazy decrease-key
//	builder/     deterministic fixture topologies (path, grid, platonic solids…)
//	cmd/meshwalk command-line front-end over YAML fixtures and builders
//
// Quick example: the square
//
//	0───1
//	│   │
//	3───2
//
// walked breadth-first from 0 visits 0, then 1 and 3 at depth 1, then 2.
package tile
