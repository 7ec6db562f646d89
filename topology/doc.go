// Package topology holds an immutable, index-based half-edge topology: the
// adjacency a walk runs over.
//
// Two half-edge tables are kept side by side:
//
//   - vertex edges: Near vertex → Far vertex, linked into a ring around the
//     near vertex by Next/Prev, paired with the opposite edge by Twin.
//   - face edges:   Near face → Far face, ringed around the near face. A face
//     edge whose Far is None lies on the mesh boundary and has no Twin.
//
// Entities and edges are plain indices. Vertex, Face, VertexEdge and FaceEdge
// are lightweight references (topology pointer + index) compared by index.
//
// Construction
//
//	t, err := topology.New(vertexNeighbors, faceNeighbors)
//
// takes, per entity, its neighbors in ring order. Each listed pair u→v must
// be matched by a v→u entry (ErrMissingTwin); self references are rejected
// (ErrLoopNotAllowed); indices must be in range (ErrIndexOutOfRange). Face
// neighbor lists may contain None to mark a boundary edge.
//
// Walking
//
//	t.VertexGraph() and t.FaceGraph() satisfy walk.Graph.
//
// Concurrency
//
//	A Topology is read-only after New; any number of goroutines may walk it.
package topology
