package topology

import "iter"

// VertexGraph is the vertex adjacency of a Topology seen as a walk.Graph.
type VertexGraph struct {
	t *table
}

// VertexGraph returns the vertex adjacency view.
func (t *Topology) VertexGraph() VertexGraph { return VertexGraph{t: &t.vertices} }

// Len returns the vertex count.
func (g VertexGraph) Len() int { return len(g.t.first) }

// Edges yields the vertex edges leaving vertex.
func (g VertexGraph) Edges(vertex int) iter.Seq[int] { return g.t.ring(vertex) }

// Near returns the vertex edge leaves from.
func (g VertexGraph) Near(edge int) int { return g.t.edges[edge].Near }

// Far returns the vertex edge points at.
func (g VertexGraph) Far(edge int) int { return g.t.edges[edge].Far }

// Twin returns the opposite vertex edge.
func (g VertexGraph) Twin(edge int) int { return g.t.edges[edge].Twin }

// Boundary is always false: every vertex edge has a far vertex.
func (g VertexGraph) Boundary(edge int) bool { return false }

// EdgeCount returns the number of vertex edges.
func (g VertexGraph) EdgeCount() int { return len(g.t.edges) }

// FaceGraph is the face adjacency of a Topology seen as a walk.Graph.
type FaceGraph struct {
	t *table
}

// FaceGraph returns the face adjacency view.
func (t *Topology) FaceGraph() FaceGraph { return FaceGraph{t: &t.faces} }

// Len returns the face count.
func (g FaceGraph) Len() int { return len(g.t.first) }

// Edges yields the face edges around face, boundary edges included.
func (g FaceGraph) Edges(face int) iter.Seq[int] { return g.t.ring(face) }

// Near returns the face edge leaves from.
func (g FaceGraph) Near(edge int) int { return g.t.edges[edge].Near }

// Far returns the face edge points at, None on a boundary.
func (g FaceGraph) Far(edge int) int { return g.t.edges[edge].Far }

// Twin returns the opposite face edge, None on a boundary.
func (g FaceGraph) Twin(edge int) int { return g.t.edges[edge].Twin }

// Boundary reports whether edge leaves the mesh.
func (g FaceGraph) Boundary(edge int) bool { return g.t.edges[edge].Far == None }

// EdgeCount returns the number of face edges.
func (g FaceGraph) EdgeCount() int { return len(g.t.edges) }
