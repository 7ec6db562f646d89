package topology

import "iter"

// Vertex references one vertex of a Topology.
type Vertex struct {
	topology *Topology
	index    int
}

// Vertex returns a reference to vertex i.
func (t *Topology) Vertex(i int) Vertex { return Vertex{topology: t, index: i} }

// Index returns the vertex index.
func (v Vertex) Index() int { return v.index }

// Topology returns the owning topology.
func (v Vertex) Topology() *Topology { return v.topology }

// Equal compares by index only.
func (v Vertex) Equal(o Vertex) bool { return v.index == o.index }

// NeighborCount returns the number of edges around v.
func (v Vertex) NeighborCount() int { return v.topology.vertices.degree(v.index) }

// FirstEdge returns the first edge of v's ring; ok is false for an isolated vertex.
func (v Vertex) FirstEdge() (VertexEdge, bool) {
	e := v.topology.vertices.first[v.index]
	return VertexEdge{topology: v.topology, index: e}, e != None
}

// Edges yields the edges leaving v in ring order.
func (v Vertex) Edges() iter.Seq[VertexEdge] {
	return func(yield func(VertexEdge) bool) {
		for e := range v.topology.vertices.ring(v.index) {
			if !yield(VertexEdge{topology: v.topology, index: e}) {
				return
			}
		}
	}
}

// Face references one face of a Topology.
type Face struct {
	topology *Topology
	index    int
}

// Face returns a reference to face i.
func (t *Topology) Face(i int) Face { return Face{topology: t, index: i} }

// Index returns the face index.
func (f Face) Index() int { return f.index }

// Topology returns the owning topology.
func (f Face) Topology() *Topology { return f.topology }

// Equal compares by index only.
func (f Face) Equal(o Face) bool { return f.index == o.index }

// NeighborCount returns the number of edges around f, boundary edges included.
func (f Face) NeighborCount() int { return f.topology.faces.degree(f.index) }

// FirstEdge returns the first edge of f's ring; ok is false for a face without edges.
func (f Face) FirstEdge() (FaceEdge, bool) {
	e := f.topology.faces.first[f.index]
	return FaceEdge{topology: f.topology, index: e}, e != None
}

// Edges yields the edges around f in ring order.
func (f Face) Edges() iter.Seq[FaceEdge] {
	return func(yield func(FaceEdge) bool) {
		for e := range f.topology.faces.ring(f.index) {
			if !yield(FaceEdge{topology: f.topology, index: e}) {
				return
			}
		}
	}
}

// VertexEdge references one vertex half-edge.
type VertexEdge struct {
	topology *Topology
	index    int
}

// VertexEdge returns a reference to vertex edge i.
func (t *Topology) VertexEdge(i int) VertexEdge { return VertexEdge{topology: t, index: i} }

// Index returns the edge index.
func (e VertexEdge) Index() int { return e.index }

// Equal compares by index only.
func (e VertexEdge) Equal(o VertexEdge) bool { return e.index == o.index }

func (e VertexEdge) rec() HalfEdge { return e.topology.vertices.edges[e.index] }

// NearVertex returns the vertex e leaves from.
func (e VertexEdge) NearVertex() Vertex { return e.topology.Vertex(e.rec().Near) }

// FarVertex returns the vertex e points at.
func (e VertexEdge) FarVertex() Vertex { return e.topology.Vertex(e.rec().Far) }

// Twin returns the opposite edge.
func (e VertexEdge) Twin() VertexEdge { return e.topology.VertexEdge(e.rec().Twin) }

// Next returns the following edge around the near vertex.
func (e VertexEdge) Next() VertexEdge { return e.topology.VertexEdge(e.rec().Next) }

// Prev returns the preceding edge around the near vertex.
func (e VertexEdge) Prev() VertexEdge { return e.topology.VertexEdge(e.rec().Prev) }

// FaceEdge references one face half-edge.
type FaceEdge struct {
	topology *Topology
	index    int
}

// FaceEdge returns a reference to face edge i.
func (t *Topology) FaceEdge(i int) FaceEdge { return FaceEdge{topology: t, index: i} }

// Index returns the edge index.
func (e FaceEdge) Index() int { return e.index }

// Equal compares by index only.
func (e FaceEdge) Equal(o FaceEdge) bool { return e.index == o.index }

func (e FaceEdge) rec() HalfEdge { return e.topology.faces.edges[e.index] }

// IsBoundary reports whether e leaves the mesh.
func (e FaceEdge) IsBoundary() bool { return e.rec().Far == None }

// NearFace returns the face e leaves from.
func (e FaceEdge) NearFace() Face { return e.topology.Face(e.rec().Near) }

// FarFace returns the face e points at; ok is false on a boundary.
func (e FaceEdge) FarFace() (Face, bool) {
	far := e.rec().Far
	return e.topology.Face(far), far != None
}

// Twin returns the opposite edge; ok is false on a boundary.
func (e FaceEdge) Twin() (FaceEdge, bool) {
	tw := e.rec().Twin
	return e.topology.FaceEdge(tw), tw != None
}

// Next returns the following edge around the near face.
func (e FaceEdge) Next() FaceEdge { return e.topology.FaceEdge(e.rec().Next) }

// Prev returns the preceding edge around the near face.
func (e FaceEdge) Prev() FaceEdge { return e.topology.FaceEdge(e.rec().Prev) }
