// Package topology declares HalfEdge, Topology and the sentinel errors of
// topology construction.
package topology

import "errors"

// Sentinel errors for topology construction.
var (
	// ErrIndexOutOfRange indicates a neighbor index outside the entity range.
	ErrIndexOutOfRange = errors.New("topology: neighbor index out of range")

	// ErrLoopNotAllowed indicates an entity listed as its own neighbor.
	ErrLoopNotAllowed = errors.New("topology: self-loop not allowed")

	// ErrMissingTwin indicates a u→v entry without a matching v→u entry.
	ErrMissingTwin = errors.New("topology: half-edge has no twin")
)

// None is the index of a missing entity or edge.
const None = -1

// HalfEdge is one directed edge record.
type HalfEdge struct {
	Near int // entity the edge leaves from
	Far  int // entity the edge points at, None on a boundary
	Twin int // opposite half-edge, None on a boundary
	Next int // next edge around Near
	Prev int // previous edge around Near
}

// table is one half-edge table plus the first edge of each entity's ring.
type table struct {
	first []int
	edges []HalfEdge
}

// Topology is an immutable pair of vertex and face half-edge tables.
type Topology struct {
	vertices table
	faces    table
}

// VertexCount returns the number of vertices.
func (t *Topology) VertexCount() int { return len(t.vertices.first) }

// FaceCount returns the number of faces.
func (t *Topology) FaceCount() int { return len(t.faces.first) }

// VertexEdgeCount returns the number of vertex half-edges.
func (t *Topology) VertexEdgeCount() int { return len(t.vertices.edges) }

// FaceEdgeCount returns the number of face half-edges.
func (t *Topology) FaceEdgeCount() int { return len(t.faces.edges) }

// VertexHalfEdge returns the raw record of vertex edge e.
func (t *Topology) VertexHalfEdge(e int) HalfEdge { return t.vertices.edges[e] }

// FaceHalfEdge returns the raw record of face edge e.
func (t *Topology) FaceHalfEdge(e int) HalfEdge { return t.faces.edges[e] }
