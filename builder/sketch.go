// SPDX-License-Identifier: MIT
// Package: builder
//
// sketch.go: mutable neighbor rings collected before freezing.

package builder

import (
	"math"

	"github.com/againey/MakeIt.Tile-sub003/distance"
)

// sketch accumulates neighbor rings and positions for topology.New.
type sketch struct {
	vertices  [][]int
	faces     [][]int
	positions []distance.Vector3
}

// addVertices appends one vertex per position and returns the index of the
// first one.
func (s *sketch) addVertices(ps ...distance.Vector3) int {
	base := len(s.vertices)
	for _, p := range ps {
		s.vertices = append(s.vertices, nil)
		s.positions = append(s.positions, p)
	}
	return base
}

// addFaces appends n faces with empty rings and returns the index of the
// first one.
func (s *sketch) addFaces(n int) int {
	base := len(s.faces)
	for i := 0; i < n; i++ {
		s.faces = append(s.faces, nil)
	}
	return base
}

// link adds the twin pair u→v, v→u to the vertex rings.
func (s *sketch) link(u, v int) {
	s.vertices[u] = append(s.vertices[u], v)
	s.vertices[v] = append(s.vertices[v], u)
}

// faceRing appends neighbors, in order, to the ring of face f.
// topology.None marks a boundary edge. The caller keeps the rings symmetric.
func (s *sketch) faceRing(f int, neighbors ...int) {
	s.faces[f] = append(s.faces[f], neighbors...)
}

// circle returns n points evenly spaced on a circle of radius r in the XY plane.
func circle(n int, r float64) []distance.Vector3 {
	ps := make([]distance.Vector3, n)
	for i := range ps {
		a := 2 * math.Pi * float64(i) / float64(n)
		ps[i] = distance.Vector3{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return ps
}
