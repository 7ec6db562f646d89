// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go: Grid(rows, cols): 4-neighborhood lattice with cell faces.
//
// Layout:
//   • Vertex (r,c) has index r*cols + c and sits at (c·scale, r·scale, 0).
//   • Each vertex ring lists, when present: east, north, west, south.
//   • One face per cell when rows ≥ 2 and cols ≥ 2; cell (r,c) has index
//     r*(cols-1) + c. Each face ring is south, east, north, west, with
//     topology.None where the cell touches the outer border.

package builder

import (
	"github.com/againey/MakeIt.Tile-sub003/distance"
	"github.com/againey/MakeIt.Tile-sub003/topology"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, ErrTooFewVertices,
				"rows=%d, cols=%d (each must be ≥ %d)", rows, cols, MinGridDim)
		}

		ps := make([]distance.Vector3, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ps = append(ps, distance.Vector3{X: float64(c) * cfg.scale, Y: float64(r) * cfg.scale})
			}
		}
		base := s.addVertices(ps...)
		vertex := func(r, c int) int { return base + r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := vertex(r, c)
				if c+1 < cols {
					s.vertices[u] = append(s.vertices[u], vertex(r, c+1))
				}
				if r+1 < rows {
					s.vertices[u] = append(s.vertices[u], vertex(r+1, c))
				}
				if c > 0 {
					s.vertices[u] = append(s.vertices[u], vertex(r, c-1))
				}
				if r > 0 {
					s.vertices[u] = append(s.vertices[u], vertex(r-1, c))
				}
			}
		}

		if rows < 2 || cols < 2 {
			return nil
		}
		fr, fc := rows-1, cols-1
		fbase := s.addFaces(fr * fc)
		face := func(r, c int) int {
			if r < 0 || r >= fr || c < 0 || c >= fc {
				return topology.None
			}
			return fbase + r*fc + c
		}
		for r := 0; r < fr; r++ {
			for c := 0; c < fc; c++ {
				s.faceRing(face(r, c), face(r-1, c), face(r, c+1), face(r+1, c), face(r, c-1))
			}
		}

		return nil
	}
}
