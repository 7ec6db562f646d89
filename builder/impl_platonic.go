// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_platonic.go: PlatonicSolid(name): the five regular polyhedra.
//
// Model:
//   • Vertices are the canonical coordinates of the solid, normalized onto a
//     sphere of radius scale, in the order listed in platonicVertices.
//   • Two vertices are linked when their distance equals the minimum pairwise
//     distance (the edge length). Rings are in ascending neighbor order.
//   • Faces are the vertices of the dual solid, linked the same way, so every
//     face ring is closed (no boundary).

package builder

import (
	"fmt"
	"math"
	"strings"

	"github.com/againey/MakeIt.Tile-sub003/distance"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4
	Cube                             // V=8,  E=12, F=6
	Octahedron                       // V=6,  E=12, F=8
	Dodecahedron                     // V=20, E=30, F=12
	Icosahedron                      // V=12, E=30, F=20
)

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonicName resolves a case-insensitive solid name.
func ParsePlatonicName(s string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, builderErrorf(MethodPlatonicSolid, ErrUnknownSolid, "%q", s)
}

// dual maps each solid to the solid whose vertices are its faces.
var dual = map[PlatonicName]PlatonicName{
	Tetrahedron:  Tetrahedron,
	Cube:         Octahedron,
	Octahedron:   Cube,
	Dodecahedron: Icosahedron,
	Icosahedron:  Dodecahedron,
}

// platonicVertices returns the canonical (unnormalized) coordinates.
func platonicVertices(name PlatonicName) []distance.Vector3 {
	phi := (1 + math.Sqrt(5)) / 2
	var ps []distance.Vector3
	signs := []float64{1, -1}
	switch name {
	case Tetrahedron:
		ps = []distance.Vector3{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}}
	case Cube:
		for _, x := range signs {
			for _, y := range signs {
				for _, z := range signs {
					ps = append(ps, distance.Vector3{X: x, Y: y, Z: z})
				}
			}
		}
	case Octahedron:
		for _, a := range signs {
			ps = append(ps, distance.Vector3{X: a}, distance.Vector3{Y: a}, distance.Vector3{Z: a})
		}
	case Icosahedron:
		for _, a := range signs {
			for _, b := range signs {
				ps = append(ps,
					distance.Vector3{Y: a, Z: b * phi},
					distance.Vector3{X: a, Y: b * phi},
					distance.Vector3{X: b * phi, Z: a})
			}
		}
	case Dodecahedron:
		ps = platonicVertices(Cube)
		for _, a := range signs {
			for _, b := range signs {
				ps = append(ps,
					distance.Vector3{Y: a / phi, Z: b * phi},
					distance.Vector3{X: a / phi, Y: b * phi},
					distance.Vector3{X: b * phi, Z: a / phi})
			}
		}
	}
	return ps
}

// nearestPairs returns, per point, the ascending indices of the points at the
// minimum pairwise distance.
func nearestPairs(ps []distance.Vector3) [][]int {
	const tolerance = 1e-9
	minDist := math.Inf(1)
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			minDist = math.Min(minDist, ps[i].Sub(ps[j]).Length())
		}
	}
	rings := make([][]int, len(ps))
	for i := range ps {
		for j := range ps {
			if i != j && math.Abs(ps[i].Sub(ps[j]).Length()-minDist) <= tolerance*minDist {
				rings[i] = append(rings[i], j)
			}
		}
	}
	return rings
}

// PlatonicSolid returns a Constructor for the named solid.
// Unknown names yield ErrUnknownSolid.
// Complexity: O(V²) with V ≤ 20.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		d, ok := dual[name]
		if !ok {
			return fmt.Errorf("%s: %d: %w", MethodPlatonicSolid, int(name), ErrUnknownSolid)
		}

		ps := platonicVertices(name)
		for i := range ps {
			ps[i] = ps[i].Normalized().Scale(cfg.scale)
		}
		base := s.addVertices(ps...)
		for i, ring := range nearestPairs(ps) {
			for _, j := range ring {
				s.vertices[base+i] = append(s.vertices[base+i], base+j)
			}
		}

		faceRings := nearestPairs(platonicVertices(d))
		fbase := s.addFaces(len(faceRings))
		for f, ring := range faceRings {
			for _, g := range ring {
				s.faceRing(fbase+f, fbase+g)
			}
		}

		return nil
	}
}
