// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go: Path(n): vertices 0..n-1 on the X axis, linked i-i+1.

package builder

import (
	"github.com/againey/MakeIt.Tile-sub003/distance"
)

// Path returns a Constructor for the simple path P_n (n ≥ 2).
// Vertex i sits at (i·scale, 0, 0).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ps := make([]distance.Vector3, n)
		for i := range ps {
			ps[i] = distance.Vector3{X: float64(i) * cfg.scale}
		}
		base := s.addVertices(ps...)
		for i := 0; i+1 < n; i++ {
			s.link(base+i, base+i+1)
		}

		return nil
	}
}
