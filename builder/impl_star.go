// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go: Star(n): hub CenterVertex plus n-1 leaves.

package builder

import (
	"github.com/againey/MakeIt.Tile-sub003/distance"
)

// Star returns a Constructor for the star S_n (n ≥ 2): the hub at the
// origin, leaves 1..n-1 on a circle of radius scale, hub-leaf edges only.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		hub := s.addVertices(distance.Vector3{})
		leaves := s.addVertices(circle(n-1, cfg.scale)...)
		for i := 0; i < n-1; i++ {
			s.link(hub, leaves+i)
		}

		return nil
	}
}
