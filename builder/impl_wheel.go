// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go: Wheel(n): a rim cycle of n-1 vertices plus a hub.

package builder

import (
	"github.com/againey/MakeIt.Tile-sub003/distance"
)

// Wheel returns a Constructor for W_n (n ≥ 4): hub CenterVertex at the
// origin, rim 1..n-1 on a circle of radius scale. Each rim vertex lists its
// rim neighbors before the hub.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		hub := s.addVertices(distance.Vector3{})
		rim := n - 1
		base := s.addVertices(circle(rim, cfg.scale)...)
		for i := 0; i < rim; i++ {
			s.link(base+i, base+(i+1)%rim)
		}
		for i := 0; i < rim; i++ {
			s.link(base+i, hub)
		}

		return nil
	}
}
