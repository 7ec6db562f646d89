// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go: Cycle(n): vertices on a circle, linked i to (i+1) mod n.

package builder

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Vertices sit on a circle of radius scale, counter-clockwise from +X.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		base := s.addVertices(circle(n, cfg.scale)...)
		for i := 0; i < n; i++ {
			s.link(base+i, base+(i+1)%n)
		}

		return nil
	}
}
