// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go: Complete(n): every unordered pair linked once.

package builder

// Complete returns a Constructor for K_n (n ≥ 1), vertices on a circle of
// radius scale. Pairs are linked in lexicographic (i, j) order, i < j.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		base := s.addVertices(circle(n, cfg.scale)...)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.link(base+i, base+j)
			}
		}

		return nil
	}
}
