// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi-like sampling.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices), p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   • Pairs (i,j), i < j, are tried in lexicographic order; one draw each.

package builder

// RandomSparse returns a Constructor that links each unordered pair with
// probability p. Vertices sit on a circle of radius scale.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%g", p)
		}

		base := s.addVertices(circle(n, cfg.scale)...)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch p {
				case MinProbability:
					keep = false
				case MaxProbability:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					s.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}
