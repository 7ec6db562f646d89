// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil              (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn  (every edge weighs DefaultEdgeWeight)
//   • scale    = 1.0              (unit spacing / unit radius)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator, drawn once per twin pair of vertex edges.
	weightFn WeightFn
	// Positions are multiplied by scale (grid spacing, circle/sphere radius).
	scale float64
}

const defaultScale = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		scale:    defaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
