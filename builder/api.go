// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go: public entry-point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order
//     against a shared sketch, freezes the sketch into a topology.Topology.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical fixtures.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/againey/MakeIt.Tile-sub003/distance"
	"github.com/againey/MakeIt.Tile-sub003/topology"
)

// Constructor appends one component to the sketch using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Address only the vertices and faces they added themselves.
//   - Preserve determinism for the same config and call order.
type Constructor func(s *sketch, cfg builderConfig) error

// Fixture is a built topology plus the per-entity attributes the distance
// sources need.
type Fixture struct {
	// Topology holds the vertex and face half-edge tables.
	Topology *topology.Topology
	// Positions is indexed by vertex.
	Positions []distance.Vector3
	// Weights is indexed by vertex edge; twin edges share one weight.
	Weights []float64
}

// Build resolves the builder configuration from bopts, applies all
// constructors in order and freezes the result.
// Any constructor error is wrapped with "Build: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor plus O(V + F + E) to freeze.
func Build(bopts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sketch{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	t, err := topology.New(s.vertices, s.faces)
	if err != nil {
		return nil, fmt.Errorf("Build: %v: %w", err, ErrConstructFailed)
	}

	// One draw per twin pair, in edge index order.
	g := t.VertexGraph()
	weights := make([]float64, g.EdgeCount())
	for e := range weights {
		if tw := g.Twin(e); tw < e {
			weights[e] = weights[tw]
			continue
		}
		weights[e] = cfg.weightFn(cfg.rng)
	}

	return &Fixture{Topology: t, Positions: s.positions, Weights: weights}, nil
}
