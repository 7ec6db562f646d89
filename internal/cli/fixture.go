package cli

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/againey/MakeIt.Tile-sub003/builder"
	"github.com/againey/MakeIt.Tile-sub003/distance"
	"github.com/againey/MakeIt.Tile-sub003/topology"
)

// fixtureFile is the YAML layout of a topology fixture:
//
//	vertices: [[1, 2], [0, 2], [0, 1]]   # neighbor ring per vertex
//	faces: [[-1, -1, -1]]                # neighbor ring per face, -1 = boundary
//	positions: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
//	weights: [1, 1, 2, 2, 1, 1]          # one per vertex edge, ring order
//
// Only vertices is required.
type fixtureFile struct {
	Vertices  [][]int     `yaml:"vertices"`
	Faces     [][]int     `yaml:"faces"`
	Positions [][]float64 `yaml:"positions"`
	Weights   []float64   `yaml:"weights"`
}

// loadFixture reads and validates a YAML fixture file.
func loadFixture(path string) (*builder.Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return decodeFixture(data)
}

// decodeFixture parses fixture YAML into a frozen topology plus attributes.
// Missing weights default to builder.DefaultEdgeWeight.
func decodeFixture(data []byte) (*builder.Fixture, error) {
	var ff fixtureFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFixture, err)
	}
	if len(ff.Vertices) == 0 {
		return nil, fmt.Errorf("%w: no vertices", ErrBadFixture)
	}

	topo, err := topology.New(ff.Vertices, ff.Faces)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFixture, err)
	}

	fx := &builder.Fixture{Topology: topo}

	if len(ff.Positions) > 0 {
		if len(ff.Positions) != topo.VertexCount() {
			return nil, fmt.Errorf("%w: %d positions for %d vertices",
				ErrBadFixture, len(ff.Positions), topo.VertexCount())
		}
		fx.Positions = make([]distance.Vector3, len(ff.Positions))
		for i, p := range ff.Positions {
			if len(p) != 3 {
				return nil, fmt.Errorf("%w: position %d has %d coordinates", ErrBadFixture, i, len(p))
			}
			fx.Positions[i] = distance.Vector3{X: p[0], Y: p[1], Z: p[2]}
		}
	}

	switch {
	case len(ff.Weights) == 0:
		fx.Weights = make([]float64, topo.VertexEdgeCount())
		for i := range fx.Weights {
			fx.Weights[i] = builder.DefaultEdgeWeight
		}
	case len(ff.Weights) != topo.VertexEdgeCount():
		return nil, fmt.Errorf("%w: %d weights for %d vertex edges",
			ErrBadFixture, len(ff.Weights), topo.VertexEdgeCount())
	default:
		for i, w := range ff.Weights {
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("%w: weight %d is negative or NaN (%g)", ErrBadFixture, i, w)
			}
		}
		fx.Weights = ff.Weights
	}

	return fx, nil
}
