package cli

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/againey/MakeIt.Tile-sub003/builder"
	"github.com/againey/MakeIt.Tile-sub003/distance"
	"github.com/againey/MakeIt.Tile-sub003/walk"
)

// sourceFlags selects the topology, the entity kind and the edge metric
// shared by every command.
type sourceFlags struct {
	fixture  string
	builders []string
	weights  string
	seed     int64
	scale    float64
	faces    bool
	metric   string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.fixture, "fixture", "", "YAML topology fixture file")
	fl.StringArrayVar(&f.builders, "builder", nil,
		"builder spec, repeat to add components (path:N cycle:N star:N wheel:N complete:N grid:RxC platonic:NAME random:N:P)")
	fl.StringVar(&f.weights, "weights", "unit", "builder edge weights (unit const:W uniform:MIN:MAX normal:MEAN:SD exp:RATE)")
	fl.Int64Var(&f.seed, "seed", 1, "random seed for builders, weights and the random order")
	fl.Float64Var(&f.scale, "scale", 1, "builder position scale")
	fl.BoolVar(&f.faces, "faces", false, "walk faces instead of vertices")
	fl.StringVar(&f.metric, "distance", "unit", "edge distance (unit weight euclidean spherical)")
}

// load builds or reads the fixture.
func (f *sourceFlags) load() (*builder.Fixture, error) {
	switch {
	case f.fixture != "" && len(f.builders) > 0:
		return nil, ErrTwoSources
	case f.fixture != "":
		return loadFixture(f.fixture)
	case len(f.builders) == 0:
		return nil, ErrNoSource
	}

	if f.scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be > 0, got %g", ErrBadSpec, f.scale)
	}
	wopt, err := parseWeights(f.weights)
	if err != nil {
		return nil, err
	}
	cons := make([]builder.Constructor, 0, len(f.builders))
	for _, spec := range f.builders {
		c, err := parseBuilder(spec)
		if err != nil {
			return nil, err
		}
		cons = append(cons, c)
	}
	return builder.Build([]builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithScale(f.scale),
		wopt,
	}, cons...)
}

// graph returns the vertex or face view of fx.
func (f *sourceFlags) graph(fx *builder.Fixture) walk.HalfEdgeGraph {
	if f.faces {
		return fx.Topology.FaceGraph()
	}
	return fx.Topology.VertexGraph()
}

// edgeDistance resolves --distance against fx and g.
// Only unit distance is defined on faces, which carry no attributes.
func (f *sourceFlags) edgeDistance(fx *builder.Fixture, g walk.HalfEdgeGraph) (walk.EdgeDistance[float64], error) {
	metric := strings.ToLower(f.metric)
	if metric == "unit" {
		return distance.Constant(1.0), nil
	}
	if f.faces {
		return nil, fmt.Errorf("%w: distance %q needs vertices", ErrBadSpec, f.metric)
	}
	switch metric {
	case "weight":
		return distance.Edge(fx.Weights), nil
	case "euclidean", "spherical":
		if len(fx.Positions) != g.Len() {
			return nil, fmt.Errorf("%w: distance %q needs positions", ErrBadSpec, f.metric)
		}
		if metric == "euclidean" {
			return distance.Euclidean(g, fx.Positions), nil
		}
		return distance.Spherical(g, fx.Positions, 1), nil
	}
	return nil, fmt.Errorf("%w: unknown distance %q", ErrBadSpec, f.metric)
}

// newQueue returns the queue for --order.
func newQueue(order string, seed int64, d walk.EdgeDistance[float64]) (walk.Queue[float64], error) {
	switch strings.ToLower(order) {
	case "stack":
		return walk.NewStack[float64](), nil
	case "bfs", "breadth":
		return walk.BreadthFirst[float64](), nil
	case "dfs", "depth":
		return walk.DepthFirst[float64](), nil
	case "random":
		return walk.NewRandom[float64](rand.New(rand.NewSource(seed))), nil
	case "nearest":
		return walk.NearestByEdge(d), nil
	case "farthest":
		return walk.FarthestByEdge(d), nil
	}
	return nil, fmt.Errorf("%w: unknown order %q", ErrBadSpec, order)
}

// checkRoots validates entity indices against g.
func checkRoots(g walk.Graph, roots ...int) error {
	for _, r := range roots {
		if r < 0 || r >= g.Len() {
			return fmt.Errorf("%w: entity %d not in [0,%d)", ErrBadSpec, r, g.Len())
		}
	}
	return nil
}
