package walk_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/againey/MakeIt.Tile-sub003/builder"
	"github.com/againey/MakeIt.Tile-sub003/distance"
	"github.com/againey/MakeIt.Tile-sub003/topology"
	"github.com/againey/MakeIt.Tile-sub003/walk"
)

// record is one callback observation.
type record struct {
	Entity, Depth int
	Distance      float64
}

// expand queues every unvisited neighbor and records the visit.
func expand[T walk.Number](trace *[]record) walk.VisitFunc[T] {
	return func(v *walk.Visitor[T]) error {
		*trace = append(*trace, record{v.Entity(), v.Depth(), float64(v.Distance())})
		v.VisitAllNeighbors()
		return nil
	}
}

func entities(rs []record) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Entity
	}
	return out
}

// WalkSuite exercises the traversal driver on built fixtures.
type WalkSuite struct {
	suite.Suite
	grid *builder.Fixture
}

func (s *WalkSuite) SetupTest() {
	fx, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 5)},
		builder.Grid(4, 5),
	)
	require.NoError(s.T(), err)
	s.grid = fx
}

func (s *WalkSuite) build(cons ...builder.Constructor) *topology.Topology {
	fx, err := builder.Build(nil, cons...)
	require.NoError(s.T(), err)
	return fx.Topology
}

// TestBreadthFirstDepths walks a 4-cycle breadth-first.
func (s *WalkSuite) TestBreadthFirstDepths() {
	g := s.build(builder.Cycle(4)).VertexGraph()
	var trace []record
	res, err := walk.Walk(g, []int{0}, walk.BreadthFirst[int](), expand[int](&trace))
	require.NoError(s.T(), err)

	depth := make([]int, g.Len())
	for _, r := range trace {
		depth[r.Entity] = r.Depth
	}
	require.Equal(s.T(), []int{0, 1, 3, 2}, entities(trace))
	require.Equal(s.T(), []int{0, 1, 2, 1}, depth)
	require.Equal(s.T(), 4, res.Visits)
	require.Equal(s.T(), 4, res.Visited.Count())
	require.False(s.T(), res.Broken)
}

// TestBreakLeavesEntityUnmarked stops on the second callback.
func (s *WalkSuite) TestBreakLeavesEntityUnmarked() {
	g := s.build(builder.Cycle(4)).VertexGraph()
	calls := 0
	res, err := walk.Walk(g, []int{0}, walk.BreadthFirst[int](), func(v *walk.Visitor[int]) error {
		calls++
		if calls == 2 {
			v.Break()
			return nil
		}
		v.VisitAllNeighbors()
		return nil
	})
	require.NoError(s.T(), err)
	require.True(s.T(), res.Broken)
	require.Equal(s.T(), 2, res.Visits)
	require.Equal(s.T(), 1, res.Visited.Count())
	require.Equal(s.T(), []int{0}, res.Visited.Indices())
}

// TestNearestByEdgeOnPath accumulates unit edge lengths along a path.
func (s *WalkSuite) TestNearestByEdgeOnPath() {
	g := s.build(builder.Path(4)).VertexGraph()
	var trace []record
	_, err := walk.Walk(g, []int{0}, walk.NearestByEdge(distance.Constant(1.0)), expand[float64](&trace))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []record{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3}}, trace)
}

// TestRevisitNeighbor requeues a finalized entity at a smaller distance.
func (s *WalkSuite) TestRevisitNeighbor() {
	var trace []record
	q := walk.NewOrdered[int](walk.NearestFirst[int])
	res, err := walk.Walk(walk.Indices(3), []int{0}, q, func(v *walk.Visitor[int]) error {
		trace = append(trace, record{v.Entity(), v.Depth(), float64(v.Distance())})
		switch v.Entity() {
		case 0:
			v.VisitNeighborAt(2, 5)
			v.VisitNeighborAt(1, 6)
		case 1:
			s.True(v.IsVisited(2))
			v.RevisitNeighborAt(2, 3)
			s.False(v.IsVisited(2))
		}
		return nil
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []record{{0, 0, 0}, {2, 1, 5}, {1, 1, 6}, {2, 2, 3}}, trace)
	require.Equal(s.T(), []int{0, 1, 2}, res.Visited.Indices())
	require.Equal(s.T(), 4, res.Visits)
}

// TestRevisitEdge requeues the far end of an edge.
func (s *WalkSuite) TestRevisitEdge() {
	g := s.build(builder.Path(2)).VertexGraph()
	seen := map[int]int{}
	res, err := walk.Walk(g, []int{0}, walk.NewStack[int](), func(v *walk.Visitor[int]) error {
		seen[v.Entity()]++
		if seen[v.Entity()] > 1 {
			return nil
		}
		for e := range g.Edges(v.Entity()) {
			v.RevisitEdge(e)
		}
		return nil
	})
	require.NoError(s.T(), err)
	// 0 → 1, then 1 clears and requeues 0.
	require.Equal(s.T(), map[int]int{0: 2, 1: 1}, seen)
	require.Equal(s.T(), 3, res.Visits)
}

// TestExactlyOnce checks each reachable entity is finalized once per queue kind.
func (s *WalkSuite) TestExactlyOnce() {
	g := s.grid.Topology.VertexGraph()
	queues := map[string]walk.Queue[float64]{
		"stack":    walk.NewStack[float64](),
		"breadth":  walk.BreadthFirst[float64](),
		"depth":    walk.DepthFirst[float64](),
		"random":   walk.NewRandom[float64](rand.New(rand.NewSource(1))),
		"nearest":  walk.NearestByEdge(distance.Edge(s.grid.Weights)),
		"farthest": walk.FarthestByEdge(distance.Edge(s.grid.Weights)),
	}
	for name, q := range queues {
		count := make([]int, g.Len())
		res, err := walk.Walk(g, []int{0}, q, func(v *walk.Visitor[float64]) error {
			count[v.Entity()]++
			v.VisitAllNeighbors()
			return nil
		})
		require.NoError(s.T(), err, name)
		for e, c := range count {
			s.Equal(1, c, "%s: entity %d", name, e)
		}
		s.Equal(g.Len(), res.Visited.Count(), name)
		s.True(q.Empty(), name)
	}
}

// TestIgnoreAllowsReentry leaves the first arrival unmarked.
func (s *WalkSuite) TestIgnoreAllowsReentry() {
	arrivals := 0
	res, err := walk.Walk(walk.Indices(2), []int{0}, walk.NewStack[int](), func(v *walk.Visitor[int]) error {
		switch v.Entity() {
		case 0:
			v.VisitNeighbor(1)
			v.VisitNeighbor(1)
		case 1:
			arrivals++
			if arrivals == 1 {
				v.Ignore()
			}
		}
		return nil
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, arrivals)
	require.Equal(s.T(), 3, res.Visits)
	require.Equal(s.T(), []int{0, 1}, res.Visited.Indices())
}

// TestBreadthFirstMonotone checks depths never decrease in visit order.
func (s *WalkSuite) TestBreadthFirstMonotone() {
	var trace []record
	_, err := walk.Walk(s.grid.Topology.VertexGraph(), []int{7}, walk.BreadthFirst[float64](), expand[float64](&trace))
	require.NoError(s.T(), err)
	for i := 1; i < len(trace); i++ {
		s.LessOrEqual(trace[i-1].Depth, trace[i].Depth)
	}
	s.Len(trace, 20)
}

// TestDepthFirstPopsDeepest checks no queued item is deeper than the one
// being visited.
func (s *WalkSuite) TestDepthFirstPopsDeepest() {
	q := walk.DepthFirst[int]()
	_, err := walk.Walk(s.grid.Topology.VertexGraph(), []int{0}, q, func(v *walk.Visitor[int]) error {
		if next, ok := q.Peek(); ok {
			s.GreaterOrEqual(v.Depth(), next.Depth)
		}
		v.VisitAllNeighbors()
		return nil
	})
	require.NoError(s.T(), err)
}

// TestNearestFirstMonotone checks distances never decrease in visit order.
func (s *WalkSuite) TestNearestFirstMonotone() {
	var trace []record
	q := walk.NearestByEdge(distance.Edge(s.grid.Weights))
	_, err := walk.Walk(s.grid.Topology.VertexGraph(), []int{0}, q, expand[float64](&trace))
	require.NoError(s.T(), err)
	require.Len(s.T(), trace, 20)
	for i := 1; i < len(trace); i++ {
		s.LessOrEqual(trace[i-1].Distance, trace[i].Distance)
	}
}

// TestRandomReachesSameSet compares a random walk with a stack walk.
func (s *WalkSuite) TestRandomReachesSameSet() {
	g := s.build(builder.Grid(3, 3), builder.Path(3)).VertexGraph()
	visit := func(v *walk.Visitor[int]) error {
		v.VisitAllNeighbors()
		return nil
	}
	a, err := walk.Walk(g, []int{4}, walk.NewRandom[int](rand.New(rand.NewSource(42))), visit)
	require.NoError(s.T(), err)
	b, err := walk.Walk(g, []int{4}, walk.NewStack[int](), visit)
	require.NoError(s.T(), err)
	require.True(s.T(), a.Visited.Snapshot().Equals(b.Visited.Snapshot()))
	require.Equal(s.T(), 9, a.Visited.Count())
}

// TestSeedEdges marks the hub up front and never visits it.
func (s *WalkSuite) TestSeedEdges() {
	g := s.build(builder.Star(5)).VertexGraph()
	var trace []record
	res, err := walk.Walk(g, []int{0}, walk.BreadthFirst[int](), expand[int](&trace), walk.WithSeedEdges())
	require.NoError(s.T(), err)
	require.Len(s.T(), trace, 4)
	for _, r := range trace {
		s.NotEqual(0, r.Entity)
		s.Equal(1, r.Depth)
	}
	require.Equal(s.T(), 5, res.Visited.Count())
}

// TestMaxDepth drops neighbors past the limit.
func (s *WalkSuite) TestMaxDepth() {
	g := s.build(builder.Path(5)).VertexGraph()
	var trace []record
	res, err := walk.Walk(g, []int{0}, walk.BreadthFirst[int](), expand[int](&trace), walk.WithMaxDepth(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2}, res.Visited.Indices())

	_, err = walk.Walk(g, []int{0}, walk.BreadthFirst[int](), expand[int](&trace), walk.WithMaxDepth(-1))
	require.ErrorIs(s.T(), err, walk.ErrOptionViolation)
}

// TestHooks counts pushes and pops on a 4-cycle.
func (s *WalkSuite) TestHooks() {
	g := s.build(builder.Cycle(4)).VertexGraph()
	var enq, deq []int
	_, err := walk.Walk(g, []int{0}, walk.BreadthFirst[int](), func(v *walk.Visitor[int]) error {
		v.VisitAllNeighbors()
		return nil
	},
		walk.WithOnEnqueue(func(e, _ int) { enq = append(enq, e) }),
		walk.WithOnDequeue(func(e, _ int) { deq = append(deq, e) }),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 3, 2, 2}, enq)
	require.Equal(s.T(), []int{0, 1, 3, 2}, deq)
}

// TestFaceWalkSkipsBoundary walks the cells of a grid.
func (s *WalkSuite) TestFaceWalkSkipsBoundary() {
	g := s.grid.Topology.FaceGraph()
	reached, err := walk.Reachable(g, []int{0})
	require.NoError(s.T(), err)
	require.Equal(s.T(), uint64(g.Len()), reached.GetCardinality())
}

// TestVisitEdgeOnFaces queues face edges one by one; boundary edges are
// skipped instead of reaching a missing face.
func (s *WalkSuite) TestVisitEdgeOnFaces() {
	g := s.build(builder.Grid(3, 3)).FaceGraph()
	var trace []record
	var res *walk.Result
	var err error
	require.NotPanics(s.T(), func() {
		res, err = walk.Walk(g, []int{0}, walk.BreadthFirst[int](), func(v *walk.Visitor[int]) error {
			trace = append(trace, record{v.Entity(), v.Depth(), 0})
			for e := range g.Edges(v.Entity()) {
				v.VisitEdge(e)
			}
			return nil
		})
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2, 3}, entities(trace))
	require.Equal(s.T(), []int{0, 1, 2, 3}, res.Visited.Indices())

	// A 2x2 grid has one cell whose edges are all boundary.
	single := s.build(builder.Grid(2, 2)).FaceGraph()
	res, err = walk.Walk(single, []int{0}, walk.BreadthFirst[int](), func(v *walk.Visitor[int]) error {
		for e := range single.Edges(v.Entity()) {
			v.VisitEdge(e)
			v.RevisitEdge(e)
		}
		return nil
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Visits)
	require.Equal(s.T(), []int{0}, res.Visited.Indices())
}

// TestRevisitEdgeOnFaces requeues face neighbors and never leaves the mesh.
func (s *WalkSuite) TestRevisitEdgeOnFaces() {
	g := s.build(builder.Grid(3, 3)).FaceGraph()
	seen := map[int]int{}
	res, err := walk.Walk(g, []int{0}, walk.BreadthFirst[int](), func(v *walk.Visitor[int]) error {
		seen[v.Entity()]++
		if seen[v.Entity()] > 1 {
			return nil
		}
		for e := range g.Edges(v.Entity()) {
			v.RevisitEdge(e)
		}
		return nil
	})
	require.NoError(s.T(), err)
	for f := range seen {
		s.True(f >= 0 && f < g.Len(), "face %d out of range", f)
	}
	require.Equal(s.T(), 4, res.Visited.Count())
}

// TestOutOfRangeNeighborsDropped ignores neighbors queued by bad index.
func (s *WalkSuite) TestOutOfRangeNeighborsDropped() {
	var enq []int
	res, err := walk.Walk(walk.Indices(3), []int{0}, walk.NewStack[int](), func(v *walk.Visitor[int]) error {
		if v.Entity() == 0 {
			v.VisitNeighbor(-1)
			v.VisitNeighbor(3)
			v.RevisitNeighbor(walk.NoEdge)
			v.VisitNeighbor(2)
		}
		return nil
	}, walk.WithOnEnqueue(func(e, _ int) { enq = append(enq, e) }))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 2}, enq)
	require.Equal(s.T(), []int{0, 2}, res.Visited.Indices())
}

func TestWalkSuite(t *testing.T) {
	suite.Run(t, new(WalkSuite))
}

func TestWalk_Errors(t *testing.T) {
	var noop walk.VisitFunc[int] = func(*walk.Visitor[int]) error { return nil }
	g := walk.Indices(3)

	_, err := walk.Walk(nil, []int{0}, walk.NewStack[int](), noop)
	assert.ErrorIs(t, err, walk.ErrGraphNil)
	_, err = walk.Walk(g, []int{0}, nil, noop)
	assert.ErrorIs(t, err, walk.ErrQueueNil)
	_, err = walk.Walk[int](g, []int{0}, walk.NewStack[int](), nil)
	assert.ErrorIs(t, err, walk.ErrVisitNil)
	for _, r := range []int{-1, 3} {
		res, err := walk.Walk(g, []int{0, r}, walk.NewStack[int](), noop)
		assert.ErrorIs(t, err, walk.ErrRootOutOfRange)
		assert.Nil(t, res)
	}
}

func TestWalk_EmptyRoots(t *testing.T) {
	called := false
	res, err := walk.Walk(walk.Indices(4), nil, walk.NewStack[int](), func(*walk.Visitor[int]) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, called)
	assert.Equal(t, 0, res.Visits)
	assert.Equal(t, 4, res.Visited.Len())
}

func TestWalk_CallbackError(t *testing.T) {
	errStop := errors.New("stop here")
	fx, err := builder.Build(nil, builder.Path(3))
	require.NoError(t, err)

	res, err := walk.Walk(fx.Topology.VertexGraph(), []int{0}, walk.BreadthFirst[int](), func(v *walk.Visitor[int]) error {
		if v.Entity() == 1 {
			return errStop
		}
		v.VisitAllNeighbors()
		return nil
	})
	require.ErrorIs(t, err, errStop)
	assert.Contains(t, err.Error(), "visit of 1 at depth 1")
	require.NotNil(t, res)
	assert.False(t, res.Visited.Has(1))
	assert.Equal(t, 2, res.Visits)
}

func TestWalk_CancelInCallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fx, err := builder.Build(nil, builder.Path(5))
	require.NoError(t, err)

	res, err := walk.Walk(fx.Topology.VertexGraph(), []int{0}, walk.NewStack[int](), func(v *walk.Visitor[int]) error {
		if v.Entity() == 1 {
			cancel()
		}
		v.VisitAllNeighbors()
		return nil
	}, walk.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, res.Visits)
	assert.Equal(t, 2, res.Visited.Count())
}

func TestWalk_ConcurrentReaders(t *testing.T) {
	fx, err := builder.Build(nil, builder.Grid(6, 6))
	require.NoError(t, err)
	g := fx.Topology.VertexGraph()

	var wg sync.WaitGroup
	counts := make([]uint64, 8)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bm, err := walk.Reachable(g, []int{i})
			if err == nil {
				counts[i] = bm.GetCardinality()
			}
		}(i)
	}
	wg.Wait()
	for i, c := range counts {
		assert.Equal(t, uint64(36), c, "walker %d", i)
	}
}

func TestWalk_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	_, err := walk.Reachable(walk.Indices(2), []int{0, 1}, walk.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "walk started")
	assert.Contains(t, buf.String(), "walk finished")
}

func TestReachable_Components(t *testing.T) {
	fx, err := builder.Build(nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	g := fx.Topology.VertexGraph()

	a, err := walk.Reachable(g, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, a.ToArray())

	b, err := walk.Reachable(g, []int{4})
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 4, 5}, b.ToArray())

	_, err = walk.Reachable(g, []int{6})
	assert.ErrorIs(t, err, walk.ErrRootOutOfRange)
}

// unitPathWalk runs a nearest-first walk over a four-vertex path with unit
// edge lengths in distance type T.
func unitPathWalk[T walk.Number](t *testing.T) ([]int, []float64) {
	t.Helper()
	fx, err := builder.Build(nil, builder.Path(4))
	require.NoError(t, err)

	unit := distance.Convert[float64, T](distance.Constant(1.0))
	var order []int
	var dist []float64
	_, err = walk.Walk(fx.Topology.VertexGraph(), []int{0}, walk.NearestByEdge(unit), func(v *walk.Visitor[T]) error {
		order = append(order, v.Entity())
		dist = append(dist, float64(v.Distance()))
		v.VisitAllNeighbors()
		return nil
	})
	require.NoError(t, err)
	return order, dist
}

func TestWalk_DistanceTypes(t *testing.T) {
	cases := []struct {
		name string
		run  func(*testing.T) ([]int, []float64)
	}{
		{"int32", unitPathWalk[int32]},
		{"uint32", unitPathWalk[uint32]},
		{"float32", unitPathWalk[float32]},
		{"float64", unitPathWalk[float64]},
		{"int", unitPathWalk[int]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, dist := tc.run(t)
			assert.Equal(t, []int{0, 1, 2, 3}, order)
			assert.Equal(t, []float64{0, 1, 2, 3}, dist)
		})
	}
}
