package walk_test

import (
	"math/rand"
	"testing"

	"github.com/againey/MakeIt.Tile-sub003/builder"
	"github.com/againey/MakeIt.Tile-sub003/distance"
	"github.com/againey/MakeIt.Tile-sub003/walk"
)

func benchGrid(b *testing.B) *builder.Fixture {
	b.Helper()
	fx, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 10)},
		builder.Grid(100, 100))
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	return fx
}

func visitAll[T walk.Number](v *walk.Visitor[T]) error {
	v.VisitAllNeighbors()
	return nil
}

// BenchmarkWalk_Stack measures the cheapest queue on a 100×100 grid.
func BenchmarkWalk_Stack(b *testing.B) {
	g := benchGrid(b).Topology.VertexGraph()
	q := walk.NewStack[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Clear()
		_, _ = walk.Walk(g, []int{0}, q, visitAll[int])
	}
}

// BenchmarkWalk_BreadthFirst measures the depth-ordered heap.
func BenchmarkWalk_BreadthFirst(b *testing.B) {
	g := benchGrid(b).Topology.VertexGraph()
	q := walk.BreadthFirst[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Clear()
		_, _ = walk.Walk(g, []int{0}, q, visitAll[int])
	}
}

// BenchmarkWalk_NearestByEdge measures a distance walk over random weights.
func BenchmarkWalk_NearestByEdge(b *testing.B) {
	fx := benchGrid(b)
	g := fx.Topology.VertexGraph()
	q := walk.NearestByEdge(distance.Edge(fx.Weights))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Clear()
		_, _ = walk.Walk(g, []int{0}, q, visitAll[float64])
	}
}

// BenchmarkWalk_Random measures the swap-remove queue.
func BenchmarkWalk_Random(b *testing.B) {
	g := benchGrid(b).Topology.VertexGraph()
	q := walk.NewRandom[int](rand.New(rand.NewSource(1)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Clear()
		_, _ = walk.Walk(g, []int{0}, q, visitAll[int])
	}
}
