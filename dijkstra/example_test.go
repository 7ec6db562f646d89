package dijkstra_test

import (
	"fmt"

	"github.com/againey/MakeIt.Tile-sub003/builder"
	"github.com/againey/MakeIt.Tile-sub003/dijkstra"
	"github.com/againey/MakeIt.Tile-sub003/distance"
)

// ExampleDijkstra finds the cheapest route across a wheel whose spokes are
// cheaper than its rim.
func ExampleDijkstra() {
	fx, err := builder.Build(nil, builder.Wheel(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g := fx.Topology.VertexGraph()

	// Spokes (edges touching hub 0) cost 1, rim edges cost 3.
	weight := func(e int) int {
		if g.Near(e) == 0 || g.Far(e) == 0 {
			return 1
		}
		return 3
	}

	res, err := dijkstra.Dijkstra(g, weight, dijkstra.Source(1), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(4)
	fmt.Println(res.Dist)
	fmt.Println(path)
	// Output:
	// [1 0 2 2 2 2 2]
	// [1 0 4]
}

// ExampleDijkstra_euclidean measures straight-line edge lengths on a grid.
func ExampleDijkstra_euclidean() {
	fx, err := builder.Build([]builder.BuilderOption{builder.WithScale(2)}, builder.Grid(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g := fx.Topology.VertexGraph()

	res, err := dijkstra.Dijkstra(g, distance.Euclidean(g, fx.Positions), dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist)
	// Output:
	// [0 2 2 4]
}
