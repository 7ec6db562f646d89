package bfs_test

import (
	"fmt"

	"github.com/againey/MakeIt.Tile-sub003/bfs"
	"github.com/againey/MakeIt.Tile-sub003/builder"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 vertex grid.
// Vertex r*3+c sits at row r, column c; rings list east, north, west, south.
func ExampleBFS_gridTraversal() {
	fx, err := builder.Build(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(fx.Topology.VertexGraph(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleBFSResult_PathTo finds the fewest-hop route around a wheel: the hub
// shortcut beats the rim.
func ExampleBFSResult_PathTo() {
	fx, err := builder.Build(nil, builder.Wheel(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(fx.Topology.VertexGraph(), 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(4)
	fmt.Println(path)
	// Output:
	// [1 0 4]
}
