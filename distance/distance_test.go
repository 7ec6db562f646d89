package distance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/againey/MakeIt.Tile-sub003/distance"
	"github.com/againey/MakeIt.Tile-sub003/topology"
)

const eps = 1e-12

// segment is a two-vertex topology: edge 0 runs 0→1, edge 1 runs 1→0.
func segment(t *testing.T) distance.Endpoints {
	t.Helper()
	topo, err := topology.New([][]int{{1}, {0}}, nil)
	require.NoError(t, err)
	return topo.VertexGraph()
}

func TestVector3(t *testing.T) {
	a := distance.Vector3{X: 1, Y: 2, Z: 3}
	b := distance.Vector3{X: -2, Y: 0, Z: 1}

	assert.Equal(t, distance.Vector3{X: -1, Y: 2, Z: 4}, a.Add(b))
	assert.Equal(t, distance.Vector3{X: 3, Y: 2, Z: 2}, a.Sub(b))
	assert.Equal(t, distance.Vector3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.Equal(t, 1.0, a.Dot(b))
	c := a.Cross(b)
	assert.Equal(t, distance.Vector3{X: 2, Y: -7, Z: 4}, c)
	assert.InDelta(t, 0, c.Dot(a), eps)
	assert.InDelta(t, 0, c.Dot(b), eps)

	assert.InDelta(t, math.Sqrt(14), a.Length(), eps)
	assert.InDelta(t, 1, a.Normalized().Length(), eps)
	assert.Equal(t, distance.Vector3{}, distance.Vector3{}.Normalized())
}

func TestAngle(t *testing.T) {
	x := distance.Vector3{X: 1}
	cases := []struct {
		name string
		b    distance.Vector3
		want float64
	}{
		{"same", distance.Vector3{X: 3}, 0},
		{"right", distance.Vector3{Y: 2}, math.Pi / 2},
		{"opposite", distance.Vector3{X: -1}, math.Pi},
		{"diagonal", distance.Vector3{X: 1, Z: 1}, math.Pi / 4},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, distance.Angle(x, tc.b), eps, tc.name)
	}

	// Nearly parallel vectors keep precision.
	tiny := distance.Vector3{X: 1, Y: 1e-9}
	assert.InDelta(t, 1e-9, distance.Angle(x, tiny), 1e-18)
}

func TestSources(t *testing.T) {
	g := segment(t)

	assert.Equal(t, 4, distance.Constant(4)(0))
	assert.Equal(t, 2.5, distance.Edge([]float64{2.5, 7})(0))
	assert.Equal(t, 7.0, distance.Edge([]float64{2.5, 7})(1))

	cost := []int{10, 20}
	far := distance.Far(g, cost)
	assert.Equal(t, 20, far(0), "edge 0 points at vertex 1")
	assert.Equal(t, 10, far(1))
}

func TestEuclidean(t *testing.T) {
	g := segment(t)
	pos := []distance.Vector3{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 4, Z: 0}}
	d := distance.Euclidean(g, pos)
	assert.InDelta(t, 5, d(0), eps)
	assert.InDelta(t, 5, d(1), eps, "twins are symmetric")
}

func TestSpherical(t *testing.T) {
	g := segment(t)
	pos := []distance.Vector3{{X: 2}, {Y: 5}}
	d := distance.Spherical(g, pos, 3)
	assert.InDelta(t, 3*math.Pi/2, d(0), eps, "positions need not be normalized")
	assert.InDelta(t, d(0), d(1), eps)
}

func TestConvert(t *testing.T) {
	src := distance.Edge([]float64{1.9, -1.9})
	d := distance.Convert[float64, int](src)
	assert.Equal(t, 1, d(0))
	assert.Equal(t, -1, d(1))

	up := distance.Convert[int, float64](distance.Constant(3))
	assert.Equal(t, 3.0, up(42))
}
