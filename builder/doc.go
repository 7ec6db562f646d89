// Package builder produces deterministic fixture topologies for walks,
// examples and benchmarks.
//
// A fixture is assembled by Build from one or more Constructors. Each
// constructor appends a disjoint component (its own vertices, vertex edges,
// faces and face edges), so Build(nil, Path(4), Cycle(5)) yields a 9-vertex
// topology with two components.
//
// The package offers:
//
//   - Constructors (impl_*.go):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n)
//     – Grid(rows, cols): 4-neighborhood vertex grid plus one face per cell,
//     with boundary face edges on the outer ring of cells
//     – PlatonicSolid(name): the five solids, vertices on a sphere
//     – RandomSparse(n, p): Erdős–Rényi-like sampling (needs WithSeed/WithRand)
//   - Positions: every vertex gets a distance.Vector3, scaled by WithScale.
//   - Edge weights (WeightFn implementations), one per vertex edge, shared by
//     twins:
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Determinism: same constructors, order, options and seed ⇒ identical fixture.
//   - Constructors validate their parameters and return sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ...).
//   - Option constructors panic on meaningless input (nil RNG, scale ≤ 0).
package builder
