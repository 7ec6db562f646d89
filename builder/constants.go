// SPDX-License-Identifier: MIT
// Package: builder
//
// constants.go: method tags and parameter minimums.

package builder

// Method tags used as error context.
const (
	MethodPath          = "Path"
	MethodCycle         = "Cycle"
	MethodStar          = "Star"
	MethodWheel         = "Wheel"
	MethodComplete      = "Complete"
	MethodGrid          = "Grid"
	MethodPlatonicSolid = "PlatonicSolid"
	MethodRandomSparse  = "RandomSparse"
)

// Parameter minimums.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinSparseNodes   = 1
)

// Probability domain of RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// CenterVertex is the index, relative to the component, of the hub vertex of
// Star and Wheel.
const CenterVertex = 0
