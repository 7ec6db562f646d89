// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for fixture construction.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
// Typical origin: RandomSparse(p).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownSolid indicates a PlatonicName outside the five known solids.
var ErrUnknownSolid = errors.New("builder: unknown platonic solid")

// ErrConstructFailed indicates that the collected neighbor rings could not be
// frozen into a Topology, or that a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the method name and wraps
// the sentinel so errors.Is keeps working.
//
// Example: builderErrorf(MethodCycle, ErrTooFewVertices, "n=%d < min=%d", 2, 3)
// yields "Cycle: n=2 < min=3: builder: parameter too small".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
