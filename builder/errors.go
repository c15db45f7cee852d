// SPDX-License-Identifier: MIT
// Package: pathboard/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with errors.Wrapf; the sentinel survives.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "github.com/cockroachdb/errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols, partition)
// is below the minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrTooLarge indicates that a size parameter, or the node or edge count it
// implies, exceeds MaxFixtureNodes or MaxFixtureEdges.
var ErrTooLarge = errors.New("builder: parameter too large")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the graph rejected an element while a
// constructor was running (e.g. a weight function produced a negative weight),
// or that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
