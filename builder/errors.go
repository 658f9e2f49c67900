// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w via builderErrorf; core errors
//     (core.ErrOutOfRange, core.ErrInvalidWeight) pass through wrapped.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the graph has fewer vertices than the
// requested topology needs (Path needs 2, Cycle needs 3, ...).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDimensionMismatch indicates that Grid(rows, cols) does not cover the
// graph's vertex count exactly.
var ErrDimensionMismatch = errors.New("builder: dimensions do not match vertex count")

// ErrConstructFailed indicates a programmer error at the orchestration level,
// such as a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns an error of the form "<method>: <message>" that keeps
// every %w-wrapped cause reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
