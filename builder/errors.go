// SPDX-License-Identifier: MIT
// Package: mlnet/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "Cycle: n=2 < min=3: %w".
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, k, size) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed: nil
// network, nil constructor, or an empty layer name.
var ErrConstructFailed = errors.New("builder: construction failed")
