// SPDX-License-Identifier: MIT
// Package: dex/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Validation panics are confined to option constructors (WithX...).
//   • A RateFn that yields a zero, NaN or infinite rate surfaces the
//     matching core sentinel (core.ErrZeroRate, core.ErrBadRate).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, ...) is
// smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not run at all,
// such as a nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
