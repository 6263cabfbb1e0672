// SPDX-License-Identifier: MIT
// Package: qosroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.
// Validation order: sizes, then probability, then RNG presence, then
// construction failures.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols,
// attempts) is smaller than the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction exhausted its attempts or
// a generated link was rejected by the graph.
var ErrConstructFailed = errors.New("builder: construction failed")
