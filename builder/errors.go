// SPDX-License-Identifier: MIT
// Package: lvbid/builder
//
// errors.go - sentinel errors for fixture constructors.
//
// Error policy:
//   • Constructors return sentinels wrapped with the method name:
//       fmt.Errorf("%s: ...: %w", method, ..., ErrX)
//   • Callers branch with errors.Is(err, ErrX), never on message text.
//   • Option constructors panic on programmer error (nil RNG, nil WeightFn,
//     inverted ranges); runtime parameters never panic.
//
// Check order inside a constructor:
//   • ErrTooFewVertices     - sizes first.
//   • ErrInvalidProbability - then probability ranges.
//   • ErrNeedRandSource     - then RNG presence for stochastic builders.

package builder

import "errors"

// ErrTooFewVertices indicates that a side of the market is smaller than the
// constructor allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil Constructor or a failure of the target
// graph while a constructor was writing to it.
var ErrConstructFailed = errors.New("builder: construction failed")
