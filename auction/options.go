// SPDX-License-Identifier: MIT
// Package auction: functional options.
//
// Options follow the same contract as the traversal packages: nil arguments
// are ignored, meaningless values are recorded and surfaced by NewSolver as
// ErrInvalidParameter (never a panic).
package auction

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
)

// DefaultMaxRounds bounds the number of passes when WithMaxRounds is not given.
const DefaultMaxRounds = 1 << 20

// Option configures the solver via functional arguments.
type Option func(*Options)

// Options holds the solver knobs resolved from DefaultOptions and Option values.
type Options struct {
	// Ctx allows cancellation; checked once per pass.
	Ctx context.Context

	// MaxRounds caps the number of passes; 0 disables the cap.
	MaxRounds int

	// TimeLimit caps wall-clock time measured with Clock; 0 disables the limit.
	TimeLimit time.Duration

	// Reserve is the minimum net value a buyer accepts; below it the buyer abstains.
	// NaN (the default) derives it per run from the buyer→object weights:
	//
	//	reserve = minW - (maxW - minW) - epsilon
	//
	// No buyer falls below it before prices have risen past the whole weight
	// spread, so negative valuations still get bids. Being finite, it caps
	// every price, which makes the loop terminate under contention.
	// math.Inf(-1) makes buyers bid unconditionally.
	Reserve float64

	// StrictSides rejects graphs with an edge between two buyers or two objects.
	StrictSides bool

	// Clock measures TimeLimit.
	Clock clock.Clock

	// Logger receives per-run entries; defaults to a discarding logger.
	Logger *logrus.Entry

	// OnRound is called after every pass with the 1-based round and its number of bids.
	OnRound func(round, changes int)

	// onBid holds a func(Bid[K]) for the solver's K; checked in NewSolver.
	onBid any

	// errors recorded while applying options
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - MaxRounds = DefaultMaxRounds, no time limit
//   - Reserve = NaN (derived from the weights), StrictSides off
//   - clock.WallClock and a discarding logger
//   - no-op hooks
func DefaultOptions() Options {
	logger := logrus.New()
	logger.Out = io.Discard

	return Options{
		Ctx:       context.Background(),
		MaxRounds: DefaultMaxRounds,
		Reserve:   math.NaN(),
		Clock:     clock.WallClock,
		Logger:    logrus.NewEntry(logger),
		OnRound:   func(int, int) {},
	}
}

// fail records an option violation.
func (o *Options) fail(format string, args ...any) {
	o.err = multierror.Append(o.err, fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...))
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRounds caps the number of passes.
//
//	n > 0: at most n passes
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrInvalidParameter
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("MaxRounds cannot be negative (%d)", n)
			return
		}
		o.MaxRounds = n
	}
}

// WithTimeLimit caps the wall-clock duration of a run.
//
//	d > 0: limit to d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrInvalidParameter
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.fail("TimeLimit cannot be negative (%s)", d)
			return
		}
		o.TimeLimit = d
	}
}

// WithReserve sets a fixed minimum net value a buyer accepts, replacing the
// derived default. WithReserve(0) keeps buyers away from objects they value
// below zero. NaN and +Inf are rejected; math.Inf(-1) disables abstention.
func WithReserve(r float64) Option {
	return func(o *Options) {
		if math.IsNaN(r) || math.IsInf(r, 1) {
			o.fail("Reserve must be a number below +Inf (%g)", r)
			return
		}
		o.Reserve = r
	}
}

// WithStrictSides makes NewSolver reject graphs whose edges do not all cross
// from a buyer to an object under the given classifier.
func WithStrictSides() Option {
	return func(o *Options) { o.StrictSides = true }
}

// WithClock sets the clock used for WithTimeLimit.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithLogger sets the logger entry used for run diagnostics.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRound registers a callback run after every pass.
func WithOnRound(fn func(round, changes int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithOnBid registers a callback run after every accepted bid.
// K must match the solver's identifier type, otherwise NewSolver returns
// ErrInvalidParameter.
func WithOnBid[K comparable](fn func(b Bid[K])) Option {
	return func(o *Options) {
		if fn != nil {
			o.onBid = fn
		}
	}
}
