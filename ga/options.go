// SPDX-License-Identifier: MIT

// Package ga: functional configuration for Deme construction.
//
//   - Option / options (functional options with internal state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that resolves defaults.
//
// Recoverable input problems (mutation rate, population size) are not
// options: they are NewDeme arguments and fail with sentinel errors.
package ga

import (
	"io"
	"log/slog"
	"math/rand"
)

const (
	panicNilRand   = "ga: WithRand: rng must not be nil"
	panicNilLogger = "ga: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly; the last
// setter for a field wins.
type Option func(*options)

type options struct {
	seed   int64        // 0 ⇒ DefaultSeed
	rng    *rand.Rand   // overrides seed when non-nil
	logger *slog.Logger // nil ⇒ discard
}

// WithSeed seeds the deme's generator once at construction.
// Two demes built with the same seed, cities and arguments evolve identically.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand hands the deme a caller-owned generator. The deme advances it on
// every random draw; do not use it concurrently elsewhere.
// Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = rng }
}

// WithLogger sets the structured logger used by Evolve.
// Panics if logger is nil; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// gatherOptions applies opts over the defaults and materializes the generator.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = rngFromSeed(o.seed)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
