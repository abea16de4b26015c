// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options resolving into builderConfig.

package builder

import "math/rand"

// Option mutates builderConfig before construction.
type Option func(*builderConfig)

// WithCodeScheme sets the airport-code scheme. Panics on nil.
func WithCodeScheme(fn CodeFn) Option {
	if fn == nil {
		panic("builder: WithCodeScheme(nil)")
	}
	return func(c *builderConfig) {
		c.codeFn = fn
	}
}

// WithRand uses r for every stochastic policy. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSchedule sets a custom schedule policy. Panics on nil.
func WithSchedule(fn ScheduleFn) Option {
	if fn == nil {
		panic("builder: WithSchedule(nil)")
	}
	return func(c *builderConfig) {
		c.scheduleFn = fn
	}
}

// WithRandomSchedule selects RandomSchedule; Build then requires an RNG.
func WithRandomSchedule() Option {
	return func(c *builderConfig) {
		c.scheduleFn = RandomSchedule
		c.needRand = true
	}
}

// WithGMTFn sets a custom GMT policy. Panics on nil.
func WithGMTFn(fn GMTFn) Option {
	if fn == nil {
		panic("builder: WithGMTFn(nil)")
	}
	return func(c *builderConfig) {
		c.gmtFn = fn
	}
}

// WithRandomGMT selects RandomGMT; Build then requires an RNG.
func WithRandomGMT() Option {
	return func(c *builderConfig) {
		c.gmtFn = RandomGMT
		c.needRand = true
	}
}

// WithAirline sets the airline designator of generated flights.
func WithAirline(code string) Option {
	return func(c *builderConfig) {
		if code != "" {
			c.airline = code
		}
	}
}

// WithSymbolCodes sets the code scheme to SymbolCodeFn.
func WithSymbolCodes() Option { return WithCodeScheme(SymbolCodeFn) }

// WithIATACodes sets the code scheme to IATACodeFn.
func WithIATACodes() Option { return WithCodeScheme(IATACodeFn) }
