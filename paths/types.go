// SPDX-License-Identifier: MIT

// Package paths defines options and sentinel errors for path enumeration.
package paths

import "errors"

// ErrNetworkNil is returned when a nil *core.Network is passed to Enumerate or Count.
var ErrNetworkNil = errors.New("paths: network is nil")

// Option configures optional behavior of the enumeration.
type Option func(*Options)

// Options holds configurable parameters for Enumerate and Count.
type Options struct {
	// MaxLegs, if non-negative, stops exploring once a partial path has that
	// many legs. 0 only matches origin == destination. Default is -1 (no limit).
	MaxLegs int

	// OnVisit, if non-nil, is invoked every time an airport is entered, with
	// the number of legs flown to reach it. It runs on many goroutines at once.
	OnVisit func(code string, depth int) error
}

// DefaultOptions returns Options with no leg limit and no hook.
func DefaultOptions() Options {
	return Options{
		MaxLegs: -1,
		OnVisit: nil,
	}
}

// WithMaxLegs returns an Option limiting itineraries to at most n legs.
// A negative n removes the limit.
func WithMaxLegs(n int) Option {
	return func(o *Options) {
		o.MaxLegs = n
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(code string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
