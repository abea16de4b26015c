// SPDX-License-Identifier: MIT

package planner

import (
	"io"
	"log/slog"
)

// Option configures a Planner.
type Option func(*Options)

// Options holds the configurable parameters of New.
type Options struct {
	// Logger receives one debug record per query. Default discards.
	Logger *slog.Logger

	// MaxLegs bounds itinerary length during enumeration; -1 means no bound.
	MaxLegs int

	// OnVisit is forwarded to paths.WithOnVisit. A non-nil error aborts the
	// query, which is logged at error level and answers with an empty result.
	OnVisit func(code string, depth int) error
}

// DefaultOptions returns a silent logger and no leg limit.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxLegs: -1,
	}
}

// WithLogger sets the query logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxLegs forwards a leg limit to the path enumerator.
func WithMaxLegs(n int) Option {
	return func(o *Options) {
		o.MaxLegs = n
	}
}

// WithOnVisit installs a per-airport enumeration hook, e.g. to enforce a
// search budget. fn runs on many goroutines at once.
func WithOnVisit(fn func(code string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
