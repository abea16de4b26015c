// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors. Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewAirports indicates a size parameter below the constructor minimum.
var ErrTooFewAirports = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic policy without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
