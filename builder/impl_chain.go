// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewAirports).
//   - Registers airports 0..n-1 in ascending order.
//   - Emits flights (i-1) → i for i=1..n-1 in increasing order.

package builder

import "fmt"

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds the line 0→1→…→n-1.
func Chain(n int) Constructor {
	return func(nb *networkBuilder, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewAirports)
		}
		for i := 0; i < n; i++ {
			nb.airport(i, cfg)
		}
		for i := 1; i < n; i++ {
			nb.flight(i-1, i, cfg)
		}

		return nil
	}
}
