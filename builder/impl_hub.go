// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_hub.go - implementation of Hub(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewAirports).
//   - Airport 0 is the hub; airports 1..n-1 are spokes.
//   - For each spoke i in increasing order emits i → 0 then 0 → i.

package builder

import "fmt"

const (
	methodHub   = "Hub"
	minHubNodes = 2
)

// Hub returns a Constructor that builds a hub-and-spoke network around airport 0.
func Hub(n int) Constructor {
	return func(nb *networkBuilder, cfg builderConfig) error {
		if n < minHubNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodHub, n, minHubNodes, ErrTooFewAirports)
		}
		for i := 0; i < n; i++ {
			nb.airport(i, cfg)
		}
		for i := 1; i < n; i++ {
			nb.flight(i, 0, cfg)
			nb.flight(0, i, cfg)
		}

		return nil
	}
}
