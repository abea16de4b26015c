// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewAirports).
//   - Registers airports 0..n-1 in ascending order.
//   - Emits one flight per ordered pair (i, j), i≠j, in lexicographic order.
//
// Complexity:
//   - Time: O(n²) flights. The number of simple paths between two airports
//     of the result is Σ_{k=0}^{n-2} (n-2)!/(n-2-k)!, which makes it the
//     worst case for path enumeration.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete directed network K_n.
func Complete(n int) Constructor {
	return func(nb *networkBuilder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewAirports)
		}
		for i := 0; i < n; i++ {
			nb.airport(i, cfg)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					nb.flight(i, j, cfg)
				}
			}
		}

		return nil
	}
}
