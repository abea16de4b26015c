// SPDX-License-Identifier: MIT

package ranking

import "github.com/BayronJDv/funcional-final/core"

// Result sizes used by the planner queries.
const (
	// DefaultK is the number of itineraries returned by the cost-based queries.
	DefaultK = 3

	// DeadlineK is the number of itineraries returned by the deadline query.
	DeadlineK = 1
)

// CostFunc maps an itinerary to a scalar; lower is better.
type CostFunc func(core.Itinerary) int

// Scored pairs an itinerary with its cost.
type Scored struct {
	Itinerary core.Itinerary
	Cost      int
}
