// SPDX-License-Identifier: MIT

package feasibility

import (
	"errors"
	"fmt"

	"github.com/BayronJDv/funcional-final/core"
	"github.com/BayronJDv/funcional-final/timeline"
)

// ErrMissedConnection indicates that a leg departs at or before the previous leg lands.
var ErrMissedConnection = errors.New("feasibility: missed connection")

// ConnectionError describes the first infeasible connection of an itinerary.
type ConnectionError struct {
	// Leg is the index of the departing leg (≥ 1); Leg-1 is the arriving one.
	Leg int

	// Airport is the connecting airport code.
	Airport string

	// Arrival and Departure are absolute minutes on the shared timeline.
	Arrival   int
	Departure int
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("feasibility: leg %d at %s departs at %d, previous leg arrives at %d",
		e.Leg, e.Airport, e.Departure, e.Arrival)
}

// Unwrap lets errors.Is match ErrMissedConnection.
func (e *ConnectionError) Unwrap() error { return ErrMissedConnection }

// Check returns nil when every connection satisfies Arrival(prev) < Departure(next),
// otherwise a *ConnectionError for the first one that does not.
func Check(src timeline.GMTSource, it core.Itinerary) error {
	for i := 1; i < len(it); i++ {
		arr := timeline.Arrival(src, it[i-1])
		dep := timeline.Departure(src, it[i])
		if arr >= dep {
			return &ConnectionError{Leg: i, Airport: it[i].Origin, Arrival: arr, Departure: dep}
		}
	}

	return nil
}

// IsValid reports whether it is chronologically feasible.
func IsValid(src timeline.GMTSource, it core.Itinerary) bool {
	return Check(src, it) == nil
}

// Filter returns the valid itineraries of its, preserving order.
// The result is never nil.
func Filter(src timeline.GMTSource, its []core.Itinerary) []core.Itinerary {
	out := make([]core.Itinerary, 0, len(its))
	for _, it := range its {
		if IsValid(src, it) {
			out = append(out, it)
		}
	}

	return out
}
