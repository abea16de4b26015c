// SPDX-License-Identifier: MIT

// Package feasibility decides whether a structural path through the flight
// network is a real, chronologically feasible itinerary.
//
// Rule:
//
//	For every consecutive pair of legs (A, B):
//	    Arrival(A) < Departure(B)
//	on the shared timeline (timeline.Arrival / timeline.Departure), i.e. the
//	earlier leg lands strictly before the next one takes off.
//
// Itineraries with zero or one leg are vacuously valid. The check is purely
// about time values: there is no minimum connection time and no same-day
// constraint.
//
// Functions:
//
//   - IsValid(src, it)   boolean verdict.
//   - Check(src, it)     nil or a *ConnectionError naming the first missed connection.
//   - Filter(src, its)   keeps valid itineraries in input order.
//
// Errors:
//
//	ErrMissedConnection - wrapped by every *ConnectionError.
package feasibility
