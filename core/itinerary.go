// SPDX-License-Identifier: MIT
//
// File: itinerary.go
// Role: Read-only helpers over Itinerary.

package core

import "strings"

// Len returns the number of legs.
func (it Itinerary) Len() int { return len(it) }

// Origin returns the first leg's origin, or "" for an empty itinerary.
func (it Itinerary) Origin() string {
	if len(it) == 0 {
		return ""
	}

	return it[0].Origin
}

// Destination returns the last leg's destination, or "" for an empty itinerary.
func (it Itinerary) Destination() string {
	if len(it) == 0 {
		return ""
	}

	return it[len(it)-1].Destination
}

// Codes returns the airport sequence visited by the itinerary,
// e.g. [BOG MDE CLO] for BOG→MDE, MDE→CLO. Empty for an empty itinerary.
func (it Itinerary) Codes() []string {
	if len(it) == 0 {
		return nil
	}
	codes := make([]string, 0, len(it)+1)
	codes = append(codes, it[0].Origin)
	for _, f := range it {
		codes = append(codes, f.Destination)
	}

	return codes
}

// Stops sums the technical stops of every leg. Connections between legs
// are not counted here; see ranking.StopCount.
func (it Itinerary) Stops() int {
	total := 0
	for _, f := range it {
		total += f.Stops
	}

	return total
}

// String joins the legs with " | ".
func (it Itinerary) String() string {
	parts := make([]string, len(it))
	for i, f := range it {
		parts[i] = f.String()
	}

	return strings.Join(parts, " | ")
}
