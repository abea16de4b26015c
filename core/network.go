// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Immutable flight network (adjacency by origin + GMT index).
// Concurrency:
//   - No locks. All fields are written once inside NewNetwork and only read afterwards.

package core

import (
	"fmt"
	"sort"
)

// Network is the read-only directed multigraph induced by a flight schedule.
type Network struct {
	airports []Airport // input order, duplicates kept
	flights  []Flight  // input order

	// gmt[code] = offset of the first airport carrying that code.
	gmt map[string]int

	// departures[origin] = flights leaving origin, in input order.
	departures map[string][]Flight
}

// Stats is a snapshot of catalog sizes.
type Stats struct {
	AirportCount int
	FlightCount  int

	// OriginCount is the number of distinct airports with at least one departure.
	OriginCount int

	// UnknownCodes lists, sorted, the flight endpoints missing from the airport
	// table. Their GMT resolves to 0.
	UnknownCodes []string
}

// NewNetwork validates both collections and builds the departure index.
//
// Validation (fail fast, in order):
//  1. airports != nil (ErrNilAirports).
//  2. flights != nil (ErrNilFlights).
//  3. every airport code and every flight endpoint is non-empty (ErrEmptyAirportCode).
//
// Empty (non-nil) collections are valid and produce an empty network.
// Duplicate airport codes are tolerated; the first record wins.
//
// Complexity: O(A + F) time and space.
func NewNetwork(airports []Airport, flights []Flight) (*Network, error) {
	if airports == nil {
		return nil, ErrNilAirports
	}
	if flights == nil {
		return nil, ErrNilFlights
	}

	n := &Network{
		airports:   append([]Airport(nil), airports...),
		flights:    append([]Flight(nil), flights...),
		gmt:        make(map[string]int, len(airports)),
		departures: make(map[string][]Flight),
	}

	for i, a := range n.airports {
		if a.Code == "" {
			return nil, fmt.Errorf("airport #%d: %w", i, ErrEmptyAirportCode)
		}
		if _, seen := n.gmt[a.Code]; !seen {
			n.gmt[a.Code] = a.GMT
		}
	}

	for i, f := range n.flights {
		if f.Origin == "" || f.Destination == "" {
			return nil, fmt.Errorf("flight #%d (%s%d): %w", i, f.Airline, f.Number, ErrEmptyAirportCode)
		}
		n.departures[f.Origin] = append(n.departures[f.Origin], f)
	}

	return n, nil
}

// GMT returns the encoded offset of the first airport with the given code.
// Unknown codes resolve to 0: airports missing from the table are treated as UTC.
func (n *Network) GMT(code string) int {
	return n.gmt[code]
}

// HasAirport reports whether code appears in the airport table.
func (n *Network) HasAirport(code string) bool {
	_, ok := n.gmt[code]

	return ok
}

// Departures returns the flights whose origin is code, in input order.
// The returned slice is shared and must not be modified.
func (n *Network) Departures(code string) []Flight {
	return n.departures[code]
}

// Airports returns a copy of the airport collection in input order.
func (n *Network) Airports() []Airport {
	return append([]Airport(nil), n.airports...)
}

// Flights returns a copy of the flight collection in input order.
func (n *Network) Flights() []Flight {
	return append([]Flight(nil), n.flights...)
}

// AirportCount returns the number of airport records, duplicates included.
func (n *Network) AirportCount() int { return len(n.airports) }

// FlightCount returns the number of flights.
func (n *Network) FlightCount() int { return len(n.flights) }

// Stats returns catalog sizes and the sorted list of flight endpoints that
// have no airport record. Complexity: O(F + U log U).
func (n *Network) Stats() Stats {
	unknown := make(map[string]struct{})
	for _, f := range n.flights {
		if !n.HasAirport(f.Origin) {
			unknown[f.Origin] = struct{}{}
		}
		if !n.HasAirport(f.Destination) {
			unknown[f.Destination] = struct{}{}
		}
	}
	codes := make([]string, 0, len(unknown))
	for c := range unknown {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	return Stats{
		AirportCount: len(n.airports),
		FlightCount:  len(n.flights),
		OriginCount:  len(n.departures),
		UnknownCodes: codes,
	}
}
