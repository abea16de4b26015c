// SPDX-License-Identifier: MIT

// Package core defines the flight data model (Airport, Flight, Itinerary) and
// the immutable Network that every search, validation and ranking package
// reads from.
//
// A Network is the directed graph induced by a flight schedule:
//
//   - vertices are airports, identified by their code;
//   - edges are flights, directed Origin → Destination;
//   - parallel edges (several flights between the same pair) are allowed;
//   - every airport carries a GMT offset in the encoded hundreds form of the
//     source data ("+0500" → 500, "-0430" → -430).
//
// Why a dedicated read-only type?
//
//   - Built once by NewNetwork, never mutated afterwards, so any number of
//     goroutines may read it without locks.
//   - Departures(code) is an O(1) bucket lookup, which the concurrent path
//     enumerator calls once per explored branch.
//   - GMT(code) resolves unknown codes to 0 (UTC) instead of failing, which
//     keeps incomplete airport tables usable.
//
// Construction:
//
//	net, err := core.NewNetwork(airports, flights)
//	if err != nil {
//	    // ErrNilAirports, ErrNilFlights or ErrEmptyAirportCode
//	}
//	for _, f := range net.Departures("BOG") {
//	    fmt.Println(f)
//	}
//
// Determinism:
//
//   - Departures preserves the input order of the flight collection.
//   - Airports and Flights return copies in input order.
//   - On duplicate airport codes the first record wins.
//
// Errors:
//
//	ErrNilAirports      - airport collection is nil.
//	ErrNilFlights       - flight collection is nil.
//	ErrEmptyAirportCode - an airport or flight references an empty code.
package core
