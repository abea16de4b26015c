// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Data model (Airport, Flight, Itinerary) and sentinel errors.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction.
var (
	// ErrNilAirports indicates that NewNetwork received a nil airport collection.
	ErrNilAirports = errors.New("core: airport collection is nil")

	// ErrNilFlights indicates that NewNetwork received a nil flight collection.
	ErrNilFlights = errors.New("core: flight collection is nil")

	// ErrEmptyAirportCode indicates an airport or flight with an empty code.
	ErrEmptyAirportCode = errors.New("core: airport code is empty")
)

// Airport is a vertex of the flight network.
type Airport struct {
	// Code uniquely identifies the airport (e.g. "BOG").
	Code string

	// GMT is the offset in encoded hundreds form: +0500 → 500, -0430 → -430.
	GMT int
}

// Flight is a directed, scheduled edge Origin → Destination.
//
// Times are local to the airport they refer to: departure at Origin,
// arrival at Destination. Stops counts technical stops within this single
// flight, independent of the connections an itinerary makes.
type Flight struct {
	Airline     string
	Number      int
	Origin      string
	Destination string
	DepHour     int
	DepMinute   int
	ArrHour     int
	ArrMinute   int
	Stops       int
}

// String renders the flight as "AV123 BOG 06:30 -> MDE 07:25".
func (f Flight) String() string {
	return fmt.Sprintf("%s%d %s %02d:%02d -> %s %02d:%02d",
		f.Airline, f.Number,
		f.Origin, f.DepHour, f.DepMinute,
		f.Destination, f.ArrHour, f.ArrMinute)
}

// Itinerary is an ordered sequence of flights (legs). Paths produced by the
// enumerator satisfy legs[i].Destination == legs[i+1].Origin; chronological
// feasibility is checked separately.
//
// An empty Itinerary is the identity produced when origin == destination.
type Itinerary []Flight
