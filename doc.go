// SPDX-License-Identifier: MIT

// Package itineraries enumerates and ranks multi-leg flight itineraries
// across time zones, exploring the flight network concurrently.
//
// The module is organized leaves first:
//
//	core/         Airport, Flight, Itinerary and the read-only Network index
//	timeline/     local (hour, minute, GMT) → absolute minutes; GMT parsing
//	paths/        concurrent simple-path enumeration, counting, reachability
//	feasibility/  strict arrival < departure connection check
//	ranking/      parallel cost evaluation, stable top-K, deadline selection
//	planner/      binds a dataset once and answers the five queries
//	dataset/      YAML/JSON catalogs of airports and flights
//	builder/      deterministic synthetic networks for tests and benchmarks
//	cmd/itineraries  command-line front end rendering results as a table
//
// Every query runs the same pipeline:
//
//	paths.Enumerate → feasibility.Filter → ranking.TopK / ranking.LatestDeparture
//
// Quick start:
//
//	p, err := planner.New(airports, flights)
//	if err != nil { … }
//	best := p.FindFastestByTotalTime("BOG", "MAD")  // up to 3
//	it, ok := p.FindLatestDeparture("BOG", "MAD", 9, 0)
//
// Edge cases never fail. Missing routes yield empty results and an unmet
// deadline reports false. Airports absent from the table count as GMT +0000.
package itineraries
