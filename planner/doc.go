// SPDX-License-Identifier: MIT

// Package planner binds a flight dataset once and answers itinerary queries
// against it.
//
// Every query runs the same pipeline:
//
//	paths.Enumerate → feasibility.Filter → ranking (cost + top-K)
//
// Queries:
//
//   - FindItineraries          all valid itineraries, enumeration order.
//   - FindFastestByTotalTime   up to 3, ascending by ground + flight minutes.
//   - FindFewestStops          up to 3, ascending by technical stops + connections.
//   - FindFastestFlightTime    up to 3, ascending by flight minutes only.
//   - FindLatestDeparture      at most 1: latest first departure that still
//     lands by a local deadline at the destination.
//
// Unknown airport codes and unreachable destinations yield empty results.
// origin == destination yields the trivial empty itinerary, which costs 0 in
// the top-3 queries and never meets a deadline.
//
// A Planner is immutable after New and safe for concurrent use.
package planner
