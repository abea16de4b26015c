// SPDX-License-Identifier: MIT

// Package ranking scores itineraries with a cost function and selects the
// cheapest ones.
//
// Scaffold:
//
//  1. Rank computes cost(it) for every itinerary concurrently, one goroutine
//     per itinerary, each writing into its own slot.
//  2. After the join, the scored slice is sorted ascending by cost with a
//     stable sort.
//  3. TopK keeps the first k entries.
//
// Ties:
//
//	Equal costs keep their input order, which for planner queries is the
//	enumeration order. For a fixed input order the result, membership
//	included, is deterministic. When a tie straddles the K boundary, the
//	tied entries that come first in the input are the ones kept.
//
// Cost functions:
//
//   - TotalTime(src)    ground waits plus flight durations, in minutes.
//   - StopCount()       technical stops plus connections (len-1).
//   - FlightTime(src)   flight durations only, in minutes.
//
// Durations and waits are taken as absolute values. For itineraries that
// passed feasibility.Filter the waits are already positive, so the absolute
// value only matters for unvalidated input.
//
// Deadline selection:
//
//	LatestDeparture keeps the itineraries whose final arrival is no later than
//	a local (hour, minute) deadline at the destination, then returns the one
//	whose first leg departs latest. It reuses TopK with K = DeadlineK and
//	cost = -departure.
//
// Concurrency:
//
//	There is no cancellation: every cost is computed even when only the first
//	few results are kept. Cost functions must be safe for concurrent use;
//	the ones in this package are pure.
package ranking
