// SPDX-License-Identifier: MIT

// Package paths enumerates every simple path between two airports of a
// core.Network, exploring branches concurrently.
//
// What:
//
//   - Enumerate(net, origin, destination, opts...): all simple paths as
//     core.Itinerary values (one leg per traversed flight).
//   - Count(net, origin, destination, opts...): the number of simple paths,
//     without materializing them.
//   - Hops(net, origin) / Reachable(net, origin, destination): breadth-first
//     reachability with the fewest legs to each airport. Cheap enough to run
//     before an enumeration that would find nothing.
//
// A simple path never revisits an airport, the origin included. Parallel
// flights between the same pair of airports yield distinct paths.
//
// How (fork-join divide and conquer):
//
//  1. If the current airport is the destination, yield one empty continuation.
//  2. Otherwise, for every departure whose destination is not yet on the
//     path, fork one goroutine that enumerates from that destination with
//     the current airport marked visited.
//  3. Join all children (errgroup.Group.Wait), prefix each child result with
//     the flight that led to it and concatenate.
//
// Each child writes into its own result slot and reads only the immutable
// network and its own visited slice, so no locks are taken. The recursion
// depth is bounded by the number of airports because the visited set grows
// on every step.
//
// Ordering:
//
//	The relative order of paths coming from different branches is not part
//	of the contract. Callers that need an order must sort.
//
// Resource usage:
//
//	There is no fan-out cap and no memoization: a dense network yields an
//	exponential number of paths and goroutines. WithMaxLegs bounds the
//	itinerary length when a caller needs to tame that.
//
// Edge cases:
//
//   - origin == destination → exactly one empty itinerary.
//   - unknown origin or no route → empty result, nil error.
//
// Options:
//
//   - WithMaxLegs(n)      paths longer than n legs are not explored (default -1: unbounded).
//   - WithOnVisit(fn)     pre-order hook per explored airport; must be safe for
//     concurrent use. A non-nil error aborts the enumeration.
//
// Errors:
//
//   - ErrNetworkNil       net is nil.
//   - hook errors         propagated from OnVisit, wrapped with the airport code.
package paths
