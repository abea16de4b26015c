// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic flight networks
// (airports + flights) for tests, examples and benchmarks of the search,
// validation and ranking packages.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – Build(opts, cons...): resolves options, runs constructors in order,
//     returns the accumulated airport and flight collections.
//   - Topology constructors (Constructor):
//     – Chain(n):    0→1→…→n-1, one flight per hop.
//     – Complete(n): every ordered pair i≠j gets one flight.
//     – Hub(n):      airport 0 is a hub; spokes fly in and out of it.
//   - Airport-code schemes (CodeFn):
//     – DefaultCodeFn:     decimal strings ("0","1",…).
//     – SymbolCodeFn:      single letters ("A".."Z").
//     – ExcelColumnCodeFn: "A".."Z","AA",….
//     – IATACodeFn:        three-letter codes ("AAA","AAB",…).
//   - Schedules (ScheduleFn) and GMT offsets (GMTFn):
//     – DefaultSchedule: airport i departs at 2i:00 and lands at 2i+1:00,
//     so a path is chronologically feasible exactly when its airport
//     indices increase (for n ≤ 12).
//     – RandomSchedule:  uniform departure in the day, 30–300 min flight.
//     – DefaultGMT:      every airport at +0000.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     collections.
//   - Idempotent airports: constructors sharing an airport index reuse it.
//   - Invalid parameters return wrapped sentinels (ErrTooFewAirports, ...);
//     option constructors panic on programmer errors (nil functions).
package builder
