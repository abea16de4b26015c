// SPDX-License-Identifier: MIT

// Package timeline normalizes local flight times into a single comparable
// timeline of absolute minutes, so that departures and arrivals at airports
// in different time zones can be compared directly.
//
// What:
//
//   - AbsoluteMinutes(hour, minute, gmt) = (hour + gmt/100)*60 + minute,
//     using integer division on the encoded offset (+0500 → 500 → 5 hours).
//   - Departure / Arrival apply AbsoluteMinutes to a flight using the GMT of
//     its origin / destination airport.
//   - GMTLookup resolves an airport code against a plain airport slice,
//     returning 0 when the code is unknown.
//
// Values are relative: negative results and results above 1440 are valid
// and expected. They exist only for comparisons and differences; use Clock
// to render one for humans.
//
// GMTSource:
//
//	Anything with GMT(code string) int. *core.Network satisfies it with an
//	O(1) map; Table adapts a []core.Airport with a linear first-match scan.
//
// Errors:
//
//	ErrBadGMT - ParseGMT received a malformed offset string.
package timeline
