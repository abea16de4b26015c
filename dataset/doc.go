// SPDX-License-Identifier: MIT

// Package dataset reads and writes airport/flight catalogs.
//
// Documents are YAML (JSON is accepted too, being a YAML subset):
//
//	airports:
//	  - code: BOG
//	    gmt: "-0500"
//	flights:
//	  - airline: AV
//	    number: 9301
//	    origin: BOG
//	    destination: MDE
//	    departure: "07:00"
//	    arrival: "08:00"
//	    stops: 0
//
// gmt takes the encoded hundreds form, quoted or not ("+0500", -500, 0).
// Scalars are parsed from their raw text, so "+0500" is never read as an
// octal number. Times are local "H:MM" or "HH:MM" clocks.
//
// Unknown keys are rejected. A document must carry at least one airport and
// one flight; record-level errors name the offending index.
package dataset
