// SPDX-License-Identifier: MIT

package timeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BayronJDv/funcional-final/core"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour

	// gmtHourUnit is the divisor turning an encoded offset into whole hours.
	gmtHourUnit = 100
)

// ErrBadGMT indicates a malformed GMT offset string.
var ErrBadGMT = errors.New("timeline: malformed GMT offset")

// GMTSource resolves an airport code to its encoded GMT offset.
// Implementations return 0 for unknown codes.
type GMTSource interface {
	GMT(code string) int
}

// Table adapts a plain airport slice to GMTSource.
type Table []core.Airport

// GMT implements GMTSource via GMTLookup.
func (t Table) GMT(code string) int { return GMTLookup(t, code) }

// AbsoluteMinutes returns (hour + gmt/100)*60 + minute. No bounds checking.
func AbsoluteMinutes(hour, minute, gmt int) int {
	return (hour+gmt/gmtHourUnit)*minutesPerHour + minute
}

// GMTLookup returns the offset of the first airport whose code matches,
// or 0 if none does. Complexity: O(len(airports)).
func GMTLookup(airports []core.Airport, code string) int {
	for _, a := range airports {
		if a.Code == code {
			return a.GMT
		}
	}

	return 0
}

// Departure returns the absolute departure time of f at its origin.
func Departure(src GMTSource, f core.Flight) int {
	return AbsoluteMinutes(f.DepHour, f.DepMinute, src.GMT(f.Origin))
}

// Arrival returns the absolute arrival time of f at its destination.
func Arrival(src GMTSource, f core.Flight) int {
	return AbsoluteMinutes(f.ArrHour, f.ArrMinute, src.GMT(f.Destination))
}

// ParseGMT parses an encoded offset: an optional sign followed by one to
// four digits, e.g. "+0500", "-0430", "0", "500". When three or more digits
// are given, the last two are minutes and must be below 60.
func ParseGMT(s string) (int, error) {
	raw := strings.TrimSpace(s)
	body := strings.TrimLeft(raw, "+-")
	if len(raw)-len(body) > 1 || body == "" || len(body) > 4 {
		return 0, fmt.Errorf("%w: %q", ErrBadGMT, s)
	}
	for _, r := range body {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadGMT, s)
		}
	}

	v, err := strconv.Atoi(body)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadGMT, s, err)
	}
	if len(body) >= 3 && v%gmtHourUnit >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q: minutes out of range", ErrBadGMT, s)
	}
	if strings.HasPrefix(raw, "-") {
		v = -v
	}

	return v, nil
}

// FormatGMT renders an encoded offset as "+HHMM" / "-HHMM".
func FormatGMT(gmt int) string {
	sign := '+'
	if gmt < 0 {
		sign = '-'
		gmt = -gmt
	}

	return fmt.Sprintf("%c%04d", sign, gmt)
}

// Clock renders an absolute value as HH:MM, wrapped into a single day.
func Clock(abs int) string {
	m := ((abs % minutesPerDay) + minutesPerDay) % minutesPerDay

	return fmt.Sprintf("%02d:%02d", m/minutesPerHour, m%minutesPerHour)
}
