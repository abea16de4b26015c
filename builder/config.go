// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - resolved configuration and default schedule/GMT policies.

package builder

import "math/rand"

// Schedule is the local timing of one generated flight.
type Schedule struct {
	DepHour, DepMinute int
	ArrHour, ArrMinute int
	Stops              int
}

// ScheduleFn decides the schedule of the flight from airport index u to v.
type ScheduleFn func(u, v int, rng *rand.Rand) Schedule

// GMTFn decides the encoded GMT offset of airport idx.
type GMTFn func(idx int, rng *rand.Rand) int

// builderConfig is immutable once Build starts.
type builderConfig struct {
	codeFn     CodeFn
	rng        *rand.Rand // nil unless WithSeed/WithRand
	scheduleFn ScheduleFn
	gmtFn      GMTFn
	airline    string

	needRand bool // set by options whose functions draw from rng
}

const (
	defaultAirline = "BL"

	hoursPerDay       = 24
	minFlightMinutes  = 30
	maxFlightMinutes  = 300
	defaultHourStride = 2
)

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		codeFn:     DefaultCodeFn,
		rng:        nil,
		scheduleFn: DefaultSchedule,
		gmtFn:      DefaultGMT,
		airline:    defaultAirline,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DefaultSchedule departs airport u at (2u mod 24):00 and lands one hour
// later, whatever v is. For n ≤ 12 airports, connecting u→v then v→w is
// feasible iff u < v.
func DefaultSchedule(u, _ int, _ *rand.Rand) Schedule {
	dep := (defaultHourStride * u) % hoursPerDay

	return Schedule{DepHour: dep, ArrHour: (dep + 1) % hoursPerDay}
}

// RandomSchedule draws a departure uniformly over the day and a flight
// duration in [30, 300] minutes, plus 0–2 technical stops. Requires an RNG.
func RandomSchedule(_, _ int, rng *rand.Rand) Schedule {
	dep := rng.Intn(hoursPerDay * 60)
	arr := dep + minFlightMinutes + rng.Intn(maxFlightMinutes-minFlightMinutes+1)
	arr %= hoursPerDay * 60

	return Schedule{
		DepHour:   dep / 60,
		DepMinute: dep % 60,
		ArrHour:   arr / 60,
		ArrMinute: arr % 60,
		Stops:     rng.Intn(3),
	}
}

// DefaultGMT places every airport at +0000.
func DefaultGMT(int, *rand.Rand) int { return 0 }

// RandomGMT draws a whole-hour offset in [-1200, +1200]. Requires an RNG.
func RandomGMT(_ int, rng *rand.Rand) int {
	return (rng.Intn(25) - 12) * 100
}
