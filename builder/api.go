// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical output.

package builder

import (
	"fmt"

	"github.com/BayronJDv/funcional-final/core"
)

// Constructor applies a deterministic mutation to the network under
// construction using the resolved builderConfig. Constructors validate
// their parameters and return sentinel errors; they never panic.
type Constructor func(nb *networkBuilder, cfg builderConfig) error

// networkBuilder accumulates airports (deduplicated by index) and flights.
type networkBuilder struct {
	airports []core.Airport
	flights  []core.Flight
	byIndex  map[int]string // airport index → code
}

// Build resolves the options, applies all constructors in order and returns
// the resulting collections, ready for core.NewNetwork or planner.New.
// Any constructor error is wrapped with "Build: %w".
func Build(opts []Option, cons ...Constructor) ([]core.Airport, []core.Flight, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.needRand && cfg.rng == nil {
		return nil, nil, fmt.Errorf("Build: %w", ErrNeedRandSource)
	}
	nb := &networkBuilder{
		airports: []core.Airport{},
		flights:  []core.Flight{},
		byIndex:  make(map[int]string),
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(nb, cfg); err != nil {
			return nil, nil, fmt.Errorf("Build: %w", err)
		}
	}

	return nb.airports, nb.flights, nil
}

// airport registers airport idx if missing and returns its code.
func (nb *networkBuilder) airport(idx int, cfg builderConfig) string {
	if code, ok := nb.byIndex[idx]; ok {
		return code
	}
	code := cfg.codeFn(idx)
	nb.byIndex[idx] = code
	nb.airports = append(nb.airports, core.Airport{Code: code, GMT: cfg.gmtFn(idx, cfg.rng)})

	return code
}

// flight appends one flight from airport index u to v.
func (nb *networkBuilder) flight(u, v int, cfg builderConfig) {
	from := nb.airport(u, cfg)
	to := nb.airport(v, cfg)
	s := cfg.scheduleFn(u, v, cfg.rng)
	nb.flights = append(nb.flights, core.Flight{
		Airline:     cfg.airline,
		Number:      len(nb.flights) + 1,
		Origin:      from,
		Destination: to,
		DepHour:     s.DepHour,
		DepMinute:   s.DepMinute,
		ArrHour:     s.ArrHour,
		ArrMinute:   s.ArrMinute,
		Stops:       s.Stops,
	})
}
