// SPDX-License-Identifier: MIT

package planner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BayronJDv/funcional-final/core"
	"github.com/BayronJDv/funcional-final/feasibility"
	"github.com/BayronJDv/funcional-final/paths"
	"github.com/BayronJDv/funcional-final/ranking"
)

// Planner answers itinerary queries over one bound network.
type Planner struct {
	net  *core.Network
	log  *slog.Logger
	opts Options
}

// New validates airports and flights and binds them to a Planner.
// Nil collections fail with core.ErrNilAirports / core.ErrNilFlights.
func New(airports []core.Airport, flights []core.Flight, opts ...Option) (*Planner, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	net, err := core.NewNetwork(airports, flights)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	return &Planner{net: net, log: o.Logger, opts: o}, nil
}

// Network returns the bound read-only network.
func (p *Planner) Network() *core.Network { return p.net }

// FindItineraries returns every valid itinerary from origin to destination.
func (p *Planner) FindItineraries(origin, destination string) []core.Itinerary {
	start := time.Now()
	valid, candidates := p.valid(origin, destination)
	p.logQuery("all", origin, destination, candidates, len(valid), len(valid), start)

	return valid
}

// FindFastestByTotalTime returns up to three valid itineraries with the
// smallest ground plus flight time.
func (p *Planner) FindFastestByTotalTime(origin, destination string) []core.Itinerary {
	return p.top("total", origin, destination, ranking.TotalTime(p.net))
}

// FindFewestStops returns up to three valid itineraries with the fewest
// technical stops plus connections.
func (p *Planner) FindFewestStops(origin, destination string) []core.Itinerary {
	return p.top("stops", origin, destination, ranking.StopCount())
}

// FindFastestFlightTime returns up to three valid itineraries with the
// smallest time in the air.
func (p *Planner) FindFastestFlightTime(origin, destination string) []core.Itinerary {
	return p.top("flight", origin, destination, ranking.FlightTime(p.net))
}

// FindLatestDeparture returns the valid itinerary that leaves origin latest
// while landing at destination no later than hour:minute local time.
// It reports false when none does.
func (p *Planner) FindLatestDeparture(origin, destination string, hour, minute int) (core.Itinerary, bool) {
	start := time.Now()
	valid, candidates := p.valid(origin, destination)
	it, ok := ranking.LatestDeparture(p.net, valid, destination, hour, minute)

	returned := 0
	if ok {
		returned = 1
	}
	p.logQuery("deadline", origin, destination, candidates, len(valid), returned, start,
		slog.String("deadline", fmt.Sprintf("%02d:%02d", hour, minute)))

	return it, ok
}

func (p *Planner) top(kind, origin, destination string, cost ranking.CostFunc) []core.Itinerary {
	start := time.Now()
	valid, candidates := p.valid(origin, destination)
	best := ranking.TopK(valid, cost, ranking.DefaultK)
	p.logQuery(kind, origin, destination, candidates, len(valid), len(best), start)

	return best
}

// valid enumerates and filters. It also returns the number of structural
// candidates for logging. Unreachable destinations skip enumeration
// entirely. Enumeration errors, which only an OnVisit hook can raise, are
// logged and yield an empty result.
func (p *Planner) valid(origin, destination string) ([]core.Itinerary, int) {
	its, err := p.enumerate(origin, destination)
	if err != nil {
		p.log.Error("itinerary query aborted",
			slog.String("origin", origin),
			slog.String("destination", destination),
			slog.Any("error", err),
		)
		return []core.Itinerary{}, 0
	}

	return feasibility.Filter(p.net, its), len(its)
}

func (p *Planner) enumerate(origin, destination string) ([]core.Itinerary, error) {
	ok, err := paths.Reachable(p.net, origin, destination)
	if err != nil || !ok {
		return nil, err
	}
	opts := []paths.Option{paths.WithMaxLegs(p.opts.MaxLegs)}
	if p.opts.OnVisit != nil {
		opts = append(opts, paths.WithOnVisit(p.opts.OnVisit))
	}

	return paths.Enumerate(p.net, origin, destination, opts...)
}

func (p *Planner) logQuery(kind, origin, destination string, candidates, valid, returned int, start time.Time, extra ...any) {
	args := []any{
		slog.String("query", kind),
		slog.String("origin", origin),
		slog.String("destination", destination),
		slog.Int("candidates", candidates),
		slog.Int("valid", valid),
		slog.Int("returned", returned),
		slog.Duration("elapsed", time.Since(start)),
	}
	p.log.Debug("itinerary query", append(args, extra...)...)
}
