// SPDX-License-Identifier: MIT

// Command itineraries loads a flight catalog and answers one itinerary query.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BayronJDv/funcional-final/builder"
	"github.com/BayronJDv/funcional-final/core"
	"github.com/BayronJDv/funcional-final/dataset"
	"github.com/BayronJDv/funcional-final/internal/config"
	"github.com/BayronJDv/funcional-final/internal/logging"
	"github.com/BayronJDv/funcional-final/planner"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, executes the request and writes results to stdout and
// logs to stderr.
func run(stdout, stderr io.Writer, args []string) error {
	inv, shouldExit, err := parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	if inv.generate != "" {
		return generate(stdout, inv)
	}

	cfg := inv.cfg
	ctx := logging.WithLogger(context.Background(), logging.New(stderr, cfg.Log.Level, cfg.Log.Format))

	return query(ctx, stdout, cfg)
}

// query loads the dataset, answers cfg.Query and prints the result table.
// It logs through the logger carried by ctx.
func query(ctx context.Context, stdout io.Writer, cfg config.Config) error {
	logger := logging.FromContext(ctx)

	ds, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	p, err := planner.New(ds.Airports, ds.Flights,
		planner.WithLogger(logger),
		planner.WithMaxLegs(cfg.MaxLegs),
	)
	if err != nil {
		return err
	}

	stats := p.Network().Stats()
	logger.Info("dataset loaded",
		slog.String("path", cfg.Dataset),
		slog.Int("airports", stats.AirportCount),
		slog.Int("flights", stats.FlightCount),
	)
	if len(stats.UnknownCodes) > 0 {
		logger.Warn("flights reference airports without a GMT offset; assuming +0000",
			slog.Any("codes", stats.UnknownCodes))
	}

	its, err := answer(p, cfg)
	if err != nil {
		return err
	}
	logger.Debug("query answered", slog.String("query", cfg.Query.Kind), slog.Int("results", len(its)))

	if len(its) == 0 {
		_, err = fmt.Fprintf(stdout, "no itineraries from %s to %s\n", cfg.Query.Origin, cfg.Query.Destination)
		return err
	}
	_, err = fmt.Fprintln(stdout, renderTable(p.Network(), its))

	return err
}

// answer dispatches the configured query.
func answer(p *planner.Planner, cfg config.Config) ([]core.Itinerary, error) {
	q := cfg.Query
	switch q.Kind {
	case config.KindAll:
		return p.FindItineraries(q.Origin, q.Destination), nil
	case config.KindTotal:
		return p.FindFastestByTotalTime(q.Origin, q.Destination), nil
	case config.KindStops:
		return p.FindFewestStops(q.Origin, q.Destination), nil
	case config.KindFlight:
		return p.FindFastestFlightTime(q.Origin, q.Destination), nil
	case config.KindDeadline:
		d, err := cfg.Deadline()
		if err != nil {
			return nil, err
		}
		if it, ok := p.FindLatestDeparture(q.Origin, q.Destination, d.Hour, d.Minute); ok {
			return []core.Itinerary{it}, nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownQuery, q.Kind)
	}
}

// maxGeneratedAirports is the size of the three-letter code space used by -generate.
const maxGeneratedAirports = 26 * 26 * 26

// generate prints a synthetic dataset built with the builder package.
func generate(w io.Writer, inv *invocation) error {
	var cons builder.Constructor
	switch inv.generate {
	case "chain":
		cons = builder.Chain(inv.size)
	case "complete":
		cons = builder.Complete(inv.size)
	case "hub":
		cons = builder.Hub(inv.size)
	default:
		return usageError("unknown topology %q: want chain, complete or hub", inv.generate)
	}
	if inv.size > maxGeneratedAirports {
		return usageError("-n %d exceeds %d, the number of three-letter airport codes", inv.size, maxGeneratedAirports)
	}

	opts := []builder.Option{builder.WithIATACodes()}
	if inv.seed != 0 {
		opts = append(opts, builder.WithSeed(inv.seed), builder.WithRandomSchedule(), builder.WithRandomGMT())
	}

	airports, flights, err := builder.Build(opts, cons)
	if err != nil {
		return usageError("%v", err)
	}

	return dataset.Encode(w, &dataset.Dataset{Airports: airports, Flights: flights})
}
