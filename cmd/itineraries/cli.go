// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/BayronJDv/funcional-final/internal/config"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// invocation is the parsed command line.
type invocation struct {
	cfg config.Config

	// generate, when non-empty, names a builder topology to print as a
	// dataset instead of running a query.
	generate string
	size     int
	seed     int64
}

// parse reads args over the optional -config file. Flags the user sets win
// over file values. The boolean reports a clean exit (help).
func parse(args []string, out io.Writer) (*invocation, bool, error) {
	fs := flag.NewFlagSet("itineraries", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
itineraries - enumerate and rank flight itineraries.

Usage:
  itineraries -dataset FILE -from CODE -to CODE [-query KIND] [-deadline HH:MM]
  itineraries -config FILE [overrides]
  itineraries -generate chain|complete|hub -n N [-seed S]

Options:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "YAML configuration file.")
	datasetPath := fs.String("dataset", "", "Airport and flight catalog (YAML or JSON).")
	kind := fs.String("query", config.KindAll, "Query kind: all, total, stops, flight or deadline.")
	from := fs.String("from", "", "Origin airport code.")
	to := fs.String("to", "", "Destination airport code.")
	deadline := fs.String("deadline", "", "Latest local arrival at the destination, HH:MM (deadline query).")
	maxLegs := fs.Int("max-legs", -1, "Maximum legs per itinerary; -1 for no limit.")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn or error.")
	logFormat := fs.String("log-format", "text", "Log format: text or json.")
	generate := fs.String("generate", "", "Print a synthetic dataset: chain, complete or hub.")
	size := fs.Int("n", 5, "Number of airports for -generate.")
	seed := fs.Int64("seed", 0, "Random seed for -generate; 0 keeps the fixed schedule.")

	if len(args) == 0 {
		fs.Usage()
		return nil, true, nil
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	inv := &invocation{cfg: config.Default(), generate: *generate, size: *size, seed: *seed}
	if inv.generate != "" {
		return inv, false, nil
	}

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		inv.cfg = cfg
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dataset":
			inv.cfg.Dataset = *datasetPath
		case "query":
			inv.cfg.Query.Kind = *kind
		case "from":
			inv.cfg.Query.Origin = *from
		case "to":
			inv.cfg.Query.Destination = *to
		case "deadline":
			inv.cfg.Query.Deadline = *deadline
		case "max-legs":
			inv.cfg.MaxLegs = *maxLegs
		case "log-level":
			inv.cfg.Log.Level = *logLevel
		case "log-format":
			inv.cfg.Log.Format = *logFormat
		}
	})

	normalize(&inv.cfg.Query)

	if err := inv.cfg.Validate(); err != nil {
		return nil, false, usageError("%v", err)
	}

	return inv, false, nil
}

// normalize canonicalizes a query whether it came from flags or the config
// file: airport codes upper case, kind lower case.
func normalize(q *config.Query) {
	q.Kind = strings.ToLower(strings.TrimSpace(q.Kind))
	q.Origin = strings.ToUpper(strings.TrimSpace(q.Origin))
	q.Destination = strings.ToUpper(strings.TrimSpace(q.Destination))
	q.Deadline = strings.TrimSpace(q.Deadline)
}
