// SPDX-License-Identifier: MIT

// Package config loads the command-line tool's YAML configuration.
//
// A file looks like:
//
//	dataset: testdata/colombia.yaml
//	max_legs: 4
//	log:
//	  level: debug
//	  format: json
//	query:
//	  kind: deadline
//	  origin: BOG
//	  destination: CTG
//	  deadline: "10:00"
//
// Every field is optional in the file; Default fills the gaps and command
// line flags override what the file sets.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BayronJDv/funcional-final/dataset"
	"github.com/BayronJDv/funcional-final/internal/logging"
)

// Query kinds.
const (
	KindAll      = "all"
	KindTotal    = "total"
	KindStops    = "stops"
	KindFlight   = "flight"
	KindDeadline = "deadline"
)

var (
	// ErrNoDataset indicates that no dataset path was configured.
	ErrNoDataset = errors.New("config: dataset path is empty")

	// ErrUnknownQuery indicates a query kind outside the supported set.
	ErrUnknownQuery = errors.New("config: unknown query kind")

	// ErrMissingAirport indicates a query without origin or destination.
	ErrMissingAirport = errors.New("config: query origin and destination are required")

	// ErrNoDeadline indicates a deadline query without a deadline.
	ErrNoDeadline = errors.New("config: deadline query needs a deadline")
)

// Log selects the logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Query describes one planner call.
type Query struct {
	Kind        string `yaml:"kind"`
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Deadline    string `yaml:"deadline"`
}

// Config is the complete tool configuration.
type Config struct {
	Dataset string `yaml:"dataset"`
	Log     Log    `yaml:"log"`
	Query   Query  `yaml:"query"`
	MaxLegs int    `yaml:"max_legs"`
}

// Default returns info-level text logging, an "all" query and no leg limit.
func Default() Config {
	return Config{
		Log:     Log{Level: "info", Format: logging.FormatText},
		Query:   Query{Kind: KindAll},
		MaxLegs: -1,
	}
}

// Load reads path over Default. Unknown keys are rejected.
// The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable query.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Dataset) == "" {
		return ErrNoDataset
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("config: log.format: %w", err)
	}

	switch c.Query.Kind {
	case KindAll, KindTotal, KindStops, KindFlight:
	case KindDeadline:
		if c.Query.Deadline == "" {
			return ErrNoDeadline
		}
		if _, err := c.Deadline(); err != nil {
			return fmt.Errorf("config: query.deadline: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQuery, c.Query.Kind)
	}
	if c.Query.Origin == "" || c.Query.Destination == "" {
		return ErrMissingAirport
	}

	return nil
}

// Deadline parses Query.Deadline.
func (c Config) Deadline() (dataset.Clock, error) {
	return dataset.ParseClock(c.Query.Deadline)
}
