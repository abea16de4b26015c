// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BayronJDv/funcional-final/core"
	"github.com/BayronJDv/funcional-final/timeline"
)

// Sentinel errors for catalog decoding.
var (
	// ErrNoAirports indicates a document without airport records.
	ErrNoAirports = errors.New("dataset: no airports")

	// ErrNoFlights indicates a document without flight records.
	ErrNoFlights = errors.New("dataset: no flights")

	// ErrBadTime indicates a departure or arrival that is not a valid HH:MM clock.
	ErrBadTime = errors.New("dataset: malformed time")
)

// Dataset is a decoded catalog, ready for core.NewNetwork or planner.New.
type Dataset struct {
	Airports []core.Airport
	Flights  []core.Flight
}

// document mirrors the on-disk layout.
type document struct {
	Airports []airportRecord `yaml:"airports"`
	Flights  []flightRecord  `yaml:"flights"`
}

type airportRecord struct {
	Code string   `yaml:"code"`
	GMT  gmtValue `yaml:"gmt"`
}

type flightRecord struct {
	Airline     string `yaml:"airline"`
	Number      int    `yaml:"number"`
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Departure   Clock  `yaml:"departure"`
	Arrival     Clock  `yaml:"arrival"`
	Stops       int    `yaml:"stops"`
}

// gmtValue decodes an encoded offset from the scalar's raw text.
type gmtValue int

func (g *gmtValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", n.Line, timeline.ErrBadGMT)
	}
	v, err := timeline.ParseGMT(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*g = gmtValue(v)

	return nil
}

func (g gmtValue) MarshalYAML() (any, error) {
	return timeline.FormatGMT(int(g)), nil
}

// Clock is a local time of day.
type Clock struct {
	Hour, Minute int
}

// UnmarshalYAML parses the scalar's raw text with ParseClock.
func (c *Clock) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", n.Line, ErrBadTime)
	}
	v, err := ParseClock(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = v

	return nil
}

// MarshalYAML renders c as "HH:MM".
func (c Clock) MarshalYAML() (any, error) {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute), nil
}

// ParseClock parses "H:MM" or "HH:MM" with hour in [0, 23] and minute in [0, 59].
func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	h, errH := strconv.Atoi(hh)
	m, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrBadTime, s)
	}

	return Clock{Hour: h, Minute: m}, nil
}

// Decode reads one catalog document from r.
func Decode(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoAirports
		}
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}

	return doc.toDataset()
}

// Load opens path and decodes it.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return ds, nil
}

// Encode writes ds to w in the layout Decode reads. ds must be non-nil.
func Encode(w io.Writer, ds *Dataset) error {
	doc := document{
		Airports: make([]airportRecord, len(ds.Airports)),
		Flights:  make([]flightRecord, len(ds.Flights)),
	}
	for i, a := range ds.Airports {
		doc.Airports[i] = airportRecord{Code: a.Code, GMT: gmtValue(a.GMT)}
	}
	for i, f := range ds.Flights {
		doc.Flights[i] = flightRecord{
			Airline:     f.Airline,
			Number:      f.Number,
			Origin:      f.Origin,
			Destination: f.Destination,
			Departure:   Clock{Hour: f.DepHour, Minute: f.DepMinute},
			Arrival:     Clock{Hour: f.ArrHour, Minute: f.ArrMinute},
			Stops:       f.Stops,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("dataset: encode: %w", err)
	}

	return enc.Close()
}

func (d document) toDataset() (*Dataset, error) {
	if len(d.Airports) == 0 {
		return nil, ErrNoAirports
	}
	if len(d.Flights) == 0 {
		return nil, ErrNoFlights
	}

	ds := &Dataset{
		Airports: make([]core.Airport, len(d.Airports)),
		Flights:  make([]core.Flight, len(d.Flights)),
	}
	for i, a := range d.Airports {
		if a.Code == "" {
			return nil, fmt.Errorf("dataset: airport #%d: %w", i, core.ErrEmptyAirportCode)
		}
		ds.Airports[i] = core.Airport{Code: a.Code, GMT: int(a.GMT)}
	}
	for i, f := range d.Flights {
		if f.Origin == "" || f.Destination == "" {
			return nil, fmt.Errorf("dataset: flight #%d (%s%d): %w", i, f.Airline, f.Number, core.ErrEmptyAirportCode)
		}
		if f.Stops < 0 {
			return nil, fmt.Errorf("dataset: flight #%d (%s%d): negative stops %d", i, f.Airline, f.Number, f.Stops)
		}
		ds.Flights[i] = core.Flight{
			Airline:     f.Airline,
			Number:      f.Number,
			Origin:      f.Origin,
			Destination: f.Destination,
			DepHour:     f.Departure.Hour,
			DepMinute:   f.Departure.Minute,
			ArrHour:     f.Arrival.Hour,
			ArrMinute:   f.Arrival.Minute,
			Stops:       f.Stops,
		}
	}

	return ds, nil
}
