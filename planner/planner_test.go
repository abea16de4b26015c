package planner_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BayronJDv/funcional-final/core"
	"github.com/BayronJDv/funcional-final/planner"
)

// fl builds a flight with "HH:MM" style integer pairs.
func fl(airline string, num int, from, to string, dh, dm, ah, am, stops int) core.Flight {
	return core.Flight{
		Airline: airline, Number: num, Origin: from, Destination: to,
		DepHour: dh, DepMinute: dm, ArrHour: ah, ArrMinute: am, Stops: stops,
	}
}

var airports = []core.Airport{
	{Code: "BOG", GMT: -500},
	{Code: "MDE", GMT: -500},
	{Code: "CLO", GMT: -500},
	{Code: "MIA", GMT: -500},
	{Code: "MAD", GMT: 100},
}

// flights gives BOG→MAD four structural routes. BOG-CLO-MIA-MAD is
// infeasible because AV60 leaves CLO before AV50 lands.
//
// Absolute minutes (BOG, MDE, CLO, MIA at -0500; MAD at +0100):
//
//	IB6584 BOG 840 → MAD 750
//	AV10   BOG  60 → MDE 120
//	AV20   MDE 240 → MAD 180
//	AV30   BOG 180 → MIA 420
//	AA40   MIA 780 → MAD 540
//	AV50   BOG 120 → CLO 180
//	AV60   CLO 150 → MIA 360
var flights = []core.Flight{
	fl("IB", 6584, "BOG", "MAD", 19, 0, 11, 30, 0),
	fl("AV", 10, "BOG", "MDE", 6, 0, 7, 0, 0),
	fl("AV", 20, "MDE", "MAD", 9, 0, 2, 0, 1),
	fl("AV", 30, "BOG", "MIA", 8, 0, 12, 0, 0),
	fl("AA", 40, "MIA", "MAD", 18, 0, 8, 0, 0),
	fl("AV", 50, "BOG", "CLO", 7, 0, 8, 0, 0),
	fl("AV", 60, "CLO", "MIA", 7, 30, 11, 0, 0),
	fl("AV", 70, "MDE", "BOG", 8, 0, 9, 0, 0),
}

func newPlanner(t *testing.T, opts ...planner.Option) *planner.Planner {
	t.Helper()
	p, err := planner.New(airports, flights, opts...)
	require.NoError(t, err)

	return p
}

func routes(its []core.Itinerary) []string {
	out := make([]string, len(its))
	for i, it := range its {
		out[i] = strings.Join(it.Codes(), "-")
	}

	return out
}

func TestNew_NilCollections(t *testing.T) {
	_, err := planner.New(nil, flights)
	assert.ErrorIs(t, err, core.ErrNilAirports)

	_, err = planner.New(airports, nil)
	assert.ErrorIs(t, err, core.ErrNilFlights)

	p, err := planner.New([]core.Airport{}, []core.Flight{})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Network().FlightCount())
}

func TestFindItineraries_OnlyValid(t *testing.T) {
	p := newPlanner(t)
	got := p.FindItineraries("BOG", "MAD")

	assert.ElementsMatch(t, []string{
		"BOG-MAD",
		"BOG-MDE-MAD",
		"BOG-MIA-MAD",
	}, routes(got))
	for _, r := range routes(got) {
		assert.NotEqual(t, "BOG-CLO-MIA-MAD", r)
	}
}

// TestFindItineraries_NoCycle: BOG⇄MDE never puts BOG twice on a path.
func TestFindItineraries_NoCycle(t *testing.T) {
	p := newPlanner(t)
	for _, it := range p.FindItineraries("MDE", "MAD") {
		codes := it.Codes()
		assert.Equal(t, len(codes), len(uniq(codes)), "repeated airport in %v", codes)
	}
}

func uniq(s []string) map[string]struct{} {
	m := make(map[string]struct{}, len(s))
	for _, v := range s {
		m[v] = struct{}{}
	}

	return m
}

func TestFind_UnknownCodesYieldEmpty(t *testing.T) {
	p := newPlanner(t)

	assert.Empty(t, p.FindItineraries("XXX", "YYY"))
	assert.Empty(t, p.FindFastestByTotalTime("XXX", "YYY"))
	assert.Empty(t, p.FindFewestStops("XXX", "YYY"))
	assert.Empty(t, p.FindFastestFlightTime("XXX", "YYY"))
	_, ok := p.FindLatestDeparture("XXX", "YYY", 23, 59)
	assert.False(t, ok)
}

func TestFindFewestStops(t *testing.T) {
	p := newPlanner(t)
	got := p.FindFewestStops("BOG", "MAD")

	// direct 0; via MIA 0+0+1 = 1; via MDE 0+1+1 = 2.
	assert.Equal(t, []string{"BOG-MAD", "BOG-MIA-MAD", "BOG-MDE-MAD"}, routes(got))
}

func TestFindFastestFlightTime(t *testing.T) {
	p := newPlanner(t)
	got := p.FindFastestFlightTime("BOG", "MAD")

	// direct 90; via MDE 60 + 60 = 120; via MIA 240 + 240 = 480.
	assert.Equal(t, []string{"BOG-MAD", "BOG-MDE-MAD", "BOG-MIA-MAD"}, routes(got))
}

func TestFindFastestByTotalTime(t *testing.T) {
	p := newPlanner(t)
	got := p.FindFastestByTotalTime("BOG", "MAD")

	// direct 90; via MDE 120 + wait 120 = 240; via MIA 480 + wait 360 = 840.
	assert.Equal(t, []string{"BOG-MAD", "BOG-MDE-MAD", "BOG-MIA-MAD"}, routes(got))
}

func TestFindLatestDeparture(t *testing.T) {
	p := newPlanner(t)

	// 09:00 MAD local = abs 600. Direct lands 750, via MDE 180, via MIA 540.
	// Survivors: via MDE (first departure 60) and via MIA (first departure 180).
	it, ok := p.FindLatestDeparture("BOG", "MAD", 9, 0)
	require.True(t, ok)
	assert.Equal(t, "BOG-MIA-MAD", strings.Join(it.Codes(), "-"))

	// 02:00 MAD local = abs 180: only via MDE.
	it, ok = p.FindLatestDeparture("BOG", "MAD", 2, 0)
	require.True(t, ok)
	assert.Equal(t, "BOG-MDE-MAD", strings.Join(it.Codes(), "-"))

	_, ok = p.FindLatestDeparture("BOG", "MAD", 0, 59)
	assert.False(t, ok)
}

func TestFind_SameOriginAndDestination(t *testing.T) {
	p := newPlanner(t)

	all := p.FindItineraries("BOG", "BOG")
	require.Len(t, all, 1)
	assert.Empty(t, all[0])

	top := p.FindFewestStops("BOG", "BOG")
	require.Len(t, top, 1)
	assert.Empty(t, top[0])

	_, ok := p.FindLatestDeparture("BOG", "BOG", 23, 59)
	assert.False(t, ok)
}

func TestWithMaxLegs(t *testing.T) {
	p := newPlanner(t, planner.WithMaxLegs(1))
	assert.Equal(t, []string{"BOG-MAD"}, routes(p.FindItineraries("BOG", "MAD")))
}

func TestWithLogger_OneRecordPerQuery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := newPlanner(t, planner.WithLogger(logger))

	p.FindFewestStops("BOG", "MAD")
	p.FindLatestDeparture("BOG", "MAD", 9, 0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "itinerary query", rec["msg"])
	assert.Equal(t, "stops", rec["query"])
	assert.EqualValues(t, 4, rec["candidates"])
	assert.EqualValues(t, 3, rec["valid"])
	assert.EqualValues(t, 3, rec["returned"])
	assert.Contains(t, rec, "elapsed")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "deadline", rec["query"])
	assert.Equal(t, "09:00", rec["deadline"])
	assert.EqualValues(t, 1, rec["returned"])
}

func TestPlanner_ConcurrentQueries(t *testing.T) {
	p := newPlanner(t)
	want := routes(p.FindFewestStops("BOG", "MAD"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, routes(p.FindFewestStops("BOG", "MAD")))
		}()
	}
	wg.Wait()
}

// TestWithOnVisit_HookErrorIsLogged: an aborting hook yields an empty answer
// and one error record naming the cause.
func TestWithOnVisit_HookErrorIsLogged(t *testing.T) {
	budget := errors.New("search budget exhausted")
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
	p := newPlanner(t,
		planner.WithLogger(logger),
		planner.WithOnVisit(func(code string, _ int) error {
			if code == "MIA" {
				return budget
			}
			return nil
		}),
	)

	assert.Empty(t, p.FindItineraries("BOG", "MAD"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "itinerary query aborted", rec["msg"])
	assert.Contains(t, rec["error"], "search budget exhausted")

	// Queries that never reach MIA are unaffected.
	assert.Equal(t, []string{"MDE-BOG"}, routes(p.FindItineraries("MDE", "BOG")))
}
