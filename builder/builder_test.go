package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BayronJDv/funcional-final/builder"
	"github.com/BayronJDv/funcional-final/core"
)

type route struct{ From, To string }

func routes(flights []core.Flight) []route {
	out := make([]route, len(flights))
	for i, f := range flights {
		out[i] = route{f.Origin, f.Destination}
	}

	return out
}

func TestBuild_Chain(t *testing.T) {
	airports, flights, err := builder.Build(
		[]builder.Option{builder.WithSymbolCodes()},
		builder.Chain(4),
	)
	require.NoError(t, err)

	assert.Equal(t, []core.Airport{{Code: "A"}, {Code: "B"}, {Code: "C"}, {Code: "D"}}, airports)
	assert.Equal(t, []route{{"A", "B"}, {"B", "C"}, {"C", "D"}}, routes(flights))

	// DefaultSchedule: airport i departs at 2i:00, lands at 2i+1:00.
	assert.Equal(t, 2, flights[1].DepHour)
	assert.Equal(t, 3, flights[1].ArrHour)
	assert.Equal(t, "BL", flights[0].Airline)
	assert.Equal(t, []int{1, 2, 3}, []int{flights[0].Number, flights[1].Number, flights[2].Number})
}

func TestBuild_Complete(t *testing.T) {
	airports, flights, err := builder.Build(nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Len(t, airports, 4)
	assert.Len(t, flights, 4*3)

	seen := make(map[route]bool)
	for _, r := range routes(flights) {
		assert.NotEqual(t, r.From, r.To)
		assert.False(t, seen[r], "duplicate %v", r)
		seen[r] = true
	}
}

func TestBuild_Hub(t *testing.T) {
	_, flights, err := builder.Build([]builder.Option{builder.WithSymbolCodes()}, builder.Hub(3))
	require.NoError(t, err)
	assert.Equal(t, []route{{"B", "A"}, {"A", "B"}, {"C", "A"}, {"A", "C"}}, routes(flights))
}

// TestBuild_ComposeReusesAirports shares airport indices across constructors.
func TestBuild_ComposeReusesAirports(t *testing.T) {
	airports, flights, err := builder.Build(nil, builder.Chain(3), builder.Hub(3))
	require.NoError(t, err)
	assert.Len(t, airports, 3)
	assert.Len(t, flights, 2+4)
}

func TestBuild_Errors(t *testing.T) {
	_, _, err := builder.Build(nil, builder.Chain(1))
	assert.ErrorIs(t, err, builder.ErrTooFewAirports)

	_, _, err = builder.Build(nil, builder.Complete(0))
	assert.ErrorIs(t, err, builder.ErrTooFewAirports)

	_, _, err = builder.Build(nil, builder.Hub(1))
	assert.ErrorIs(t, err, builder.ErrTooFewAirports)

	_, _, err = builder.Build(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, _, err = builder.Build([]builder.Option{builder.WithRandomSchedule()}, builder.Chain(3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestBuild_SeedDeterminism: same seed, same output.
func TestBuild_SeedDeterminism(t *testing.T) {
	opts := func() []builder.Option {
		return []builder.Option{
			builder.WithSeed(42),
			builder.WithRandomSchedule(),
			builder.WithRandomGMT(),
			builder.WithIATACodes(),
		}
	}
	a1, f1, err := builder.Build(opts(), builder.Complete(5))
	require.NoError(t, err)
	a2, f2, err := builder.Build(opts(), builder.Complete(5))
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, f1, f2)
	for _, a := range a1 {
		assert.Zero(t, a.GMT%100)
		assert.LessOrEqual(t, a.GMT, 1200)
		assert.GreaterOrEqual(t, a.GMT, -1200)
	}
	for _, f := range f1 {
		assert.True(t, f.DepHour >= 0 && f.DepHour < 24)
		assert.True(t, f.ArrHour >= 0 && f.ArrHour < 24)
		assert.True(t, f.Stops >= 0 && f.Stops <= 2)
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithCodeScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithSchedule(nil) })
	assert.Panics(t, func() { builder.WithGMTFn(nil) })
}
