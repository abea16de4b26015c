package feasibility_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BayronJDv/funcional-final/core"
	"github.com/BayronJDv/funcional-final/feasibility"
	"github.com/BayronJDv/funcional-final/paths"
	"github.com/BayronJDv/funcional-final/timeline"
)

// leg builds a flight from minutes-of-day values.
func leg(from, to string, dep, arr int) core.Flight {
	return core.Flight{
		Origin: from, Destination: to,
		DepHour: dep / 60, DepMinute: dep % 60,
		ArrHour: arr / 60, ArrMinute: arr % 60,
	}
}

var utc = timeline.Table{}

func TestIsValid_TrivialItineraries(t *testing.T) {
	assert.True(t, feasibility.IsValid(utc, nil))
	assert.True(t, feasibility.IsValid(utc, core.Itinerary{}))
	// A single leg is valid even if it "lands before it departs".
	assert.True(t, feasibility.IsValid(utc, core.Itinerary{leg("A", "B", 600, 100)}))
}

// TestIsValid_StrictBoundary: arrival == departure is invalid, one minute earlier is valid.
func TestIsValid_StrictBoundary(t *testing.T) {
	equal := core.Itinerary{leg("A", "B", 480, 600), leg("B", "C", 600, 700)}
	assert.False(t, feasibility.IsValid(utc, equal))

	oneMinute := core.Itinerary{leg("A", "B", 480, 599), leg("B", "C", 600, 700)}
	assert.True(t, feasibility.IsValid(utc, oneMinute))
}

// TestIsValid_TimeZones compares times on the normalized timeline, not local clocks.
func TestIsValid_TimeZones(t *testing.T) {
	src := timeline.Table{{Code: "A", GMT: 0}, {Code: "B", GMT: -500}, {Code: "C", GMT: 0}}

	// Lands in B at 10:00 local (-5 → abs 300); departs B at 06:00 local (abs 60): invalid.
	it := core.Itinerary{leg("A", "B", 0, 600), leg("B", "C", 360, 900)}
	assert.False(t, feasibility.IsValid(src, it))

	// Departs B at 10:01 local (abs 301): valid.
	it[1] = leg("B", "C", 601, 900)
	assert.True(t, feasibility.IsValid(src, it))
}

func TestCheck_ReportsFirstMissedConnection(t *testing.T) {
	it := core.Itinerary{
		leg("A", "B", 100, 200),
		leg("B", "C", 300, 400),
		leg("C", "D", 350, 500), // missed
		leg("D", "E", 100, 200), // also missed, not reported
	}
	err := feasibility.Check(utc, it)
	require.Error(t, err)
	assert.ErrorIs(t, err, feasibility.ErrMissedConnection)

	var ce *feasibility.ConnectionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 2, ce.Leg)
	assert.Equal(t, "C", ce.Airport)
	assert.Equal(t, 400, ce.Arrival)
	assert.Equal(t, 350, ce.Departure)
	assert.Contains(t, ce.Error(), "leg 2 at C")
}

// TestFilter_AfterEnumeration: if B→C departs before A→B arrives, only [A→C] survives.
func TestFilter_AfterEnumeration(t *testing.T) {
	build := func(bcDep int) []core.Itinerary {
		net, err := core.NewNetwork([]core.Airport{}, []core.Flight{
			leg("A", "B", 480, 600),
			leg("B", "C", bcDep, bcDep+60),
			leg("A", "C", 500, 700),
		})
		require.NoError(t, err)
		its, err := paths.Enumerate(net, "A", "C")
		require.NoError(t, err)
		require.Len(t, its, 2)

		return feasibility.Filter(net, its)
	}

	assert.Len(t, build(660), 2)

	valid := build(540)
	require.Len(t, valid, 1)
	assert.Equal(t, []string{"A", "C"}, valid[0].Codes())
}

func TestFilter_PreservesOrderAndNeverNil(t *testing.T) {
	ok1 := core.Itinerary{leg("A", "B", 0, 10)}
	bad := core.Itinerary{leg("A", "B", 0, 10), leg("B", "C", 5, 20)}
	ok2 := core.Itinerary{leg("A", "B", 0, 10), leg("B", "C", 11, 20)}

	out := feasibility.Filter(utc, []core.Itinerary{ok1, bad, ok2})
	assert.Equal(t, []core.Itinerary{ok1, ok2}, out)

	empty := feasibility.Filter(utc, nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
