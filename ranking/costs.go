// SPDX-License-Identifier: MIT

package ranking

import (
	"github.com/BayronJDv/funcional-final/core"
	"github.com/BayronJDv/funcional-final/timeline"
)

// TotalTime returns a CostFunc measuring elapsed minutes: every ground wait
// |dep(next) - arr(prev)| plus every flight duration |arr - dep|.
func TotalTime(src timeline.GMTSource) CostFunc {
	return func(it core.Itinerary) int {
		total := FlightTime(src)(it)
		for i := 1; i < len(it); i++ {
			total += abs(timeline.Departure(src, it[i]) - timeline.Arrival(src, it[i-1]))
		}

		return total
	}
}

// StopCount returns a CostFunc counting technical stops of every leg plus
// one stop per connection.
func StopCount() CostFunc {
	return func(it core.Itinerary) int {
		if len(it) == 0 {
			return 0
		}
		stops := len(it) - 1
		for _, f := range it {
			stops += f.Stops
		}

		return stops
	}
}

// FlightTime returns a CostFunc summing |arr - dep| over all legs, ignoring
// ground time.
func FlightTime(src timeline.GMTSource) CostFunc {
	return func(it core.Itinerary) int {
		total := 0
		for _, f := range it {
			total += abs(timeline.Arrival(src, f) - timeline.Departure(src, f))
		}

		return total
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
