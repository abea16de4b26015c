// SPDX-License-Identifier: MIT

package ranking

import (
	"github.com/BayronJDv/funcional-final/core"
	"github.com/BayronJDv/funcional-final/timeline"
)

// LatestDeparture selects, among its, the itinerary whose first leg departs
// latest while its last leg lands no later than hour:minute local time at
// destination. It reports false when no itinerary meets the deadline.
// Empty itineraries have no first leg and never qualify.
func LatestDeparture(src timeline.GMTSource, its []core.Itinerary, destination string, hour, minute int) (core.Itinerary, bool) {
	deadline := timeline.AbsoluteMinutes(hour, minute, src.GMT(destination))

	onTime := make([]core.Itinerary, 0, len(its))
	for _, it := range its {
		if len(it) > 0 && timeline.Arrival(src, it[len(it)-1]) <= deadline {
			onTime = append(onTime, it)
		}
	}

	best := TopK(onTime, func(it core.Itinerary) int {
		return -timeline.Departure(src, it[0])
	}, DeadlineK)
	if len(best) == 0 {
		return nil, false
	}

	return best[0], true
}
