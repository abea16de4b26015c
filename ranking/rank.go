// SPDX-License-Identifier: MIT

package ranking

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/BayronJDv/funcional-final/core"
)

// Rank scores every itinerary concurrently and returns them sorted by
// ascending cost. Ties keep input order. The result is never nil.
//
// Complexity: O(n) cost evaluations plus O(n log n) for the sort.
func Rank(its []core.Itinerary, cost CostFunc) []Scored {
	scored := make([]Scored, len(its))

	var g errgroup.Group
	for i, it := range its {
		g.Go(func() error {
			scored[i] = Scored{Itinerary: it, Cost: cost(it)}

			return nil
		})
	}
	_ = g.Wait() // workers never fail

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Cost < scored[b].Cost
	})

	return scored
}

// TopK returns the k cheapest itineraries in ascending cost order.
// Fewer are returned when len(its) < k; k <= 0 yields an empty result.
func TopK(its []core.Itinerary, cost CostFunc, k int) []core.Itinerary {
	if k <= 0 {
		return []core.Itinerary{}
	}

	scored := Rank(its, cost)
	if len(scored) > k {
		scored = scored[:k]
	}

	out := make([]core.Itinerary, len(scored))
	for i, s := range scored {
		out[i] = s.Itinerary
	}

	return out
}
