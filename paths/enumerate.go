// SPDX-License-Identifier: MIT

// Package paths implements concurrent simple-path enumeration on core.Network.
//
// Complexity:
//
//   - Time:   O(P·L) work for P paths of average length L, spread over goroutines.
//   - Memory: O(P·L) for the result plus O(L) visited slice per live branch.
package paths

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/BayronJDv/funcional-final/core"
)

// pathWalker encapsulates the read-only state shared by every branch.
type pathWalker struct {
	net  *core.Network // underlying network, never mutated
	dest string        // destination airport code
	opts Options       // enumeration options
}

// Enumerate returns every simple path from origin to destination.
// See the package documentation for the algorithm and its guarantees.
func Enumerate(net *core.Network, origin, destination string, opts ...Option) ([]core.Itinerary, error) {
	w, err := newWalker(net, destination, opts)
	if err != nil {
		return nil, err
	}

	return w.enumerate(origin, nil, 0)
}

// Count returns the number of simple paths from origin to destination.
// It explores exactly the branches Enumerate explores.
func Count(net *core.Network, origin, destination string, opts ...Option) (int, error) {
	w, err := newWalker(net, destination, opts)
	if err != nil {
		return 0, err
	}

	return w.count(origin, nil, 0)
}

func newWalker(net *core.Network, destination string, opts []Option) (*pathWalker, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	popts := DefaultOptions()
	for _, fn := range opts {
		fn(&popts)
	}

	return &pathWalker{net: net, dest: destination, opts: popts}, nil
}

// enter runs the hook and reports whether cur terminates the branch.
// It returns the visited set children must use.
func (w *pathWalker) enter(cur string, visited []string, depth int) (done bool, next []string, err error) {
	if w.opts.OnVisit != nil {
		if err = w.opts.OnVisit(cur, depth); err != nil {
			return true, nil, fmt.Errorf("paths: OnVisit hook for %q: %w", cur, err)
		}
	}
	if cur == w.dest {
		return true, nil, nil
	}
	if w.opts.MaxLegs >= 0 && depth >= w.opts.MaxLegs {
		return true, nil, nil
	}

	// Full slice expression forces a fresh backing array: siblings share
	// visited and must never see each other's appends.
	return false, append(visited[:len(visited):len(visited)], cur), nil
}

// enumerate explores cur at the given depth (legs flown so far).
func (w *pathWalker) enumerate(cur string, visited []string, depth int) ([]core.Itinerary, error) {
	done, seen, err := w.enter(cur, visited, depth)
	if err != nil {
		return nil, err
	}
	if done {
		if cur == w.dest {
			// Single empty continuation: the path built so far ends here.
			return []core.Itinerary{{}}, nil
		}
		return nil, nil
	}

	deps := w.net.Departures(cur)
	branches := make([][]core.Itinerary, len(deps)) // one slot per child, no locking

	var g errgroup.Group
	for i, f := range deps {
		if slices.Contains(seen, f.Destination) {
			continue
		}
		g.Go(func() error {
			tails, err := w.enumerate(f.Destination, seen, depth+1)
			if err != nil {
				return err
			}
			out := make([]core.Itinerary, len(tails))
			for j, tail := range tails {
				it := make(core.Itinerary, 0, len(tail)+1)
				it = append(it, f)
				out[j] = append(it, tail...)
			}
			branches[i] = out

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, b := range branches {
		total += len(b)
	}
	result := make([]core.Itinerary, 0, total)
	for _, b := range branches {
		result = append(result, b...)
	}

	return result, nil
}

// count mirrors enumerate without building itineraries.
func (w *pathWalker) count(cur string, visited []string, depth int) (int, error) {
	done, seen, err := w.enter(cur, visited, depth)
	if err != nil {
		return 0, err
	}
	if done {
		if cur == w.dest {
			return 1, nil
		}
		return 0, nil
	}

	deps := w.net.Departures(cur)
	counts := make([]int, len(deps))

	var g errgroup.Group
	for i, f := range deps {
		if slices.Contains(seen, f.Destination) {
			continue
		}
		g.Go(func() error {
			n, err := w.count(f.Destination, seen, depth+1)
			counts[i] = n

			return err
		})
	}
	if err = g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	return total, nil
}
