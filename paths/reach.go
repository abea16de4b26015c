// SPDX-License-Identifier: MIT

package paths

import "github.com/BayronJDv/funcional-final/core"

// hopItem pairs an airport code with its BFS depth.
type hopItem struct {
	code  string
	depth int
}

// reachWalker encapsulates mutable BFS state.
type reachWalker struct {
	net   *core.Network
	queue []hopItem
	hops  map[string]int
}

// Hops returns, for every airport reachable from origin, the fewest legs
// needed to get there (origin maps to 0). Schedules are ignored: this is
// structural reachability, the same graph Enumerate walks.
//
// Complexity: O(A + F) time, O(A) memory.
func Hops(net *core.Network, origin string) (map[string]int, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	w := &reachWalker{
		net:  net,
		hops: make(map[string]int),
	}
	w.enqueue(origin, 0)
	for len(w.queue) > 0 {
		item := w.dequeue()
		for _, f := range net.Departures(item.code) {
			if _, seen := w.hops[f.Destination]; !seen {
				w.enqueue(f.Destination, item.depth+1)
			}
		}
	}

	return w.hops, nil
}

// Reachable reports whether at least one path leads from origin to
// destination, i.e. whether Enumerate without a leg limit would return
// anything.
func Reachable(net *core.Network, origin, destination string) (bool, error) {
	hops, err := Hops(net, origin)
	if err != nil {
		return false, err
	}
	_, ok := hops[destination]

	return ok, nil
}

// enqueue marks code reached at depth d and adds it to the queue.
func (w *reachWalker) enqueue(code string, d int) {
	w.hops[code] = d
	w.queue = append(w.queue, hopItem{code: code, depth: d})
}

// dequeue pops the first item.
func (w *reachWalker) dequeue() hopItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}
