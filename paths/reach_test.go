package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BayronJDv/funcional-final/paths"
)

func TestHops(t *testing.T) {
	net := network(t, "A-B", "B-C", "A-C", "C-D", "E-A")

	hops, err := paths.Hops(net, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, hops)

	hops, err = paths.Hops(net, "ZZZ")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ZZZ": 0}, hops)

	_, err = paths.Hops(nil, "A")
	assert.ErrorIs(t, err, paths.ErrNetworkNil)
}

// TestReachable_AgreesWithCount checks reachability against the enumerator
// on every ordered pair.
func TestReachable_AgreesWithCount(t *testing.T) {
	net := network(t, "A-B", "B-A", "B-C", "C-D", "E-D")
	codes := []string{"A", "B", "C", "D", "E", "X"}

	for _, from := range codes {
		for _, to := range codes {
			ok, err := paths.Reachable(net, from, to)
			require.NoError(t, err)
			n, err := paths.Count(net, from, to)
			require.NoError(t, err)
			assert.Equal(t, n > 0, ok, "%s→%s", from, to)
		}
	}

	_, err := paths.Reachable(nil, "A", "B")
	assert.ErrorIs(t, err, paths.ErrNetworkNil)
}
