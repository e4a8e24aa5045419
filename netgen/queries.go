package netgen

import (
	"fmt"

	"github.com/katalvlaran/stationtime/traveltime"
)

// AllPairs returns every query (a, b) with a < b, in row-major order.
func AllPairs(n int) []traveltime.Query {
	if n < 2 {
		return nil
	}
	out := make([]traveltime.Query, 0, n*(n-1)/2)
	for a := 1; a <= n; a++ {
		for b := a + 1; b <= n; b++ {
			out = append(out, traveltime.Query{A: a, B: b})
		}
	}

	return out
}

// RandomQueries draws k distinct unordered queries between distinct stations.
// Requires an RNG.
func RandomQueries(n, k int, opts ...Option) ([]traveltime.Query, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomQueries: %w", ErrNeedRandSource)
	}
	all := AllPairs(n)
	if k < 0 || k > len(all) {
		return nil, fmt.Errorf("RandomQueries: k=%d of %d: %w", k, len(all), ErrTooManyQueries)
	}
	cfg.rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	return all[:k], nil
}
