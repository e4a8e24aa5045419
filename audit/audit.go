// Package audit flags the cells where a wave-built travel-time table differs
// from the true shortest travel time.
//
// The wave expansion keeps the first route it composes for a pair and keeps
// direct times even when a cheaper detour exists. That is the intended
// behavior of the table; this package only reports it. Reference distances
// come from github.com/RyanCarrier/dijkstra over the same edge list (duplicate
// edges keep the last time, matching the table).
//
// Cost: one Dijkstra run per ordered pair, so use it on networks of modest
// size or on sampled queries (CheckQueries).
package audit

import (
	"errors"
	"fmt"

	"github.com/RyanCarrier/dijkstra"

	"github.com/katalvlaran/stationtime/traveltime"
)

// ErrMismatchedNetwork is returned when the network was not built from the request.
var ErrMismatchedNetwork = errors.New("audit: network does not match request")

// Discrepancy is one pair (1-based) whose wave time differs from the shortest time.
// Shortest is 0 when no route exists.
type Discrepancy struct {
	A        int   `json:"a"`
	B        int   `json:"b"`
	Wave     int   `json:"wave"`
	Shortest int64 `json:"shortest"`
}

// String renders "a b: wave=W shortest=S".
func (d Discrepancy) String() string {
	return fmt.Sprintf("%d %d: wave=%d shortest=%d", d.A, d.B, d.Wave, d.Shortest)
}

// reference wraps a dijkstra graph keyed by 0-based station index.
type reference struct {
	g *dijkstra.Graph
}

func newReference(req traveltime.BuildRequest) (*reference, error) {
	g := dijkstra.NewGraph()
	for i := 0; i < req.StationCount; i++ {
		g.AddVertex(i)
	}
	for i, e := range req.Edges {
		if err := g.AddArc(e.A-1, e.B-1, int64(e.Time)); err != nil {
			return nil, fmt.Errorf("audit: edge %d: %w", i, err)
		}
		if err := g.AddArc(e.B-1, e.A-1, int64(e.Time)); err != nil {
			return nil, fmt.Errorf("audit: edge %d: %w", i, err)
		}
	}

	return &reference{g: g}, nil
}

// shortest returns the shortest time between 0-based a and b, or 0 when the
// library finds no path.
func (r *reference) shortest(a, b int) int64 {
	best, err := r.g.Shortest(a, b)
	if err != nil {
		return 0
	}

	return best.Distance
}

// Check compares every unordered pair of net against the shortest times of req.
// Pairs are reported once, with A < B, in row-major order.
func Check(req traveltime.BuildRequest, net *traveltime.Network) ([]Discrepancy, error) {
	return CheckQueries(req, net, allPairs(req.StationCount))
}

// CheckQueries compares only the given queries. Identical-station queries are skipped.
func CheckQueries(req traveltime.BuildRequest, net *traveltime.Network, qs []traveltime.Query) ([]Discrepancy, error) {
	if net == nil {
		return nil, traveltime.ErrNilNetwork
	}
	if net.StationCount() != req.StationCount {
		return nil, fmt.Errorf("%w: %d stations vs %d", ErrMismatchedNetwork, net.StationCount(), req.StationCount)
	}
	ref, err := newReference(req)
	if err != nil {
		return nil, err
	}

	var out []Discrepancy
	for _, q := range qs {
		if q.A == q.B {
			continue
		}
		got, err := net.Time(q)
		if err != nil {
			return nil, fmt.Errorf("audit: %w", err)
		}
		want := ref.shortest(q.A-1, q.B-1)
		if int64(got) != want {
			out = append(out, Discrepancy{A: q.A, B: q.B, Wave: got, Shortest: want})
		}
	}

	return out, nil
}

func allPairs(n int) []traveltime.Query {
	var qs []traveltime.Query
	for a := 1; a <= n; a++ {
		for b := a + 1; b <= n; b++ {
			qs = append(qs, traveltime.Query{A: a, B: b})
		}
	}

	return qs
}
