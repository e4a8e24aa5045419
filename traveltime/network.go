// SPDX-License-Identifier: MIT
// Package: stationtime/traveltime
//
// network.go - build-then-query orchestration.
//
// Contract:
//   - Build validates every edge before touching the table (fail fast, no
//     partial results).
//   - The returned Network is immutable; queries are O(1) lookups.

package traveltime

import (
	"fmt"

	"github.com/katalvlaran/stationtime/adjacency"
	"github.com/katalvlaran/stationtime/timetable"
	"github.com/katalvlaran/stationtime/wave"
)

// Network is a completed travel-time table for StationCount stations.
type Network struct {
	table *timetable.Table
	stats wave.Result
}

// Build validates req, seeds the direct times and expands them with wave.Build.
// Options are forwarded to the builder.
func Build(req BuildRequest, opts ...wave.Option) (*Network, error) {
	if req.StationCount < 0 {
		return nil, fmt.Errorf("traveltime: station count %d: %w", req.StationCount, ErrInvalidStationCount)
	}
	if err := validateEdges(req); err != nil {
		return nil, err
	}

	tb, err := timetable.New(req.StationCount)
	if err != nil {
		return nil, err
	}
	direct := adjacency.NewLayer()
	for i, e := range req.Edges {
		if err := tb.SetDirect(e.A-1, e.B-1, e.Time); err != nil {
			return nil, fmt.Errorf("traveltime: edge %d: %w", i, err)
		}
		direct.RecordPair(e.A-1, e.B-1)
	}

	res, err := wave.Build(tb, direct, opts...)
	if err != nil {
		return nil, fmt.Errorf("traveltime: %w", err)
	}

	return &Network{table: tb, stats: *res}, nil
}

// validateEdges checks station ranges, times and self-loops for every edge.
// Times are capped so that no composed time overflows.
func validateEdges(req BuildRequest) error {
	limit := timetable.MaxDirectTime(req.StationCount)
	for i, e := range req.Edges {
		if !inRange(e.A, req.StationCount) || !inRange(e.B, req.StationCount) {
			return fmt.Errorf("traveltime: edge %d (%d,%d) with %d stations: %w",
				i, e.A, e.B, req.StationCount, ErrStationOutOfRange)
		}
		if e.A == e.B {
			return fmt.Errorf("traveltime: edge %d (%d,%d): %w", i, e.A, e.B, ErrSelfLoop)
		}
		if e.Time <= 0 || e.Time > limit {
			return fmt.Errorf("traveltime: edge %d time %d (max %d): %w", i, e.Time, limit, ErrInvalidTime)
		}
	}

	return nil
}

func inRange(station, n int) bool {
	return station >= 1 && station <= n
}

// StationCount returns N.
func (n *Network) StationCount() int {
	return n.table.Size()
}

// Time answers a single query; disconnected and identical stations yield 0.
func (n *Network) Time(q Query) (int, error) {
	if n == nil {
		return 0, ErrNilNetwork
	}
	t, err := n.table.Time(q.A, q.B)
	if err != nil {
		return 0, fmt.Errorf("traveltime: query (%d,%d): %w", q.A, q.B, err)
	}

	return t, nil
}

// Answer resolves queries in order and fails on the first invalid one.
func (n *Network) Answer(qs []Query) ([]int, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	out := make([]int, len(qs))
	for i, q := range qs {
		t, err := n.Time(q)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		out[i] = t
	}

	return out, nil
}

// Table exposes the frozen table for read-only use.
func (n *Network) Table() *timetable.Table {
	return n.table
}

// Stats returns the builder summary.
func (n *Network) Stats() wave.Result {
	return n.stats
}
