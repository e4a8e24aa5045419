// SPDX-License-Identifier: MIT
// Package: stationtime/netgen
//
// generators.go - topology generators.
//
// Contract:
//   - Stations are numbered 1..n; edges are emitted in a stable documented order.
//   - Each edge draws exactly one travel time, in emission order.
//   - Only sentinel errors are returned, wrapped with the generator name.

package netgen

import (
	"fmt"

	"github.com/katalvlaran/stationtime/traveltime"
)

const (
	methodLine       = "Line"
	methodStar       = "Star"
	methodRing       = "Ring"
	methodGrid       = "Grid"
	methodBinaryTree = "BinaryTree"
	methodRandomTree = "RandomTree"

	minLineStations = 2
	minStarStations = 2
	minRingStations = 3
	minTreeStations = 1
	minGridDim      = 1
)

func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewStations)
}

// Line links 1–2–…–n.
func Line(n int, opts ...Option) (traveltime.BuildRequest, error) {
	if n < minLineStations {
		return traveltime.BuildRequest{}, tooFew(methodLine, n, minLineStations)
	}
	cfg := newConfig(opts...)
	edges := make([]traveltime.Edge, 0, n-1)
	for i := 2; i <= n; i++ {
		edges = append(edges, traveltime.Edge{A: i - 1, B: i, Time: cfg.time()})
	}

	return traveltime.BuildRequest{StationCount: n, Edges: edges}, nil
}

// Star links hub station 1 to every other station.
func Star(n int, opts ...Option) (traveltime.BuildRequest, error) {
	if n < minStarStations {
		return traveltime.BuildRequest{}, tooFew(methodStar, n, minStarStations)
	}
	cfg := newConfig(opts...)
	edges := make([]traveltime.Edge, 0, n-1)
	for i := 2; i <= n; i++ {
		edges = append(edges, traveltime.Edge{A: 1, B: i, Time: cfg.time()})
	}

	return traveltime.BuildRequest{StationCount: n, Edges: edges}, nil
}

// Ring is Line(n) plus the closing edge n–1.
func Ring(n int, opts ...Option) (traveltime.BuildRequest, error) {
	if n < minRingStations {
		return traveltime.BuildRequest{}, tooFew(methodRing, n, minRingStations)
	}
	cfg := newConfig(opts...)
	edges := make([]traveltime.Edge, 0, n)
	for i := 2; i <= n; i++ {
		edges = append(edges, traveltime.Edge{A: i - 1, B: i, Time: cfg.time()})
	}
	edges = append(edges, traveltime.Edge{A: n, B: 1, Time: cfg.time()})

	return traveltime.BuildRequest{StationCount: n, Edges: edges}, nil
}

// Grid builds a rows×cols 4-neighborhood grid numbered row-major from 1.
// Per cell the right edge is emitted before the down edge.
func Grid(rows, cols int, opts ...Option) (traveltime.BuildRequest, error) {
	if rows < minGridDim || cols < minGridDim {
		return traveltime.BuildRequest{}, fmt.Errorf("%s: %dx%d below %dx%d: %w",
			methodGrid, rows, cols, minGridDim, minGridDim, ErrTooFewStations)
	}
	cfg := newConfig(opts...)
	id := func(r, c int) int { return r*cols + c + 1 }
	edges := make([]traveltime.Edge, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, traveltime.Edge{A: id(r, c), B: id(r, c+1), Time: cfg.time()})
			}
			if r+1 < rows {
				edges = append(edges, traveltime.Edge{A: id(r, c), B: id(r+1, c), Time: cfg.time()})
			}
		}
	}

	return traveltime.BuildRequest{StationCount: rows * cols, Edges: edges}, nil
}

// BinaryTree links station i to its parent i/2 (heap numbering).
func BinaryTree(n int, opts ...Option) (traveltime.BuildRequest, error) {
	if n < minTreeStations {
		return traveltime.BuildRequest{}, tooFew(methodBinaryTree, n, minTreeStations)
	}
	cfg := newConfig(opts...)
	edges := make([]traveltime.Edge, 0, n-1)
	for i := 2; i <= n; i++ {
		edges = append(edges, traveltime.Edge{A: i / 2, B: i, Time: cfg.time()})
	}

	return traveltime.BuildRequest{StationCount: n, Edges: edges}, nil
}

// RandomTree attaches every station i ≥ 2 to a uniformly chosen earlier
// station. Requires an RNG.
func RandomTree(n int, opts ...Option) (traveltime.BuildRequest, error) {
	if n < minTreeStations {
		return traveltime.BuildRequest{}, tooFew(methodRandomTree, n, minTreeStations)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return traveltime.BuildRequest{}, fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
	}
	edges := make([]traveltime.Edge, 0, n-1)
	for i := 2; i <= n; i++ {
		parent := 1 + cfg.rng.Intn(i-1)
		edges = append(edges, traveltime.Edge{A: parent, B: i, Time: cfg.time()})
	}

	return traveltime.BuildRequest{StationCount: n, Edges: edges}, nil
}
