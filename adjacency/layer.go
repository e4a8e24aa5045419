// SPDX-License-Identifier: MIT
// Package: stationtime/adjacency
//
// layer.go - station-indexed mapping of bit sets.
//
// Contract:
//   - Station indices are non-negative ints (0-based in this module).
//   - RecordPair is symmetric and idempotent.
//   - Layers are value-like snapshots; the builder recreates one per round.

package adjacency

import (
	"sort"

	"github.com/yourbasic/bit"
)

// Layer maps a station to the set of stations reachable at one hop distance.
// The zero value is not usable; call NewLayer.
type Layer struct {
	sets  map[int]*bit.Set
	pairs int // distinct unordered pairs recorded so far
}

// NewLayer returns an empty layer.
func NewLayer() *Layer {
	return &Layer{sets: make(map[int]*bit.Set)}
}

// RecordPair inserts b into a's neighbor set and a into b's neighbor set.
// Inserting the same pair again has no effect.
// Complexity: O(1) amortized.
func (l *Layer) RecordPair(a, b int) {
	added := l.add(a, b)
	if a != b {
		l.add(b, a)
	}
	if added {
		l.pairs++
	}
}

// add inserts to into from's set and reports whether it was new.
func (l *Layer) add(from, to int) bool {
	s, ok := l.sets[from]
	if !ok {
		s = new(bit.Set)
		l.sets[from] = s
	}
	if s.Contains(to) {
		return false
	}
	s.Add(to)

	return true
}

// Visit calls fn for every neighbor of a in ascending order.
// Iteration stops early when fn returns true.
func (l *Layer) Visit(a int, fn func(b int) (stop bool)) {
	s, ok := l.sets[a]
	if !ok {
		return
	}
	s.Visit(fn)
}

// Stations returns, in ascending order, every station with a non-empty set.
func (l *Layer) Stations() []int {
	out := make([]int, 0, len(l.sets))
	for a, s := range l.sets {
		if !s.Empty() {
			out = append(out, a)
		}
	}
	sort.Ints(out)

	return out
}

// MaxStation returns the largest station index present in the layer, or -1
// for an empty layer.
func (l *Layer) MaxStation() int {
	m := -1
	for a, s := range l.sets {
		if a > m {
			m = a
		}
		if !s.Empty() && s.Max() > m {
			m = s.Max()
		}
	}

	return m
}

// Pairs returns the number of distinct unordered pairs recorded.
func (l *Layer) Pairs() int {
	return l.pairs
}

// Empty reports whether no pair has been recorded.
func (l *Layer) Empty() bool {
	return l.pairs == 0
}
