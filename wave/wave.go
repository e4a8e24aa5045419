// SPDX-License-Identifier: MIT
// Package: stationtime/wave
//
// wave.go - round-by-round composition of direct edges with the previous layer.
//
// Contract:
//   - The table is pre-seeded with direct times; direct holds the same pairs.
//   - Known cells are never overwritten; the diagonal is never written.
//   - The table is frozen when Build returns without error.

package wave

import (
	"fmt"

	"github.com/katalvlaran/stationtime/adjacency"
	"github.com/katalvlaran/stationtime/timetable"
)

// firstRound is the hop distance of the first composed layer.
const firstRound = 2

// expander encapsulates mutable build state.
type expander struct {
	table    *timetable.Table
	direct   *adjacency.Layer
	prev     *adjacency.Layer
	stations []int // stations of direct, ascending
	opts     Options
	filled   int
	target   int
	res      *Result
}

// Build fills every cell of t reachable by wave composition from direct.
// It returns ErrNilTable, ErrNilLayer, ErrLayerOutOfRange or ErrOptionViolation
// for invalid input, and timetable.ErrFrozen for a table that was already built.
func Build(t *timetable.Table, direct *adjacency.Layer, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if direct == nil {
		return nil, ErrNilLayer
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if t.Frozen() {
		return nil, fmt.Errorf("wave: Build: %w", timetable.ErrFrozen)
	}
	if m := direct.MaxStation(); m >= t.Size() {
		return nil, fmt.Errorf("%w: station %d, table size %d", ErrLayerOutOfRange, m, t.Size())
	}

	e := &expander{
		table:    t,
		direct:   direct,
		prev:     direct,
		stations: direct.Stations(),
		opts:     o,
		filled:   2 * direct.Pairs(),
		target:   t.Capacity(),
		res:      &Result{},
	}
	e.run()
	t.Freeze()

	return e.res, nil
}

// run executes rounds until the table is complete, a round comes up empty,
// or the round cap is reached.
func (e *expander) run() {
	n := e.table.Size()
	lastRound := n - 1
	if e.opts.MaxRounds > 0 && firstRound+e.opts.MaxRounds-1 < lastRound {
		lastRound = firstRound + e.opts.MaxRounds - 1
	}

	for round := firstRound; round <= lastRound && e.filled < e.target; round++ {
		if e.prev.Empty() {
			e.res.Exhausted = true
			break
		}
		next, discovered := e.expand(round)
		e.res.Rounds++
		e.res.Discovered += discovered
		e.opts.OnRound(round, discovered)
		e.prev = next
	}

	e.res.Filled = e.filled
	e.res.Complete = e.filled >= e.target
}

// expand composes every direct edge A–B with every pair B–C of the previous
// layer and returns the layer of newly discovered pairs.
func (e *expander) expand(round int) (*adjacency.Layer, int) {
	next := adjacency.NewLayer()
	discovered := 0
	done := false

	for _, a := range e.stations {
		e.direct.Visit(a, func(b int) bool {
			ab := e.table.Cell(a, b)
			e.prev.Visit(b, func(c int) bool {
				if a == c {
					return false
				}
				time := ab + e.table.Cell(b, c)
				if !e.table.FillIfUnknown(a, c, time) {
					return false
				}
				next.RecordPair(a, c)
				discovered++
				e.filled += 2
				e.opts.OnFill(a, c, time, round)
				done = e.filled >= e.target

				return done
			})

			return done
		})
		if done {
			break
		}
	}

	return next, discovered
}
