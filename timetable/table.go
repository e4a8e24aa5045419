// SPDX-License-Identifier: MIT
// Package: stationtime/timetable
//
// table.go - dense N×N travel-time table.
//
// Contract:
//   - Flat row-major buffer, 0-based indices; T[i][j] == T[j][i] at all times.
//   - 0 means "not yet known" off the diagonal; the diagonal is never written.
//   - SetDirect seeds direct edges (last write wins). FillIfUnknown never
//     overwrites a non-zero cell.
//   - After Freeze the table is read-only.

package timetable

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// tableErrorf wraps err with Table method context.
func tableErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, i, j, err)
}

// Table is a symmetric matrix of travel times between n stations.
type Table struct {
	n      int
	data   []int
	filled int // non-zero off-diagonal directed cells
	frozen bool
}

// New allocates a zeroed n×n table. n == 0 is valid and yields an empty table.
// ErrTooManyStations is returned when n×n does not fit in an int.
// Complexity: O(n²) time and memory.
func New(n int) (*Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidStationCount)
	}
	if n > 0 && n > math.MaxInt/n {
		return nil, fmt.Errorf("New(%d): %w", n, ErrTooManyStations)
	}

	return &Table{n: n, data: make([]int, n*n)}, nil
}

// Size returns the number of stations.
func (t *Table) Size() int {
	return t.n
}

// indexOf computes the flat offset of (i, j) or returns ErrOutOfRange.
func (t *Table) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, tableErrorf(method, i, j, ErrOutOfRange)
	}

	return i*t.n + j, nil
}

// At returns the time between 0-based stations i and j.
func (t *Table) At(i, j int) (int, error) {
	idx, err := t.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Cell returns the time at 0-based (i, j) without bounds checking.
// It is meant for hot loops whose indices are already validated.
func (t *Table) Cell(i, j int) int {
	return t.data[i*t.n+j]
}

// Time returns the time between 1-based stations a and b. Identical or
// disconnected stations yield 0.
func (t *Table) Time(a, b int) (int, error) {
	if a < 1 || a > t.n || b < 1 || b > t.n {
		return 0, fmt.Errorf("Table.Time(%d,%d): %w", a, b, ErrStationOutOfRange)
	}

	return t.data[(a-1)*t.n+(b-1)], nil
}

// MaxDirectTime returns the largest direct time a table of n stations accepts.
// A composed time sums at most n−1 direct times, so every such sum fits in an int.
func MaxDirectTime(n int) int {
	if n < 2 {
		return math.MaxInt
	}

	return math.MaxInt / (n - 1)
}

// SetDirect records the direct travel time between 0-based stations i and j
// in both cells. A later call for the same pair replaces the earlier time.
func (t *Table) SetDirect(i, j, time int) error {
	if t.frozen {
		return tableErrorf("SetDirect", i, j, ErrFrozen)
	}
	idx, err := t.indexOf("SetDirect", i, j)
	if err != nil {
		return err
	}
	if i == j {
		return tableErrorf("SetDirect", i, j, ErrSelfLoop)
	}
	if time <= 0 {
		return tableErrorf("SetDirect", i, j, fmt.Errorf("%w (got %d)", ErrInvalidTime, time))
	}
	if limit := MaxDirectTime(t.n); time > limit {
		return tableErrorf("SetDirect", i, j, fmt.Errorf("%w (got %d, max %d)", ErrInvalidTime, time, limit))
	}
	if t.data[idx] == 0 {
		t.filled += 2
	}
	t.data[idx] = time
	t.data[j*t.n+i] = time

	return nil
}

// FillIfUnknown writes time into (i, j) and (j, i) when the cell is still 0
// and i != j. It reports whether the cell was written.
// Indices are trusted; out-of-range indices panic like a slice access.
func (t *Table) FillIfUnknown(i, j, time int) bool {
	if t.frozen || i == j {
		return false
	}
	idx := i*t.n + j
	if t.data[idx] != 0 {
		return false
	}
	t.data[idx] = time
	t.data[j*t.n+i] = time
	t.filled += 2

	return true
}

// Filled returns the number of non-zero off-diagonal directed cells.
func (t *Table) Filled() int {
	return t.filled
}

// Capacity returns the number of off-diagonal cells, n×(n−1).
func (t *Table) Capacity() int {
	return t.n * (t.n - 1)
}

// Complete reports whether every off-diagonal cell is known.
func (t *Table) Complete() bool {
	return t.filled == t.Capacity()
}

// Freeze makes the table read-only.
func (t *Table) Freeze() {
	t.frozen = true
}

// Frozen reports whether Freeze was called.
func (t *Table) Frozen() bool {
	return t.frozen
}

// Rows returns a copy of the table as a slice of rows.
func (t *Table) Rows() [][]int {
	out := make([][]int, t.n)
	for i := 0; i < t.n; i++ {
		row := make([]int, t.n)
		copy(row, t.data[i*t.n:(i+1)*t.n])
		out[i] = row
	}

	return out
}

// Equal reports whether both tables hold the same times.
func (t *Table) Equal(o *Table) bool {
	if o == nil || t.n != o.n {
		return false
	}
	for i := range t.data {
		if t.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < t.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(t.data[i*t.n+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
