// SPDX-License-Identifier: MIT
// Package timetable: sentinel error set.
// Every message is prefixed with "timetable: ..." for easy grepping. Callers
// branch with errors.Is; context is attached with fmt.Errorf("...: %w", ErrX).

package timetable

import "errors"

var (
	// ErrInvalidStationCount is returned when a table is requested for n < 0 stations.
	ErrInvalidStationCount = errors.New("timetable: station count must be >= 0")

	// ErrTooManyStations is returned when an n×n table cannot be addressed with an int.
	ErrTooManyStations = errors.New("timetable: station count too large")

	// ErrOutOfRange indicates a 0-based index outside [0, n).
	ErrOutOfRange = errors.New("timetable: index out of range")

	// ErrStationOutOfRange indicates a 1-based station number outside [1, n].
	ErrStationOutOfRange = errors.New("timetable: station out of range")

	// ErrInvalidTime is returned for a non-positive direct travel time or one
	// above MaxDirectTime.
	ErrInvalidTime = errors.New("timetable: travel time must be > 0 and fit the table")

	// ErrSelfLoop is returned when a direct time is set from a station to itself.
	ErrSelfLoop = errors.New("timetable: station cannot link to itself")

	// ErrFrozen is returned by mutators once the table has been frozen.
	ErrFrozen = errors.New("timetable: table is frozen")
)
