package traveltime

import (
	"errors"

	"github.com/katalvlaran/stationtime/timetable"
)

// Sentinel errors shared with the timetable package so that errors.Is matches
// no matter which layer detected the problem.
var (
	// ErrInvalidStationCount is returned for a negative station count.
	ErrInvalidStationCount = timetable.ErrInvalidStationCount

	// ErrTooManyStations is returned when the N×N table cannot be addressed.
	ErrTooManyStations = timetable.ErrTooManyStations

	// ErrStationOutOfRange is returned for station numbers outside [1, N].
	ErrStationOutOfRange = timetable.ErrStationOutOfRange

	// ErrInvalidTime is returned for a non-positive edge time or one whose
	// compositions could overflow (see timetable.MaxDirectTime).
	ErrInvalidTime = timetable.ErrInvalidTime

	// ErrSelfLoop is returned for an edge whose endpoints coincide.
	ErrSelfLoop = timetable.ErrSelfLoop

	// ErrNilNetwork is returned when querying a nil *Network.
	ErrNilNetwork = errors.New("traveltime: network is nil")
)

// Edge is a direct connection between two adjacent stations.
type Edge struct {
	A    int `json:"a"`
	B    int `json:"b"`
	Time int `json:"time"`
}

// Query asks for the travel time between two stations.
type Query struct {
	A int `json:"a"`
	B int `json:"b"`
}

// BuildRequest carries everything needed to build a network.
type BuildRequest struct {
	StationCount int    `json:"stationCount"`
	Edges        []Edge `json:"edges"`
}
