// Package traveltime is the core-facing contract of stationtime: it accepts
// already-parsed stations, edges and queries, builds the full travel-time table
// and answers point-to-point queries by lookup.
//
// Stations are numbered 1..N at this boundary and mapped to 0-based indices
// internally. Duplicate edges follow last-write-wins in input order. A query
// for a disconnected pair, or for a station with itself, answers 0.
//
// The package performs no I/O; see ioformat for the text format and the cmd/
// binaries for wiring.
//
// Errors
//
//   - ErrInvalidStationCount  negative station count.
//   - ErrStationOutOfRange    an edge or query names a station outside [1, N].
//   - ErrInvalidTime          an edge carries a non-positive time.
//   - ErrSelfLoop             an edge links a station to itself.
//
// The table is built with package wave; read its documentation for the
// first-combination-wins limitation on graphs with competing routes.
package traveltime
