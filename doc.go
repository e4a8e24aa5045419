// Package stationtime computes travel times between every pair of stations of
// a transport network from the direct times between adjacent stations, and
// answers point-to-point queries from the resulting table.
//
// What is inside?
//
//	adjacency/  — per-round reachability layers (bit sets keyed by station)
//	timetable/  — dense symmetric N×N time table with a never-overwrite update
//	wave/       — the wave expansion that fills the table round by round
//	traveltime/ — build-then-query contract: requests, edges, queries, errors
//	ioformat/   — the line-oriented batch format of the command
//	audit/      — reports cells that differ from true shortest times
//	netgen/     — synthetic networks (line, star, ring, grid, trees)
//	store/      — named networks in PostgreSQL
//	server/     — HTTP surface (gin)
//	config/     — environment configuration for the binaries
//
// Quick ASCII example:
//
//	[1]──5──[2]──7──[3]
//
//	time(1,3) = 12, time(3,1) = 12, time(2,2) = 0
//
// The wave expansion composes one direct edge with the pairs discovered in the
// previous round. It is exact on trees; on networks with competing routes the
// first composed route wins. Run the audit to see where that matters.
//
//	go install github.com/katalvlaran/stationtime/cmd/stationtime@latest
package stationtime
