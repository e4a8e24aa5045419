// Package wave expands a sparse table of direct station-to-station times into
// a dense all-pairs table by wave composition.
//
// What
//
//	Starting from the direct-edge layer (hop distance 1), each round composes
//	one direct edge A–B with a pair B–C discovered in the previous round. When
//	the cell (A, C) is still unknown it receives T[A][B] + T[B][C] and the pair
//	joins the next round's layer. Rounds run for hop distances 2..N−1.
//
// Termination
//
//   - The fill count starts at twice the number of direct pairs and grows by
//     two per composed pair. Reaching N×(N−1) ends the build immediately.
//   - A round that discovers nothing leaves an empty layer; no later round can
//     discover anything either, so the build stops there.
//   - Otherwise the round cap (N−2 expansion rounds) ends it.
//
// Limitation
//
//	This is not a general shortest-path algorithm. The first combination that
//	reaches a cell wins, and cells are never revisited. On trees (and any graph
//	where every pair has a single meaningful route) the result is the true
//	travel time. On graphs with competing routes of different cost the table
//	may hold a longer time than the shortest one. Package audit reports such
//	cells; this package deliberately does not relax them.
//
// Determinism
//
//	Stations and neighbors are visited in ascending index order, so equal
//	inputs produce equal tables.
//
// Complexity
//
//	Each round costs O(Σ_B deg₁(B)·deg_{r−1}(B)); on sparse inputs the whole
//	build stays near O(N²). Memory: the table plus two live layers.
//
// Usage
//
//	tb, _ := timetable.New(3)
//	direct := adjacency.NewLayer()
//	_ = tb.SetDirect(0, 1, 5)
//	direct.RecordPair(0, 1)
//	_ = tb.SetDirect(1, 2, 7)
//	direct.RecordPair(1, 2)
//	res, err := wave.Build(tb, direct, wave.WithOnRound(func(r, n int) { /* ... */ }))
package wave
