// Package adjacency holds the per-round reachability layers used by the wave
// expansion in package wave.
//
// What
//
//   - A Layer maps a station index to the set of stations it reaches at exactly
//     the layer's hop distance. Layer 1 is the set of direct edges.
//   - Sets are bit sets (github.com/yourbasic/bit), so membership is O(1) and
//     repeated insertion of the same pair is free.
//   - RecordPair inserts a pair symmetrically; nothing else mutates a Layer.
//
// Ordering
//
//	The contract makes no promise about iteration order. The implementation
//	visits stations and neighbors in ascending index order, which is what keeps
//	wave builds deterministic for a fixed edge list.
//
// Self pairs
//
//	RecordPair(a, a) is recorded as a self-loop without complaint. The builder
//	never asks for one; the guard lives there, not here.
//
// Complexity
//
//   - RecordPair: amortized O(1) (bit set growth aside).
//   - Stations:   O(k log k) for k stations carrying a set.
//   - Visit:      O(max index / 64 + degree).
package adjacency
