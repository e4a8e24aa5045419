// Package netgen generates synthetic station networks as traveltime build
// requests: lines, stars, rings, grids and trees, with deterministic station
// numbering and pluggable travel-time distributions.
//
// Determinism: the same generator, size, options and seed always produce the
// same edge list in the same order. Stochastic generators (RandomTree) require
// WithSeed or WithRand and return ErrNeedRandSource otherwise.
//
// Trees (Line, Star, BinaryTree, RandomTree) have exactly one route between any
// two stations, so the wave table equals the true shortest travel times. Ring
// and Grid have competing routes and are the inputs where audit reports
// discrepancies.
package netgen
