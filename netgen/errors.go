// SPDX-License-Identifier: MIT
// Package: stationtime/netgen
//
// errors.go - sentinel errors for the netgen package.
// Callers branch with errors.Is; generators attach the method name with %w.

package netgen

import "errors"

// ErrTooFewStations indicates that a size parameter is below the generator's minimum.
var ErrTooFewStations = errors.New("netgen: parameter too small")

// ErrNeedRandSource indicates that a stochastic generator ran without an RNG.
var ErrNeedRandSource = errors.New("netgen: rng is required")

// ErrTooManyQueries indicates more distinct queries were requested than exist.
var ErrTooManyQueries = errors.New("netgen: too many queries requested")
