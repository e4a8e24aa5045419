// SPDX-License-Identifier: MIT
// Package: stationtime/netgen
//
// options.go - functional options and travel-time distributions.
//
// Contract:
//   - Option constructors validate and panic on meaningless input; generators
//     never panic.
//   - Seeding is explicit via WithSeed or WithRand.

package netgen

import (
	"fmt"
	"math/rand"
)

// DefaultTime is the travel time used when no WeightFn is configured.
const DefaultTime = 1

// WeightFn produces a positive travel time from a possibly nil RNG.
type WeightFn func(rng *rand.Rand) int

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

func newConfig(opts ...Option) config {
	c := config{weightFn: ConstantWeight(DefaultTime)}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// time draws the next travel time.
func (c config) time() int {
	return c.weightFn(c.rng)
}

// WithSeed attaches a new seeded RNG.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("netgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWeightFn overrides the travel-time distribution. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("netgen: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// ConstantWeight always yields v. Panics if v <= 0.
func ConstantWeight(v int) WeightFn {
	if v <= 0 {
		panic(fmt.Sprintf("netgen: ConstantWeight: value must be > 0, got %d", v))
	}
	return func(_ *rand.Rand) int {
		return v
	}
}

// UniformWeight samples uniformly in [min, max]. Panics unless 0 < min <= max.
// With a nil RNG it yields min.
func UniformWeight(min, max int) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("netgen: UniformWeight: require 0 < min <= max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int {
		if rng == nil || min == max {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}
