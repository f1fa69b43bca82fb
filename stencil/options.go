// SPDX-License-Identifier: MIT
// Package: lvcolor/stencil
//
// options.go - functional options. Option constructors panic on meaningless
// input; generators themselves never panic.

package stencil

import "math/rand"

// Option customizes a generator by mutating config before it runs.
type Option func(*config)

// config is passed by value to every Constructor.
type config struct {
	rng      *rand.Rand // nil means no randomness
	diagonal bool       // emit (i,i) for every row
}

// DefaultDiagonal makes every generated row reference its own DOF, as the
// matrices of PDE discretizations do.
const DefaultDiagonal = true

// WithSeed attaches a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("stencil: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithoutDiagonal drops the (i,i) entries from every generator.
func WithoutDiagonal() Option {
	return func(c *config) { c.diagonal = false }
}

func newConfig(opts ...Option) config {
	cfg := config{diagonal: DefaultDiagonal}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
