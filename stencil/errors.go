// SPDX-License-Identifier: MIT
// Package: lvcolor/stencil
//
// errors.go - sentinel errors for the stencil package. Generators wrap them
// with a method tag ("Grid: rows=0 ...: stencil: parameter too small");
// callers match with errors.Is.

package stencil

import "errors"

// ErrTooFewDofs indicates that a size parameter (n, rows, cols, half-width)
// is smaller than the allowed minimum.
var ErrTooFewDofs = errors.New("stencil: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("stencil: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator requires a
// non-nil *rand.Rand (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("stencil: rng is required")
