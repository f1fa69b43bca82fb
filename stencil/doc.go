// Package stencil generates deterministic CSR sparsity patterns of the kind
// produced by finite-difference and finite-element discretizations.
//
// The generators are the fixtures of choice for tests, benchmarks and the
// d2color CLI:
//
//   - Diagonal(n):            identity pattern (no coupling at all).
//   - Tridiagonal(n):         1D three-point stencil.
//   - Banded(n, w):           band of half-width w.
//   - Grid(rows, cols, conn): 2D five-point (Conn4) or nine-point (Conn8)
//     stencil, DOFs numbered row-major.
//   - RandomSparse(n, p):     each off-diagonal entry present with
//     probability p; requires WithSeed or WithRand when 0 < p < 1.
//
// Every generator is a Constructor; Build resolves options and packs the
// rows into a validated *sparsity.Pattern:
//
//	p, err := stencil.Build(stencil.Grid(32, 32, stencil.Conn4))
//	p, err := stencil.Build(stencil.RandomSparse(500, 0.01), stencil.WithSeed(7))
//
// Determinism
//
//	Rows are emitted with ascending columns; for a fixed seed RandomSparse
//	draws its Bernoulli trials in (i asc, j asc) order, so identical inputs
//	always give identical patterns.
//
// Errors
//
//   - ErrTooFewDofs          a size parameter is below its minimum.
//   - ErrInvalidProbability  p outside [0,1].
//   - ErrNeedRandSource      a stochastic generator without RNG.
package stencil
