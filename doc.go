// SPDX-License-Identifier: MIT

// Package lvcolor computes distance-2 colorings of sparse matrix patterns
// and the 0/1 seed vectors that compress finite-difference or matrix-free
// Jacobian/Hessian evaluations: columns sharing a color never touch a
// common row, so one probe per color recovers them all.
//
// Pipeline (one package per stage):
//
//	sparsity/   CSR Pattern, validation, 1-hop adjacency, .mtx and gonum ingestion
//	distance2/  symmetric distance-2 adjacency (optionally parallel), gonum export
//	coloring/   deterministic greedy coloring + verification helpers
//	seed/       seed vectors and the gonum seed matrix
//	d2color/    ColorAndSeeds: the whole pipeline behind one call
//	stencil/    deterministic FD/FEM-style patterns for tests and benchmarks
//
// Quick ASCII example (1D three-point stencil, 6 DOFs):
//
//	x x . . . .      colors: 0 1 2 0 1 2
//	x x x . . .      seed 0: 1 0 0 1 0 0
//	. x x x . .      seed 1: 0 1 0 0 1 0
//	. . x x x .      seed 2: 0 0 1 0 0 1
//	. . . x x x
//	. . . . x x
//
//	go get github.com/katalvlaran/lvcolor
package lvcolor
