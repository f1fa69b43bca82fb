// SPDX-License-Identifier: MIT

// Package sparsity holds the compressed sparse-row (CSR) nonzero pattern of a
// square matrix and turns it into per-DOF adjacency lists.
//
// What
//
//   - Pattern: RowPtr/ColIdx/N triple, validated on construction.
//   - Adjacency: the 1-hop adjacency of every DOF (row), exactly the columns
//     referenced by that row, in CSR order. Duplicates are kept; symmetrization
//     happens downstream in package distance2.
//   - Ingestion helpers: FromMatrix (gonum mat.Matrix nonzeros) and
//     ReadMatrixMarket / WriteMatrixMarket for coordinate .mtx files.
//
// Validation
//
//	The offsets are always checked: len(RowPtr) == N+1, RowPtr[0]==0,
//	monotone offsets, RowPtr[N]==len(ColIdx). By default the constructor
//	also checks every column lies in [0,N). WithTrustedInput skips that
//	O(nnz) scan; bad columns are then reported by distance2.Expand.
//
// Errors
//
//   - ErrInvalidArgument      every structural violation (match with errors.Is).
//   - ErrNegativeDimension    N < 0.
//   - ErrNonMonotonic         RowPtr decreases somewhere.
//   - ErrPointerOutOfRange    RowPtr[0] != 0 or RowPtr[N] != len(ColIdx).
//   - ErrColumnOutOfRange     a column index outside [0,N).
//   - ErrNotSquare            FromMatrix on a non-square matrix.
//   - ErrMalformedMatrixMarket unreadable .mtx input.
//
// Complexity
//
//   - NewPattern: O(N + nnz) strict, O(N) trusted.
//   - Adjacency:  O(N + nnz) time and memory.
package sparsity
