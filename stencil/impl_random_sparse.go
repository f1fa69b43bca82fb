// SPDX-License-Identifier: MIT
// Package: lvcolor/stencil
//
// impl_random_sparse.go - RandomSparse(n, p) generator.
//
// Model:
//   - Every ordered off-diagonal pair (i,j) is included independently with
//     probability p, so the result is in general NOT symmetric.
//   - The diagonal follows config.diagonal, not p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewDofs).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trials run in (i asc, j asc) order; a fixed seed gives a fixed pattern.
//
// Complexity:
//   - O(n²) Bernoulli trials, O(n + nnz) memory.

package stencil

import "fmt"

const (
	methodRandomSparse  = "RandomSparse"
	minRandomSparseDofs = 1
	probMin             = 0.0
	probMax             = 1.0
)

// RandomSparse returns an Erdős–Rényi-like directed pattern on n DOFs.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg config) ([][]int64, error) {
		if n < minRandomSparseDofs {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseDofs, ErrTooFewDofs)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		rows := make([][]int64, n)
		for i := 0; i < n; i++ {
			row := []int64{}
			for j := 0; j < n; j++ {
				if i == j {
					if cfg.diagonal {
						row = append(row, int64(j))
					}
					continue
				}
				if include(cfg, p) {
					row = append(row, int64(j))
				}
			}
			rows[i] = row
		}

		return rows, nil
	}
}

// include runs one Bernoulli trial. Without an RNG only p ∈ {0,1} reach here.
func include(cfg config, p float64) bool {
	if cfg.rng == nil {
		return p == probMax
	}

	return cfg.rng.Float64() < p
}
