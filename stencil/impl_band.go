// SPDX-License-Identifier: MIT
// Package: lvcolor/stencil
//
// impl_band.go - Diagonal, Tridiagonal and Banded generators.
//
// Contract:
//   - Diagonal: n ≥ 0. Row i = {i} (or {} under WithoutDiagonal).
//   - Banded:   n ≥ 1, halfWidth ≥ 0. Row i = {j : |i-j| ≤ halfWidth}.
//   - Tridiagonal(n) == Banded(n, 1).
//
// Complexity: O(n·(2w+1)) time and memory.

package stencil

import "fmt"

const (
	methodDiagonal    = "Diagonal"
	methodTridiagonal = "Tridiagonal"
	methodBanded      = "Banded"

	minDiagonalDofs = 0
	minBandDofs     = 1
	minHalfWidth    = 0
)

// Diagonal returns the identity pattern of size n.
func Diagonal(n int) Constructor {
	return func(cfg config) ([][]int64, error) {
		if n < minDiagonalDofs {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodDiagonal, n, minDiagonalDofs, ErrTooFewDofs)
		}
		rows := make([][]int64, n)
		for i := range rows {
			if cfg.diagonal {
				rows[i] = []int64{int64(i)}
			} else {
				rows[i] = []int64{}
			}
		}

		return rows, nil
	}
}

// Tridiagonal returns the 1D three-point stencil on n DOFs.
func Tridiagonal(n int) Constructor {
	return func(cfg config) ([][]int64, error) {
		return band(methodTridiagonal, n, 1, cfg)
	}
}

// Banded returns a band of half-width halfWidth on n DOFs.
func Banded(n, halfWidth int) Constructor {
	return func(cfg config) ([][]int64, error) {
		return band(methodBanded, n, halfWidth, cfg)
	}
}

func band(method string, n, w int, cfg config) ([][]int64, error) {
	if n < minBandDofs {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minBandDofs, ErrTooFewDofs)
	}
	if w < minHalfWidth {
		return nil, fmt.Errorf("%s: halfWidth=%d < min=%d: %w", method, w, minHalfWidth, ErrTooFewDofs)
	}

	rows := make([][]int64, n)
	for i := 0; i < n; i++ {
		lo, hi := max(0, i-w), min(n-1, i+w)
		row := make([]int64, 0, hi-lo+1)
		for j := lo; j <= hi; j++ {
			if j == i && !cfg.diagonal {
				continue
			}
			row = append(row, int64(j))
		}
		rows[i] = row
	}

	return rows, nil
}
