// SPDX-License-Identifier: MIT
// Package: lvcolor/stencil
//
// impl_grid.go - Grid(rows, cols, conn) generator.
//
// Canonical model:
//   • DOF of cell (r,c) is r*cols + c (row-major).
//   • Conn4 couples a cell to N, W, E, S (five-point Laplacian).
//   • Conn8 adds the four diagonal cells (nine-point / bilinear FEM).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewDofs).
//   • Each row lists its columns in ascending order: offsets are visited
//     dr = -1..1 then dc = -1..1, which is ascending in row-major numbering.
//
// Complexity:
//   • Time and memory O(rows*cols) (at most 9 entries per row).

package stencil

import "fmt"

// Connectivity selects the grid stencil.
type Connectivity int

const (
	// Conn4 is the five-point stencil: N, W, self, E, S.
	Conn4 Connectivity = iota
	// Conn8 is the nine-point stencil including diagonals.
	Conn8
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Grid returns the rows×cols 2D stencil with the given connectivity.
func Grid(rows, cols int, conn Connectivity) Constructor {
	return func(cfg config) ([][]int64, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewDofs)
		}

		out := make([][]int64, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				row := make([]int64, 0, 9)
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						rr, cc := r+dr, c+dc
						if rr < 0 || rr >= rows || cc < 0 || cc >= cols {
							continue
						}
						if dr != 0 && dc != 0 && conn != Conn8 {
							continue
						}
						if dr == 0 && dc == 0 && !cfg.diagonal {
							continue
						}
						row = append(row, int64(rr*cols+cc))
					}
				}
				out[r*cols+c] = row
			}
		}

		return out, nil
	}
}
