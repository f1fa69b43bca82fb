// SPDX-License-Identifier: MIT

package sparsity

import (
	"fmt"
)

// Method tags used in wrapped errors.
const (
	methodNewPattern     = "NewPattern"
	methodBuildAdjacency = "BuildAdjacency"
)

// Pattern is the nonzero structure of an N×N matrix in compressed sparse-row
// form. ColIdx[RowPtr[i]:RowPtr[i+1]] lists the nonzero columns of row i.
// A Pattern is never mutated after construction.
type Pattern struct {
	RowPtr []int64
	ColIdx []int64
	N      int
}

// NewPattern validates (rowPtr, colIdx, n) and wraps them without copying.
//
// n < 0, len(rowPtr) != n+1 and malformed offsets are always rejected.
// Unless WithTrustedInput is given, the column indices are checked as well.
// Every failure matches ErrInvalidArgument.
func NewPattern(rowPtr, colIdx []int64, n int, opts ...Option) (*Pattern, error) {
	o := gatherOptions(opts)

	if n < 0 {
		return nil, invalidf(methodNewPattern, ErrNegativeDimension, "n_dofs=%d", n)
	}
	if len(rowPtr) != n+1 {
		return nil, invalidf(methodNewPattern, nil,
			"row_ptr length must be n_dofs + 1 (got %d, want %d)", len(rowPtr), n+1)
	}

	p := &Pattern{RowPtr: rowPtr, ColIdx: colIdx, N: n}
	if err := p.validateOffsets(); err != nil {
		return nil, err
	}
	if o.strict {
		if err := p.validateColumns(); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// validateOffsets makes every Row(i) slice expression in bounds. O(N).
func (p *Pattern) validateOffsets() error {
	if p.RowPtr[0] != 0 {
		return invalidf(methodNewPattern, ErrPointerOutOfRange, "row_ptr[0]=%d, want 0", p.RowPtr[0])
	}
	for i := 0; i < p.N; i++ {
		if p.RowPtr[i] > p.RowPtr[i+1] {
			return invalidf(methodNewPattern, ErrNonMonotonic,
				"row_ptr[%d]=%d > row_ptr[%d]=%d", i, p.RowPtr[i], i+1, p.RowPtr[i+1])
		}
	}
	if last := p.RowPtr[p.N]; last != int64(len(p.ColIdx)) {
		return invalidf(methodNewPattern, ErrPointerOutOfRange,
			"row_ptr[%d]=%d, want len(col_idx)=%d", p.N, last, len(p.ColIdx))
	}

	return nil
}

// validateColumns checks every column index is a DOF. O(nnz).
func (p *Pattern) validateColumns() error {
	n := int64(p.N)
	for k, c := range p.ColIdx {
		if c < 0 || c >= n {
			return invalidf(methodNewPattern, ErrColumnOutOfRange,
				"col_idx[%d]=%d not in [0,%d)", k, c, p.N)
		}
	}

	return nil
}

// Rows returns the number of DOFs.
func (p *Pattern) Rows() int { return p.N }

// NNZ returns the number of stored entries.
func (p *Pattern) NNZ() int { return int(p.RowPtr[p.N] - p.RowPtr[0]) }

// Row returns the column slice of row i (shared with the pattern).
func (p *Pattern) Row(i int) []int64 {
	return p.ColIdx[p.RowPtr[i]:p.RowPtr[i+1]]
}

// Adjacency returns the 1-hop adjacency: for every DOF i, the columns of
// row i in CSR order, duplicates included.
// Complexity: O(N + nnz).
func (p *Pattern) Adjacency() [][]int {
	adj := make([][]int, p.N)
	for i := 0; i < p.N; i++ {
		row := p.Row(i)
		nbrs := make([]int, len(row))
		for k, c := range row {
			nbrs[k] = int(c)
		}
		adj[i] = nbrs
	}

	return adj
}

// String implements fmt.Stringer.
func (p *Pattern) String() string {
	return fmt.Sprintf("Pattern{N: %d, NNZ: %d}", p.N, p.NNZ())
}

// BuildAdjacency checks len(rowPtr) == n+1 and returns the 1-hop adjacency.
// It applies the same validation as NewPattern with the given options.
func BuildAdjacency(rowPtr, colIdx []int64, n int, opts ...Option) ([][]int, error) {
	p, err := NewPattern(rowPtr, colIdx, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildAdjacency, err)
	}

	return p.Adjacency(), nil
}
