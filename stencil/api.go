// SPDX-License-Identifier: MIT
// Package: lvcolor/stencil
//
// api.go - the Constructor type and the Build orchestrator. Generators live
// in impl_*.go.

package stencil

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/sparsity"
)

// Constructor produces the rows of a pattern: rows[i] lists the columns of
// row i in ascending order. Constructors validate their parameters and
// return sentinel errors; they never panic.
type Constructor func(cfg config) ([][]int64, error)

// Build resolves opts, runs ctor and packs the rows into a validated CSR
// pattern. Constructor errors are wrapped as "Build: %w".
func Build(ctor Constructor, opts ...Option) (*sparsity.Pattern, error) {
	cfg := newConfig(opts...)

	rows, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	n := len(rows)
	rowPtr := make([]int64, n+1)
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	colIdx := make([]int64, 0, total)
	for i, row := range rows {
		colIdx = append(colIdx, row...)
		rowPtr[i+1] = int64(len(colIdx))
	}

	return sparsity.NewPattern(rowPtr, colIdx, n)
}
