// SPDX-License-Identifier: MIT

package d2color

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/distance2"
	"github.com/katalvlaran/lvcolor/seed"
	"github.com/katalvlaran/lvcolor/sparsity"
)

// Result is the output of ColorAndSeeds.
type Result struct {
	// Colors holds one color per DOF, contiguous from 0.
	Colors []int32
	// Seeds holds one length-N 0/1 vector per color.
	Seeds [][]float64
}

// NumColors returns len(r.Seeds).
func (r *Result) NumColors() int { return len(r.Seeds) }

// ColorAndSeeds colors the distance-2 graph of the CSR pattern
// (rowPtr, colIdx, nDofs) and builds the matching seed vectors.
//
// It fails with ErrInvalidArgument when len(rowPtr) != nDofs+1, when the
// offsets are malformed or, unless WithTrustedInput is set, when a column is
// out of range. On error the
// Result is nil.
func ColorAndSeeds(rowPtr, colIdx []int64, nDofs int, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	start := time.Now()

	var popts []sparsity.Option
	if o.trusted {
		popts = append(popts, sparsity.WithTrustedInput())
	}
	p, err := sparsity.NewPattern(rowPtr, colIdx, nDofs, popts...)
	if err != nil {
		return nil, fmt.Errorf("ColorAndSeeds: %w", err)
	}
	adj := p.Adjacency()
	log.Debug("adjacency built", "dofs", p.Rows(), "nnz", p.NNZ())

	adj2, err := distance2.Expand(adj, distance2.WithContext(o.ctx), distance2.WithWorkers(o.workers))
	if err != nil {
		return nil, fmt.Errorf("ColorAndSeeds: %w", err)
	}
	maxDeg, meanDeg := distance2.Degrees(adj2)
	log.Debug("distance-2 adjacency built", "workers", o.workers, "max_degree", maxDeg, "mean_degree", meanDeg)

	colors := coloring.Greedy(adj2)
	seeds := seed.Vectors(colors)
	log.Debug("coloring done", "colors", len(seeds), "elapsed", time.Since(start))

	return &Result{Colors: colors, Seeds: seeds}, nil
}

// Distance2ColorAndSeeds is ColorAndSeeds with default options, returning
// the colors and seeds directly.
func Distance2ColorAndSeeds(rowPtr, colIdx []int64, nDofs int) ([]int32, [][]float64, error) {
	res, err := ColorAndSeeds(rowPtr, colIdx, nDofs)
	if err != nil {
		return nil, nil, err
	}

	return res.Colors, res.Seeds, nil
}
