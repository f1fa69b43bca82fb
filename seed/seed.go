// SPDX-License-Identifier: MIT

package seed

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvcolor/coloring"
)

var (
	// ErrSeedCount indicates len(seeds) != max color + 1.
	ErrSeedCount = errors.New("seed: wrong number of seed vectors")

	// ErrSeedLength indicates a seed vector whose length is not N.
	ErrSeedLength = errors.New("seed: seed vector length mismatch")

	// ErrNotPartition indicates a DOF not marked exactly once, or marked in
	// the wrong seed, or an entry other than 0 or 1.
	ErrNotPartition = errors.New("seed: seeds do not partition the DOFs")
)

// Vectors returns one length-N vector per color 0..max. Entry idx of
// vector c is 1.0 iff colors[idx] == c. No DOFs yields an empty slice.
// Colors are expected non-negative.
// Complexity: O(N·K) memory, O(N·K) time to zero plus O(N) to mark.
func Vectors(colors []int32) [][]float64 {
	if len(colors) == 0 {
		return [][]float64{}
	}

	n := len(colors)
	k := coloring.NumColors(colors)
	seeds := make([][]float64, k)
	for c := range seeds {
		seeds[c] = make([]float64, n)
	}
	for idx, c := range colors {
		seeds[c][idx] = 1.0
	}

	return seeds
}

// Matrix returns the N×K seed matrix whose column c is seed c. gonum has no
// 0×0 dense matrix, so no DOFs yields nil.
func Matrix(colors []int32) *mat.Dense {
	if len(colors) == 0 {
		return nil
	}

	s := mat.NewDense(len(colors), coloring.NumColors(colors), nil)
	for idx, c := range colors {
		s.Set(idx, int(c), 1.0)
	}

	return s
}

// VerifyPartition checks that seeds are exactly the seed vectors of colors.
func VerifyPartition(colors []int32, seeds [][]float64) error {
	if len(colors) == 0 {
		if len(seeds) != 0 {
			return fmt.Errorf("VerifyPartition: %d seeds for 0 DOFs: %w", len(seeds), ErrSeedCount)
		}
		return nil
	}

	n := len(colors)
	if k := coloring.NumColors(colors); len(seeds) != k {
		return fmt.Errorf("VerifyPartition: got %d seeds, want %d: %w", len(seeds), k, ErrSeedCount)
	}
	for c, s := range seeds {
		if len(s) != n {
			return fmt.Errorf("VerifyPartition: seed %d has length %d, want %d: %w", c, len(s), n, ErrSeedLength)
		}
	}
	for idx, want := range colors {
		if want < 0 {
			return fmt.Errorf("VerifyPartition: DOF %d has color %d: %w", idx, want, ErrNotPartition)
		}
		for c, s := range seeds {
			v := s[idx]
			switch {
			case int32(c) == want && v != 1.0:
				return fmt.Errorf("VerifyPartition: DOF %d missing from seed %d: %w", idx, c, ErrNotPartition)
			case int32(c) != want && v != 0.0:
				return fmt.Errorf("VerifyPartition: DOF %d set in seed %d, color is %d: %w", idx, c, want, ErrNotPartition)
			}
		}
	}

	return nil
}
