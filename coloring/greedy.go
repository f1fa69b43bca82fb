// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"
)

// unassigned marks a DOF not yet visited.
const unassigned int32 = -1

// Greedy colors the graph given by adj2 in a single ascending pass.
//
// For DOF i the forbidden set is the colors of neighbors already colored
// (lower-indexed in practice); uncolored or out-of-range neighbors add
// nothing. i receives the smallest color not forbidden.
//
// Complexity: O(Σ deg(i) + Σ color(i)) time, O(N + max color) memory.
func Greedy(adj2 [][]int) []int32 {
	n := len(adj2)
	colors := make([]int32, n)
	for i := range colors {
		colors[i] = unassigned
	}

	// forbidden[c] == i+1 ⇔ color c is taken around DOF i
	var forbidden []int
	for i, row := range adj2 {
		stamp := i + 1
		for _, nb := range row {
			if nb < 0 || nb >= n {
				continue
			}
			c := colors[nb]
			if c == unassigned {
				continue
			}
			for int(c) >= len(forbidden) {
				forbidden = append(forbidden, 0)
			}
			forbidden[c] = stamp
		}

		c := 0
		for c < len(forbidden) && forbidden[c] == stamp {
			c++
		}
		colors[i] = int32(c)
	}

	return colors
}

// Verify reports the first violation of a proper coloring of adj2, or nil.
func Verify(adj2 [][]int, colors []int32) error {
	if len(colors) != len(adj2) {
		return fmt.Errorf("Verify: len(colors)=%d, want %d: %w", len(colors), len(adj2), ErrLengthMismatch)
	}
	for i, c := range colors {
		if c < 0 {
			return fmt.Errorf("Verify: colors[%d]=%d: %w", i, c, ErrNegativeColor)
		}
	}
	for i, row := range adj2 {
		for _, j := range row {
			if j < 0 || j >= len(colors) || j == i {
				continue
			}
			if colors[i] == colors[j] {
				return fmt.Errorf("Verify: DOFs %d and %d both have color %d: %w", i, j, colors[i], ErrConflict)
			}
		}
	}

	return nil
}

// NumColors returns max(colors)+1, or 0 when no color is assigned.
func NumColors(colors []int32) int {
	if len(colors) == 0 {
		return 0
	}
	hi := colors[0]
	for _, c := range colors[1:] {
		hi = max(hi, c)
	}

	return max(int(hi)+1, 0)
}

// IsContiguous reports whether the colors used are exactly 0..max.
func IsContiguous(colors []int32) bool {
	k := NumColors(colors)
	seen := make([]bool, k)
	for _, c := range colors {
		if c < 0 {
			return false
		}
		seen[c] = true
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}

	return true
}

// Classes groups DOFs by color: Classes(colors)[c] lists, ascending, the
// DOFs with color c. Negative colors are skipped.
func Classes(colors []int32) [][]int {
	out := make([][]int, NumColors(colors))
	for i, c := range colors {
		if c < 0 {
			continue
		}
		out[c] = append(out[c], i)
	}

	return out
}
