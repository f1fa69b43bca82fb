package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/distance2"
	"github.com/katalvlaran/lvcolor/stencil"
)

// TestGreedy_Table covers hand-checked graphs.
func TestGreedy_Table(t *testing.T) {
	tests := []struct {
		name string
		adj2 [][]int
		want []int32
	}{
		{"empty", [][]int{}, []int32{}},
		{"no edges", [][]int{{}, {}, {}}, []int32{0, 0, 0}},
		{"triangle", [][]int{{1, 2}, {0, 2}, {0, 1}}, []int32{0, 1, 2}},
		// 0-1-2-3 path as a plain graph: alternate colors
		{"path", [][]int{{1}, {0, 2}, {1, 3}, {2}}, []int32{0, 1, 0, 1}},
		// 3 sees color 0 from both 0 and 2 and takes 1; 4 sees only 3
		{"reuse gap", [][]int{{3}, {}, {3}, {0, 2, 4}, {3}}, []int32{0, 0, 0, 1, 0}},
		{"out of range ignored", [][]int{{7, -1}, {0}}, []int32{0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := coloring.Greedy(tc.adj2)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestGreedy_SmallestFreeColor checks a DOF takes the lowest hole in its
// forbidden set, not max+1.
func TestGreedy_SmallestFreeColor(t *testing.T) {
	// 0,1,2 form a triangle (colors 0,1,2); 3 touches only 0 and 2.
	adj2 := [][]int{{1, 2, 3}, {0, 2}, {0, 1, 3}, {0, 2}}
	got := coloring.Greedy(adj2)
	assert.Equal(t, []int32{0, 1, 2, 1}, got)
}

// TestGreedy_Properties runs the pipeline over stencils and checks the
// coloring is proper, contiguous and deterministic.
func TestGreedy_Properties(t *testing.T) {
	ctors := map[string]stencil.Constructor{
		"tridiag":  stencil.Tridiagonal(30),
		"grid4":    stencil.Grid(10, 10, stencil.Conn4),
		"grid8":    stencil.Grid(7, 11, stencil.Conn8),
		"banded":   stencil.Banded(40, 2),
		"random":   stencil.RandomSparse(80, 0.05),
		"diagonal": stencil.Diagonal(9),
	}
	for name, ctor := range ctors {
		t.Run(name, func(t *testing.T) {
			p, err := stencil.Build(ctor, stencil.WithSeed(3))
			require.NoError(t, err)
			adj2, err := distance2.Expand(p.Adjacency())
			require.NoError(t, err)

			colors := coloring.Greedy(adj2)
			require.Len(t, colors, p.Rows())
			assert.NoError(t, coloring.Verify(adj2, colors))
			assert.True(t, coloring.IsContiguous(colors))
			assert.Equal(t, colors, coloring.Greedy(adj2), "coloring must be deterministic")
		})
	}
}

// TestGreedy_KnownCounts pins color counts for classic stencils.
func TestGreedy_KnownCounts(t *testing.T) {
	tests := []struct {
		name string
		ctor stencil.Constructor
		want int
	}{
		{"diagonal", stencil.Diagonal(5), 1},
		{"tridiagonal", stencil.Tridiagonal(10), 3},
		{"banded w=2", stencil.Banded(20, 2), 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := stencil.Build(tc.ctor)
			require.NoError(t, err)
			adj2, err := distance2.Expand(p.Adjacency())
			require.NoError(t, err)
			assert.Equal(t, tc.want, coloring.NumColors(coloring.Greedy(adj2)))
		})
	}
}

// TestVerify detects each kind of violation.
func TestVerify(t *testing.T) {
	adj2 := [][]int{{1}, {0}}
	assert.NoError(t, coloring.Verify(adj2, []int32{0, 1}))
	assert.ErrorIs(t, coloring.Verify(adj2, []int32{0}), coloring.ErrLengthMismatch)
	assert.ErrorIs(t, coloring.Verify(adj2, []int32{0, -1}), coloring.ErrNegativeColor)
	assert.ErrorIs(t, coloring.Verify(adj2, []int32{1, 1}), coloring.ErrConflict)
}

// TestHelpers covers NumColors, IsContiguous and Classes.
func TestHelpers(t *testing.T) {
	assert.Equal(t, 0, coloring.NumColors(nil))
	assert.Equal(t, 3, coloring.NumColors([]int32{2, 0, 1, 0}))
	assert.Equal(t, 0, coloring.NumColors([]int32{-1, -3}))

	assert.True(t, coloring.IsContiguous(nil))
	assert.True(t, coloring.IsContiguous([]int32{1, 0, 1}))
	assert.False(t, coloring.IsContiguous([]int32{0, 2}))
	assert.False(t, coloring.IsContiguous([]int32{0, -1}))

	assert.Equal(t, [][]int{{1, 3}, {2}, {0}}, coloring.Classes([]int32{2, 0, 1, 0}))
	assert.Empty(t, coloring.Classes(nil))
}
