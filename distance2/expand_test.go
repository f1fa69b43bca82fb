package distance2_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/distance2"
	"github.com/katalvlaran/lvcolor/stencil"
)

// TestExpand_Table covers small hand-checked patterns.
func TestExpand_Table(t *testing.T) {
	tests := []struct {
		name string
		adj  [][]int
		want [][]int
	}{
		{"empty", [][]int{}, [][]int{}},
		{"diagonal only", [][]int{{0}, {1}, {2}}, [][]int{{}, {}, {}}},
		{"path", [][]int{{0, 1}, {0, 1, 2}, {1, 2}}, [][]int{{1, 2}, {0, 2}, {0, 1}}},
		{"one-way edge", [][]int{{1}, {}, {}}, [][]int{{1}, {0}, {}}},
		{"one-way chain", [][]int{{1}, {2}, {}}, [][]int{{1, 2}, {0, 2}, {0, 1}}},
		{"duplicates", [][]int{{1, 1, 1}, {0, 0}}, [][]int{{1}, {0}}},
		{
			"three hops stay apart",
			[][]int{{0, 1}, {0, 1, 2}, {1, 2, 3}, {2, 3}},
			[][]int{{1, 2}, {0, 2, 3}, {0, 1, 3}, {1, 2}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := distance2.Expand(tc.adj)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			par, err := distance2.Expand(tc.adj, distance2.WithWorkers(3))
			require.NoError(t, err)
			assert.Equal(t, tc.want, par, "parallel result must match")
		})
	}
}

// TestExpand_Symmetric checks j ∈ N2(i) ⇔ i ∈ N2(j) on an asymmetric random pattern.
func TestExpand_Symmetric(t *testing.T) {
	p, err := stencil.Build(stencil.RandomSparse(60, 0.04), stencil.WithSeed(11))
	require.NoError(t, err)

	adj2, err := distance2.Expand(p.Adjacency())
	require.NoError(t, err)
	for i, row := range adj2 {
		assert.IsIncreasing(t, row)
		assert.NotContains(t, row, i)
		for _, j := range row {
			assert.Contains(t, adj2[j], i, "edge %d-%d must be mirrored", i, j)
		}
	}
}

// TestExpand_ParallelMatchesSequential compares both paths on larger inputs.
func TestExpand_ParallelMatchesSequential(t *testing.T) {
	ctors := map[string]stencil.Constructor{
		"grid8":  stencil.Grid(12, 9, stencil.Conn8),
		"banded": stencil.Banded(50, 3),
		"random": stencil.RandomSparse(120, 0.03),
	}
	for name, ctor := range ctors {
		t.Run(name, func(t *testing.T) {
			p, err := stencil.Build(ctor, stencil.WithSeed(5))
			require.NoError(t, err)
			adj := p.Adjacency()

			seq, err := distance2.Expand(adj)
			require.NoError(t, err)
			for _, w := range []int{2, 4, 7} {
				par, err := distance2.Expand(adj, distance2.WithWorkers(w))
				require.NoError(t, err)
				assert.Equal(t, seq, par, "workers=%d", w)
			}
		})
	}
}

// TestExpand_Errors covers bad indices, cancellation and option panics.
func TestExpand_Errors(t *testing.T) {
	_, err := distance2.Expand([][]int{{0, 3}, {}})
	assert.ErrorIs(t, err, distance2.ErrNeighborOutOfRange)
	_, err = distance2.Expand([][]int{{-1}})
	assert.ErrorIs(t, err, distance2.ErrNeighborOutOfRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = distance2.Expand([][]int{{1}, {0}}, distance2.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = distance2.Expand([][]int{{1}, {0}}, distance2.WithContext(ctx), distance2.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { distance2.WithWorkers(0) })
}

// TestDegrees checks the summary used for logging.
func TestDegrees(t *testing.T) {
	maxDeg, mean := distance2.Degrees([][]int{{1, 2}, {0}, {0}})
	assert.Equal(t, 2, maxDeg)
	assert.InDelta(t, 4.0/3.0, mean, 1e-12)

	maxDeg, mean = distance2.Degrees(nil)
	assert.Zero(t, maxDeg)
	assert.Zero(t, mean)
}

// TestToGraph exports to gonum and checks nodes and edges.
func TestToGraph(t *testing.T) {
	adj2 := [][]int{{1, 2}, {0, 2}, {0, 1}, {}}
	g := distance2.ToGraph(adj2)

	assert.Equal(t, 4, g.Nodes().Len())
	assert.Equal(t, 3, g.Edges().Len())
	assert.True(t, g.HasEdgeBetween(0, 2))
	assert.True(t, g.HasEdgeBetween(2, 1))
	assert.False(t, g.HasEdgeBetween(3, 0))
	assert.NotNil(t, g.Node(3), "isolated DOF is still a node")
}
