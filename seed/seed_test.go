package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvcolor/seed"
)

func TestVectors(t *testing.T) {
	seeds := seed.Vectors([]int32{0, 1, 2, 0, 1})
	assert.Equal(t, [][]float64{
		{1, 0, 0, 1, 0},
		{0, 1, 0, 0, 1},
		{0, 0, 1, 0, 0},
	}, seeds)
	assert.NoError(t, seed.VerifyPartition([]int32{0, 1, 2, 0, 1}, seeds))
}

func TestVectors_Empty(t *testing.T) {
	seeds := seed.Vectors(nil)
	assert.NotNil(t, seeds)
	assert.Empty(t, seeds)
	assert.NoError(t, seed.VerifyPartition(nil, seeds))
	assert.Nil(t, seed.Matrix(nil))
}

func TestVectors_SingleColor(t *testing.T) {
	seeds := seed.Vectors([]int32{0, 0, 0})
	assert.Equal(t, [][]float64{{1, 1, 1}}, seeds)
}

// TestMatrix checks the gonum view matches the vectors column by column.
func TestMatrix(t *testing.T) {
	colors := []int32{1, 0, 1, 2}
	s := seed.Matrix(colors)
	require.NotNil(t, s)

	r, c := s.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
	for k, v := range seed.Vectors(colors) {
		assert.Equal(t, v, mat.Col(nil, k, s), "column %d", k)
	}

	// J·S sums the columns of J sharing a color.
	j := mat.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})
	var js mat.Dense
	js.Mul(j, s)
	assert.Equal(t, []float64{2, 4, 4}, mat.Row(nil, 0, &js))
	assert.Equal(t, []float64{6, 12, 8}, mat.Row(nil, 1, &js))
}

func TestVerifyPartition_Errors(t *testing.T) {
	colors := []int32{0, 1}
	assert.ErrorIs(t, seed.VerifyPartition(colors, [][]float64{{1, 0}}), seed.ErrSeedCount)
	assert.ErrorIs(t, seed.VerifyPartition(colors, [][]float64{{1, 0}, {0}}), seed.ErrSeedLength)
	assert.ErrorIs(t, seed.VerifyPartition(colors, [][]float64{{1, 1}, {0, 1}}), seed.ErrNotPartition)
	assert.ErrorIs(t, seed.VerifyPartition(colors, [][]float64{{0, 0}, {0, 1}}), seed.ErrNotPartition)
	assert.ErrorIs(t, seed.VerifyPartition(nil, [][]float64{{}}), seed.ErrSeedCount)
	assert.ErrorIs(t, seed.VerifyPartition([]int32{-1, -1}, [][]float64{}), seed.ErrNotPartition)
	assert.ErrorIs(t, seed.VerifyPartition([]int32{0, -1}, [][]float64{{1, 0}}), seed.ErrNotPartition)
}
