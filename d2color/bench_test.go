package d2color_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvcolor/d2color"
	"github.com/katalvlaran/lvcolor/stencil"
)

// BenchmarkColorAndSeeds_Grid runs the full pipeline on square five-point
// grids, sequential and with 4 expansion workers.
func BenchmarkColorAndSeeds_Grid(b *testing.B) {
	for _, side := range []int{32, 128} {
		p, err := stencil.Build(stencil.Grid(side, side, stencil.Conn4))
		if err != nil {
			b.Fatal(err)
		}
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("side=%d/workers=%d", side, workers), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(p.N + p.NNZ()))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = d2color.ColorAndSeeds(p.RowPtr, p.ColIdx, p.N, d2color.WithWorkers(workers))
				}
			})
		}
	}
}

// BenchmarkColorAndSeeds_Random measures an unstructured asymmetric pattern.
func BenchmarkColorAndSeeds_Random(b *testing.B) {
	p, err := stencil.Build(stencil.RandomSparse(2000, 0.002), stencil.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d2color.ColorAndSeeds(p.RowPtr, p.ColIdx, p.N)
	}
}
