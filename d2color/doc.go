// Package d2color is the single entry point of lvcolor: it takes a sparsity
// pattern in compressed-row form and returns a distance-2 coloring of its
// DOFs together with one 0/1 seed vector per color.
//
// Pipeline
//
//	CSR -> sparsity.Pattern.Adjacency -> distance2.Expand
//	    -> coloring.Greedy -> seed.Vectors
//
// Every call is a pure function of its inputs: nothing is cached or shared
// between calls. The colorer is always sequential; WithWorkers only
// parallelizes the distance-2 expansion and never changes the result.
//
// Usage
//
//	res, err := d2color.ColorAndSeeds(rowPtr, colIdx, n)
//	if errors.Is(err, d2color.ErrInvalidArgument) {
//		// len(rowPtr) != n+1 or malformed CSR
//	}
//	for c, s := range res.Seeds {
//		// probe J·s once; recovers every column of color c
//	}
//
// Options
//
//   - WithWorkers(n):      goroutines for the distance-2 expansion.
//   - WithContext(ctx):    cancellation for the expansion.
//   - WithLogger(l):       slog logger for stage statistics (Debug level).
//   - WithTrustedInput():  skip the O(nnz) column range check.
package d2color
