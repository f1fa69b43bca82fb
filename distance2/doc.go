// Package distance2 derives the distance-2 adjacency of a sparsity pattern:
// for every DOF, the sorted set of DOFs reachable within two hops of the
// 1-hop adjacency, symmetrized and without self loops.
//
// What
//
//	For each DOF i and each 1-hop neighbor j of i:
//	  - if j != i, the edge {i,j} is recorded in both directions;
//	  - for every neighbor k of j with k != i, the edge {i,k} is recorded in
//	    both directions.
//	Each DOF's set is then emitted as an ascending, duplicate-free slice.
//	Because every insertion is mirrored, the result is symmetric even when
//	the input pattern is not.
//
// Parallelism
//
//	WithWorkers(n > 1) switches to a two-pass scheme: a reverse adjacency is
//	built first, then every DOF gathers its own neighborhood (out, in,
//	out-out and in-in walks) into a disjoint output row. No row is written
//	by two goroutines, and the result is identical to the sequential one.
//
// Complexity
//
//   - Time:   O(Σ_i Σ_{j∈adj(i)} |adj(j)|) plus sorting each row.
//   - Memory: O(Σ_i |N2(i)|).
//
// Errors
//
//   - ErrNeighborOutOfRange if an adjacency entry lies outside [0, len(adj)).
//   - ctx.Err() if the context passed via WithContext is cancelled.
package distance2
