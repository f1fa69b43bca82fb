// SPDX-License-Identifier: MIT

package distance2

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

const methodExpand = "Expand"

// Expand returns the symmetric distance-2 adjacency of adj. Row i of the
// result is ascending and never contains i. The input is not modified.
func Expand(adj [][]int, opts ...Option) ([][]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkRange(adj); err != nil {
		return nil, err
	}
	if o.Workers > 1 && len(adj) > 1 {
		return expandParallel(o.Ctx, adj, o.Workers)
	}

	return expandSequential(o.Ctx, adj)
}

// checkRange rejects neighbor indices that are not DOFs.
func checkRange(adj [][]int) error {
	n := len(adj)
	for i, nbrs := range adj {
		for _, j := range nbrs {
			if j < 0 || j >= n {
				return fmt.Errorf("%s: adj[%d] contains %d, want [0,%d): %w",
					methodExpand, i, j, n, ErrNeighborOutOfRange)
			}
		}
	}

	return nil
}

// expandSequential accumulates one hash set per DOF with mirrored inserts.
func expandSequential(ctx context.Context, adj [][]int) ([][]int, error) {
	n := len(adj)
	sets := make([]map[int]struct{}, n)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	link := func(a, b int) {
		sets[a][b] = struct{}{}
		sets[b][a] = struct{}{}
	}

	for i, nbrs := range adj {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, j := range nbrs {
			if j != i {
				link(i, j)
			}
			for _, k := range adj[j] {
				if k != i {
					link(i, k)
				}
			}
		}
	}

	out := make([][]int, n)
	for i, set := range sets {
		row := make([]int, 0, len(set))
		for v := range set {
			row = append(row, v)
		}
		slices.Sort(row)
		out[i] = row
	}

	return out, nil
}

// expandParallel computes each row independently from adj and its reverse.
// Row i collects, excluding i itself:
//
//	out:     j ∈ adj[i]
//	out-out: k ∈ adj[j], j ∈ adj[i]
//	in:      x with i ∈ adj[x]
//	in-in:   x with j ∈ adj[x] and i ∈ adj[j]
//
// which is exactly the set the mirrored sequential inserts produce.
func expandParallel(ctx context.Context, adj [][]int, workers int) ([][]int, error) {
	n := len(adj)
	rev := reverse(adj)
	out := make([][]int, n)

	chunk := (n + workers - 1) / workers
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			// mark[v] == i+1 means v is already in row i
			mark := make([]int, n)
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				stamp := i + 1
				row := []int{}
				add := func(v int) {
					if v != i && mark[v] != stamp {
						mark[v] = stamp
						row = append(row, v)
					}
				}
				for _, j := range adj[i] {
					add(j)
					for _, k := range adj[j] {
						add(k)
					}
				}
				for _, j := range rev[i] {
					add(j)
					for _, x := range rev[j] {
						add(x)
					}
				}
				slices.Sort(row)
				out[i] = row
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// reverse returns the transpose adjacency: rev[j] holds every i with j ∈ adj[i].
func reverse(adj [][]int) [][]int {
	counts := make([]int, len(adj))
	for _, nbrs := range adj {
		for _, j := range nbrs {
			counts[j]++
		}
	}
	rev := make([][]int, len(adj))
	for j, c := range counts {
		rev[j] = make([]int, 0, c)
	}
	for i, nbrs := range adj {
		for _, j := range nbrs {
			rev[j] = append(rev[j], i)
		}
	}

	return rev
}

// Degrees reports the largest and the mean row length of a distance-2
// adjacency. Both are zero for an empty adjacency.
func Degrees(adj2 [][]int) (maxDeg int, mean float64) {
	if len(adj2) == 0 {
		return 0, 0
	}
	total := 0
	for _, row := range adj2 {
		total += len(row)
		maxDeg = max(maxDeg, len(row))
	}

	return maxDeg, float64(total) / float64(len(adj2))
}
