// Package coloring assigns colors to the vertices of a distance-2 graph so
// that no two adjacent DOFs share a color.
//
// Greedy visits DOFs in ascending index order and gives each the smallest
// non-negative color not used by an already-colored neighbor. The visiting
// order is the tie-break, so the output is fully deterministic; it is a
// proper coloring but not a minimal one. Because a new color is only ever
// introduced as "the smallest unused", the colors used are exactly
// 0..max with no gaps.
//
// Verify, IsContiguous, NumColors and Classes inspect a coloring produced
// here or elsewhere.
//
// Colors are int32: enough for any realistic count while matching the
// fixed-width color arrays expected by numeric callers.
package coloring
