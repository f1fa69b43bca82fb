package coloring

import "errors"

var (
	// ErrLengthMismatch indicates len(colors) != number of DOFs.
	ErrLengthMismatch = errors.New("coloring: colors length does not match adjacency")

	// ErrNegativeColor indicates an unassigned (negative) color.
	ErrNegativeColor = errors.New("coloring: negative color")

	// ErrConflict indicates two adjacent DOFs with the same color.
	ErrConflict = errors.New("coloring: adjacent DOFs share a color")
)
