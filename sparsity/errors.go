// SPDX-License-Identifier: MIT
// Package: lvcolor/sparsity
//
// errors.go - sentinel errors for the sparsity package.
//
// Every structural violation is reported as ErrInvalidArgument joined with a
// narrower sentinel, so callers may match either:
//
//	errors.Is(err, sparsity.ErrInvalidArgument)  // any bad CSR input
//	errors.Is(err, sparsity.ErrColumnOutOfRange) // the specific cause

package sparsity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the single error kind of the CSR boundary.
	ErrInvalidArgument = errors.New("sparsity: invalid argument")

	// ErrNegativeDimension indicates n_dofs < 0.
	ErrNegativeDimension = errors.New("sparsity: negative dimension")

	// ErrNonMonotonic indicates RowPtr[i] > RowPtr[i+1] for some i.
	ErrNonMonotonic = errors.New("sparsity: row_ptr is not non-decreasing")

	// ErrPointerOutOfRange indicates RowPtr does not start at 0 or does not
	// end at len(ColIdx).
	ErrPointerOutOfRange = errors.New("sparsity: row_ptr offset out of range")

	// ErrColumnOutOfRange indicates a column index outside [0, n_dofs).
	ErrColumnOutOfRange = errors.New("sparsity: column index out of range")

	// ErrNotSquare indicates a dense source matrix with Rows != Cols.
	ErrNotSquare = errors.New("sparsity: matrix is not square")

	// ErrMalformedMatrixMarket indicates an unreadable Matrix Market stream.
	ErrMalformedMatrixMarket = errors.New("sparsity: malformed matrix market input")
)

// invalidf reports a CSR violation as ErrInvalidArgument, prefixed with the
// method tag. A non-nil cause is wrapped as well.
func invalidf(method string, cause error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%s: %s: %w", method, msg, ErrInvalidArgument)
	}

	return fmt.Errorf("%s: %s: %w: %w", method, msg, ErrInvalidArgument, cause)
}
