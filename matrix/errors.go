// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All public functions return these sentinels (possibly wrapped with
// call-site context) and tests check them via errors.Is. No function panics on
// user-triggered error conditions; panics are reserved for invalid options.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("Method(i,j): %w", ErrX); callers still
// match with errors.Is.

var (
	// ErrBadShape is returned when a requested dimension is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Add) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNilMatrix indicates that a nil *Sparse or *Builder was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates that row-major input is not square.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// sparseErrorf wraps err with the method name and coordinates.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}
