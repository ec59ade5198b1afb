// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape checks.
//   - Keep kernels minimal by delegating precondition checks here.
//   - Return plain sentinels; facades wrap them with matrixErrorf.

package matrix

import "github.com/katalvlaran/lvlalg/algorithm"

// ValidateSameShape ensures a and b have equal rows and columns.
// Complexity: O(1).
func ValidateSameShape[U any](a, b *Member[U]) error {
	if !algorithm.ShapesMatch(a, b) {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateSquare ensures m has as many rows as columns.
// Complexity: O(1).
func ValidateSquare[U any](m *Member[U]) error {
	if m.rows != m.cols {
		return ErrNonSquare
	}
	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible[U any](a, b *Member[U]) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateIndex ensures (r, c) lies inside m.
// Complexity: O(1).
func ValidateIndex[U any](m *Member[U], r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return ErrOutOfRange
	}
	return nil
}
