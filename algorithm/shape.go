// SPDX-License-Identifier: MIT

package algorithm

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/primitive"
)

// ShapesMatch reports whether a and b have the same rank and the same extent
// along every axis.
func ShapesMatch(a, b primitive.Shaped) bool {
	rank := a.NumDimensions()
	if rank != b.NumDimensions() {
		return false
	}
	for axis := 0; axis < rank; axis++ {
		if a.Dimension(axis) != b.Dimension(axis) {
			return false
		}
	}
	return true
}

// ValidateShapes returns a wrapped ErrShapeMismatch naming the first operand
// whose shape differs from ms[0]. Fewer than two operands always match.
func ValidateShapes(ms ...primitive.Shaped) error {
	for i := 1; i < len(ms); i++ {
		if !ShapesMatch(ms[0], ms[i]) {
			return fmt.Errorf("operand %d has shape %v, want %v: %w",
				i, primitive.Shape(ms[i]), primitive.Shape(ms[0]), ErrShapeMismatch)
		}
	}
	return nil
}
