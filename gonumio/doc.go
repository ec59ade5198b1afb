// SPDX-License-Identifier: MIT

// Package gonumio converts real-valued matrices and vectors to and from
// gonum's mat types. Elements move through the primitive protocol, so any
// single-component scalar (float32, float64, Float128) converts, rounding to
// float64 on the way out.
//
// gonum indexes (row, column); so does matrix.Member.At, so no axis swap is
// needed at this boundary.
package gonumio

import "errors"

var (
	// ErrEmpty is returned when converting an operand with no elements; gonum
	// has no zero-sized dense types.
	ErrEmpty = errors.New("gonumio: empty operand")

	// ErrNotReal is returned for element types with more than one component.
	ErrNotReal = errors.New("gonumio: element type is not real")
)
