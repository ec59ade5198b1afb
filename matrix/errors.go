// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every structural failure returned by this package wraps one of these
// sentinels; match with errors.Is. Numeric trouble (singular pivots, overflow)
// is never an error and shows up as NaN or Inf elements instead.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative extent.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes or Multiply where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRank is returned when a representation has more than two axes.
	ErrRank = errors.New("matrix: representation rank exceeds 2")
)

// Operation tags used when wrapping sentinels.
const (
	opConstruct      = "ConstructShape"
	opParse          = "ConstructFromString"
	opFromRep        = "FromRep"
	opAt             = "At"
	opAdd            = "Add"
	opSub            = "Subtract"
	opHadamard       = "MultiplyElements"
	opDivideElements = "DivideElements"
	opMul            = "Multiply"
	opTrace          = "Trace"
	opDet            = "Det"
	opInverse        = "Invert"
	opDivide         = "Divide"
	opPower          = "Power"
	opExp            = "Exp"
	opMatVec         = "MultiplyVector"
	opRow            = "Row"
	opColumn         = "Column"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
