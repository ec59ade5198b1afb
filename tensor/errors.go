// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for a negative extent.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrDimensionMismatch indicates operands whose shapes do not fit the
	// operation.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrOutOfRange indicates an index outside the shape.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrAxis indicates an axis argument outside [0, rank) or a contraction
	// of an axis with itself.
	ErrAxis = errors.New("tensor: invalid axis")

	// ErrNegativePower is returned by Power for n < 0.
	ErrNegativePower = errors.New("tensor: negative power")
)

const (
	opConstruct      = "ConstructShape"
	opParse          = "ConstructFromString"
	opFromRep        = "FromRep"
	opAt             = "At"
	opAdd            = "Add"
	opSubtract       = "Subtract"
	opMultiplyEl     = "MultiplyElements"
	opDivideElements = "DivideElements"
	opContract       = "Contract"
	opInnerProduct   = "InnerProduct"
	opRaiseIndex     = "RaiseIndex"
	opLowerIndex     = "LowerIndex"
	opPower          = "Power"
)

func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
