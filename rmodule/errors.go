// SPDX-License-Identifier: MIT

package rmodule

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a negative length is requested.
	ErrBadShape = errors.New("rmodule: invalid length")

	// ErrDimensionMismatch is returned when operands differ in length.
	ErrDimensionMismatch = errors.New("rmodule: dimension mismatch")

	// ErrUndefinedLength is returned by products that exist only for one
	// length, such as the cross product for length 3.
	ErrUndefinedLength = errors.New("rmodule: operation undefined for this length")

	// ErrRank is returned when a representation is not one-dimensional.
	ErrRank = errors.New("rmodule: representation is not rank 1")
)

const (
	opConstruct    = "ConstructLength"
	opFromRep      = "FromRep"
	opParse        = "ConstructFromString"
	opAdd          = "Add"
	opSubtract     = "Subtract"
	opMultiplyEl   = "MultiplyElements"
	opDot          = "DotProduct"
	opPerpDot      = "PerpDotProduct"
	opCross        = "CrossProduct"
	opTriple       = "TripleProduct"
	opVectorTriple = "VectorTripleProduct"
)

func rmoduleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
