// SPDX-License-Identifier: MIT

// Package rmodule is the vector algebra over any scalar number system: a
// one-dimensional Member holding a []U backing store and an Algebra that
// broadcasts the scalar operations over it.
//
// Element-wise binary operations require equal lengths and return
// ErrDimensionMismatch otherwise, leaving the destination untouched. The
// destination of every operation may alias an operand.
package rmodule
