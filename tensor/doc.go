// SPDX-License-Identifier: MIT

// Package tensor is the Cartesian tensor algebra over any scalar number
// system.
//
// A Member of rank k holds an extent per axis and a flat []U. Axis 0 varies
// fastest: the element at index (i0, i1, ...) sits at Σ i_a·mult[a], where
// mult[a] is the product of every extent before axis a. A rank-0 tensor holds
// exactly one element.
//
// Multiply is the tensor (outer) product, not the element-wise one; use
// MultiplyElements for that. Contract sums over the diagonal of two axes of
// equal extent and drops both. The basis is Cartesian, so RaiseIndex and
// LowerIndex only validate the axis and copy.
package tensor

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("lvlalg.tensor")
}
