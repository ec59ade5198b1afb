// SPDX-License-Identifier: MIT

// Package matrix is the matrix algebra over any scalar number system.
//
// A Member stores its elements row by row in a flat []U: element (r, c)
// lives at r*cols + c. Through the primitive protocol axis 0 is the column
// and axis 1 the row, so a literal "[[1, 2], [3, 4]]" reads one row per
// inner list.
//
// The Algebra covers the element-wise ring operations, the matrix product,
// transpose and conjugate transpose, trace, an LU factorisation with partial
// pivoting behind Det and Invert, integer powers, the matrix exponential and
// the Kronecker product. Structural problems (mismatched shapes, a
// non-square operand where one is required) are reported as errors and
// leave the destination untouched. Numeric problems never are: inverting a
// singular matrix fills the result with NaN.
//
//	m := matrix.Float64Algebra
//	a, _ := m.ConstructFromString("[[4, 7], [2, 6]]")
//	inv := m.Construct()
//	_ = m.Invert(a, inv) // [[0.6, -0.7], [-0.2, 0.4]]
package matrix

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("lvlalg.matrix")
}
