// SPDX-License-Identifier: MIT

// Package complexnum is the complex number system, generic over the real
// algebra of its two parts. Float32Algebra, Float64Algebra and
// Float128Algebra cover the real precisions shipped with this module; New
// builds one over any other algebra.Real.
//
// Numeric trouble never panics or returns an error. Division by zero yields
// NaN parts, the logarithm of zero is NaN, and so is 0^0:
//
//	a := complexnum.Float64Algebra.Construct()
//	_ = primitive.SetAny(a, nil, 0, 3)
//	_ = primitive.SetAny(a, nil, 1, 4)
//	n := float.Float64Algebra.Construct()
//	complexnum.Float64Algebra.Norm(a, n) // n = 5
//
// The argument of a value lies in (−π, π]; on the negative real axis it is
// +π, so Log(-1) = iπ.
package complexnum
