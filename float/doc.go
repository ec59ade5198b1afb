// SPDX-License-Identifier: MIT

// Package float is the IEEE-754 real line at single and double precision.
//
// Member[F] wraps one float32 or float64; Algebra[F] is the stateless operation
// set over it and satisfies algebra.Real, so the composite packages
// (complexnum, quaternion, octonion) and every container can be built on it.
//
//	a := float.Float64Algebra.Construct()
//	a.SetValue(2)
//	float.Float64Algebra.Sqrt(a, a) // a = 1.4142...
//
// Arithmetic follows IEEE semantics directly: 1/0 is +Inf, 0/0 is NaN and
// nothing here returns an error.
package float
