// SPDX-License-Identifier: MIT

// Package algebra defines the capability contracts every numeric type in
// lvlalg opts into.
//
// An Algebra is a stateless value that exposes operations over a member type U.
// Members are plain Go values (float.Float64, complexnum.Float64, matrix.Member...)
// and every operation takes pointers to them, writing its result into the
// trailing argument(s):
//
//	var c float.Float64
//	float.Float64Algebra.Add(&a, &b, &c) // c = a + b
//
// Output arguments may alias inputs. Implementations read every input
// component into scratch values before writing the destination.
//
// Capabilities are small interfaces, one per operation group (Additive,
// Multiplicative, Norm, Exponential, Rounding, ...). Generic code asks for the
// narrowest set it needs; the composed contracts at the bottom of
// contracts.go (Field, Scalar, Real) name the combinations the container
// and composite packages rely on.
//
// Numeric policy:
//   - Domain problems (division by the zero element, log of zero, 0^0) never
//     return errors. They produce NaN or Inf components and callers inspect
//     them with IsNaN / IsInfinite afterwards.
//   - A composite value is NaN if any component is NaN. It is infinite iff it is
//     not NaN and at least one component is infinite.
//   - Structural failures (shape mismatch, bad index, malformed literal) are
//     errors, reported by the packages that can hit them.
package algebra
