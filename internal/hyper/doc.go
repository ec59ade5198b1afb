// SPDX-License-Identifier: MIT

// Package hyper holds the kernels shared by the composite number systems
// (complex, quaternion, octonion). A composite value is seen here as a slice
// of real components, component 0 being the real part, and every kernel is
// written against an algebra.Real for those components.
//
// Contract shared by every composite:
//   - a value is NaN when any component is NaN;
//   - a value is infinite when it is not NaN and any component is infinite;
//   - the norm divides by the largest component magnitude before squaring,
//     so it stays finite whenever the true magnitude is representable.
//
// Functions of one variable with real coefficients extend from the complex
// plane to quaternions and octonions by Lift: a + v is mapped onto
// a + i·|v|, evaluated, and mapped back along the unit direction v/|v|.
package hyper
