// SPDX-License-Identifier: MIT

// Package octonion is the eight-dimensional Cayley–Dickson algebra over a
// generic real algebra. The basis is e_0 = 1, e_1 … e_7, and the first four
// basis elements multiply exactly as the quaternions 1, i, j, k do.
//
// Multiplication is neither commutative nor associative; Divide(a, b) is
// a·b⁻¹, which still satisfies (a·b⁻¹)·b = a because any two octonions
// generate an associative subalgebra.
package octonion
