// SPDX-License-Identifier: MIT

// Package lvlalg is a generic numeric-algebra library: scalar number systems
// over several precisions, and vector, matrix and Cartesian tensor algebras
// built on top of any of them.
//
// What is inside?
//
//   - Scalars: float32/float64 reals (float), 128-bit IEEE quad reals (quad),
//     and complex, quaternion and octonion numbers over any real algebra
//     (complexnum, quaternion, octonion).
//   - Containers: vectors (rmodule), matrices (matrix) and tensors (tensor)
//     over any scalar algebra.
//   - The primitive protocol: typed per-component get/set, bulk import and
//     export, and byte encoding for every member type, so one algorithm
//     works on all of them.
//   - Literals: a text form for every member, parsed and printed by rep.
//   - Interop with gonum's mat types (gonumio).
//
// Every number system comes as an Algebra value with a closed operation set
// (construct, add, multiply, norm, exp/log/trig, rounding, NaN and infinity
// handling, scaling) and a mutable Member type. Operations take pointers and
// write their result into the last argument, which may alias an input:
//
//	m := matrix.Float64Algebra
//	a, _ := m.ConstructFromString("[[4, 7], [2, 6]]")
//	_ = m.Invert(a, a)
//
// Layout:
//
//	algebra/     capability interfaces and the composed contracts
//	float/       float32 and float64 reals
//	quad/        128-bit binary128 reals on math/big
//	complexnum/  complex numbers over a real algebra
//	quaternion/  Hamilton quaternions
//	octonion/    Cayley octonions
//	primitive/   component access, bulk and byte conversion
//	rep/         literal parsing and formatting
//	algorithm/   generic sequence kernels shared by the containers
//	rmodule/     vectors
//	matrix/      matrices: LU, inverse, determinant, exp
//	tensor/      Cartesian tensors: products and contraction
//	gonumio/     gonum conversion
package lvlalg
