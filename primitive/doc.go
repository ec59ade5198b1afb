// SPDX-License-Identifier: MIT

// Package primitive is the component-level protocol that lets one generic
// algorithm read and write any lvlalg member without knowing its scalar type.
//
// Every scalar member pointer implements Scalar: a fixed number of real
// components, each readable/writable as float64 or *big.Float, plus a fixed
// big-endian byte layout. Every member, scalar or aggregate, implements
// Convertible: a shape and an element lookup by Index.
//
// Index[0] is the fastest-varying axis. Dimension(axis) beyond the rank is 1.
//
// Two access flavours are provided:
//
//	unsafe  Get / Set            index must be inside the shape, otherwise
//	                             ErrOutOfBounds; a component past the count
//	                             reads zero and ignores writes.
//	safe    SafeGet / SafeSet    anything outside the shape or component count
//	                             reads zero; writing zero there is a no-op;
//	                             writing anything else is ErrOutOfBounds.
//
// Both flavours reject negative indices and components.
package primitive
