// SPDX-License-Identifier: MIT

// Package quad is a 128-bit real: the value set of IEEE-754 binary128
// (113-bit significand, exponents down to the 2^-16494 subnormal) emulated
// on math/big.Float, with a dedicated flag for NaN since big.Float has none.
//
// Every operation rounds its result to 113 bits (nearest, ties to even) and
// then clamps it into the binary128 exponent range: overflow goes to ±Inf,
// tiny results are rounded onto the subnormal grid or flushed to ±0. The
// exceptional cases big.Float would panic on (Inf-Inf, 0*Inf, 0/0, sqrt of a
// negative) produce NaN instead.
//
// Transcendental functions evaluate power series at 113+64 bits:
//
//	exp    argument halving, Taylor series, repeated squaring
//	log    mantissa split into [1/√2, √2) and the atanh series
//	sin    reduction modulo 2π, Taylor series for sin and cos
//	atan   argument halving through atan(x) = 2·atan(x/(1+√(1+x²)))
//	π, ln2 Machin's formula and 2·atanh(1/3), cached at 256 bits
//
// Float128 contains a big.Float and must not be copied by assignment; use
// Set, Duplicate or the algebra's Assign.
package quad

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("lvlalg.quad")
}
