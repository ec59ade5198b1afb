// SPDX-License-Identifier: MIT

package float

import (
	"math"

	"golang.org/x/exp/constraints"
)

// unary applies a float64 kernel to a and stores it in b.
func unary[F constraints.Float](fn func(float64) float64, a, b *Member[F]) {
	b.v = F(fn(float64(a.v)))
}

func recip(fn func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return 1 / fn(x) }
}

func ofRecip(fn func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return fn(1 / x) }
}

var (
	sec   = recip(math.Cos)
	csc   = recip(math.Sin)
	cot   = recip(math.Tan)
	sech  = recip(math.Cosh)
	csch  = recip(math.Sinh)
	coth  = recip(math.Tanh)
	asec  = ofRecip(math.Acos)
	acsc  = ofRecip(math.Asin)
	acot  = ofRecip(math.Atan)
	asech = ofRecip(math.Acosh)
	acsch = ofRecip(math.Asinh)
	acoth = ofRecip(math.Atanh)
)

// Exp sets b = exp(a).
func (Algebra[F]) Exp(a, b *Member[F]) { unary(math.Exp, a, b) }

// Log sets b = ln(a).
func (Algebra[F]) Log(a, b *Member[F]) { unary(math.Log, a, b) }

// Sqrt sets b = √(a).
func (Algebra[F]) Sqrt(a, b *Member[F]) { unary(math.Sqrt, a, b) }

// Cbrt sets b = ∛(a).
func (Algebra[F]) Cbrt(a, b *Member[F]) { unary(math.Cbrt, a, b) }

// Pow sets c = a^b.
func (Algebra[F]) Pow(a, b, c *Member[F]) { c.v = F(math.Pow(float64(a.v), float64(b.v))) }

// Sin sets b = sin(a).
func (Algebra[F]) Sin(a, b *Member[F]) { unary(math.Sin, a, b) }

// Cos sets b = cos(a).
func (Algebra[F]) Cos(a, b *Member[F]) { unary(math.Cos, a, b) }

// Tan sets b = tan(a).
func (Algebra[F]) Tan(a, b *Member[F]) { unary(math.Tan, a, b) }

// Sec sets b = sec(a).
func (Algebra[F]) Sec(a, b *Member[F]) { unary(sec, a, b) }

// Csc sets b = csc(a).
func (Algebra[F]) Csc(a, b *Member[F]) { unary(csc, a, b) }

// Cot sets b = cot(a).
func (Algebra[F]) Cot(a, b *Member[F]) { unary(cot, a, b) }

// SinAndCos computes both in one call.
func (Algebra[F]) SinAndCos(a, s, c *Member[F]) {
	sv, cv := math.Sincos(float64(a.v))
	s.v, c.v = F(sv), F(cv)
}

// Sinh sets b = sinh(a).
func (Algebra[F]) Sinh(a, b *Member[F]) { unary(math.Sinh, a, b) }

// Cosh sets b = cosh(a).
func (Algebra[F]) Cosh(a, b *Member[F]) { unary(math.Cosh, a, b) }

// Tanh sets b = tanh(a).
func (Algebra[F]) Tanh(a, b *Member[F]) { unary(math.Tanh, a, b) }

// Sech sets b = sech(a).
func (Algebra[F]) Sech(a, b *Member[F]) { unary(sech, a, b) }

// Csch sets b = csch(a).
func (Algebra[F]) Csch(a, b *Member[F]) { unary(csch, a, b) }

// Coth sets b = coth(a).
func (Algebra[F]) Coth(a, b *Member[F]) { unary(coth, a, b) }

// SinhAndCosh computes both in one call.
func (Algebra[F]) SinhAndCosh(a, s, c *Member[F]) {
	x := float64(a.v)
	s.v, c.v = F(math.Sinh(x)), F(math.Cosh(x))
}

// Asin sets b = asin(a).
func (Algebra[F]) Asin(a, b *Member[F]) { unary(math.Asin, a, b) }

// Acos sets b = acos(a).
func (Algebra[F]) Acos(a, b *Member[F]) { unary(math.Acos, a, b) }

// Atan sets b = atan(a).
func (Algebra[F]) Atan(a, b *Member[F]) { unary(math.Atan, a, b) }

// Asec sets b = asec(a).
func (Algebra[F]) Asec(a, b *Member[F]) { unary(asec, a, b) }

// Acsc sets b = acsc(a).
func (Algebra[F]) Acsc(a, b *Member[F]) { unary(acsc, a, b) }

// Acot sets b = acot(a).
func (Algebra[F]) Acot(a, b *Member[F]) { unary(acot, a, b) }

// Asinh sets b = asinh(a).
func (Algebra[F]) Asinh(a, b *Member[F]) { unary(math.Asinh, a, b) }

// Acosh sets b = acosh(a).
func (Algebra[F]) Acosh(a, b *Member[F]) { unary(math.Acosh, a, b) }

// Atanh sets b = atanh(a).
func (Algebra[F]) Atanh(a, b *Member[F]) { unary(math.Atanh, a, b) }

// Asech sets b = asech(a).
func (Algebra[F]) Asech(a, b *Member[F]) { unary(asech, a, b) }

// Acsch sets b = acsch(a).
func (Algebra[F]) Acsch(a, b *Member[F]) { unary(acsch, a, b) }

// Acoth sets b = acoth(a).
func (Algebra[F]) Acoth(a, b *Member[F]) { unary(acoth, a, b) }
