// SPDX-License-Identifier: MIT

package octonion

import "github.com/katalvlaran/lvlalg/complexnum"

// lift evaluates the complex function fn at a through hyper.Lift.
func (alg *Algebra[R]) lift(a, b *Number[R], fn func(z, w *complexnum.Number[R])) {
	alg.h.Lift(a.c[:], b.c[:], func(re, im, fre, fim *R) {
		z := alg.cx.ConstructParts(re, im)
		fn(z, z)
		alg.cx.Real(z, fre)
		alg.cx.Imag(z, fim)
	})
}

// Pow sets c = exp(log(a)·b), multiplying on the right. 0^0 is NaN.
func (alg *Algebra[R]) Pow(a, b, c *Number[R]) {
	switch {
	case alg.IsNaN(a) || alg.IsNaN(b):
		alg.NaN(c)
		return
	case alg.IsZero(a):
		if !alg.IsZero(b) && alg.r.Signum(&b.c[0]) > 0 {
			alg.Zero(c)
		} else {
			alg.NaN(c)
		}
		return
	}
	l := alg.Construct()
	alg.Log(a, l)
	alg.Multiply(l, b, l)
	alg.Exp(l, c)
}

// Exp sets b = exp(a).
func (alg *Algebra[R]) Exp(a, b *Number[R]) { alg.lift(a, b, alg.cx.Exp) }

// Log sets b = ln(a).
func (alg *Algebra[R]) Log(a, b *Number[R]) { alg.lift(a, b, alg.cx.Log) }

// Sqrt sets b = √(a).
func (alg *Algebra[R]) Sqrt(a, b *Number[R]) { alg.lift(a, b, alg.cx.Sqrt) }

// Cbrt sets b = ∛(a).
func (alg *Algebra[R]) Cbrt(a, b *Number[R]) { alg.lift(a, b, alg.cx.Cbrt) }

// Sin sets b = sin(a).
func (alg *Algebra[R]) Sin(a, b *Number[R]) { alg.lift(a, b, alg.cx.Sin) }

// Cos sets b = cos(a).
func (alg *Algebra[R]) Cos(a, b *Number[R]) { alg.lift(a, b, alg.cx.Cos) }

// Tan sets b = tan(a).
func (alg *Algebra[R]) Tan(a, b *Number[R]) { alg.lift(a, b, alg.cx.Tan) }

// Sec sets b = sec(a).
func (alg *Algebra[R]) Sec(a, b *Number[R]) { alg.lift(a, b, alg.cx.Sec) }

// Csc sets b = csc(a).
func (alg *Algebra[R]) Csc(a, b *Number[R]) { alg.lift(a, b, alg.cx.Csc) }

// Cot sets b = cot(a).
func (alg *Algebra[R]) Cot(a, b *Number[R]) { alg.lift(a, b, alg.cx.Cot) }

// SinAndCos sets s = sin(a) and c = cos(a).
func (alg *Algebra[R]) SinAndCos(a, s, c *Number[R]) {
	x := a.Duplicate()
	alg.Sin(x, s)
	alg.Cos(x, c)
}

// Sinh sets b = sinh(a).
func (alg *Algebra[R]) Sinh(a, b *Number[R]) { alg.lift(a, b, alg.cx.Sinh) }

// Cosh sets b = cosh(a).
func (alg *Algebra[R]) Cosh(a, b *Number[R]) { alg.lift(a, b, alg.cx.Cosh) }

// Tanh sets b = tanh(a).
func (alg *Algebra[R]) Tanh(a, b *Number[R]) { alg.lift(a, b, alg.cx.Tanh) }

// Sech sets b = sech(a).
func (alg *Algebra[R]) Sech(a, b *Number[R]) { alg.lift(a, b, alg.cx.Sech) }

// Csch sets b = csch(a).
func (alg *Algebra[R]) Csch(a, b *Number[R]) { alg.lift(a, b, alg.cx.Csch) }

// Coth sets b = coth(a).
func (alg *Algebra[R]) Coth(a, b *Number[R]) { alg.lift(a, b, alg.cx.Coth) }

// SinhAndCosh sets s = sinh(a) and c = cosh(a).
func (alg *Algebra[R]) SinhAndCosh(a, s, c *Number[R]) {
	x := a.Duplicate()
	alg.Sinh(x, s)
	alg.Cosh(x, c)
}

// Asin sets b = asin(a).
func (alg *Algebra[R]) Asin(a, b *Number[R]) { alg.lift(a, b, alg.cx.Asin) }

// Acos sets b = acos(a).
func (alg *Algebra[R]) Acos(a, b *Number[R]) { alg.lift(a, b, alg.cx.Acos) }

// Atan sets b = atan(a).
func (alg *Algebra[R]) Atan(a, b *Number[R]) { alg.lift(a, b, alg.cx.Atan) }

// Asec sets b = asec(a).
func (alg *Algebra[R]) Asec(a, b *Number[R]) { alg.lift(a, b, alg.cx.Asec) }

// Acsc sets b = acsc(a).
func (alg *Algebra[R]) Acsc(a, b *Number[R]) { alg.lift(a, b, alg.cx.Acsc) }

// Acot sets b = acot(a).
func (alg *Algebra[R]) Acot(a, b *Number[R]) { alg.lift(a, b, alg.cx.Acot) }

// Asinh sets b = asinh(a).
func (alg *Algebra[R]) Asinh(a, b *Number[R]) { alg.lift(a, b, alg.cx.Asinh) }

// Acosh sets b = acosh(a).
func (alg *Algebra[R]) Acosh(a, b *Number[R]) { alg.lift(a, b, alg.cx.Acosh) }

// Atanh sets b = atanh(a).
func (alg *Algebra[R]) Atanh(a, b *Number[R]) { alg.lift(a, b, alg.cx.Atanh) }

// Asech sets b = asech(a).
func (alg *Algebra[R]) Asech(a, b *Number[R]) { alg.lift(a, b, alg.cx.Asech) }

// Acsch sets b = acsch(a).
func (alg *Algebra[R]) Acsch(a, b *Number[R]) { alg.lift(a, b, alg.cx.Acsch) }

// Acoth sets b = acoth(a).
func (alg *Algebra[R]) Acoth(a, b *Number[R]) { alg.lift(a, b, alg.cx.Acoth) }
