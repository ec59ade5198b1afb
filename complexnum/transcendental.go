// SPDX-License-Identifier: MIT

package complexnum

// Elementary functions. The circular and hyperbolic families are the
// exponential identities expanded into real parts, e.g.
// sin(x+iy) = sin x·cosh y + i·cos x·sinh y, which avoids the cancellation
// of e^{iz} − e^{−iz} near zero. The inverse families are logarithms of
// the usual ratios and share log's branch cut.

// real sets a = x + 0i.
func (alg *Algebra[R]) real(x float64) *Number[R] {
	n := &Number[R]{}
	alg.r.Zero(&n.c[1])
	n.SetComponentFloat64(0, x)
	return n
}

// timesI sets b = i·a.
func (alg *Algebra[R]) timesI(a, b *Number[R]) {
	re, im := new(R), new(R)
	alg.r.Negate(&a.c[1], re)
	alg.r.Assign(&a.c[0], im)
	alg.Compose(re, im, b)
}

// timesMinusI sets b = −i·a.
func (alg *Algebra[R]) timesMinusI(a, b *Number[R]) {
	re, im := new(R), new(R)
	alg.r.Assign(&a.c[1], re)
	alg.r.Negate(&a.c[0], im)
	alg.Compose(re, im, b)
}

// ---------- exp / log / powers ----------

// Exp sets b = e^x·(cos y + i·sin y).
func (alg *Algebra[R]) Exp(a, b *Number[R]) {
	r := alg.r
	e := new(R)
	r.Exp(&a.c[0], e)
	if r.IsZero(&a.c[1]) {
		im := new(R)
		r.Assign(&a.c[1], im)
		alg.Compose(e, im, b)
		return
	}
	s, c := new(R), new(R)
	r.SinAndCos(&a.c[1], s, c)
	r.Multiply(e, c, c)
	r.Multiply(e, s, s)
	alg.Compose(c, s, b)
}

// Log is the principal logarithm ln|a| + i·arg(a). Log of zero is NaN.
func (alg *Algebra[R]) Log(a, b *Number[R]) {
	if alg.IsNaN(a) || alg.IsZero(a) {
		alg.NaN(b)
		return
	}
	re, im := new(R), new(R)
	alg.Norm(a, re)
	alg.r.Log(re, re)
	alg.Argument(a, im)
	alg.Compose(re, im, b)
}

// Pow sets c = exp(b·log a). 0^0 is NaN; 0^b is zero when re(b) > 0 and NaN
// otherwise.
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
	alg.Multiply(b, l, l)
	alg.Exp(l, c)
}

// Sqrt is Pow(a, 1/2).
func (alg *Algebra[R]) Sqrt(a, b *Number[R]) {
	alg.Pow(a, alg.real(0.5), b)
}

// Cbrt is Pow(a, 1/3), the principal cube root.
func (alg *Algebra[R]) Cbrt(a, b *Number[R]) {
	third := alg.Construct()
	alg.r.Unity(&third.c[0])
	three := new(R)
	alg.r.ScaleByDouble(3, &third.c[0], three)
	alg.r.Divide(&third.c[0], three, &third.c[0])
	alg.Pow(a, third, b)
}

// ---------- circular ----------

// parts evaluates f(x)·g(y) and h(x)·k(y) for a = x + iy.
func (alg *Algebra[R]) parts(a, b *Number[R], f, g, h, k func(x, y *R), negIm bool) {
	r := alg.r
	fx, gy, hx, ky := new(R), new(R), new(R), new(R)
	f(&a.c[0], fx)
	h(&a.c[0], hx)
	if r.IsZero(&a.c[1]) {
		// keep f(x) exact on the real axis, where g(0) = 1 and k(0) = 0
		im := new(R)
		r.Zero(im)
		alg.Compose(fx, im, b)
		return
	}
	g(&a.c[1], gy)
	k(&a.c[1], ky)
	r.Multiply(fx, gy, fx)
	r.Multiply(hx, ky, hx)
	if negIm {
		r.Negate(hx, hx)
	}
	alg.Compose(fx, hx, b)
}

// Sin is sin x·cosh y + i·cos x·sinh y.
func (alg *Algebra[R]) Sin(a, b *Number[R]) {
	alg.parts(a, b, alg.r.Sin, alg.r.Cosh, alg.r.Cos, alg.r.Sinh, false)
}

// Cos is cos x·cosh y − i·sin x·sinh y.
func (alg *Algebra[R]) Cos(a, b *Number[R]) {
	alg.parts(a, b, alg.r.Cos, alg.r.Cosh, alg.r.Sin, alg.r.Sinh, true)
}

// Tan sets b = tan(a).
func (alg *Algebra[R]) Tan(a, b *Number[R]) {
	s, c := alg.Construct(), alg.Construct()
	alg.SinAndCos(a, s, c)
	alg.Divide(s, c, b)
}

// SinAndCos sets s = sin(a) and c = cos(a).
func (alg *Algebra[R]) SinAndCos(a, s, c *Number[R]) {
	x := a.Duplicate()
	alg.Sin(x, s)
	alg.Cos(x, c)
}

// Sec sets b = sec(a).
func (alg *Algebra[R]) Sec(a, b *Number[R]) { alg.Cos(a, b); alg.Invert(b, b) }

// Csc sets b = csc(a).
func (alg *Algebra[R]) Csc(a, b *Number[R]) { alg.Sin(a, b); alg.Invert(b, b) }

// Cot sets b = cot(a).
func (alg *Algebra[R]) Cot(a, b *Number[R]) { alg.Tan(a, b); alg.Invert(b, b) }

// ---------- hyperbolic ----------

// Sinh is sinh x·cos y + i·cosh x·sin y.
func (alg *Algebra[R]) Sinh(a, b *Number[R]) {
	alg.parts(a, b, alg.r.Sinh, alg.r.Cos, alg.r.Cosh, alg.r.Sin, false)
}

// Cosh is cosh x·cos y + i·sinh x·sin y.
func (alg *Algebra[R]) Cosh(a, b *Number[R]) {
	alg.parts(a, b, alg.r.Cosh, alg.r.Cos, alg.r.Sinh, alg.r.Sin, false)
}

// Tanh sets b = tanh(a).
func (alg *Algebra[R]) Tanh(a, b *Number[R]) {
	s, c := alg.Construct(), alg.Construct()
	alg.SinhAndCosh(a, s, c)
	alg.Divide(s, c, b)
}

// SinhAndCosh sets s = sinh(a) and c = cosh(a).
func (alg *Algebra[R]) SinhAndCosh(a, s, c *Number[R]) {
	x := a.Duplicate()
	alg.Sinh(x, s)
	alg.Cosh(x, c)
}

// Sech sets b = sech(a).
func (alg *Algebra[R]) Sech(a, b *Number[R]) { alg.Cosh(a, b); alg.Invert(b, b) }

// Csch sets b = csch(a).
func (alg *Algebra[R]) Csch(a, b *Number[R]) { alg.Sinh(a, b); alg.Invert(b, b) }

// Coth sets b = coth(a).
func (alg *Algebra[R]) Coth(a, b *Number[R]) { alg.Tanh(a, b); alg.Invert(b, b) }

// ---------- inverse circular ----------

// oneMinusSquare sets b = √(1 − a²).
func (alg *Algebra[R]) oneMinusSquare(a, b *Number[R]) {
	t := alg.Construct()
	alg.Multiply(a, a, t)
	alg.Subtract(alg.real(1), t, t)
	alg.Sqrt(t, b)
}

// Asin is −i·log(i·a + √(1 − a²)).
func (alg *Algebra[R]) Asin(a, b *Number[R]) {
	s, t := alg.Construct(), alg.Construct()
	alg.oneMinusSquare(a, s)
	alg.timesI(a, t)
	alg.Add(t, s, t)
	alg.Log(t, t)
	alg.timesMinusI(t, b)
}

// Acos is −i·log(a + i·√(1 − a²)).
func (alg *Algebra[R]) Acos(a, b *Number[R]) {
	s := alg.Construct()
	alg.oneMinusSquare(a, s)
	alg.timesI(s, s)
	alg.Add(a, s, s)
	alg.Log(s, s)
	alg.timesMinusI(s, b)
}

// Atan is (i/2)·log((i + a)/(i − a)).
func (alg *Algebra[R]) Atan(a, b *Number[R]) {
	i, num, den := alg.Construct(), alg.Construct(), alg.Construct()
	alg.I(i)
	alg.Add(i, a, num)
	alg.Subtract(i, a, den)
	alg.Divide(num, den, num)
	alg.Log(num, num)
	alg.timesI(num, num)
	alg.ScaleByOneHalf(1, num, b)
}

// Asec sets b = asec(a).
func (alg *Algebra[R]) Asec(a, b *Number[R]) { alg.Invert(a, b); alg.Acos(b, b) }

// Acsc sets b = acsc(a).
func (alg *Algebra[R]) Acsc(a, b *Number[R]) { alg.Invert(a, b); alg.Asin(b, b) }

// Acot sets b = acot(a).
func (alg *Algebra[R]) Acot(a, b *Number[R]) { alg.Invert(a, b); alg.Atan(b, b) }

// ---------- inverse hyperbolic ----------

// Asinh is log(a + √(a² + 1)).
func (alg *Algebra[R]) Asinh(a, b *Number[R]) {
	t := alg.Construct()
	alg.Multiply(a, a, t)
	alg.Add(t, alg.real(1), t)
	alg.Sqrt(t, t)
	alg.Add(a, t, t)
	alg.Log(t, b)
}

// Acosh is log(a + √(a + 1)·√(a − 1)).
func (alg *Algebra[R]) Acosh(a, b *Number[R]) {
	one := alg.real(1)
	p, m := alg.Construct(), alg.Construct()
	alg.Add(a, one, p)
	alg.Sqrt(p, p)
	alg.Subtract(a, one, m)
	alg.Sqrt(m, m)
	alg.Multiply(p, m, p)
	alg.Add(a, p, p)
	alg.Log(p, b)
}

// Atanh is ½·log((1 + a)/(1 − a)).
func (alg *Algebra[R]) Atanh(a, b *Number[R]) {
	one := alg.real(1)
	num, den := alg.Construct(), alg.Construct()
	alg.Add(one, a, num)
	alg.Subtract(one, a, den)
	alg.Divide(num, den, num)
	alg.Log(num, num)
	alg.ScaleByOneHalf(1, num, b)
}

// Asech sets b = asech(a).
func (alg *Algebra[R]) Asech(a, b *Number[R]) { alg.Invert(a, b); alg.Acosh(b, b) }

// Acsch sets b = acsch(a).
func (alg *Algebra[R]) Acsch(a, b *Number[R]) { alg.Invert(a, b); alg.Asinh(b, b) }

// Acoth sets b = acoth(a).
func (alg *Algebra[R]) Acoth(a, b *Number[R]) { alg.Invert(a, b); alg.Atanh(b, b) }
