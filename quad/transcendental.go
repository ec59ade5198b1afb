// SPDX-License-Identifier: MIT

package quad

import (
	"math"
	"math/big"
)

var (
	// beyond these arguments exp over- or underflows binary128
	expOverflow  = big.NewFloat(11357)
	expUnderflow = big.NewFloat(-11500)
	// beyond this sinh and cosh overflow binary128
	hypOverflow = big.NewFloat(11400)
	// beyond this tanh rounds to ±1
	tanhSaturate = big.NewFloat(100)
)

func (m *Float128) finite() bool { return !m.nan && !m.v.IsInf() }

// unitSign maps m onto ±0, ±1 or ±Inf, keeping its sign.
func (m *Float128) unitSign() float64 {
	switch {
	case m.v.IsInf() || m.isZero():
		return m.Float64()
	case m.v.Signbit():
		return -1
	}
	return 1
}

// reciprocal sets b = 1/a.
func reciprocal(a, b *Float128) {
	one := &Float128{}
	one.setInt(1)
	quo(one, a, b)
}

// setHalfPi sets m to ±π/2.
func (m *Float128) setHalfPi(neg bool) {
	z := newF(workPrec).Set(pi(workPrec))
	z.SetMantExp(z, -1)
	if neg {
		z.Neg(z)
	}
	m.setBig(z)
}

// ---------- exp / log / roots / pow ----------

// Exp sets b = exp(a).
func (Algebra) Exp(a, b *Float128) {
	switch {
	case a.nan:
		b.setNaN()
	case a.v.IsInf():
		if a.v.Signbit() {
			b.setZero(false)
		} else {
			b.setInf(false)
		}
	case a.v.Cmp(expOverflow) > 0:
		b.setInf(false)
	case a.v.Cmp(expUnderflow) < 0:
		b.setZero(false)
	default:
		b.setBig(expBig(&a.v, workPrec))
	}
}

// Log is the natural logarithm; negative input is NaN and ±0 gives -Inf.
func (Algebra) Log(a, b *Float128) {
	switch {
	case a.nan || (a.v.Sign() < 0):
		b.setNaN()
	case a.isZero():
		b.setInf(true)
	case a.v.IsInf():
		b.setInf(false)
	default:
		b.setBig(logBig(&a.v, workPrec))
	}
}

// Sqrt sets b = √(a).
func (Algebra) Sqrt(a, b *Float128) {
	switch {
	case a.nan || a.v.Sign() < 0:
		b.setNaN()
	case a.v.IsInf() || a.isZero():
		b.Set(a)
	default:
		b.setBig(newF(Precision).Sqrt(&a.v))
	}
}

// Cbrt is the real cube root, odd in its argument.
func (Algebra) Cbrt(a, b *Float128) {
	if !a.finite() || a.isZero() {
		b.Set(a)
		return
	}
	x := newF(workPrec).Abs(&a.v)
	y := logBig(x, workPrec)
	y.Quo(y, newF(workPrec).SetInt64(3))
	y = expBig(y, workPrec)
	// one Newton step: y -= (y³ - x) / (3y²)
	y2 := newF(workPrec).Mul(y, y)
	num := newF(workPrec).Mul(y2, y)
	num.Sub(num, x)
	y2.Mul(y2, newF(workPrec).SetInt64(3))
	num.Quo(num, y2)
	y.Sub(y, num)
	if a.v.Signbit() {
		y.Neg(y)
	}
	b.setBig(y)
}

// Pow sets c = a^b with IEEE pow conventions for the special cases.
func (alg Algebra) Pow(a, b, c *Float128) {
	switch {
	case b.isZero():
		c.setInt(1)
		return
	case !a.nan && a.v.Cmp(big.NewFloat(1)) == 0:
		c.setInt(1)
		return
	case a.nan || b.nan:
		c.setNaN()
		return
	}
	isInt := b.finite() && b.v.IsInt()
	if isInt && b.v.MantExp(nil) <= 30 {
		n, _ := b.v.Int64()
		alg.Power(int(n), a, c)
		return
	}
	if a.v.IsInf() || a.isZero() {
		alg.powSpecial(a, b.Float64(), c)
		return
	}
	if b.v.IsInf() {
		mag := newF(Precision).Abs(&a.v).Cmp(big.NewFloat(1))
		switch {
		case mag == 0:
			c.setInt(1)
		case (mag > 0) != b.v.Signbit():
			c.setInf(false)
		default:
			c.setZero(false)
		}
		return
	}
	negate := false
	if a.v.Sign() < 0 {
		if !isInt {
			c.setNaN()
			return
		}
		bi, _ := b.v.Int(nil)
		negate = bi.Bit(0) == 1
	}
	t := logBig(newF(workPrec).Abs(&a.v), workPrec)
	t.Mul(t, &b.v)
	switch {
	case t.Cmp(expOverflow) > 0:
		c.setInf(negate)
	case t.Cmp(expUnderflow) < 0:
		c.setZero(negate)
	default:
		r := expBig(t, workPrec)
		if negate {
			r.Neg(r)
		}
		c.setBig(r)
	}
}

// powSpecial handles a base of ±0 or ±Inf, where the result is always
// 0 or Inf and IEEE pow on float64 gives the right sign.
func (Algebra) powSpecial(a *Float128, y float64, c *Float128) {
	c.SetFloat64(math.Pow(a.Float64(), y))
}

// ---------- circular ----------

func sinCos(a *Float128) (*big.Float, *big.Float) { return sinCosBig(&a.v, workPrec) }

// Sin sets b = sin(a).
func (Algebra) Sin(a, b *Float128) {
	if !a.finite() {
		b.setNaN()
		return
	}
	s, _ := sinCos(a)
	b.setBig(s)
}

// Cos sets b = cos(a).
func (Algebra) Cos(a, b *Float128) {
	if !a.finite() {
		b.setNaN()
		return
	}
	_, c := sinCos(a)
	b.setBig(c)
}

// Tan sets b = tan(a).
func (Algebra) Tan(a, b *Float128) {
	if !a.finite() {
		b.setNaN()
		return
	}
	s, c := sinCos(a)
	b.setBig(s.Quo(s, c))
}

// SinAndCos sets s = sin(a) and c = cos(a).
func (Algebra) SinAndCos(a, s, c *Float128) {
	if !a.finite() {
		s.setNaN()
		c.setNaN()
		return
	}
	sv, cv := sinCos(a)
	s.setBig(sv)
	c.setBig(cv)
}

// Sec sets b = sec(a).
func (alg Algebra) Sec(a, b *Float128) { alg.Cos(a, b); reciprocal(b, b) }

// Csc sets b = csc(a).
func (alg Algebra) Csc(a, b *Float128) { alg.Sin(a, b); reciprocal(b, b) }

// Cot sets b = cot(a).
func (alg Algebra) Cot(a, b *Float128) { alg.Tan(a, b); reciprocal(b, b) }

// ---------- hyperbolic ----------

// Sinh sets b = sinh(a).
func (Algebra) Sinh(a, b *Float128) {
	switch {
	case !a.finite() || a.isZero():
		b.Set(a)
	case newF(Precision).Abs(&a.v).Cmp(hypOverflow) > 0:
		b.setInf(a.v.Signbit())
	default:
		b.setBig(sinhBig(&a.v, workPrec))
	}
}

// Cosh sets b = cosh(a).
func (Algebra) Cosh(a, b *Float128) {
	switch {
	case a.nan:
		b.setNaN()
	case a.v.IsInf() || newF(Precision).Abs(&a.v).Cmp(hypOverflow) > 0:
		b.setInf(false)
	default:
		b.setBig(coshBig(&a.v, workPrec))
	}
}

// Tanh sets b = tanh(a).
func (Algebra) Tanh(a, b *Float128) {
	switch {
	case a.nan || a.isZero():
		b.Set(a)
	case a.v.IsInf() || newF(Precision).Abs(&a.v).Cmp(tanhSaturate) > 0:
		if a.v.Signbit() {
			b.setInt(-1)
		} else {
			b.setInt(1)
		}
	default:
		s := sinhBig(&a.v, workPrec)
		b.setBig(s.Quo(s, coshBig(&a.v, workPrec)))
	}
}

// SinhAndCosh sets s = sinh(a) and c = cosh(a).
func (alg Algebra) SinhAndCosh(a, s, c *Float128) {
	t := a.Duplicate()
	alg.Sinh(t, s)
	alg.Cosh(t, c)
}

// Sech sets b = sech(a).
func (alg Algebra) Sech(a, b *Float128) { alg.Cosh(a, b); reciprocal(b, b) }

// Csch sets b = csch(a).
func (alg Algebra) Csch(a, b *Float128) { alg.Sinh(a, b); reciprocal(b, b) }

// Coth sets b = coth(a).
func (alg Algebra) Coth(a, b *Float128) { alg.Tanh(a, b); reciprocal(b, b) }

// ---------- inverse circular ----------

// Asin is NaN outside [-1, 1].
func (Algebra) Asin(a, b *Float128) {
	if a.nan {
		b.setNaN()
		return
	}
	switch newF(Precision).Abs(&a.v).Cmp(big.NewFloat(1)) {
	case 1:
		b.setNaN()
	case 0:
		b.setHalfPi(a.v.Signbit())
	default:
		// asin(x) = atan(x / √((1-x)(1+x)))
		one := newF(workPrec).SetInt64(1)
		d := newF(workPrec).Sub(one, &a.v)
		d.Mul(d, newF(workPrec).Add(one, &a.v))
		d.Sqrt(d)
		b.setBig(atanBig(d.Quo(&a.v, d), workPrec))
	}
}

// Acos is NaN outside [-1, 1].
func (Algebra) Acos(a, b *Float128) {
	if a.nan {
		b.setNaN()
		return
	}
	one := newF(workPrec).SetInt64(1)
	if newF(Precision).Abs(&a.v).Cmp(one) > 0 {
		b.setNaN()
		return
	}
	if a.v.Cmp(newF(workPrec).SetInt64(-1)) == 0 {
		b.setBig(pi(workPrec))
		return
	}
	// acos(x) = 2·atan(√((1-x)/(1+x)))
	num := newF(workPrec).Sub(one, &a.v)
	num.Quo(num, newF(workPrec).Add(one, &a.v))
	num.Sqrt(num)
	r := atanBig(num, workPrec)
	b.setBig(r.SetMantExp(r, 1))
}

// Atan sets b = atan(a).
func (Algebra) Atan(a, b *Float128) {
	switch {
	case a.nan:
		b.setNaN()
	case a.v.IsInf():
		b.setHalfPi(a.v.Signbit())
	default:
		b.setBig(atanBig(&a.v, workPrec))
	}
}

// Asec sets b = asec(a).
func (alg Algebra) Asec(a, b *Float128) { reciprocal(a, b); alg.Acos(b, b) }

// Acsc sets b = acsc(a).
func (alg Algebra) Acsc(a, b *Float128) { reciprocal(a, b); alg.Asin(b, b) }

// Acot sets b = acot(a).
func (alg Algebra) Acot(a, b *Float128) { reciprocal(a, b); alg.Atan(b, b) }

// Atan2 sets c to the angle of (x, y) in (-π, π], following IEEE atan2 for
// zeros and infinities.
func (alg Algebra) Atan2(y, x, c *Float128) {
	switch {
	case y.nan || x.nan:
		c.setNaN()
		return
	case x.v.IsInf() || y.v.IsInf() || x.isZero() || y.isZero():
		// the answer is a multiple of π/4; let float64 pick which
		k := math.Round(math.Atan2(y.unitSign(), x.unitSign()) / (math.Pi / 4))
		if k == 0 {
			c.setZero(y.v.Signbit())
			return
		}
		z := newF(workPrec).Set(pi(workPrec))
		z.Mul(z, big.NewFloat(k/4))
		c.setBig(z)
		return
	}
	q := newF(workPrec).Quo(&y.v, &x.v)
	r := atanBig(q, workPrec)
	if x.v.Sign() < 0 {
		p := pi(workPrec)
		if y.v.Sign() >= 0 {
			r.Add(r, p)
		} else {
			r.Sub(r, p)
		}
	}
	c.setBig(r)
}

// ---------- inverse hyperbolic ----------

// Asinh sets b = asinh(a).
func (Algebra) Asinh(a, b *Float128) {
	if !a.finite() || a.isZero() {
		b.Set(a)
		return
	}
	b.setBig(asinhBig(&a.v, workPrec))
}

// Acosh is NaN below 1.
func (Algebra) Acosh(a, b *Float128) {
	switch {
	case a.nan || a.v.Cmp(big.NewFloat(1)) < 0:
		b.setNaN()
	case a.v.IsInf():
		b.setInf(false)
	default:
		b.setBig(acoshBig(&a.v, workPrec))
	}
}

// Atanh is NaN outside [-1, 1] and ±Inf at ±1.
func (Algebra) Atanh(a, b *Float128) {
	if a.nan {
		b.setNaN()
		return
	}
	switch newF(Precision).Abs(&a.v).Cmp(big.NewFloat(1)) {
	case 1:
		b.setNaN()
	case 0:
		b.setInf(a.v.Signbit())
	default:
		if a.isZero() {
			b.Set(a)
			return
		}
		b.setBig(atanhBig(&a.v, workPrec))
	}
}

// Asech sets b = asech(a).
func (alg Algebra) Asech(a, b *Float128) { reciprocal(a, b); alg.Acosh(b, b) }

// Acsch sets b = acsch(a).
func (alg Algebra) Acsch(a, b *Float128) { reciprocal(a, b); alg.Asinh(b, b) }

// Acoth sets b = acoth(a).
func (alg Algebra) Acoth(a, b *Float128) { reciprocal(a, b); alg.Atanh(b, b) }
