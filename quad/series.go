// SPDX-License-Identifier: MIT

package quad

import (
	"math/big"
	"sync"
)

const (
	guardBits = 64
	workPrec  = Precision + guardBits
	maxTerms  = 4096

	// constPrec is the precision constants are cached at.
	constPrec = 256
)

// series tracks convergence of a power series summed at prec bits.
type series struct {
	name string
	prec uint
	n    int
}

// done reports whether term no longer changes sum at the working precision.
func (s *series) done(sum, term *big.Float) bool {
	s.n++
	if term.Sign() == 0 {
		return true
	}
	if sum.Sign() != 0 && term.MantExp(nil) < sum.MantExp(nil)-int(s.prec)-2 {
		return true
	}
	if s.n >= maxTerms {
		tracer().Infof("quad: %s series stopped after %d terms", s.name, s.n)
		return true
	}
	return false
}

var (
	cachedPi  = sync.OnceValue(func() *big.Float { return machinPi(constPrec) })
	cachedLn2 = sync.OnceValue(func() *big.Float { return lnTwo(constPrec) })
)

// pi returns π to at least prec bits. The result must not be modified.
func pi(prec uint) *big.Float {
	if prec <= constPrec {
		return cachedPi()
	}
	return machinPi(prec)
}

// ln2 returns log(2) to at least prec bits. The result must not be modified.
func ln2(prec uint) *big.Float {
	if prec <= constPrec {
		return cachedLn2()
	}
	return lnTwo(prec)
}

func lnTwo(prec uint) *big.Float {
	third := newF(prec).SetInt64(1)
	third.Quo(third, newF(prec).SetInt64(3))
	r := atanhSeries(third, prec, "ln2")
	return r.SetMantExp(r, 1)
}

// machinPi evaluates π = 16·atan(1/5) - 4·atan(1/239).
func machinPi(prec uint) *big.Float {
	wp := prec + 16
	a := atanInverse(5, wp)
	b := atanInverse(239, wp)
	a.SetMantExp(a, 4)
	b.SetMantExp(b, 2)
	return a.Sub(a, b)
}

// atanInverse is atan(1/n) by its alternating series.
func atanInverse(n int64, prec uint) *big.Float {
	x := newF(prec).SetInt64(1)
	x.Quo(x, newF(prec).SetInt64(n))
	x2 := newF(prec).Mul(x, x)
	sum := newF(prec).Set(x)
	pow := newF(prec).Set(x)
	t := newF(prec)
	s := series{name: "atan(1/n)", prec: prec}
	for k := int64(1); ; k++ {
		pow.Mul(pow, x2)
		t.Quo(pow, newF(prec).SetInt64(2*k+1))
		if k%2 == 1 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		if s.done(sum, t) {
			return sum
		}
	}
}

// atanhSeries is y + y³/3 + y⁵/5 + ... for |y| < 1.
func atanhSeries(y *big.Float, prec uint, name string) *big.Float {
	y2 := newF(prec).Mul(y, y)
	sum := newF(prec).Set(y)
	pow := newF(prec).Set(y)
	t := newF(prec)
	s := series{name: name, prec: prec}
	for k := int64(1); ; k++ {
		pow.Mul(pow, y2)
		t.Quo(pow, newF(prec).SetInt64(2*k+1))
		sum.Add(sum, t)
		if s.done(sum, t) {
			return sum
		}
	}
}

// expBig is e^x for finite x whose result fits the exponent range of big.Float.
func expBig(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 {
		return newF(prec).SetInt64(1)
	}
	k := 0
	if e := x.MantExp(nil); e > -1 {
		k = e + 1
	}
	wp := prec + guardBits + uint(k)
	r := newF(wp).Set(x)
	r.SetMantExp(r, -k) // |r| < 1/2
	sum := newF(wp).SetInt64(1)
	term := newF(wp).SetInt64(1)
	s := series{name: "exp", prec: wp}
	for i := int64(1); ; i++ {
		term.Mul(term, r)
		term.Quo(term, newF(wp).SetInt64(i))
		sum.Add(sum, term)
		if s.done(sum, term) {
			break
		}
	}
	for ; k > 0; k-- {
		sum.Mul(sum, sum)
	}
	return sum
}

// logBig is log(x) for finite x > 0.
func logBig(x *big.Float, prec uint) *big.Float {
	wp := prec + guardBits
	m := newF(wp)
	e := x.MantExp(m) // m in [0.5, 1)
	if m.Cmp(big.NewFloat(0.7071067811865476)) < 0 {
		m.SetMantExp(m, 1)
		e--
	}
	one := newF(wp).SetInt64(1)
	num := newF(wp).Sub(m, one)
	den := newF(wp).Add(m, one)
	y := num.Quo(num, den)
	r := atanhSeries(y, wp, "log")
	r.SetMantExp(r, 1)
	if e != 0 {
		l := newF(wp).Mul(ln2(wp), newF(wp).SetInt64(int64(e)))
		r.Add(r, l)
	}
	return r
}

// reduceTwoPi maps finite x into [-π, π].
func reduceTwoPi(x *big.Float, prec uint) *big.Float {
	wp := prec + guardBits
	e := x.MantExp(nil)
	if e <= 1 { // |x| < 2 < π
		return newF(wp).Set(x)
	}
	wp += uint(e)
	twoPi := newF(wp).Set(pi(wp))
	twoPi.SetMantExp(twoPi, 1)
	n := newF(wp).Quo(x, twoPi)
	n = roundNearest(n)
	r := newF(wp).Mul(n, twoPi)
	return r.Sub(newF(wp).Set(x), r)
}

// roundNearest rounds to the nearest integer, ties away from zero.
func roundNearest(x *big.Float) *big.Float {
	half := newF(x.Prec()).SetFloat64(0.5)
	f := newF(x.Prec()).Add(x, half)
	if x.Signbit() {
		f.Sub(x, half)
	}
	i, _ := f.Int(nil)
	return newF(x.Prec()).SetInt(i)
}

// sinCosBig returns sin(x) and cos(x) for finite x.
func sinCosBig(x *big.Float, prec uint) (*big.Float, *big.Float) {
	r := reduceTwoPi(x, prec)
	wp := r.Prec()
	r2 := newF(wp).Mul(r, r)
	r2.Neg(r2)

	sin := newF(wp).Set(r)
	term := newF(wp).Set(r)
	s := series{name: "sin", prec: wp}
	for i := int64(1); ; i++ {
		term.Mul(term, r2)
		term.Quo(term, newF(wp).SetInt64((2*i)*(2*i+1)))
		sin.Add(sin, term)
		if s.done(sin, term) {
			break
		}
	}

	cos := newF(wp).SetInt64(1)
	term.SetInt64(1)
	s = series{name: "cos", prec: wp}
	for i := int64(1); ; i++ {
		term.Mul(term, r2)
		term.Quo(term, newF(wp).SetInt64((2*i-1)*(2*i)))
		cos.Add(cos, term)
		if s.done(cos, term) {
			break
		}
	}
	return sin, cos
}

// atanBig is atan(x) for finite x.
func atanBig(x *big.Float, prec uint) *big.Float {
	wp := prec + guardBits
	t := newF(wp).Abs(x)
	neg := x.Signbit()
	invert := t.Cmp(big.NewFloat(1)) > 0
	if invert {
		t.Quo(newF(wp).SetInt64(1), t)
	}
	// halve the angle until the series converges quickly
	k := 0
	one := newF(wp).SetInt64(1)
	for t.Cmp(big.NewFloat(0.125)) > 0 {
		d := newF(wp).Mul(t, t)
		d.Add(d, one)
		d.Sqrt(d)
		d.Add(d, one)
		t.Quo(t, d)
		k++
	}
	r := newF(wp)
	if t.Sign() != 0 {
		t2 := newF(wp).Mul(t, t)
		r.Set(t)
		pow := newF(wp).Set(t)
		term := newF(wp)
		s := series{name: "atan", prec: wp}
		for n := int64(1); ; n++ {
			pow.Mul(pow, t2)
			term.Quo(pow, newF(wp).SetInt64(2*n+1))
			if n%2 == 1 {
				r.Sub(r, term)
			} else {
				r.Add(r, term)
			}
			if s.done(r, term) {
				break
			}
		}
	}
	r.SetMantExp(r, k)
	if invert {
		halfPi := newF(wp).Set(pi(wp))
		halfPi.SetMantExp(halfPi, -1)
		r.Sub(halfPi, r)
	}
	if neg {
		r.Neg(r)
	}
	return r
}

// sinhBig is sinh(x) for finite x with a result inside big.Float's range.
func sinhBig(x *big.Float, prec uint) *big.Float {
	wp := prec + guardBits
	if x.MantExp(nil) <= 0 { // |x| < 1: series avoids cancellation
		x2 := newF(wp).Mul(x, x)
		sum := newF(wp).Set(x)
		term := newF(wp).Set(x)
		s := series{name: "sinh", prec: wp}
		for i := int64(1); ; i++ {
			term.Mul(term, x2)
			term.Quo(term, newF(wp).SetInt64((2*i)*(2*i+1)))
			sum.Add(sum, term)
			if s.done(sum, term) {
				return sum
			}
		}
	}
	e := expBig(x, wp)
	inv := newF(wp).Quo(newF(wp).SetInt64(1), e)
	e.Sub(e, inv)
	return e.SetMantExp(e, -1)
}

// coshBig is cosh(x) for finite x with a result inside big.Float's range.
func coshBig(x *big.Float, prec uint) *big.Float {
	wp := prec + guardBits
	e := expBig(x, wp)
	inv := newF(wp).Quo(newF(wp).SetInt64(1), e)
	e.Add(e, inv)
	return e.SetMantExp(e, -1)
}

// tiny reports |x| < 2^-prec, where odd functions with unit slope return x.
func tiny(x *big.Float, prec uint) bool {
	return x.Sign() != 0 && x.MantExp(nil) < -int(prec)
}

// boosted is prec plus the bits lost to cancellation for tiny |x|.
func boosted(x *big.Float, prec uint) uint {
	wp := prec + guardBits
	if x.Sign() != 0 {
		if e := x.MantExp(nil); e < 0 {
			wp += uint(-e)
		}
	}
	return wp
}

// asinhBig is sign(x)·log(|x| + √(x²+1)).
func asinhBig(x *big.Float, prec uint) *big.Float {
	if tiny(x, prec) {
		return newF(prec + guardBits).Set(x)
	}
	wp := boosted(x, prec)
	ax := newF(wp).Abs(x)
	r := newF(wp).Mul(ax, ax)
	r.Add(r, newF(wp).SetInt64(1))
	r.Sqrt(r)
	r.Add(r, ax)
	r = logBig(r, wp)
	if x.Signbit() {
		r.Neg(r)
	}
	return r
}

// acoshBig is log(x + √(x²-1)) for x >= 1.
func acoshBig(x *big.Float, prec uint) *big.Float {
	wp := prec + guardBits
	r := newF(wp).Mul(x, x)
	r.Sub(r, newF(wp).SetInt64(1))
	r.Sqrt(r)
	r.Add(r, x)
	return logBig(r, wp)
}

// atanhBig is ½·log((1+x)/(1-x)) for |x| < 1.
func atanhBig(x *big.Float, prec uint) *big.Float {
	if tiny(x, prec) {
		return newF(prec + guardBits).Set(x)
	}
	wp := boosted(x, prec)
	one := newF(wp).SetInt64(1)
	num := newF(wp).Add(one, x)
	den := newF(wp).Sub(one, x)
	r := logBig(num.Quo(num, den), wp)
	return r.SetMantExp(r, -1)
}
