// SPDX-License-Identifier: MIT

package quad

import "math/big"

// binary128 geometry, in big.Float's exponent convention (x = m·2^exp, 0.5 <= |m| < 1).
const (
	// Precision is the significand width in bits, hidden bit included.
	Precision = 113

	// ByteCount is the encoded size of one value.
	ByteCount = 16

	maxExp          = 16384  // largest finite: (1-2^-113)·2^16384
	minNormalExp    = -16381 // smallest normal: 0.5·2^-16381 = 2^-16382
	minSubnormalExp = -16493 // smallest subnormal: 0.5·2^-16493 = 2^-16494
	subnormalShift  = 16494  // value of the last subnormal bit is 2^-subnormalShift

	exponentBias = 16383
	fractionBits = 112
)

// clamp forces an already 113-bit rounded x into the binary128 range.
func clamp(x *big.Float) {
	if x.IsInf() || x.Sign() == 0 {
		return
	}
	e := x.MantExp(nil)
	switch {
	case e > maxExp:
		x.SetInf(x.Signbit())
	case e >= minNormalExp:
	default:
		p := e + subnormalShift
		switch {
		case p >= 1:
			x.SetPrec(uint(p))
			x.SetPrec(Precision)
		case p == 0:
			// x lies in [2^-16495, 2^-16494): ties go to zero (even)
			mant := new(big.Float)
			x.MantExp(mant)
			neg := x.Signbit()
			if mant.Abs(mant).Cmp(big.NewFloat(0.5)) == 0 {
				setSignedZero(x, neg)
				return
			}
			x.SetMantExp(big.NewFloat(0.5), minSubnormalExp)
			if neg {
				x.Neg(x)
			}
		default:
			setSignedZero(x, x.Signbit())
		}
	}
}

func setSignedZero(x *big.Float, neg bool) {
	x.SetInt64(0)
	if neg {
		x.Neg(x)
	}
}

func isZero(x *big.Float) bool { return x.Sign() == 0 && !x.IsInf() }

// newF returns a zero with the given precision and nearest-even rounding.
func newF(prec uint) *big.Float { return new(big.Float).SetPrec(prec) }

// ---------- IEEE-style arithmetic on members ----------

func (m *Float128) setBig(z *big.Float) {
	m.nan = false
	m.v.SetMode(big.ToNearestEven)
	m.v.SetPrec(Precision)
	m.v.Set(z)
	clamp(&m.v)
}

func (m *Float128) setNaN() {
	m.nan = true
	m.v.SetInt64(0)
}

func (m *Float128) setInf(neg bool) {
	m.nan = false
	m.v.SetPrec(Precision)
	m.v.SetInf(neg)
}

func (m *Float128) setZero(neg bool) {
	m.nan = false
	m.v.SetPrec(Precision)
	setSignedZero(&m.v, neg)
}

func (m *Float128) setInt(n int64) {
	m.nan = false
	m.v.SetPrec(Precision)
	m.v.SetInt64(n)
}

func (m *Float128) isInf() bool  { return !m.nan && m.v.IsInf() }
func (m *Float128) isZero() bool { return !m.nan && isZero(&m.v) }

// addSub sets c = a ± b.
func addSub(a, b, c *Float128, sub bool) {
	if a.nan || b.nan {
		c.setNaN()
		return
	}
	bneg := b.v.Signbit() != sub
	if a.v.IsInf() && b.v.IsInf() && a.v.Signbit() != bneg {
		c.setNaN()
		return
	}
	z := newF(Precision)
	if sub {
		z.Sub(&a.v, &b.v)
	} else {
		z.Add(&a.v, &b.v)
	}
	c.setBig(z)
}

// mul sets c = a*b.
func mul(a, b, c *Float128) {
	if a.nan || b.nan || (a.v.IsInf() && isZero(&b.v)) || (isZero(&a.v) && b.v.IsInf()) {
		c.setNaN()
		return
	}
	c.setBig(newF(Precision).Mul(&a.v, &b.v))
}

// quo sets c = a/b. x/0 is a signed infinity.
func quo(a, b, c *Float128) {
	if a.nan || b.nan || (isZero(&a.v) && isZero(&b.v)) || (a.v.IsInf() && b.v.IsInf()) {
		c.setNaN()
		return
	}
	c.setBig(newF(Precision).Quo(&a.v, &b.v))
}

// mulBig multiplies a finite or infinite a by f, treating f as exact.
func mulBig(a *Float128, f *big.Float, c *Float128) {
	if a.nan || (a.v.IsInf() && isZero(f)) || (isZero(&a.v) && f.IsInf()) {
		c.setNaN()
		return
	}
	c.setBig(newF(Precision).Mul(&a.v, f))
}
