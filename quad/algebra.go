// SPDX-License-Identifier: MIT

package quad

import (
	"math"
	"math/big"
	"math/rand"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/primitive"
)

// Algebra is the operation set over Float128. It holds no state.
type Algebra struct{}

// Float128Algebra is the shared instance.
var Float128Algebra = Algebra{}

var _ algebra.Real[Float128] = Float128Algebra

// ---------- construction ----------

// Construct returns a new zero real.
func (Algebra) Construct() *Float128 { return &Float128{} }

// ConstructFrom returns a copy of other.
func (Algebra) ConstructFrom(other *Float128) *Float128 { return other.Duplicate() }

// ConstructFromString parses a rank-0 literal at 128-bit precision.
func (Algebra) ConstructFromString(s string) (*Float128, error) {
	m := &Float128{}
	if err := primitive.ParseScalar(m, s); err != nil {
		return nil, err
	}
	return m, nil
}

// Assign sets to = from.
func (Algebra) Assign(from, to *Float128) { to.Set(from) }

// ---------- ring / field ----------

// Zero sets a to zero.
func (Algebra) Zero(a *Float128) { a.setZero(false) }

// IsZero reports whether a is zero.
func (Algebra) IsZero(a *Float128) bool { return a.isZero() }

// Unity sets a to one.
func (Algebra) Unity(a *Float128) { a.setInt(1) }

// IsEqual is IEEE equality: NaN equals nothing and -0 equals +0.
func (Algebra) IsEqual(a, b *Float128) bool {
	return !a.nan && !b.nan && a.v.Cmp(&b.v) == 0
}

// IsNotEqual is the negation of IsEqual.
func (alg Algebra) IsNotEqual(a, b *Float128) bool { return !alg.IsEqual(a, b) }

// Add sets c = a + b.
func (Algebra) Add(a, b, c *Float128) { addSub(a, b, c, false) }

// Subtract sets c = a − b.
func (Algebra) Subtract(a, b, c *Float128) { addSub(a, b, c, true) }

// Multiply sets c = a·b.
func (Algebra) Multiply(a, b, c *Float128) { mul(a, b, c) }

// Divide sets c = a/b.
func (Algebra) Divide(a, b, c *Float128) { quo(a, b, c) }

// Negate sets b = −a.
func (Algebra) Negate(a, b *Float128) {
	b.Set(a)
	if !b.nan {
		b.v.Neg(&b.v)
	}
}

// Invert sets b = 1/a.
func (Algebra) Invert(a, b *Float128) {
	one := &Float128{}
	one.setInt(1)
	quo(one, a, b)
}

// Power sets b = a^n by binary powering at extended precision.
// a^0 is 1 for every a, NaN included, as in IEEE pow.
func (alg Algebra) Power(n int, a, b *Float128) {
	if n == 0 {
		b.setInt(1)
		return
	}
	if a.nan {
		b.setNaN()
		return
	}
	if a.v.IsInf() || a.isZero() {
		alg.powSpecial(a, float64(n), b)
		return
	}
	neg := n < 0
	if neg {
		n = -n
	}
	wp := uint(workPrec + 2*bitsOf(n))
	acc := newF(wp).SetInt64(1)
	base := newF(wp).Set(&a.v)
	for k := n; k > 0; k >>= 1 {
		if k&1 == 1 {
			acc.Mul(acc, base)
		}
		if k > 1 {
			base.Mul(base, base)
		}
	}
	if neg {
		acc.Quo(newF(wp).SetInt64(1), acc)
	}
	b.setBig(acc)
}

func bitsOf(n int) int {
	c := 0
	for ; n > 0; n >>= 1 {
		c++
	}
	return c
}

// Norm is the absolute value.
func (alg Algebra) Norm(a, b *Float128) { alg.Abs(a, b) }

// Conjugate of a real is itself.
func (Algebra) Conjugate(a, b *Float128) { b.Set(a) }

// ---------- special values ----------

// IsNaN reports whether any component of a is NaN.
func (Algebra) IsNaN(a *Float128) bool { return a.nan }

// NaN sets every component of a to NaN.
func (Algebra) NaN(a *Float128) { a.setNaN() }

// IsInfinite reports whether a is infinite and not NaN.
func (Algebra) IsInfinite(a *Float128) bool { return a.isInf() }

// Infinite sets a to +Inf.
func (Algebra) Infinite(a *Float128) { a.setInf(false) }

// ---------- ordering ----------

// Compare orders a and b; NaN sorts after every number and equals NaN.
func (Algebra) Compare(a, b *Float128) int {
	switch {
	case a.nan && b.nan:
		return 0
	case a.nan:
		return 1
	case b.nan:
		return -1
	}
	return a.v.Cmp(&b.v)
}

// Signum is -1, 0 or +1; NaN reports 0.
func (Algebra) Signum(a *Float128) int {
	if a.nan {
		return 0
	}
	return a.v.Sign()
}

// Abs sets b = |a|.
func (Algebra) Abs(a, b *Float128) {
	b.Set(a)
	if !b.nan {
		b.v.Abs(&b.v)
	}
}

// Max propagates NaN.
func (alg Algebra) Max(a, b, c *Float128) {
	switch {
	case a.nan || b.nan:
		c.setNaN()
	case a.v.Cmp(&b.v) >= 0:
		c.Set(a)
	default:
		c.Set(b)
	}
}

// Min propagates NaN.
func (alg Algebra) Min(a, b, c *Float128) {
	switch {
	case a.nan || b.nan:
		c.setNaN()
	case a.v.Cmp(&b.v) <= 0:
		c.Set(a)
	default:
		c.Set(b)
	}
}

// ---------- rounding ----------

// Round snaps a onto the grid delta·k. A non-positive or non-finite delta
// copies a unchanged, as do NaN and infinite inputs.
func (Algebra) Round(mode algebra.RoundingMode, delta *Float128, a, b *Float128) {
	if a.nan || a.v.IsInf() || delta.nan || delta.v.IsInf() || delta.v.Sign() <= 0 {
		b.Set(a)
		return
	}
	q := newF(workPrec).Quo(&a.v, &delta.v)
	algebra.RoundBig(mode, q, q)
	q.Mul(q, &delta.v)
	neg := a.v.Signbit()
	b.setBig(q)
	if b.isZero() {
		b.setZero(neg)
	}
}

// ---------- scaling ----------

// ScaleByDouble sets b = factor·a.
func (Algebra) ScaleByDouble(factor float64, a, b *Float128) {
	if math.IsNaN(factor) {
		b.setNaN()
		return
	}
	mulBig(a, new(big.Float).SetFloat64(factor), b)
}

// ScaleByRational sets b = factor·a.
func (Algebra) ScaleByRational(factor *big.Rat, a, b *Float128) {
	mulBig(a, newF(workPrec).SetRat(factor), b)
}

// ScaleByHighPrec sets b = factor·a.
func (Algebra) ScaleByHighPrec(factor *big.Float, a, b *Float128) {
	mulBig(a, factor, b)
}

// ScaleByTwo sets b = a·2^n, exact up to overflow or subnormal rounding.
func (Algebra) ScaleByTwo(n int, a, b *Float128) {
	b.Set(a)
	if b.nan || b.v.IsInf() || isZero(&b.v) {
		return
	}
	z := newF(Precision).Set(&b.v)
	// keep n within big.Float's exponent range; anything this far out
	// saturates in clamp anyway
	const lim = 1 << 20
	if n > lim {
		n = lim
	} else if n < -lim {
		n = -lim
	}
	z.SetMantExp(z, n)
	b.setBig(z)
}

// ScaleByOneHalf sets b = a·2^−n.
func (alg Algebra) ScaleByOneHalf(n int, a, b *Float128) { alg.ScaleByTwo(-n, a, b) }

// ScaleComponents multiplies every real component of a by factor into b.
func (Algebra) ScaleComponents(factor *Float128, a, b *Float128) { mul(a, factor, b) }

// ---------- tolerance / random ----------

// Within reports |a-b| <= tol. Two NaNs are within; equal infinities are within.
func (Algebra) Within(tol *Float128, a, b *Float128) bool {
	if a.nan || b.nan {
		return a.nan && b.nan
	}
	if a.v.Cmp(&b.v) == 0 {
		return true
	}
	if a.v.IsInf() || b.v.IsInf() || tol.nan {
		return false
	}
	d := newF(workPrec).Sub(&a.v, &b.v)
	d.Abs(d)
	return d.Cmp(&tol.v) <= 0
}

// Random draws 113 uniform bits in [0, 1).
func (Algebra) Random(rng *rand.Rand, a *Float128) {
	hi := new(big.Int).SetUint64(rng.Uint64() >> (128 - Precision)) // 49 bits
	hi.Lsh(hi, 64)
	hi.Or(hi, new(big.Int).SetUint64(rng.Uint64()))
	z := newF(Precision).SetInt(hi)
	z.SetMantExp(z, -Precision)
	a.setBig(z)
}

// ---------- constants ----------

// PI sets a to π.
func (Algebra) PI(a *Float128) { a.setBig(pi(Precision)) }

// E sets a to Euler's number.
func (Algebra) E(a *Float128) { a.setBig(expBig(newF(workPrec).SetInt64(1), workPrec)) }
