// SPDX-License-Identifier: MIT

package float

import (
	"math"
	"math/big"
	"math/rand"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/primitive"
)

// Algebra is the operation set over Member[F]. It holds no state.
type Algebra[F constraints.Float] struct{}

var (
	// Float32Algebra operates on Float32.
	Float32Algebra = Algebra[float32]{}
	// Float64Algebra operates on Float64.
	Float64Algebra = Algebra[float64]{}
)

var (
	_ algebra.Real[Float32] = Float32Algebra
	_ algebra.Real[Float64] = Float64Algebra
)

// ---------- construction ----------

// Construct returns a new zero.
func (Algebra[F]) Construct() *Member[F] { return &Member[F]{} }

// ConstructFrom returns a copy of other.
func (Algebra[F]) ConstructFrom(other *Member[F]) *Member[F] { return &Member[F]{v: other.v} }

// ConstructFromString parses a rank-0 literal.
func (Algebra[F]) ConstructFromString(s string) (*Member[F], error) {
	m := &Member[F]{}
	if err := primitive.ParseScalar(m, s); err != nil {
		return nil, err
	}
	return m, nil
}

// Assign sets to = from.
func (Algebra[F]) Assign(from, to *Member[F]) { to.v = from.v }

// ---------- ring / field ----------

// Zero sets a to zero.
func (Algebra[F]) Zero(a *Member[F]) { a.v = 0 }

// IsZero reports whether a is zero.
func (Algebra[F]) IsZero(a *Member[F]) bool { return a.v == 0 }

// Unity sets a to one.
func (Algebra[F]) Unity(a *Member[F]) { a.v = 1 }

// IsEqual reports whether a and b are equal; NaN equals nothing.
func (Algebra[F]) IsEqual(a, b *Member[F]) bool { return a.v == b.v }

// IsNotEqual is the negation of IsEqual.
func (Algebra[F]) IsNotEqual(a, b *Member[F]) bool { return a.v != b.v }

// Add sets c = a + b.
func (Algebra[F]) Add(a, b, c *Member[F]) { c.v = a.v + b.v }

// Subtract sets c = a − b.
func (Algebra[F]) Subtract(a, b, c *Member[F]) { c.v = a.v - b.v }

// Negate sets b = −a.
func (Algebra[F]) Negate(a, b *Member[F]) { b.v = -a.v }

// Multiply sets c = a·b.
func (Algebra[F]) Multiply(a, b, c *Member[F]) { c.v = a.v * b.v }

// Invert sets b = 1/a.
func (Algebra[F]) Invert(a, b *Member[F]) { b.v = 1 / a.v }

// Divide sets c = a/b.
func (Algebra[F]) Divide(a, b, c *Member[F]) { c.v = a.v / b.v }

// Power sets b = a^n.
func (Algebra[F]) Power(n int, a, b *Member[F]) {
	b.v = F(math.Pow(float64(a.v), float64(n)))
}

// Norm is the absolute value.
func (Algebra[F]) Norm(a, b *Member[F]) { b.v = F(math.Abs(float64(a.v))) }

// Conjugate of a real is itself.
func (Algebra[F]) Conjugate(a, b *Member[F]) { b.v = a.v }

// ---------- special values ----------

// IsNaN reports whether any component of a is NaN.
func (Algebra[F]) IsNaN(a *Member[F]) bool { return math.IsNaN(float64(a.v)) }

// NaN sets every component of a to NaN.
func (Algebra[F]) NaN(a *Member[F]) { a.v = F(math.NaN()) }

// IsInfinite reports whether a is infinite and not NaN.
func (Algebra[F]) IsInfinite(a *Member[F]) bool { return math.IsInf(float64(a.v), 0) }

// Infinite sets a to +Inf.
func (Algebra[F]) Infinite(a *Member[F]) { a.v = F(math.Inf(1)) }

// ---------- ordering ----------

// Compare orders a and b; NaN sorts after every number and equals NaN.
func (Algebra[F]) Compare(a, b *Member[F]) int {
	an, bn := math.IsNaN(float64(a.v)), math.IsNaN(float64(b.v))
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	}
	return 0
}

// Signum is -1, 0 or +1; NaN reports 0.
func (Algebra[F]) Signum(a *Member[F]) int {
	switch {
	case a.v < 0:
		return -1
	case a.v > 0:
		return 1
	}
	return 0
}

// Abs sets b = |a|.
func (Algebra[F]) Abs(a, b *Member[F]) { b.v = F(math.Abs(float64(a.v))) }

// Max sets c to the larger of a and b.
func (Algebra[F]) Max(a, b, c *Member[F]) { c.v = F(math.Max(float64(a.v), float64(b.v))) }

// Min sets c to the smaller of a and b.
func (Algebra[F]) Min(a, b, c *Member[F]) { c.v = F(math.Min(float64(a.v), float64(b.v))) }

// Atan2 is math.Atan2(y, x).
func (Algebra[F]) Atan2(y, x, c *Member[F]) { c.v = F(math.Atan2(float64(y.v), float64(x.v))) }

// ---------- rounding ----------

// Round snaps a to a multiple of delta.
func (Algebra[F]) Round(mode algebra.RoundingMode, delta *Member[F], a, b *Member[F]) {
	b.v = F(algebra.RoundToMultiple(mode, float64(delta.v), float64(a.v)))
}

// ---------- scaling ----------

// ScaleByDouble sets b = a*factor.
func (Algebra[F]) ScaleByDouble(factor float64, a, b *Member[F]) {
	b.v = F(float64(a.v) * factor)
}

// ScaleByRational multiplies by an exact rational, rounding once.
func (Algebra[F]) ScaleByRational(factor *big.Rat, a, b *Member[F]) {
	x := float64(a.v)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		f, _ := factor.Float64()
		b.v = F(x * f)
		return
	}
	p := new(big.Float).SetPrec(256).SetFloat64(x)
	p.Mul(p, new(big.Float).SetPrec(256).SetRat(factor))
	b.setBig(p)
}

// ScaleByHighPrec multiplies by an arbitrary precision factor, rounding once.
func (Algebra[F]) ScaleByHighPrec(factor *big.Float, a, b *Member[F]) {
	x := float64(a.v)
	if math.IsNaN(x) || math.IsInf(x, 0) || factor.IsInf() {
		f, _ := factor.Float64()
		b.v = F(x * f)
		return
	}
	p := new(big.Float).SetPrec(factor.Prec() + 64).SetFloat64(x)
	p.Mul(p, factor)
	b.setBig(p)
}

// ScaleByTwo sets b = a * 2^n exactly, up to overflow.
func (Algebra[F]) ScaleByTwo(n int, a, b *Member[F]) {
	b.v = F(math.Ldexp(float64(a.v), n))
}

// ScaleByOneHalf sets b = a * 2^-n.
func (Algebra[F]) ScaleByOneHalf(n int, a, b *Member[F]) {
	b.v = F(math.Ldexp(float64(a.v), -n))
}

// ScaleComponents is Multiply for a real.
func (Algebra[F]) ScaleComponents(factor *Member[F], a, b *Member[F]) { b.v = a.v * factor.v }

func (m *Member[F]) setBig(p *big.Float) {
	if single[F]() {
		f, _ := p.Float32()
		m.v = F(f)
		return
	}
	f, _ := p.Float64()
	m.v = F(f)
}

// ---------- tolerance / random ----------

// Within reports |a-b| <= tol. Two NaNs are within; equal infinities are within.
func (Algebra[F]) Within(tol *Member[F], a, b *Member[F]) bool {
	x, y := float64(a.v), float64(b.v)
	an, bn := math.IsNaN(x), math.IsNaN(y)
	if an || bn {
		return an && bn
	}
	if x == y {
		return true
	}
	return math.Abs(x-y) <= float64(tol.v)
}

// Random draws uniformly from [0, 1).
func (Algebra[F]) Random(rng *rand.Rand, a *Member[F]) {
	a.v = F(rng.Float64())
	if a.v == 1 { // float32 rounding can reach 1
		a.v = 0
	}
}

// ---------- constants ----------

// PI sets a to π.
func (Algebra[F]) PI(a *Member[F]) { a.v = F(math.Pi) }

// E sets a to Euler's number.
func (Algebra[F]) E(a *Member[F]) { a.v = F(math.E) }
