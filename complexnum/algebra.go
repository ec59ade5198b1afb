// SPDX-License-Identifier: MIT

package complexnum

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/internal/hyper"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/quad"
)

// Algebra is the complex operation set over the real algebra it was built
// with. It holds no mutable state and is safe to share.
type Algebra[R any] struct {
	r algebra.Real[R]
	h hyper.Ops[R]
}

// New builds the complex algebra over r. It panics if *R does not implement
// primitive.Scalar.
func New[R any](r algebra.Real[R]) *Algebra[R] {
	primitive.MustBeScalar[R]()
	return &Algebra[R]{r: r, h: hyper.New(r)}
}

var (
	Float32Algebra  = New[float.Float32](float.Float32Algebra)
	Float64Algebra  = New[float.Float64](float.Float64Algebra)
	Float128Algebra = New[quad.Float128](quad.Float128Algebra)
)

var (
	_ algebra.Scalar[Float64, float.Float64]  = Float64Algebra
	_ algebra.Transcendental[Float64]         = Float64Algebra
	_ algebra.Scalar[Float128, quad.Float128] = Float128Algebra
	_ algebra.Transcendental[Float128]        = Float128Algebra
	_ algebra.Scalar[Float32, float.Float32]  = Float32Algebra
)

// RealAlgebra returns the algebra of the components.
func (alg *Algebra[R]) RealAlgebra() algebra.Real[R] { return alg.r }

// ---------- construction ----------

// Construct returns a new zero complex number.
func (alg *Algebra[R]) Construct() *Number[R] { return &Number[R]{} }

// ConstructFrom returns a copy of other.
func (alg *Algebra[R]) ConstructFrom(other *Number[R]) *Number[R] {
	n := &Number[R]{}
	alg.Assign(other, n)
	return n
}

// ConstructFromString parses "{re, im}" or a plain real.
func (alg *Algebra[R]) ConstructFromString(s string) (*Number[R], error) {
	n := &Number[R]{}
	if err := primitive.ParseScalar(n, s); err != nil {
		return nil, err
	}
	return n, nil
}

// ConstructParts returns re + im·i.
func (alg *Algebra[R]) ConstructParts(re, im *R) *Number[R] {
	n := &Number[R]{}
	alg.Compose(re, im, n)
	return n
}

// Assign sets to = from.
func (alg *Algebra[R]) Assign(from, to *Number[R]) { alg.h.Copy(from.c[:], to.c[:]) }

// Compose sets a = re + im·i.
func (alg *Algebra[R]) Compose(re, im *R, a *Number[R]) {
	alg.r.Assign(re, &a.c[0])
	alg.r.Assign(im, &a.c[1])
}

// Real sets b to the real part of a.
func (alg *Algebra[R]) Real(a *Number[R], b *R) { alg.r.Assign(&a.c[0], b) }

// Imag sets b to the imaginary part of a.
func (alg *Algebra[R]) Imag(a *Number[R], b *R) { alg.r.Assign(&a.c[1], b) }

// I sets a to the imaginary unit.
func (alg *Algebra[R]) I(a *Number[R]) {
	alg.r.Zero(&a.c[0])
	alg.r.Unity(&a.c[1])
}

// ---------- ring / field ----------

// Zero sets a to zero.
func (alg *Algebra[R]) Zero(a *Number[R]) { alg.h.Zero(a.c[:]) }

// IsZero reports whether a is zero.
func (alg *Algebra[R]) IsZero(a *Number[R]) bool { return alg.h.IsZero(a.c[:]) }

// Unity sets a to one.
func (alg *Algebra[R]) Unity(a *Number[R]) { alg.h.Unity(a.c[:]) }

// IsEqual reports whether a and b are equal; NaN equals nothing.
func (alg *Algebra[R]) IsEqual(a, b *Number[R]) bool { return alg.h.IsEqual(a.c[:], b.c[:]) }

// IsNotEqual is the negation of IsEqual.
func (alg *Algebra[R]) IsNotEqual(a, b *Number[R]) bool { return !alg.IsEqual(a, b) }

// Add sets c = a + b.
func (alg *Algebra[R]) Add(a, b, c *Number[R]) { alg.h.Add(a.c[:], b.c[:], c.c[:]) }

// Subtract sets c = a − b.
func (alg *Algebra[R]) Subtract(a, b, c *Number[R]) { alg.h.Subtract(a.c[:], b.c[:], c.c[:]) }

// Negate sets b = −a.
func (alg *Algebra[R]) Negate(a, b *Number[R]) { alg.h.Negate(a.c[:], b.c[:]) }

// Multiply sets c = a·b = (ar·br − ai·bi) + (ai·br + ar·bi)i.
func (alg *Algebra[R]) Multiply(a, b, c *Number[R]) {
	r := alg.r
	re, im, t := new(R), new(R), new(R)
	r.Multiply(&a.c[0], &b.c[0], re)
	r.Multiply(&a.c[1], &b.c[1], t)
	r.Subtract(re, t, re)
	r.Multiply(&a.c[1], &b.c[0], im)
	r.Multiply(&a.c[0], &b.c[1], t)
	r.Add(im, t, im)
	alg.Compose(re, im, c)
}

// Divide sets c = a/b through |b|². Dividing by zero gives NaN components.
// Both operands are scaled by the largest magnitude of b first, so finite
// quotients survive when |b|² alone would overflow or underflow.
func (alg *Algebra[R]) Divide(a, b, c *Number[R]) {
	r := alg.r
	an, bn := alg.Construct(), alg.Construct()
	m, ok := alg.h.Unit(b.c[:], bn.c[:])
	if ok {
		r.Divide(&a.c[0], m, &an.c[0])
		r.Divide(&a.c[1], m, &an.c[1])
	} else {
		alg.Assign(a, an)
	}
	a, b = an, bn
	d, re, im, t := new(R), new(R), new(R), new(R)
	alg.h.NormSquared(b.c[:], d)
	r.Multiply(&a.c[0], &b.c[0], re)
	r.Multiply(&a.c[1], &b.c[1], t)
	r.Add(re, t, re)
	r.Multiply(&a.c[1], &b.c[0], im)
	r.Multiply(&a.c[0], &b.c[1], t)
	r.Subtract(im, t, im)
	r.Divide(re, d, re)
	r.Divide(im, d, im)
	alg.Compose(re, im, c)
}

// Invert sets b = 1/a.
func (alg *Algebra[R]) Invert(a, b *Number[R]) {
	one := alg.Construct()
	alg.Unity(one)
	alg.Divide(one, a, b)
}

// Power sets b = a^n through the polar form |a|^n·(cos nθ + i·sin nθ).
// a^0 is NaN when a is zero; 0^n is zero for n > 0 and NaN for n < 0.
func (alg *Algebra[R]) Power(n int, a, b *Number[R]) {
	r := alg.r
	switch {
	case alg.IsNaN(a):
		alg.NaN(b)
		return
	case alg.IsZero(a):
		if n > 0 {
			alg.Zero(b)
		} else {
			alg.NaN(b)
		}
		return
	case n == 0:
		alg.Unity(b)
		return
	case n == 1:
		alg.Assign(a, b)
		return
	}
	rho, theta := new(R), new(R)
	alg.Norm(a, rho)
	alg.Argument(a, theta)
	r.Power(n, rho, rho)
	r.ScaleByDouble(float64(n), theta, theta)
	s, c := new(R), new(R)
	r.SinAndCos(theta, s, c)
	r.Multiply(rho, c, c)
	r.Multiply(rho, s, s)
	alg.Compose(c, s, b)
}

// ---------- magnitude ----------

// Norm is |a|, computed without overflow for large components.
func (alg *Algebra[R]) Norm(a *Number[R], b *R) { alg.h.Norm(a.c[:], b) }

// Argument sets b to the angle of a in (−π, π]. A zero real part gives ±π/2
// by the sign of the imaginary part; zero and NaN give NaN.
func (alg *Algebra[R]) Argument(a *Number[R], b *R) {
	r := alg.r
	switch {
	case alg.IsNaN(a) || alg.IsZero(a):
		r.NaN(b)
	case r.IsZero(&a.c[0]):
		r.PI(b)
		r.ScaleByOneHalf(1, b, b)
		if r.Signum(&a.c[1]) < 0 {
			r.Negate(b, b)
		}
	default:
		r.Atan2(&a.c[1], &a.c[0], b)
		alg.normalizeAngle(b)
	}
}

// normalizeAngle brings b into (−π, π] by whole turns.
func (alg *Algebra[R]) normalizeAngle(b *R) {
	r := alg.r
	if r.IsNaN(b) || r.IsInfinite(b) {
		return
	}
	pi, negPi, turn := new(R), new(R), new(R)
	r.PI(pi)
	r.Negate(pi, negPi)
	r.ScaleByTwo(1, pi, turn)
	for r.Compare(b, negPi) <= 0 {
		r.Add(b, turn, b)
	}
	for r.Compare(b, pi) > 0 {
		r.Subtract(b, turn, b)
	}
}

// Conjugate sets b to the conjugate of a.
func (alg *Algebra[R]) Conjugate(a, b *Number[R]) { alg.h.Conjugate(a.c[:], b.c[:]) }

// ---------- special values ----------

// IsNaN reports whether any component of a is NaN.
func (alg *Algebra[R]) IsNaN(a *Number[R]) bool { return alg.h.IsNaN(a.c[:]) }

// NaN sets every component of a to NaN.
func (alg *Algebra[R]) NaN(a *Number[R]) { alg.h.NaN(a.c[:]) }

// IsInfinite reports whether a is infinite and not NaN.
func (alg *Algebra[R]) IsInfinite(a *Number[R]) bool { return alg.h.IsInfinite(a.c[:]) }

// Infinite sets a to +Inf.
func (alg *Algebra[R]) Infinite(a *Number[R]) { alg.h.Infinite(a.c[:]) }

// ---------- rounding, scaling, tolerance ----------

// Round sets b to a rounded to a multiple of delta under mode.
func (alg *Algebra[R]) Round(mode algebra.RoundingMode, delta *R, a, b *Number[R]) {
	alg.h.Round(mode, delta, a.c[:], b.c[:])
}

// ScaleByDouble sets b = f·a.
func (alg *Algebra[R]) ScaleByDouble(f float64, a, b *Number[R]) {
	alg.h.ScaleByDouble(f, a.c[:], b.c[:])
}

// ScaleByRational sets b = f·a.
func (alg *Algebra[R]) ScaleByRational(f *big.Rat, a, b *Number[R]) {
	alg.h.ScaleByRational(f, a.c[:], b.c[:])
}

// ScaleByHighPrec sets b = f·a.
func (alg *Algebra[R]) ScaleByHighPrec(f *big.Float, a, b *Number[R]) {
	alg.h.ScaleByHighPrec(f, a.c[:], b.c[:])
}

// ScaleByTwo sets b = a·2^n.
func (alg *Algebra[R]) ScaleByTwo(n int, a, b *Number[R]) { alg.h.ScaleByTwo(n, a.c[:], b.c[:]) }

// ScaleByOneHalf sets b = a·2^−n.
func (alg *Algebra[R]) ScaleByOneHalf(n int, a, b *Number[R]) { alg.h.ScaleByOneHalf(n, a.c[:], b.c[:]) }

// ScaleComponents multiplies every real component of a by f into b.
func (alg *Algebra[R]) ScaleComponents(f *R, a, b *Number[R]) {
	alg.h.ScaleComponents(f, a.c[:], b.c[:])
}

// Within compares the parts separately against tol.
func (alg *Algebra[R]) Within(tol *R, a, b *Number[R]) bool { return alg.h.Within(tol, a.c[:], b.c[:]) }

// Random draws both parts uniformly from [0, 1).
func (alg *Algebra[R]) Random(rng *rand.Rand, a *Number[R]) { alg.h.Random(rng, a.c[:]) }
