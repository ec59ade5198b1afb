// SPDX-License-Identifier: MIT

package octonion

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/internal/hyper"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/quad"
)

// Algebra is the octonion operation set over a real algebra.
type Algebra[R any] struct {
	r  algebra.Real[R]
	h  hyper.Ops[R]
	cx *complexnum.Algebra[R]
}

// New builds the octonion algebra over r.
func New[R any](r algebra.Real[R]) *Algebra[R] {
	primitive.MustBeScalar[R]()
	return &Algebra[R]{r: r, h: hyper.New(r), cx: complexnum.New(r)}
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
)

// RealAlgebra returns the component algebra.
func (alg *Algebra[R]) RealAlgebra() algebra.Real[R] { return alg.r }

// Construct returns a new zero octonion.
func (alg *Algebra[R]) Construct() *Number[R] { return &Number[R]{} }

// ConstructFrom returns a copy of other.
func (alg *Algebra[R]) ConstructFrom(other *Number[R]) *Number[R] {
	n := &Number[R]{}
	alg.Assign(other, n)
	return n
}

// ConstructFromString parses up to eight braced coefficients.
func (alg *Algebra[R]) ConstructFromString(s string) (*Number[R], error) {
	n := &Number[R]{}
	if err := primitive.ParseScalar(n, s); err != nil {
		return nil, err
	}
	return n, nil
}

// ConstructParts returns Σ parts[k]·e_k. Missing coefficients are zero and
// more than eight panics.
func (alg *Algebra[R]) ConstructParts(parts ...*R) *Number[R] {
	if len(parts) > 8 {
		panic("octonion: too many parts")
	}
	n := &Number[R]{}
	alg.Zero(n)
	for k, p := range parts {
		alg.r.Assign(p, &n.c[k])
	}
	return n
}

// Assign sets to = from.
func (alg *Algebra[R]) Assign(from, to *Number[R]) { alg.h.Copy(from.c[:], to.c[:]) }

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

// Multiply is the Cayley–Dickson product. It neither commutes nor
// associates, but it is alternative: (aa)b = a(ab).
func (alg *Algebra[R]) Multiply(a, b, c *Number[R]) {
	alg.h.Multiply(hyper.Octonions, a.c[:], b.c[:], c.c[:])
}

// Invert sets b = conj(a)/|a|². The zero octonion gives NaN.
func (alg *Algebra[R]) Invert(a, b *Number[R]) { alg.h.Inverse(a.c[:], b.c[:]) }

// Divide sets c = a·b⁻¹.
func (alg *Algebra[R]) Divide(a, b, c *Number[R]) {
	inv := alg.Construct()
	alg.Invert(b, inv)
	alg.Multiply(a, inv, c)
}

// Power sets b = a^n in polar form. Zero to a non-positive power is NaN.
func (alg *Algebra[R]) Power(n int, a, b *Number[R]) {
	alg.lift(a, b, func(z, w *complexnum.Number[R]) { alg.cx.Power(n, z, w) })
}

// Norm sets b to the Euclidean length of a.
func (alg *Algebra[R]) Norm(a *Number[R], b *R) { alg.h.Norm(a.c[:], b) }

// Conjugate sets b to the conjugate of a.
func (alg *Algebra[R]) Conjugate(a, b *Number[R]) { alg.h.Conjugate(a.c[:], b.c[:]) }

// IsNaN reports whether any component of a is NaN.
func (alg *Algebra[R]) IsNaN(a *Number[R]) bool { return alg.h.IsNaN(a.c[:]) }

// NaN sets every component of a to NaN.
func (alg *Algebra[R]) NaN(a *Number[R]) { alg.h.NaN(a.c[:]) }

// IsInfinite reports whether a is infinite and not NaN.
func (alg *Algebra[R]) IsInfinite(a *Number[R]) bool { return alg.h.IsInfinite(a.c[:]) }

// Infinite sets a to +Inf.
func (alg *Algebra[R]) Infinite(a *Number[R]) { alg.h.Infinite(a.c[:]) }

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

// Within reports whether a and b differ by at most tol in every component.
func (alg *Algebra[R]) Within(tol *R, a, b *Number[R]) bool { return alg.h.Within(tol, a.c[:], b.c[:]) }

// Random fills a with uniform values drawn from rng.
func (alg *Algebra[R]) Random(rng *rand.Rand, a *Number[R]) { alg.h.Random(rng, a.c[:]) }
