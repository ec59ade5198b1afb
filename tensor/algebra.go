// SPDX-License-Identifier: MIT

package tensor

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/algorithm"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/rep"
)

// Algebra is the Cartesian tensor algebra over scalar algebra s, whose norms
// live in the real algebra r.
type Algebra[U, R any] struct {
	s algebra.Scalar[U, R]
	r algebra.Real[R]
}

// New builds the tensor algebra over s and r.
func New[U, R any](s algebra.Scalar[U, R], r algebra.Real[R]) *Algebra[U, R] {
	primitive.MustBeScalar[U]()
	return &Algebra[U, R]{s: s, r: r}
}

// ScalarAlgebra returns the element algebra.
func (alg *Algebra[U, R]) ScalarAlgebra() algebra.Scalar[U, R] { return alg.s }

// Construct returns a rank-0 tensor holding zero.
func (alg *Algebra[U, R]) Construct() *Member[U] {
	m := &Member[U]{}
	m.Init()
	return m
}

// ConstructShape returns a zero tensor with the given extents.
func (alg *Algebra[U, R]) ConstructShape(dims ...int) (*Member[U], error) {
	for _, d := range dims {
		if d < 0 {
			return nil, tensorErrorf(opConstruct, ErrBadShape)
		}
	}
	m := &Member[U]{}
	m.Init(dims...)
	return m, nil
}

// ConstructFrom returns a copy of other.
func (alg *Algebra[U, R]) ConstructFrom(other *Member[U]) *Member[U] {
	m := &Member[U]{}
	alg.Assign(other, m)
	return m
}

// ConstructFromString parses a literal; its nesting depth is the rank.
func (alg *Algebra[U, R]) ConstructFromString(s string) (*Member[U], error) {
	t, err := rep.Parse(s)
	if err != nil {
		return nil, tensorErrorf(opParse, err)
	}
	m := &Member[U]{}
	if err := m.FromRep(t); err != nil {
		return nil, err
	}
	return m, nil
}

// Assign sets to = from.
func (alg *Algebra[U, R]) Assign(from, to *Member[U]) {
	if from == to {
		return
	}
	src := from.RawData()
	to.Alloc(from.dims...)
	algorithm.Copy(alg.s, src, to.data)
}

// Zero sets a to zero.
func (alg *Algebra[U, R]) Zero(a *Member[U]) { algorithm.Fill(alg.s.Zero, a.RawData()) }

// Unity sets one where every index is equal and zero elsewhere. A rank-0
// tensor becomes one.
func (alg *Algebra[U, R]) Unity(a *Member[U]) {
	data := a.RawData()
	alg.Zero(a)
	n, step := 1, 0
	if len(a.dims) > 0 {
		n = a.dims[0]
	}
	for i, d := range a.dims {
		n = min(n, d)
		step += a.mult[i]
	}
	for k := 0; k < n; k++ {
		alg.s.Unity(&data[k*step])
	}
}

// IsZero reports whether a is zero.
func (alg *Algebra[U, R]) IsZero(a *Member[U]) bool {
	return algorithm.SequenceIsZero(alg.s, a.RawData())
}

// IsEqual reports equal shapes and equal elements.
func (alg *Algebra[U, R]) IsEqual(a, b *Member[U]) bool {
	return algorithm.ShapesMatch(a, b) && algorithm.SequencesEqual(alg.s, a.RawData(), b.RawData())
}

// IsNotEqual is the negation of IsEqual.
func (alg *Algebra[U, R]) IsNotEqual(a, b *Member[U]) bool { return !alg.IsEqual(a, b) }

// elementwise validates shapes and only then writes c.
func (alg *Algebra[U, R]) elementwise(tag string, op func(x, y, z *U), a, b, c *Member[U]) error {
	if err := algorithm.ValidateShapes(a, b); err != nil {
		return tensorErrorf(tag, ErrDimensionMismatch)
	}
	x, y := a.RawData(), b.RawData()
	c.Alloc(a.dims...)
	algorithm.Transform3(op, x, y, c.data)
	return nil
}

// Add sets c = a + b.
func (alg *Algebra[U, R]) Add(a, b, c *Member[U]) error {
	return alg.elementwise(opAdd, alg.s.Add, a, b, c)
}

// Subtract sets c = a − b.
func (alg *Algebra[U, R]) Subtract(a, b, c *Member[U]) error {
	return alg.elementwise(opSubtract, alg.s.Subtract, a, b, c)
}

// MultiplyElements is the element-wise product; Multiply is the tensor product.
func (alg *Algebra[U, R]) MultiplyElements(a, b, c *Member[U]) error {
	return alg.elementwise(opMultiplyEl, alg.s.Multiply, a, b, c)
}

// DivideElements sets c = a/b element by element.
func (alg *Algebra[U, R]) DivideElements(a, b, c *Member[U]) error {
	return alg.elementwise(opDivideElements, alg.s.Divide, a, b, c)
}

func (alg *Algebra[U, R]) unary(op func(x, y *U), a, b *Member[U]) {
	src := a.RawData()
	b.Alloc(a.dims...)
	algorithm.Transform2(op, src, b.data)
}

// Negate sets b = −a.
func (alg *Algebra[U, R]) Negate(a, b *Member[U]) { alg.unary(alg.s.Negate, a, b) }

// Conjugate sets b to the conjugate of a.
func (alg *Algebra[U, R]) Conjugate(a, b *Member[U]) { alg.unary(alg.s.Conjugate, a, b) }

// Scale sets b = factor·a.
func (alg *Algebra[U, R]) Scale(factor *U, a, b *Member[U]) {
	f := alg.s.ConstructFrom(factor)
	alg.unary(func(x, y *U) { alg.s.Multiply(f, x, y) }, a, b)
}

// Norm sets b to the square root of the summed squared element norms.
func (alg *Algebra[U, R]) Norm(a *Member[U], b *R) { algorithm.Norm(alg.s, alg.r, a.RawData(), b) }

// IsNaN reports whether any component of a is NaN.
func (alg *Algebra[U, R]) IsNaN(a *Member[U]) bool { return algorithm.SequenceIsNaN(alg.s, a.RawData()) }

// NaN sets every component of a to NaN.
func (alg *Algebra[U, R]) NaN(a *Member[U]) { algorithm.Fill(alg.s.NaN, a.RawData()) }

// Infinite sets a to +Inf.
func (alg *Algebra[U, R]) Infinite(a *Member[U]) { algorithm.Fill(alg.s.Infinite, a.RawData()) }

// IsInfinite reports whether a is infinite and not NaN.
func (alg *Algebra[U, R]) IsInfinite(a *Member[U]) bool {
	return algorithm.SequenceIsInfinite(alg.s, a.RawData())
}

// Round sets b to a rounded to a multiple of delta under mode.
func (alg *Algebra[U, R]) Round(mode algebra.RoundingMode, delta *R, a, b *Member[U]) {
	alg.unary(func(x, y *U) { alg.s.Round(mode, delta, x, y) }, a, b)
}

// ScaleByDouble sets b = f·a.
func (alg *Algebra[U, R]) ScaleByDouble(f float64, a, b *Member[U]) {
	alg.unary(func(x, y *U) { alg.s.ScaleByDouble(f, x, y) }, a, b)
}

// ScaleByRational sets b = f·a.
func (alg *Algebra[U, R]) ScaleByRational(f *big.Rat, a, b *Member[U]) {
	alg.unary(func(x, y *U) { alg.s.ScaleByRational(f, x, y) }, a, b)
}

// ScaleByHighPrec sets b = f·a.
func (alg *Algebra[U, R]) ScaleByHighPrec(f *big.Float, a, b *Member[U]) {
	alg.unary(func(x, y *U) { alg.s.ScaleByHighPrec(f, x, y) }, a, b)
}

// ScaleByTwo sets b = a·2^n.
func (alg *Algebra[U, R]) ScaleByTwo(n int, a, b *Member[U]) {
	alg.unary(func(x, y *U) { alg.s.ScaleByTwo(n, x, y) }, a, b)
}

// ScaleByOneHalf sets b = a·2^−n.
func (alg *Algebra[U, R]) ScaleByOneHalf(n int, a, b *Member[U]) {
	alg.unary(func(x, y *U) { alg.s.ScaleByOneHalf(n, x, y) }, a, b)
}

// ScaleComponents multiplies every real component of a by f into b.
func (alg *Algebra[U, R]) ScaleComponents(f *R, a, b *Member[U]) {
	alg.unary(func(x, y *U) { alg.s.ScaleComponents(f, x, y) }, a, b)
}

// Within reports whether a and b differ by at most tol in every component.
func (alg *Algebra[U, R]) Within(tol *R, a, b *Member[U]) bool {
	return algorithm.ShapesMatch(a, b) && algorithm.SequencesWithin(alg.s, tol, a.RawData(), b.RawData())
}

// Random fills a with uniform values drawn from rng.
func (alg *Algebra[U, R]) Random(rng *rand.Rand, a *Member[U]) {
	algorithm.Fill(func(x *U) { alg.s.Random(rng, x) }, a.RawData())
}
