// SPDX-License-Identifier: MIT

package rmodule

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/algorithm"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/rep"
)

// Algebra is the vector algebra over scalar algebra s, whose norms live in
// the real algebra r.
type Algebra[U, R any] struct {
	s algebra.Scalar[U, R]
	r algebra.Real[R]
}

// New builds the vector algebra over s and r.
func New[U, R any](s algebra.Scalar[U, R], r algebra.Real[R]) *Algebra[U, R] {
	primitive.MustBeScalar[U]()
	return &Algebra[U, R]{s: s, r: r}
}

// ScalarAlgebra returns the element algebra.
func (alg *Algebra[U, R]) ScalarAlgebra() algebra.Scalar[U, R] { return alg.s }

// Construct returns an empty vector.
func (alg *Algebra[U, R]) Construct() *Member[U] { return &Member[U]{} }

// ConstructLength returns a zero vector of length n.
func (alg *Algebra[U, R]) ConstructLength(n int) (*Member[U], error) {
	if n < 0 {
		return nil, rmoduleErrorf(opConstruct, ErrBadShape)
	}
	m := &Member[U]{}
	m.Alloc(n)
	alg.Zero(m)
	return m, nil
}

// ConstructFrom returns a deep copy of other.
func (alg *Algebra[U, R]) ConstructFrom(other *Member[U]) *Member[U] {
	m := &Member[U]{}
	alg.Assign(other, m)
	return m
}

// ConstructFromString parses a one-dimensional literal such as "[1, 2, 3]".
func (alg *Algebra[U, R]) ConstructFromString(s string) (*Member[U], error) {
	t, err := rep.Parse(s)
	if err != nil {
		return nil, rmoduleErrorf(opParse, err)
	}
	m := &Member[U]{}
	if err := m.FromRep(t); err != nil {
		return nil, err
	}
	return m, nil
}

// Assign deep-copies from into to through the scalar algebra.
func (alg *Algebra[U, R]) Assign(from, to *Member[U]) {
	if from == to {
		return
	}
	to.Alloc(from.Length())
	algorithm.Copy(alg.s, from.data, to.data)
}

// Zero zeroes every element, keeping the length.
func (alg *Algebra[U, R]) Zero(a *Member[U]) { algorithm.Fill(alg.s.Zero, a.data) }

// IsZero reports whether a is zero.
func (alg *Algebra[U, R]) IsZero(a *Member[U]) bool { return algorithm.SequenceIsZero(alg.s, a.data) }

// IsEqual reports equal lengths and equal elements.
func (alg *Algebra[U, R]) IsEqual(a, b *Member[U]) bool {
	return algorithm.SequencesEqual(alg.s, a.data, b.data)
}

// IsNotEqual is the negation of IsEqual.
func (alg *Algebra[U, R]) IsNotEqual(a, b *Member[U]) bool { return !alg.IsEqual(a, b) }

// elementwise gates a binary broadcast on equal shapes, then resizes c.
func (alg *Algebra[U, R]) elementwise(tag string, op func(x, y, z *U), a, b, c *Member[U]) error {
	if !algorithm.ShapesMatch(a, b) {
		return rmoduleErrorf(tag, ErrDimensionMismatch)
	}
	c.Alloc(a.Length())
	algorithm.Transform3(op, a.data, b.data, c.data)
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

// MultiplyElements sets c[i] = a[i]·b[i].
func (alg *Algebra[U, R]) MultiplyElements(a, b, c *Member[U]) error {
	return alg.elementwise(opMultiplyEl, alg.s.Multiply, a, b, c)
}

// unary resizes b to a's length and broadcasts op.
func (alg *Algebra[U, R]) unary(op func(x, y *U), a, b *Member[U]) {
	b.Alloc(a.Length())
	algorithm.Transform2(op, a.data, b.data)
}

// Negate sets b = −a.
func (alg *Algebra[U, R]) Negate(a, b *Member[U]) { alg.unary(alg.s.Negate, a, b) }

// Conjugate sets b to the conjugate of a.
func (alg *Algebra[U, R]) Conjugate(a, b *Member[U]) { alg.unary(alg.s.Conjugate, a, b) }

// Scale sets b[i] = factor·a[i], multiplying on the left.
func (alg *Algebra[U, R]) Scale(factor *U, a, b *Member[U]) {
	f := alg.s.ConstructFrom(factor)
	alg.unary(func(x, y *U) { alg.s.Multiply(f, x, y) }, a, b)
}

// Norm sets b to the Euclidean norm, computed without intermediate overflow.
func (alg *Algebra[U, R]) Norm(a *Member[U], b *R) { algorithm.Norm(alg.s, alg.r, a.data, b) }

// IsNaN reports whether any component of a is NaN.
func (alg *Algebra[U, R]) IsNaN(a *Member[U]) bool { return algorithm.SequenceIsNaN(alg.s, a.data) }

// NaN sets every component of a to NaN.
func (alg *Algebra[U, R]) NaN(a *Member[U]) { algorithm.Fill(alg.s.NaN, a.data) }

// IsInfinite reports whether a is infinite and not NaN.
func (alg *Algebra[U, R]) IsInfinite(a *Member[U]) bool {
	return algorithm.SequenceIsInfinite(alg.s, a.data)
}

// Infinite sets a to +Inf.
func (alg *Algebra[U, R]) Infinite(a *Member[U]) { algorithm.Fill(alg.s.Infinite, a.data) }

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

// Within reports equal lengths and every element within tol.
func (alg *Algebra[U, R]) Within(tol *R, a, b *Member[U]) bool {
	return algorithm.SequencesWithin(alg.s, tol, a.data, b.data)
}

// Random fills every element, keeping the length.
func (alg *Algebra[U, R]) Random(rng *rand.Rand, a *Member[U]) {
	algorithm.Fill(func(x *U) { alg.s.Random(rng, x) }, a.data)
}
