// SPDX-License-Identifier: MIT

package matrix

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/algorithm"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/rep"
)

// Algebra is the matrix algebra over scalar algebra s, whose norms live in
// the real algebra r.
type Algebra[U, R any] struct {
	s    algebra.Scalar[U, R]
	r    algebra.Real[R]
	opts Options
}

// New builds the matrix algebra over s and r.
func New[U, R any](s algebra.Scalar[U, R], r algebra.Real[R], opts ...Option) *Algebra[U, R] {
	primitive.MustBeScalar[U]()
	return &Algebra[U, R]{s: s, r: r, opts: gatherOptions(opts...)}
}

// ScalarAlgebra returns the element algebra.
func (alg *Algebra[U, R]) ScalarAlgebra() algebra.Scalar[U, R] { return alg.s }

// Construct returns an empty 0×0 matrix.
func (alg *Algebra[U, R]) Construct() *Member[U] { return &Member[U]{} }

// ConstructShape returns a zero rows×cols matrix.
func (alg *Algebra[U, R]) ConstructShape(rows, cols int) (*Member[U], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opConstruct, ErrBadShape)
	}
	m := &Member[U]{}
	m.Alloc(rows, cols)
	alg.Zero(m)
	return m, nil
}

// ConstructFrom returns a deep copy of other.
func (alg *Algebra[U, R]) ConstructFrom(other *Member[U]) *Member[U] {
	m := &Member[U]{}
	alg.Assign(other, m)
	return m
}

// ConstructFromString parses a literal with one inner list per row.
func (alg *Algebra[U, R]) ConstructFromString(s string) (*Member[U], error) {
	t, err := rep.Parse(s)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
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
	to.Alloc(from.rows, from.cols)
	algorithm.Copy(alg.s, from.data, to.data)
}

// Zero zeroes every element, keeping the shape.
func (alg *Algebra[U, R]) Zero(a *Member[U]) { algorithm.Fill(alg.s.Zero, a.data) }

// Unity sets ones on the main diagonal and zeros elsewhere, keeping the shape.
func (alg *Algebra[U, R]) Unity(a *Member[U]) {
	alg.Zero(a)
	for i := 0; i < a.rows && i < a.cols; i++ {
		alg.s.Unity(a.at(i, i))
	}
}

// IsZero reports whether a is zero.
func (alg *Algebra[U, R]) IsZero(a *Member[U]) bool { return algorithm.SequenceIsZero(alg.s, a.data) }

// IsEqual reports equal shapes and equal elements.
func (alg *Algebra[U, R]) IsEqual(a, b *Member[U]) bool {
	return algorithm.ShapesMatch(a, b) && algorithm.SequencesEqual(alg.s, a.data, b.data)
}

// IsNotEqual is the negation of IsEqual.
func (alg *Algebra[U, R]) IsNotEqual(a, b *Member[U]) bool { return !alg.IsEqual(a, b) }

// unary resizes b to a's shape and broadcasts op.
func (alg *Algebra[U, R]) unary(op func(x, y *U), a, b *Member[U]) {
	b.Alloc(a.rows, a.cols)
	algorithm.Transform2(op, a.data, b.data)
}

// Negate sets b = −a.
func (alg *Algebra[U, R]) Negate(a, b *Member[U]) { alg.unary(alg.s.Negate, a, b) }

// Conjugate conjugates every element without transposing.
func (alg *Algebra[U, R]) Conjugate(a, b *Member[U]) { alg.unary(alg.s.Conjugate, a, b) }

// Scale sets b = factor·a, multiplying each element on the left.
func (alg *Algebra[U, R]) Scale(factor *U, a, b *Member[U]) {
	f := alg.s.ConstructFrom(factor)
	alg.unary(func(x, y *U) { alg.s.Multiply(f, x, y) }, a, b)
}

// Norm sets b to the Frobenius norm, computed without intermediate overflow.
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

// Within reports equal shapes and every element within tol.
func (alg *Algebra[U, R]) Within(tol *R, a, b *Member[U]) bool {
	return algorithm.ShapesMatch(a, b) && algorithm.SequencesWithin(alg.s, tol, a.data, b.data)
}

// Random fills every element, keeping the shape.
func (alg *Algebra[U, R]) Random(rng *rand.Rand, a *Member[U]) {
	algorithm.Fill(func(x *U) { alg.s.Random(rng, x) }, a.data)
}
