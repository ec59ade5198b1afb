// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels.
//
// Purpose:
//   - Matrix product, transpose, trace and the Kronecker product.
//   - LU factorisation with optional partial pivoting behind Det, Invert,
//     Divide and negative powers.
//   - Matrix exponential by scaling and squaring.
//
// Notes:
//   - Scalars need not commute. Products keep operand order (row factors on
//     the left) and pivots are inverted on the right.
//   - Every kernel computes into scratch and copies at the end, so the
//     destination may alias an operand.

package matrix

import (
	"math"
	"math/big"

	"github.com/katalvlaran/lvlalg/algorithm"
	"github.com/katalvlaran/lvlalg/primitive"
)

// scratch returns a zeroed rows×cols matrix.
func scratch[U any](rows, cols int) *Member[U] {
	m := &Member[U]{}
	m.Init(rows, cols)
	return m
}

// Multiply sets c = a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→j→k accumulation into scratch, then copy into c.
//
// Errors:
//   - ErrDimensionMismatch when a.Cols() != b.Rows(); c is untouched.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func (alg *Algebra[U, R]) Multiply(a, b, c *Member[U]) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	alg.Assign(alg.product(a, b), c)
	return nil
}

func (alg *Algebra[U, R]) product(a, b *Member[U]) *Member[U] {
	out := scratch[U](a.rows, b.cols)
	t := alg.s.Construct()
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			acc := out.at(i, j)
			for k := 0; k < a.cols; k++ {
				alg.s.Multiply(a.at(i, k), b.at(k, j), t)
				alg.s.Add(acc, t, acc)
			}
		}
	}
	return out
}

// Transpose sets b = aᵀ.
func (alg *Algebra[U, R]) Transpose(a, b *Member[U]) {
	alg.transpose(alg.s.Assign, a, b)
}

// ConjugateTranspose sets b to the conjugate of aᵀ.
func (alg *Algebra[U, R]) ConjugateTranspose(a, b *Member[U]) {
	alg.transpose(alg.s.Conjugate, a, b)
}

func (alg *Algebra[U, R]) transpose(op func(x, y *U), a, b *Member[U]) {
	out := scratch[U](a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			op(a.at(i, j), out.at(j, i))
		}
	}
	alg.Assign(out, b)
}

// Trace sets out to the sum of the main diagonal; zero for 0×0.
func (alg *Algebra[U, R]) Trace(a *Member[U], out *U) error {
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(opTrace, err)
	}
	acc := alg.s.Construct()
	for i := 0; i < a.rows; i++ {
		alg.s.Add(acc, a.at(i, i), acc)
	}
	alg.s.Assign(acc, out)
	return nil
}

// luFactors holds P·A = L·U in one store: L strictly below the diagonal with
// an implied unit diagonal, U on and above it. rows[i] is row perm[i] of A.
type luFactors[U any] struct {
	rows     [][]U
	perm     []int
	sign     int
	singular bool
}

// factor computes the LU factorisation of the square matrix a.
//
// Implementation:
//   - Stage 1: Deep-copy a; rows are addressed through slice headers so a
//     row swap never copies element values.
//   - Stage 2: Right-looking Doolittle. For column k pick the pivot (largest
//     element norm at or below the diagonal when pivoting is on), then
//     eliminate: L[i][k] = a[i][k]·p⁻¹ and a[i][j] -= L[i][k]·a[k][j].
//
// Behavior highlights:
//   - A zero pivot marks the factorisation singular and stops elimination.
//   - Ties in pivot norm keep the upper row, so the result is deterministic.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (alg *Algebra[U, R]) factor(a *Member[U]) *luFactors[U] {
	n := a.rows
	store := make([]U, n*n)
	algorithm.Copy(alg.s, a.data, store)
	f := &luFactors[U]{rows: make([][]U, n), perm: make([]int, n), sign: 1}
	for i := range f.rows {
		f.rows[i] = store[i*n : (i+1)*n : (i+1)*n]
		f.perm[i] = i
	}

	best, cur := alg.r.Construct(), alg.r.Construct()
	inv, t := alg.s.Construct(), alg.s.Construct()
	for k := 0; k < n; k++ {
		p := k
		if alg.opts.pivoting {
			alg.s.Norm(&f.rows[k][k], best)
			for i := k + 1; i < n; i++ {
				alg.s.Norm(&f.rows[i][k], cur)
				if alg.r.Compare(cur, best) > 0 {
					p = i
					alg.r.Assign(cur, best)
				}
			}
		}
		if p != k {
			f.rows[p], f.rows[k] = f.rows[k], f.rows[p]
			f.perm[p], f.perm[k] = f.perm[k], f.perm[p]
			f.sign = -f.sign
		}
		pivot := &f.rows[k][k]
		if alg.s.IsZero(pivot) {
			f.singular = true
			return f
		}
		alg.s.Invert(pivot, inv)
		for i := k + 1; i < n; i++ {
			l := &f.rows[i][k]
			alg.s.Multiply(l, inv, l)
			for j := k + 1; j < n; j++ {
				alg.s.Multiply(l, &f.rows[k][j], t)
				alg.s.Subtract(&f.rows[i][j], t, &f.rows[i][j])
			}
		}
	}
	return f
}

// Det sets out to the determinant of a: the ordered product of the LU pivots
// with the permutation sign applied. The 0×0 determinant is one and a
// singular matrix gives zero.
//
// Errors:
//   - ErrNonSquare; out is untouched.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (alg *Algebra[U, R]) Det(a *Member[U], out *U) error {
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(opDet, err)
	}
	f := alg.factor(a)
	if f.singular {
		alg.s.Zero(out)
		return nil
	}
	d := alg.s.Construct()
	alg.s.Unity(d)
	for k := range f.rows {
		alg.s.Multiply(d, &f.rows[k][k], d)
	}
	if f.sign < 0 {
		alg.s.Negate(d, d)
	}
	alg.s.Assign(d, out)
	return nil
}

// Invert sets b = a⁻¹.
//
// Implementation:
//   - Stage 1: ValidateSquare(a), then factor(a).
//   - Stage 2: For every unit column e_j solve L·y = P·e_j forward and
//     U·x = y backward, with x[i] = U[i][i]⁻¹·(y[i] − Σ U[i][k]·x[k]).
//
// Behavior highlights:
//   - A singular a fills b with NaN and returns nil.
//
// Errors:
//   - ErrNonSquare; b is untouched.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (alg *Algebra[U, R]) Invert(a, b *Member[U]) error {
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(opInverse, err)
	}
	alg.inverse(a, b)
	return nil
}

func (alg *Algebra[U, R]) inverse(a, b *Member[U]) {
	n := a.rows
	f := alg.factor(a)
	if f.singular {
		tracer().Debugf("matrix: %d×%d operand is singular, inverse is NaN", n, n)
		b.Alloc(n, n)
		alg.NaN(b)
		return
	}

	out := scratch[U](n, n)
	y := make([]U, n)
	t, inv := alg.s.Construct(), alg.s.Construct()
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if f.perm[i] == j {
				alg.s.Unity(&y[i])
			} else {
				alg.s.Zero(&y[i])
			}
			for k := 0; k < i; k++ {
				alg.s.Multiply(&f.rows[i][k], &y[k], t)
				alg.s.Subtract(&y[i], t, &y[i])
			}
		}
		for i := n - 1; i >= 0; i-- {
			x := out.at(i, j)
			alg.s.Assign(&y[i], x)
			for k := i + 1; k < n; k++ {
				alg.s.Multiply(&f.rows[i][k], out.at(k, j), t)
				alg.s.Subtract(x, t, x)
			}
			alg.s.Invert(&f.rows[i][i], inv)
			alg.s.Multiply(inv, x, x)
		}
	}
	alg.Assign(out, b)
}

// Divide sets c = a·b⁻¹.
//
// Errors:
//   - ErrNonSquare when b is not square.
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
func (alg *Algebra[U, R]) Divide(a, b, c *Member[U]) error {
	if err := ValidateSquare(b); err != nil {
		return matrixErrorf(opDivide, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opDivide, err)
	}
	inv := alg.Construct()
	alg.inverse(b, inv)
	alg.Assign(alg.product(a, inv), c)
	return nil
}

// Power sets b = aⁿ by repeated squaring. a⁰ is the identity and a negative
// n raises the inverse.
func (alg *Algebra[U, R]) Power(n int, a, b *Member[U]) error {
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(opPower, err)
	}
	base := alg.ConstructFrom(a)
	if n < 0 {
		alg.inverse(base, base)
		n = -n
	}
	acc := scratch[U](a.rows, a.cols)
	alg.Unity(acc)
	for n > 0 {
		if n&1 == 1 {
			acc = alg.product(acc, base)
		}
		n >>= 1
		if n > 0 {
			base = alg.product(base, base)
		}
	}
	alg.Assign(acc, b)
	return nil
}

// Exp sets b = eᵃ.
//
// Implementation:
//   - Stage 1: Pick s so that ‖a‖/2ˢ < 1/2 (Frobenius norm) and scale.
//   - Stage 2: Sum the Taylor series until a term no longer changes the
//     sum or the configured term limit is reached.
//   - Stage 3: Square the sum s times.
//
// Behavior highlights:
//   - A NaN or infinite operand gives a NaN result.
//
// Errors:
//   - ErrNonSquare; b is untouched.
//
// Complexity:
//   - Time O((t + s)·n³) for t Taylor terms, Space O(n²).
func (alg *Algebra[U, R]) Exp(a, b *Member[U]) error {
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(opExp, err)
	}
	n := a.rows
	norm := alg.r.Construct()
	alg.Norm(a, norm)
	size := primitive.As(norm).ComponentFloat64(0)
	if math.IsNaN(size) || math.IsInf(size, 0) {
		b.Alloc(n, n)
		alg.NaN(b)
		return nil
	}

	squarings := 0
	if size > 0 {
		if _, e := math.Frexp(size); e+1 > 0 {
			squarings = e + 1
		}
	}
	x := alg.Construct()
	alg.ScaleByOneHalf(squarings, a, x)

	sum, term := scratch[U](n, n), scratch[U](n, n)
	alg.Unity(sum)
	alg.Unity(term)
	next := scratch[U](n, n)
	k := 1
	for ; k <= alg.opts.expTerms; k++ {
		term = alg.product(term, x)
		alg.ScaleByRational(big.NewRat(1, int64(k)), term, term)
		algorithm.Transform3(alg.s.Add, sum.data, term.data, next.data)
		if alg.IsEqual(next, sum) {
			break
		}
		sum, next = next, sum
	}
	if k > alg.opts.expTerms {
		tracer().Infof("matrix: exp series stopped after %d terms", alg.opts.expTerms)
	}
	for i := 0; i < squarings; i++ {
		sum = alg.product(sum, sum)
	}
	alg.Assign(sum, b)
	return nil
}

// DirectProduct sets c to the Kronecker product a ⊗ b, an
// (a.Rows·b.Rows)×(a.Cols·b.Cols) matrix with
// c[i·br + k][j·bc + l] = a[i][j]·b[k][l].
func (alg *Algebra[U, R]) DirectProduct(a, b, c *Member[U]) {
	br, bc := b.rows, b.cols
	out := scratch[U](a.rows*br, a.cols*bc)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					alg.s.Multiply(a.at(i, j), b.at(k, l), out.at(i*br+k, j*bc+l))
				}
			}
		}
	}
	alg.Assign(out, c)
}
