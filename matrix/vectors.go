// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlalg/algorithm"
	"github.com/katalvlaran/lvlalg/rmodule"
)

// MultiplyVector sets out = a·v. out may be v.
func (alg *Algebra[U, R]) MultiplyVector(a *Member[U], v, out *rmodule.Member[U]) error {
	if a.cols != v.Length() {
		return matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	res := make([]U, a.rows)
	t := alg.s.Construct()
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			alg.s.Multiply(a.at(i, k), v.At(k), t)
			alg.s.Add(&res[i], t, &res[i])
		}
	}
	out.Alloc(a.rows)
	algorithm.Copy(alg.s, res, out.RawData())
	return nil
}

// VectorOuterProduct sets out[i][j] = u[i]·v[j], a len(u)×len(v) matrix.
func (alg *Algebra[U, R]) VectorOuterProduct(u, v *rmodule.Member[U], out *Member[U]) {
	out.Alloc(u.Length(), v.Length())
	algorithm.OuterProduct(alg.s, u.RawData(), v.RawData(), out.data)
}

// Row copies row r of a into out.
func (alg *Algebra[U, R]) Row(a *Member[U], r int, out *rmodule.Member[U]) error {
	if r < 0 || r >= a.rows {
		return matrixErrorf(opRow, ErrOutOfRange)
	}
	out.Alloc(a.cols)
	algorithm.Copy(alg.s, a.data[r*a.cols:(r+1)*a.cols], out.RawData())
	return nil
}

// Column copies column c of a into out.
func (alg *Algebra[U, R]) Column(a *Member[U], c int, out *rmodule.Member[U]) error {
	if c < 0 || c >= a.cols {
		return matrixErrorf(opColumn, ErrOutOfRange)
	}
	out.Alloc(a.rows)
	dst := out.RawData()
	for i := range dst {
		alg.s.Assign(a.at(i, c), &dst[i])
	}
	return nil
}
