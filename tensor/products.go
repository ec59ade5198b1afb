// SPDX-License-Identifier: MIT

package tensor

import (
	"github.com/katalvlaran/lvlalg/algorithm"
	"github.com/katalvlaran/lvlalg/primitive"
)

// outer returns a ⊗ b in fresh storage. Element i of a and element j of b
// land at i·len(b) + j, so b's axes come first and a's axes follow.
func (alg *Algebra[U, R]) outer(a, b *Member[U]) *Member[U] {
	x, y := a.RawData(), b.RawData()
	out := &Member[U]{}
	out.Alloc(append(b.Dims(), a.dims...)...)
	algorithm.OuterProduct(alg.s, x, y, out.data)
	return out
}

// Multiply sets c to the tensor product of a and b, of rank
// a.Rank() + b.Rank(). c may alias either operand.
func (alg *Algebra[U, R]) Multiply(a, b, c *Member[U]) { alg.Assign(alg.outer(a, b), c) }

// OuterProduct is Multiply under its conventional name.
func (alg *Algebra[U, R]) OuterProduct(a, b, c *Member[U]) { alg.Multiply(a, b, c) }

// Power sets b to the n-fold tensor product of a. a⁰ is the rank-0 one.
func (alg *Algebra[U, R]) Power(n int, a, b *Member[U]) error {
	if n < 0 {
		return tensorErrorf(opPower, ErrNegativePower)
	}
	acc := alg.Construct()
	alg.Unity(acc)
	for ; n > 0; n-- {
		acc = alg.outer(acc, a)
	}
	alg.Assign(acc, b)
	return nil
}

// checkContraction validates a contraction of axes i and j of a.
func checkContraction[U any](a *Member[U], i, j int) error {
	r := len(a.dims)
	switch {
	case i == j || i < 0 || j < 0 || i >= r || j >= r:
		return ErrAxis
	case a.dims[i] != a.dims[j]:
		return ErrDimensionMismatch
	}
	return nil
}

// Contract sets b to a summed over the diagonal of axes i and j. The result
// keeps a's other axes in order and has rank a.Rank() − 2.
//
// Errors:
//   - ErrAxis when i == j or either axis is outside [0, rank).
//   - ErrDimensionMismatch when the two extents differ.
//
// In both cases b is untouched.
func (alg *Algebra[U, R]) Contract(i, j int, a, b *Member[U]) error {
	if err := checkContraction(a, i, j); err != nil {
		return tensorErrorf(opContract, err)
	}
	src := a.RawData()
	rdims := make([]int, 0, len(a.dims)-2)
	for axis, d := range a.dims {
		if axis != i && axis != j {
			rdims = append(rdims, d)
		}
	}
	out := &Member[U]{}
	out.Init(rdims...)
	tracer().Debugf("tensor: contract axes (%d, %d) of %v into %v", i, j, a.dims, rdims)
	if len(out.data) == 0 {
		alg.Assign(out, b)
		return nil
	}

	step := a.mult[i] + a.mult[j]
	ridx := make(primitive.Index, len(rdims))
	full := make(primitive.Index, len(a.dims))
	for {
		for axis, k := 0, 0; axis < len(full); axis++ {
			if axis == i || axis == j {
				full[axis] = 0
				continue
			}
			full[axis] = ridx[k]
			k++
		}
		base := primitive.Offset(full, a.mult)
		acc := &out.data[primitive.Offset(ridx, out.mult)]
		for k := 0; k < a.dims[i]; k++ {
			alg.s.Add(acc, &src[base+k*step], acc)
		}
		if !primitive.Increment(ridx, rdims) {
			break
		}
	}
	alg.Assign(out, b)
	return nil
}

// InnerProduct contracts axis i of a with axis j of b: the tensor product of
// a and b contracted over those two axes. The result carries b's remaining
// axes followed by a's.
func (alg *Algebra[U, R]) InnerProduct(i, j int, a, b, c *Member[U]) error {
	if i < 0 || i >= len(a.dims) || j < 0 || j >= len(b.dims) {
		return tensorErrorf(opInnerProduct, ErrAxis)
	}
	if a.dims[i] != b.dims[j] {
		return tensorErrorf(opInnerProduct, ErrDimensionMismatch)
	}
	p := alg.outer(a, b)
	if err := alg.Contract(len(b.dims)+i, j, p, c); err != nil {
		return tensorErrorf(opInnerProduct, err)
	}
	return nil
}

// RaiseIndex copies a into b after validating axis. Cartesian tensors do not
// distinguish covariant from contravariant axes.
func (alg *Algebra[U, R]) RaiseIndex(axis int, a, b *Member[U]) error {
	if axis < 0 || axis >= len(a.dims) {
		return tensorErrorf(opRaiseIndex, ErrAxis)
	}
	alg.Assign(a, b)
	return nil
}

// LowerIndex is the inverse of RaiseIndex and likewise a validated copy.
func (alg *Algebra[U, R]) LowerIndex(axis int, a, b *Member[U]) error {
	if axis < 0 || axis >= len(a.dims) {
		return tensorErrorf(opLowerIndex, ErrAxis)
	}
	alg.Assign(a, b)
	return nil
}
