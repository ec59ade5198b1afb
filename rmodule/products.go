// SPDX-License-Identifier: MIT

package rmodule

// DotProduct sets c = Σ conj(a[i])·b[i]. For real scalars the conjugate is
// the identity, so this is the ordinary dot product.
func (alg *Algebra[U, R]) DotProduct(a, b *Member[U], c *U) error {
	if a.Length() != b.Length() {
		return rmoduleErrorf(opDot, ErrDimensionMismatch)
	}
	sum, t := alg.s.Construct(), alg.s.Construct()
	for i := range a.data {
		alg.s.Conjugate(&a.data[i], t)
		alg.s.Multiply(t, &b.data[i], t)
		alg.s.Add(sum, t, sum)
	}
	alg.s.Assign(sum, c)
	return nil
}

// PerpDotProduct sets c = a0·b1 − a1·b0 for vectors of length 2.
func (alg *Algebra[U, R]) PerpDotProduct(a, b *Member[U], c *U) error {
	if a.Length() != 2 || b.Length() != 2 {
		return rmoduleErrorf(opPerpDot, ErrUndefinedLength)
	}
	alg.cross2(&a.data[0], &b.data[1], &a.data[1], &b.data[0], c)
	return nil
}

// cross2 sets out = p·q − r·s.
func (alg *Algebra[U, R]) cross2(p, q, r, s, out *U) {
	x, y := alg.s.Construct(), alg.s.Construct()
	alg.s.Multiply(p, q, x)
	alg.s.Multiply(r, s, y)
	alg.s.Subtract(x, y, out)
}

// CrossProduct sets c = a × b for vectors of length 3.
func (alg *Algebra[U, R]) CrossProduct(a, b, c *Member[U]) error {
	if a.Length() != 3 || b.Length() != 3 {
		return rmoduleErrorf(opCross, ErrUndefinedLength)
	}
	alg.cross(a, b, c)
	return nil
}

func (alg *Algebra[U, R]) cross(a, b, c *Member[U]) {
	x, y := a.data, b.data
	out := make([]U, 3)
	alg.cross2(&x[1], &y[2], &x[2], &y[1], &out[0])
	alg.cross2(&x[2], &y[0], &x[0], &y[2], &out[1])
	alg.cross2(&x[0], &y[1], &x[1], &y[0], &out[2])
	c.Alloc(3)
	for i := range out {
		alg.s.Assign(&out[i], &c.data[i])
	}
}

// TripleProduct sets d = a · (b × c), the signed volume spanned by three
// vectors of length 3.
func (alg *Algebra[U, R]) TripleProduct(a, b, c *Member[U], d *U) error {
	if a.Length() != 3 || b.Length() != 3 || c.Length() != 3 {
		return rmoduleErrorf(opTriple, ErrUndefinedLength)
	}
	bc := &Member[U]{}
	alg.cross(b, c, bc)
	return alg.DotProduct(a, bc, d)
}

// VectorTripleProduct sets d = a × (b × c).
func (alg *Algebra[U, R]) VectorTripleProduct(a, b, c, d *Member[U]) error {
	if a.Length() != 3 || b.Length() != 3 || c.Length() != 3 {
		return rmoduleErrorf(opVectorTriple, ErrUndefinedLength)
	}
	bc := &Member[U]{}
	alg.cross(b, c, bc)
	alg.cross(a, bc, d)
	return nil
}
