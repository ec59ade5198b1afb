// SPDX-License-Identifier: MIT

package hyper

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Ops runs component-wise kernels over slices of R.
type Ops[R any] struct {
	r algebra.Real[R]
}

// New binds the kernels to the component algebra r.
func New[R any](r algebra.Real[R]) Ops[R] { return Ops[R]{r: r} }

// Real returns the component algebra.
func (o Ops[R]) Real() algebra.Real[R] { return o.r }

// Copy deep-copies src into dst. The slices may be the same.
func (o Ops[R]) Copy(src, dst []R) {
	for i := range src {
		o.r.Assign(&src[i], &dst[i])
	}
}

// Zero sets x to zero.
func (o Ops[R]) Zero(x []R) {
	for i := range x {
		o.r.Zero(&x[i])
	}
}

// IsZero reports whether x is zero.
func (o Ops[R]) IsZero(x []R) bool {
	for i := range x {
		if !o.r.IsZero(&x[i]) {
			return false
		}
	}
	return true
}

// Unity sets x to the real one.
func (o Ops[R]) Unity(x []R) {
	o.Zero(x)
	o.r.Unity(&x[0])
}

// IsEqual compares component by component; any NaN makes it false.
func (o Ops[R]) IsEqual(a, b []R) bool {
	for i := range a {
		if !o.r.IsEqual(&a[i], &b[i]) {
			return false
		}
	}
	return true
}

// Add sets c = a + b.
func (o Ops[R]) Add(a, b, c []R) {
	for i := range a {
		o.r.Add(&a[i], &b[i], &c[i])
	}
}

// Subtract sets c = a − b.
func (o Ops[R]) Subtract(a, b, c []R) {
	for i := range a {
		o.r.Subtract(&a[i], &b[i], &c[i])
	}
}

// Negate sets b = −a.
func (o Ops[R]) Negate(a, b []R) {
	for i := range a {
		o.r.Negate(&a[i], &b[i])
	}
}

// Conjugate keeps the real part and negates every other component.
func (o Ops[R]) Conjugate(a, b []R) {
	o.r.Assign(&a[0], &b[0])
	for i := 1; i < len(a); i++ {
		o.r.Negate(&a[i], &b[i])
	}
}

// ---------- special values ----------

// IsNaN reports whether any component of x is NaN.
func (o Ops[R]) IsNaN(x []R) bool {
	for i := range x {
		if o.r.IsNaN(&x[i]) {
			return true
		}
	}
	return false
}

// IsInfinite is true when no component is NaN and at least one is infinite.
func (o Ops[R]) IsInfinite(x []R) bool {
	inf := false
	for i := range x {
		if o.r.IsNaN(&x[i]) {
			return false
		}
		inf = inf || o.r.IsInfinite(&x[i])
	}
	return inf
}

// NaN sets every component of x to NaN.
func (o Ops[R]) NaN(x []R) {
	for i := range x {
		o.r.NaN(&x[i])
	}
}

// Infinite sets every component to +Inf.
func (o Ops[R]) Infinite(x []R) {
	for i := range x {
		o.r.Infinite(&x[i])
	}
}

// ---------- magnitude ----------

// Norm sets out to the Euclidean length of x. Components are divided by the
// largest magnitude before squaring, so large or tiny inputs do not overflow
// or underflow in the intermediate sum.
func (o Ops[R]) Norm(x []R, out *R) {
	switch {
	case o.IsNaN(x):
		o.r.NaN(out)
		return
	case o.IsInfinite(x):
		o.r.Infinite(out)
		return
	}
	m := o.MaxAbs(x)
	if o.r.IsZero(m) {
		o.r.Zero(out)
		return
	}
	sum, t := new(R), new(R)
	o.r.Zero(sum)
	for i := range x {
		o.r.Divide(&x[i], m, t)
		o.r.Multiply(t, t, t)
		o.r.Add(sum, t, sum)
	}
	o.r.Sqrt(sum, sum)
	o.r.Multiply(sum, m, out)
}

// MaxAbs returns the largest component magnitude in a fresh value.
func (o Ops[R]) MaxAbs(x []R) *R {
	m, t := new(R), new(R)
	o.r.Zero(m)
	for i := range x {
		o.r.Abs(&x[i], t)
		o.r.Max(m, t, m)
	}
	return m
}

// NormSquared sets out to the plain sum of squares. Use Norm unless the
// square itself is wanted, as in division.
func (o Ops[R]) NormSquared(x []R, out *R) {
	sum, t := new(R), new(R)
	o.r.Zero(sum)
	for i := range x {
		o.r.Multiply(&x[i], &x[i], t)
		o.r.Add(sum, t, sum)
	}
	o.r.Assign(sum, out)
}

// ---------- component-wise real operations ----------

// Round sets b to a rounded to a multiple of delta under mode.
func (o Ops[R]) Round(mode algebra.RoundingMode, delta *R, a, b []R) {
	for i := range a {
		o.r.Round(mode, delta, &a[i], &b[i])
	}
}

// Within holds when every component pair is within tol. Two NaN values are
// within each other regardless of which components are NaN.
func (o Ops[R]) Within(tol *R, a, b []R) bool {
	an, bn := o.IsNaN(a), o.IsNaN(b)
	if an || bn {
		return an && bn
	}
	for i := range a {
		if !o.r.Within(tol, &a[i], &b[i]) {
			return false
		}
	}
	return true
}

// Random fills x with uniform values drawn from rng.
func (o Ops[R]) Random(rng *rand.Rand, x []R) {
	for i := range x {
		o.r.Random(rng, &x[i])
	}
}

// ScaleComponents multiplies every real component of a by factor into b.
func (o Ops[R]) ScaleComponents(factor *R, a, b []R) {
	for i := range a {
		o.r.Multiply(&a[i], factor, &b[i])
	}
}

// ScaleByDouble sets b = factor·a.
func (o Ops[R]) ScaleByDouble(factor float64, a, b []R) {
	for i := range a {
		o.r.ScaleByDouble(factor, &a[i], &b[i])
	}
}

// ScaleByRational sets b = factor·a.
func (o Ops[R]) ScaleByRational(factor *big.Rat, a, b []R) {
	for i := range a {
		o.r.ScaleByRational(factor, &a[i], &b[i])
	}
}

// ScaleByHighPrec sets b = factor·a.
func (o Ops[R]) ScaleByHighPrec(factor *big.Float, a, b []R) {
	for i := range a {
		o.r.ScaleByHighPrec(factor, &a[i], &b[i])
	}
}

// ScaleByTwo sets b = a·2^n.
func (o Ops[R]) ScaleByTwo(n int, a, b []R) {
	for i := range a {
		o.r.ScaleByTwo(n, &a[i], &b[i])
	}
}

// ScaleByOneHalf sets b = a·2^−n.
func (o Ops[R]) ScaleByOneHalf(n int, a, b []R) {
	for i := range a {
		o.r.ScaleByOneHalf(n, &a[i], &b[i])
	}
}

// ---------- division ----------

// Inverse sets b = conj(a)/|a|². The zero value gives NaN components.
// Finite operands are first divided by their largest magnitude so that |a|²
// neither overflows nor underflows.
func (o Ops[R]) Inverse(a, b []R) {
	tmp := make([]R, len(a))
	m, ok := o.Unit(a, tmp)
	d := new(R)
	o.NormSquared(tmp, d)
	o.Conjugate(tmp, tmp)
	for i := range tmp {
		o.r.Divide(&tmp[i], d, &b[i])
		if ok {
			o.r.Divide(&b[i], m, &b[i])
		}
	}
}

// Unit writes x divided by its largest magnitude into dst and returns that
// magnitude. When x is zero or not finite it copies x unchanged and reports
// false.
func (o Ops[R]) Unit(x, dst []R) (*R, bool) {
	if o.IsNaN(x) || o.IsInfinite(x) {
		o.Copy(x, dst)
		return nil, false
	}
	m := o.MaxAbs(x)
	if o.r.IsZero(m) {
		o.Copy(x, dst)
		return nil, false
	}
	for i := range x {
		o.r.Divide(&x[i], m, &dst[i])
	}
	return m, true
}
