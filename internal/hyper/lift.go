// SPDX-License-Identifier: MIT

package hyper

// Lift sets out = f(x) for a function f of one complex variable with real
// coefficients. f receives re = x[0] and im = |x[1:]| and writes the complex
// result; the imaginary part of that result is laid back along x[1:]/|x[1:]|.
// A purely real x uses e_1 as its direction, which puts log(-1) at π·e_1.
// out may alias x.
func (o Ops[R]) Lift(x, out []R, f func(re, im, fre, fim *R)) {
	if o.IsNaN(x) {
		o.NaN(out)
		return
	}
	theta := new(R)
	o.Norm(x[1:], theta)
	unit := o.unit(x[1:], theta)
	re, fre, fim := new(R), new(R), new(R)
	o.r.Assign(&x[0], re)
	f(re, theta, fre, fim)
	o.r.Assign(fre, &out[0])
	for i := range unit {
		o.r.Multiply(fim, &unit[i], &out[i+1])
	}
}

// unit returns v/theta, the direction of the imaginary part.
func (o Ops[R]) unit(v []R, theta *R) []R {
	u := make([]R, len(v))
	o.Zero(u)
	switch {
	case o.r.IsZero(theta):
		o.r.Unity(&u[0])
	case o.r.IsInfinite(theta):
		// only the infinite components carry direction, with equal weight
		n := 0
		for i := range v {
			if !o.r.IsInfinite(&v[i]) {
				continue
			}
			o.r.Unity(&u[i])
			if o.r.Signum(&v[i]) < 0 {
				o.r.Negate(&u[i], &u[i])
			}
			n++
		}
		s := new(R)
		o.r.Unity(s)
		o.r.ScaleByDouble(float64(n), s, s)
		o.r.Sqrt(s, s)
		for i := range u {
			o.r.Divide(&u[i], s, &u[i])
		}
	default:
		for i := range v {
			o.r.Divide(&v[i], theta, &u[i])
		}
	}
	return u
}
