// SPDX-License-Identifier: MIT

package algorithm

import "github.com/katalvlaran/lvlalg/algebra"

// OuterProduct sets c[i*len(b)+j] = a[i]·b[j]. c must hold len(a)*len(b)
// elements and must not share storage with a or b.
func OuterProduct[U any](alg algebra.Multiplicative[U], a, b, c []U) {
	n := len(b)
	if len(c) != len(a)*n {
		panic(panicLength)
	}
	for i := range a {
		for j := range b {
			alg.Multiply(&a[i], &b[j], &c[i*n+j])
		}
	}
}

// Sum sets out to the sum of s; zero for an empty sequence. out may be an
// element of s.
func Sum[U any](alg interface {
	algebra.Constructor[U]
	algebra.Assigner[U]
	algebra.Additive[U]
}, s []U, out *U) {
	acc := alg.Construct()
	for i := range s {
		alg.Add(acc, &s[i], acc)
	}
	alg.Assign(acc, out)
}

// Norm sets out to sqrt(Σ|s_i|²), scaling by the largest element norm so no
// intermediate square overflows. Any NaN element gives NaN; otherwise any
// infinite element gives +Inf.
func Norm[U, R any](alg algebra.Norm[U, R], r algebra.Real[R], s []U, out *R) {
	norms := make([]R, len(s))
	Fill(r.Zero, norms)
	Map(alg.Norm, s, norms)

	maxAbs := r.Construct()
	for i := range norms {
		switch {
		case r.IsNaN(&norms[i]):
			r.NaN(out)
			return
		case r.Compare(&norms[i], maxAbs) > 0:
			r.Assign(&norms[i], maxAbs)
		}
	}
	if r.IsZero(maxAbs) || r.IsInfinite(maxAbs) {
		r.Assign(maxAbs, out)
		return
	}
	sum, q := r.Construct(), r.Construct()
	for i := range norms {
		r.Divide(&norms[i], maxAbs, q)
		r.Multiply(q, q, q)
		r.Add(sum, q, sum)
	}
	r.Sqrt(sum, sum)
	r.Multiply(sum, maxAbs, out)
}
