// SPDX-License-Identifier: MIT

package algorithm

import "github.com/katalvlaran/lvlalg/algebra"

// Fill applies op to every element of dst; op is typically a constant setter
// such as alg.Zero or alg.NaN.
func Fill[U any](op func(a *U), dst []U) {
	for i := range dst {
		op(&dst[i])
	}
}

// Transform2 sets dst[i] = op(src[i]). src and dst may be the same slice.
func Transform2[U any](op func(a, b *U), src, dst []U) {
	if len(src) != len(dst) {
		panic(panicLength)
	}
	for i := range src {
		op(&src[i], &dst[i])
	}
}

// Transform3 sets c[i] = op(a[i], b[i]). c may be a or b.
func Transform3[U any](op func(a, b, c *U), a, b, c []U) {
	if len(a) != len(b) || len(a) != len(c) {
		panic(panicLength)
	}
	for i := range a {
		op(&a[i], &b[i], &c[i])
	}
}

// Map is Transform2 across element types, e.g. element norms into a real
// slice.
func Map[U, V any](op func(a *U, b *V), src []U, dst []V) {
	if len(src) != len(dst) {
		panic(panicLength)
	}
	for i := range src {
		op(&src[i], &dst[i])
	}
}

// Copy deep-copies src into dst through alg.
func Copy[U any](alg algebra.Assigner[U], src, dst []U) {
	Transform2(alg.Assign, src, dst)
}
