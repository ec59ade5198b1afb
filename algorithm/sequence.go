// SPDX-License-Identifier: MIT

package algorithm

import "github.com/katalvlaran/lvlalg/algebra"

// SequenceIsZero reports whether every element is zero. An empty sequence is.
func SequenceIsZero[U any](alg algebra.Zeroer[U], s []U) bool {
	for i := range s {
		if !alg.IsZero(&s[i]) {
			return false
		}
	}
	return true
}

// SequenceIsNaN reports whether any element is NaN.
func SequenceIsNaN[U any](alg algebra.NaN[U], s []U) bool {
	for i := range s {
		if alg.IsNaN(&s[i]) {
			return true
		}
	}
	return false
}

// SequenceIsInfinite reports whether no element is NaN and at least one is
// infinite, so NaN masks infinity at the aggregate level too.
func SequenceIsInfinite[U any](alg interface {
	algebra.NaN[U]
	algebra.Infinite[U]
}, s []U) bool {
	if SequenceIsNaN(alg, s) {
		return false
	}
	for i := range s {
		if alg.IsInfinite(&s[i]) {
			return true
		}
	}
	return false
}

// SequencesEqual compares element-wise. Sequences of different length differ.
func SequencesEqual[U any](alg algebra.Equality[U], a, b []U) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !alg.IsEqual(&a[i], &b[i]) {
			return false
		}
	}
	return true
}

// SequencesWithin reports whether every pair of elements is within tol.
func SequencesWithin[U, R any](alg algebra.Tolerance[U, R], tol *R, a, b []U) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !alg.Within(tol, &a[i], &b[i]) {
			return false
		}
	}
	return true
}
