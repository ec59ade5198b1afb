// SPDX-License-Identifier: MIT

package algebra

// Ring is the additive group plus multiplication.
type Ring[U any] interface {
	Constructor[U]
	Assigner[U]
	Zeroer[U]
	Equality[U]
	Additive[U]
	Multiplicative[U]
}

// Field is a Ring where every nonzero member has an inverse. Octonions are not
// associative; they still satisfy this contract.
type Field[U any] interface {
	Ring[U]
	Invertible[U]
}

// Scaling groups every scaling flavour.
type Scaling[U any] interface {
	ScaleByDouble[U]
	ScaleByRational[U]
	ScaleByHighPrec[U]
	ScaleByTwo[U]
}

// Transcendental groups exp/log, roots, powers and the trigonometric families.
type Transcendental[U any] interface {
	Exponential[U]
	Roots[U]
	Pow[U]
	Trigonometric[U]
	Hyperbolic[U]
	InverseTrigonometric[U]
	InverseHyperbolic[U]
}

// Scalar is what containers require from their element algebra. R is the real
// type that norms and tolerances are expressed in.
type Scalar[U, R any] interface {
	Field[U]
	Norm[U, R]
	NaN[U]
	Infinite[U]
	Conjugate[U]
	Rounding[U, R]
	Scaling[U]
	ScaleComponents[U, R]
	Tolerance[U, R]
	Random[U]
}

// Real is what composite number systems require from their component algebra.
// A Real is its own norm type.
type Real[U any] interface {
	Scalar[U, U]
	Ordered[U]
	Transcendental[U]
	RealConstants[U]
}
