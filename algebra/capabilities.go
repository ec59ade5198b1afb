// SPDX-License-Identifier: MIT

package algebra

import (
	"math/big"
	"math/rand"
)

// Constructor creates fresh members.
type Constructor[U any] interface {
	// Construct returns a new zero-valued member.
	Construct() *U
	// ConstructFrom returns a deep copy of other.
	ConstructFrom(other *U) *U
	// ConstructFromString parses a numeric literal such as "3.5" or "{1,2}".
	ConstructFromString(s string) (*U, error)
}

// Assigner deep-copies one member into another. Self-assignment is a no-op.
type Assigner[U any] interface {
	Assign(from, to *U)
}

// Zeroer sets and detects the additive identity.
type Zeroer[U any] interface {
	Zero(a *U)
	IsZero(a *U) bool
}

// Equality compares members by value.
type Equality[U any] interface {
	IsEqual(a, b *U) bool
	IsNotEqual(a, b *U) bool
}

// Additive is the additive group.
type Additive[U any] interface {
	Add(a, b, c *U)
	Subtract(a, b, c *U)
	Negate(a, b *U)
}

// Multiplicative is the multiplicative monoid plus integer powers.
type Multiplicative[U any] interface {
	Unity(a *U)
	Multiply(a, b, c *U)
	// Power sets b = a^n. Negative n inverts.
	Power(n int, a, b *U)
}

// Invertible adds multiplicative inverses.
type Invertible[U any] interface {
	Invert(a, b *U)
	Divide(a, b, c *U)
}

// Norm maps a member to its real magnitude.
type Norm[U, R any] interface {
	Norm(a *U, b *R)
}

// NaN sets and detects not-a-number values.
type NaN[U any] interface {
	IsNaN(a *U) bool
	NaN(a *U)
}

// Infinite sets and detects infinite values.
type Infinite[U any] interface {
	IsInfinite(a *U) bool
	Infinite(a *U)
}

// Conjugate negates every imaginary-like component.
type Conjugate[U any] interface {
	Conjugate(a, b *U)
}

// Rounding rounds every component to a multiple of delta.
type Rounding[U, R any] interface {
	Round(mode RoundingMode, delta *R, a, b *U)
}

// Exponential is exp and its principal inverse.
type Exponential[U any] interface {
	Exp(a, b *U)
	Log(a, b *U)
}

// Roots are square and cube roots.
type Roots[U any] interface {
	Sqrt(a, b *U)
	Cbrt(a, b *U)
}

// Pow raises a to the power b.
type Pow[U any] interface {
	Pow(a, b, c *U)
}

// Trigonometric is the circular function family.
type Trigonometric[U any] interface {
	Sin(a, b *U)
	Cos(a, b *U)
	Tan(a, b *U)
	SinAndCos(a, s, c *U)
	Sec(a, b *U)
	Csc(a, b *U)
	Cot(a, b *U)
}

// Hyperbolic is the hyperbolic function family.
type Hyperbolic[U any] interface {
	Sinh(a, b *U)
	Cosh(a, b *U)
	Tanh(a, b *U)
	SinhAndCosh(a, s, c *U)
	Sech(a, b *U)
	Csch(a, b *U)
	Coth(a, b *U)
}

// InverseTrigonometric is the inverse circular family.
type InverseTrigonometric[U any] interface {
	Asin(a, b *U)
	Acos(a, b *U)
	Atan(a, b *U)
	Asec(a, b *U)
	Acsc(a, b *U)
	Acot(a, b *U)
}

// InverseHyperbolic is the inverse hyperbolic family.
type InverseHyperbolic[U any] interface {
	Asinh(a, b *U)
	Acosh(a, b *U)
	Atanh(a, b *U)
	Asech(a, b *U)
	Acsch(a, b *U)
	Acoth(a, b *U)
}

// RealConstants provides pi and e at the member's precision.
type RealConstants[U any] interface {
	PI(a *U)
	E(a *U)
}

// Ordered is implemented by the real line only.
type Ordered[U any] interface {
	// Compare returns -1, 0 or +1. NaN compares equal to nothing and sorts last.
	Compare(a, b *U) int
	Signum(a *U) int
	Abs(a, b *U)
	Max(a, b, c *U)
	Min(a, b, c *U)
	// Atan2 sets c to the angle of the point (x, y) in (-pi, pi].
	Atan2(y, x, c *U)
}

// ScaleByDouble multiplies every component by a float64 factor.
type ScaleByDouble[U any] interface {
	ScaleByDouble(factor float64, a, b *U)
}

// ScaleByRational multiplies every component by an exact rational.
type ScaleByRational[U any] interface {
	ScaleByRational(factor *big.Rat, a, b *U)
}

// ScaleByHighPrec multiplies every component by an arbitrary precision factor.
type ScaleByHighPrec[U any] interface {
	ScaleByHighPrec(factor *big.Float, a, b *U)
}

// ScaleByTwo scales by powers of two.
type ScaleByTwo[U any] interface {
	// ScaleByTwo sets b = a * 2^n.
	ScaleByTwo(n int, a, b *U)
	// ScaleByOneHalf sets b = a * 2^-n.
	ScaleByOneHalf(n int, a, b *U)
}

// ScaleComponents multiplies each component independently by a real factor.
// For composites this differs from Multiply by a real-valued member only in
// that it never mixes components.
type ScaleComponents[U, R any] interface {
	ScaleComponents(factor *R, a, b *U)
}

// Tolerance is approximate equality.
type Tolerance[U, R any] interface {
	// Within reports whether a and b differ by at most tol in every component.
	// Two NaNs are within any tolerance of each other.
	Within(tol *R, a, b *U) bool
}

// Random fills a member with pseudo-random components in [0, 1).
type Random[U any] interface {
	Random(rng *rand.Rand, a *U)
}
