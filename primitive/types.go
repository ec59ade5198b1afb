// SPDX-License-Identifier: MIT

package primitive

import (
	"fmt"
	"math/big"
)

// Index addresses one element of a member. Index[0] varies fastest.
type Index []int

// Shaped exposes a member's shape.
type Shaped interface {
	// NumDimensions is the rank: 0 for scalars, 1 for vectors, 2 for matrices.
	NumDimensions() int
	// Dimension returns the extent of axis, 1 beyond the rank.
	// It panics on a negative axis.
	Dimension(axis int) int
}

// Scalar is the component contract implemented by pointers to scalar members.
// Component numbers are expected in [0, ComponentCount()); reads past the
// count return zero and writes past it are ignored.
type Scalar interface {
	ComponentCount() int
	ComponentFloat64(c int) float64
	SetComponentFloat64(c int, v float64)
	// ComponentBig stores component c into dst and reports whether it is NaN,
	// in which case dst is left untouched.
	ComponentBig(c int, dst *big.Float) (nan bool)
	SetComponentBig(c int, v *big.Float)
	SetComponentNaN(c int)
	// ByteCount is the fixed encoded size.
	ByteCount() int
	// Encode writes ByteCount bytes to the start of buf.
	Encode(buf []byte)
	// Decode reads ByteCount bytes from the start of buf.
	Decode(buf []byte)
	// PrimitiveInit resets every component to zero.
	PrimitiveInit()
}

// Convertible is implemented by every member, scalar or aggregate.
type Convertible interface {
	Shaped
	// ComponentCount is the component count of one element.
	ComponentCount() int
	// ElementAt returns the element at a validated, in-shape index. Callers
	// outside this package use Get/Set instead.
	ElementAt(idx Index) Scalar
	// PrimitiveInit zeroes every element without changing the shape.
	PrimitiveInit()
}

// As returns the Scalar view of a member pointer. It panics if *U does not
// implement Scalar, which is a programming error in the member type.
func As[U any](p *U) Scalar {
	s, ok := any(p).(Scalar)
	if !ok {
		panic(fmt.Sprintf("primitive: %T does not implement primitive.Scalar", p))
	}
	return s
}

// MustBeScalar panics unless *U implements Scalar. Container algebras call it
// once at construction so later element access cannot fail.
func MustBeScalar[U any]() {
	var u U
	_ = As(&u)
}

// Shape collects the extents of every axis of m.
func Shape(m Shaped) []int {
	dims := make([]int, m.NumDimensions())
	for i := range dims {
		dims[i] = m.Dimension(i)
	}
	return dims
}

// ElementCount is the number of elements in m.
func ElementCount(m Shaped) int {
	n := 1
	for i := 0; i < m.NumDimensions(); i++ {
		n *= m.Dimension(i)
	}
	return n
}

type setter[U any] interface{ Set(*U) }

// CopyElements deep-copies src into dst through each element's Set method,
// for member code that has no algebra at hand. It panics if *U has no
// Set(*U) method.
func CopyElements[U any](src, dst []U) {
	for i := range src {
		any(&dst[i]).(setter[U]).Set(&src[i])
	}
}
