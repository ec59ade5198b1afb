// SPDX-License-Identifier: MIT

package hyper

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/primitive"
)

// Component-level helpers for composite members. Component c of a composite
// is component 0 of its c-th real; anything past the count reads zero and
// ignores writes.

// CopyValues deep-copies the components of src into dst.
func CopyValues[R any](src, dst []R) { primitive.CopyElements(src, dst) }

func part[R any](x []R, c int) primitive.Scalar {
	if c < 0 || c >= len(x) {
		return nil
	}
	return primitive.As(&x[c])
}

// ComponentFloat64 reads component c of x as a float64.
func ComponentFloat64[R any](x []R, c int) float64 {
	if s := part(x, c); s != nil {
		return s.ComponentFloat64(0)
	}
	return 0
}

// SetComponentFloat64 writes v into component c of x.
func SetComponentFloat64[R any](x []R, c int, v float64) {
	if s := part(x, c); s != nil {
		s.SetComponentFloat64(0, v)
	}
}

// ComponentBig stores component c of x in dst and reports whether it is NaN.
func ComponentBig[R any](x []R, c int, dst *big.Float) bool {
	if s := part(x, c); s != nil {
		return s.ComponentBig(0, dst)
	}
	dst.SetInt64(0)
	return false
}

// SetComponentBig writes v into component c of x.
func SetComponentBig[R any](x []R, c int, v *big.Float) {
	if s := part(x, c); s != nil {
		s.SetComponentBig(0, v)
	}
}

// SetComponentNaN sets component c of x to NaN.
func SetComponentNaN[R any](x []R, c int) {
	if s := part(x, c); s != nil {
		s.SetComponentNaN(0)
	}
}

// ByteCount is the component count times the real's byte count.
func ByteCount[R any](x []R) int {
	return len(x) * primitive.As(&x[0]).ByteCount()
}

// Encode writes the components as consecutive blocks.
func Encode[R any](x []R, buf []byte) {
	off := 0
	for i := range x {
		s := primitive.As(&x[i])
		n := s.ByteCount()
		s.Encode(buf[off : off+n])
		off += n
	}
}

// Decode reads the blocks Encode writes.
func Decode[R any](x []R, buf []byte) {
	off := 0
	for i := range x {
		s := primitive.As(&x[i])
		n := s.ByteCount()
		s.Decode(buf[off : off+n])
		off += n
	}
}

// Init zeroes every component of x.
func Init[R any](x []R) {
	for i := range x {
		primitive.As(&x[i]).PrimitiveInit()
	}
}
