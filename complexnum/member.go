// SPDX-License-Identifier: MIT

package complexnum

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/internal/hyper"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/quad"
	"github.com/katalvlaran/lvlalg/rep"
)

// Number is a complex number over the real member type R. The zero value
// is 0 + 0i.
type Number[R any] struct {
	c [2]R
}

type (
	Float32  = Number[float.Float32]
	Float64  = Number[float.Float64]
	Float128 = Number[quad.Float128]
)

// Real returns a pointer to the real part.
func (n *Number[R]) Real() *R { return &n.c[0] }

// Imag returns a pointer to the imaginary part.
func (n *Number[R]) Imag() *R { return &n.c[1] }

// Set copies other into n.
func (n *Number[R]) Set(other *Number[R]) {
	if n != other {
		hyper.CopyValues(other.c[:], n.c[:])
	}
}

// Duplicate returns a deep copy of n.
func (n *Number[R]) Duplicate() *Number[R] {
	d := &Number[R]{}
	d.Set(n)
	return d
}

// String renders n as "{re, im}".
func (n *Number[R]) String() string { return rep.Format(n.ToRep()) }

// ---------- primitive.Convertible ----------

// NumDimensions returns the rank.
func (n *Number[R]) NumDimensions() int { return 0 }

// Dimension returns the extent of the given axis.
func (n *Number[R]) Dimension(axis int) int {
	if axis < 0 {
		panic("complexnum: negative axis")
	}
	return 1
}

// ElementAt returns the element at the given index.
func (n *Number[R]) ElementAt(primitive.Index) primitive.Scalar { return n }

// ---------- primitive.Scalar ----------

// ComponentCount returns the number of real components.
func (n *Number[R]) ComponentCount() int { return 2 }

// ComponentFloat64 returns component c as a float64.
func (n *Number[R]) ComponentFloat64(c int) float64 { return hyper.ComponentFloat64(n.c[:], c) }

// SetComponentFloat64 sets component c from a float64.
func (n *Number[R]) SetComponentFloat64(c int, v float64) { hyper.SetComponentFloat64(n.c[:], c, v) }

// ComponentBig stores component c in dst and reports whether it is NaN.
func (n *Number[R]) ComponentBig(c int, dst *big.Float) bool {
	return hyper.ComponentBig(n.c[:], c, dst)
}

// SetComponentBig sets component c from v.
func (n *Number[R]) SetComponentBig(c int, v *big.Float) { hyper.SetComponentBig(n.c[:], c, v) }

// SetComponentNaN sets component c to NaN.
func (n *Number[R]) SetComponentNaN(c int) { hyper.SetComponentNaN(n.c[:], c) }

// ByteCount returns the encoded size in bytes.
func (n *Number[R]) ByteCount() int { return hyper.ByteCount(n.c[:]) }

// Encode writes the big-endian encoding into buf.
func (n *Number[R]) Encode(buf []byte) { hyper.Encode(n.c[:], buf) }

// Decode reads the encoding Encode writes from buf.
func (n *Number[R]) Decode(buf []byte) { hyper.Decode(n.c[:], buf) }

// PrimitiveInit zeroes the value in place.
func (n *Number[R]) PrimitiveInit() { hyper.Init(n.c[:]) }

// ToBytes writes the real block then the imaginary block at off.
func (n *Number[R]) ToBytes(buf []byte, off int) error { return primitive.ToBytes(n, buf, off) }

// FromBytes reads what ToBytes writes.
func (n *Number[R]) FromBytes(buf []byte, off int) error { return primitive.FromBytes(n, buf, off) }

// ToRep returns the literal tree of the complex number.
func (n *Number[R]) ToRep() *rep.Tensor { return primitive.ToRep(n) }

// FromRep reads a rank-0 representation; a plain real sets the real part.
func (n *Number[R]) FromRep(t *rep.Tensor) error { return primitive.FillFromRep(n, t) }
