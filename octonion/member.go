// SPDX-License-Identifier: MIT

package octonion

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/internal/hyper"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/quad"
	"github.com/katalvlaran/lvlalg/rep"
)

// Number is an octonion Σ c_k·e_k over the real member type R, with e_0 = 1.
type Number[R any] struct {
	c [8]R
}

type (
	Float32  = Number[float.Float32]
	Float64  = Number[float.Float64]
	Float128 = Number[quad.Float128]
)

// Part returns a pointer to the coefficient of e_k.
func (n *Number[R]) Part(k int) *R { return &n.c[k] }

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

// String renders n as its eight coefficients in braces.
func (n *Number[R]) String() string { return rep.Format(n.ToRep()) }

// NumDimensions returns the rank.
func (n *Number[R]) NumDimensions() int { return 0 }

// Dimension returns the extent of the given axis.
func (n *Number[R]) Dimension(axis int) int {
	if axis < 0 {
		panic("octonion: negative axis")
	}
	return 1
}

// ElementAt returns the element at the given index.
func (n *Number[R]) ElementAt(primitive.Index) primitive.Scalar { return n }

// ComponentCount returns the number of real components.
func (n *Number[R]) ComponentCount() int { return 8 }

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

// ToBytes writes the encoding into buf at offset off.
func (n *Number[R]) ToBytes(buf []byte, off int) error { return primitive.ToBytes(n, buf, off) }

// FromBytes reads the encoding from buf at offset off.
func (n *Number[R]) FromBytes(buf []byte, off int) error { return primitive.FromBytes(n, buf, off) }

// ToRep returns the literal tree of the octonion.
func (n *Number[R]) ToRep() *rep.Tensor { return primitive.ToRep(n) }

// FromRep fills the octonion from a literal tree.
func (n *Number[R]) FromRep(t *rep.Tensor) error { return primitive.FillFromRep(n, t) }
