// SPDX-License-Identifier: MIT

package quad

import (
	"math"
	"math/big"

	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/rep"
)

// Float128 is one 128-bit real. The zero value is +0.
// Do not copy a Float128 by assignment; use Set.
type Float128 struct {
	v   big.Float
	nan bool
}

// NewFromFloat64 returns x widened to 128 bits.
func NewFromFloat64(x float64) *Float128 {
	m := &Float128{}
	m.SetFloat64(x)
	return m
}

// NewFromBig returns x rounded to 128 bits.
func NewFromBig(x *big.Float) *Float128 {
	m := &Float128{}
	m.SetBig(x)
	return m
}

// NewFromString parses a decimal literal, NaN or a signed Inf.
func NewFromString(s string) (*Float128, error) {
	return Float128Algebra.ConstructFromString(s)
}

// Set copies other into m.
func (m *Float128) Set(other *Float128) {
	if m == other {
		return
	}
	m.nan = other.nan
	m.v.Copy(&other.v)
}

// Duplicate returns a deep copy of m.
func (m *Float128) Duplicate() *Float128 {
	d := &Float128{}
	d.Set(m)
	return d
}

// SetFloat64 stores x exactly.
func (m *Float128) SetFloat64(x float64) {
	if math.IsNaN(x) {
		m.setNaN()
		return
	}
	m.setBig(new(big.Float).SetFloat64(x))
}

// Float64 rounds m to the nearest float64.
func (m *Float128) Float64() float64 {
	if m.nan {
		return math.NaN()
	}
	f, _ := m.v.Float64()
	return f
}

// SetBig rounds x to 128 bits.
func (m *Float128) SetBig(x *big.Float) { m.setBig(x) }

// Big stores m into dst and reports false when m is NaN.
func (m *Float128) Big(dst *big.Float) bool {
	if m.nan {
		return false
	}
	if dst.Prec() == 0 {
		dst.SetPrec(Precision)
	}
	dst.Set(&m.v)
	return true
}

// IsNaN reports whether m is NaN.
func (m *Float128) IsNaN() bool { return m.nan }

// String prints the shortest decimal that reads back to m.
func (m *Float128) String() string {
	return rep.FormatComponent(m.component())
}

func (m *Float128) component() rep.Component {
	if m.nan {
		return rep.NaNComponent()
	}
	return rep.BigComponent(&m.v)
}

// ---------- primitive.Convertible ----------

// NumDimensions returns the rank.
func (m *Float128) NumDimensions() int { return 0 }

// Dimension is 1 for every non-negative axis.
func (m *Float128) Dimension(axis int) int {
	if axis < 0 {
		panic("quad: negative axis")
	}
	return 1
}

// ElementAt returns the element at the given index.
func (m *Float128) ElementAt(primitive.Index) primitive.Scalar { return m }

// ---------- primitive.Scalar ----------

// ComponentCount returns the number of real components.
func (m *Float128) ComponentCount() int { return 1 }

// ComponentFloat64 returns component c as a float64.
func (m *Float128) ComponentFloat64(c int) float64 {
	if c != 0 {
		return 0
	}
	return m.Float64()
}

// SetComponentFloat64 sets component c from a float64.
func (m *Float128) SetComponentFloat64(c int, v float64) {
	if c == 0 {
		m.SetFloat64(v)
	}
}

// ComponentBig stores component c in dst and reports whether it is NaN.
func (m *Float128) ComponentBig(c int, dst *big.Float) bool {
	if c != 0 {
		dst.SetInt64(0)
		return false
	}
	return !m.Big(dst)
}

// SetComponentBig sets component c from v.
func (m *Float128) SetComponentBig(c int, v *big.Float) {
	if c == 0 {
		m.setBig(v)
	}
}

// SetComponentNaN sets component c to NaN.
func (m *Float128) SetComponentNaN(c int) {
	if c == 0 {
		m.setNaN()
	}
}

// ByteCount returns the encoded size in bytes.
func (m *Float128) ByteCount() int { return ByteCount }

// Encode writes the big-endian encoding into buf.
func (m *Float128) Encode(buf []byte) { encodeBinary128(m, buf) }

// Decode reads the encoding Encode writes from buf.
func (m *Float128) Decode(buf []byte) { decodeBinary128(buf, m) }

// PrimitiveInit zeroes the value in place.
func (m *Float128) PrimitiveInit() { m.setZero(false) }

// ToBytes encodes m as IEEE binary128 into buf at off.
func (m *Float128) ToBytes(buf []byte, off int) error { return primitive.ToBytes(m, buf, off) }

// FromBytes decodes an IEEE binary128 value from buf at off.
func (m *Float128) FromBytes(buf []byte, off int) error { return primitive.FromBytes(m, buf, off) }

// ToRep captures m.
func (m *Float128) ToRep() *rep.Tensor { return primitive.ToRep(m) }

// FromRep reads a rank-0 representation.
func (m *Float128) FromRep(t *rep.Tensor) error { return primitive.FillFromRep(m, t) }
