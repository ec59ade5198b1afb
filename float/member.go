// SPDX-License-Identifier: MIT

package float

import (
	"encoding/binary"
	"math"
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/rep"
)

// Member is one real number. The zero value is 0.
type Member[F constraints.Float] struct {
	v F
}

type (
	// Float32 is an IEEE single precision real.
	Float32 = Member[float32]
	// Float64 is an IEEE double precision real.
	Float64 = Member[float64]
)

// New returns a member holding v.
func New[F constraints.Float](v F) *Member[F] { return &Member[F]{v: v} }

// Value returns the wrapped number.
func (m *Member[F]) Value() F { return m.v }

// SetValue replaces the wrapped number.
func (m *Member[F]) SetValue(v F) { m.v = v }

// Set copies other into m.
func (m *Member[F]) Set(other *Member[F]) { m.v = other.v }

// Duplicate returns a copy of m.
func (m *Member[F]) Duplicate() *Member[F] { return &Member[F]{v: m.v} }

// String prints the shortest decimal that reads back to the same value.
func (m *Member[F]) String() string {
	return strconv.FormatFloat(float64(m.v), 'g', -1, bitSize[F]())
}

// single reports whether F is 32 bits wide.
func single[F constraints.Float]() bool {
	tiny := 1e-300
	return F(tiny) == 0
}

func bitSize[F constraints.Float]() int {
	if single[F]() {
		return 32
	}
	return 64
}

// ---------- primitive.Convertible ----------

// NumDimensions is 0: a real is a scalar.
func (m *Member[F]) NumDimensions() int { return 0 }

// Dimension is 1 for every non-negative axis.
func (m *Member[F]) Dimension(axis int) int {
	if axis < 0 {
		panic("float: negative axis")
	}
	return 1
}

// ElementAt returns m itself.
func (m *Member[F]) ElementAt(primitive.Index) primitive.Scalar { return m }

// ---------- primitive.Scalar ----------

// ComponentCount is 1.
func (m *Member[F]) ComponentCount() int { return 1 }

// ComponentFloat64 returns the value for component 0 and zero otherwise.
func (m *Member[F]) ComponentFloat64(c int) float64 {
	if c != 0 {
		return 0
	}
	return float64(m.v)
}

// SetComponentFloat64 sets component 0; other components are ignored.
func (m *Member[F]) SetComponentFloat64(c int, v float64) {
	if c == 0 {
		m.v = F(v)
	}
}

// ComponentBig stores the exact value of component c in dst.
func (m *Member[F]) ComponentBig(c int, dst *big.Float) bool {
	if c != 0 {
		dst.SetInt64(0)
		return false
	}
	if math.IsNaN(float64(m.v)) {
		return true
	}
	if dst.Prec() == 0 {
		dst.SetPrec(uint(mantissaBits[F]()))
	}
	dst.SetFloat64(float64(m.v))
	return false
}

// SetComponentBig rounds v to F.
func (m *Member[F]) SetComponentBig(c int, v *big.Float) {
	if c != 0 {
		return
	}
	if single[F]() {
		f, _ := v.Float32()
		m.v = F(f)
		return
	}
	f, _ := v.Float64()
	m.v = F(f)
}

// SetComponentNaN sets component 0 to NaN.
func (m *Member[F]) SetComponentNaN(c int) {
	if c == 0 {
		m.v = F(math.NaN())
	}
}

// ByteCount is 4 or 8.
func (m *Member[F]) ByteCount() int { return bitSize[F]() / 8 }

// Encode writes the IEEE bit pattern big-endian.
func (m *Member[F]) Encode(buf []byte) {
	if single[F]() {
		binary.BigEndian.PutUint32(buf, math.Float32bits(float32(m.v)))
		return
	}
	binary.BigEndian.PutUint64(buf, math.Float64bits(float64(m.v)))
}

// Decode reads the IEEE bit pattern big-endian.
func (m *Member[F]) Decode(buf []byte) {
	if single[F]() {
		m.v = F(math.Float32frombits(binary.BigEndian.Uint32(buf)))
		return
	}
	m.v = F(math.Float64frombits(binary.BigEndian.Uint64(buf)))
}

// PrimitiveInit sets m to zero.
func (m *Member[F]) PrimitiveInit() { m.v = 0 }

// ToBytes encodes m into buf at off.
func (m *Member[F]) ToBytes(buf []byte, off int) error { return primitive.ToBytes(m, buf, off) }

// FromBytes decodes m from buf at off.
func (m *Member[F]) FromBytes(buf []byte, off int) error { return primitive.FromBytes(m, buf, off) }

// ToRep captures m.
func (m *Member[F]) ToRep() *rep.Tensor { return primitive.ToRep(m) }

// FromRep reads a rank-0 representation.
func (m *Member[F]) FromRep(t *rep.Tensor) error { return primitive.FillFromRep(m, t) }

func mantissaBits[F constraints.Float]() int {
	if single[F]() {
		return 24
	}
	return 53
}
