// SPDX-License-Identifier: MIT

package primitive_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/quad"
	"github.com/katalvlaran/lvlalg/rep"
	"github.com/katalvlaran/lvlalg/rmodule"
)

func vector(t *testing.T, literal string) *rmodule.Member[float.Float64] {
	t.Helper()
	v, err := rmodule.Float64Algebra.ConstructFromString(literal)
	require.NoError(t, err)
	return v
}

type AccessSuite struct {
	suite.Suite
	v *rmodule.Member[float.Float64]
}

func TestAccessSuite(t *testing.T) { suite.Run(t, new(AccessSuite)) }

func (s *AccessSuite) SetupTest() { s.v = vector(s.T(), "[1.5, -2.75]") }

func (s *AccessSuite) TestSafeReadsZeroOutside() {
	for _, idx := range []primitive.Index{{2}, {7}, {0, 1}} {
		got, err := primitive.SafeGet[float64](s.v, idx, 0)
		s.Require().NoError(err, "%v", idx)
		s.Equal(0.0, got, "%v", idx)
	}
	got, err := primitive.SafeGet[float64](s.v, primitive.Index{0}, 1)
	s.Require().NoError(err)
	s.Equal(0.0, got, "component past the count")

	// coordinates past the rank are inside when zero
	got, err = primitive.SafeGet[float64](s.v, primitive.Index{1, 0, 0}, 0)
	s.Require().NoError(err)
	s.Equal(-2.75, got)
}

func (s *AccessSuite) TestSafeWritesDropOnlyZero() {
	s.NoError(primitive.SafeSet(s.v, primitive.Index{5}, 0, 0.0))
	s.ErrorIs(primitive.SafeSet(s.v, primitive.Index{5}, 0, 1.0), primitive.ErrOutOfBounds)
	s.NoError(primitive.SafeSet(s.v, primitive.Index{0}, 3, 0))
	s.ErrorIs(primitive.SafeSet(s.v, primitive.Index{0}, 3, 7), primitive.ErrOutOfBounds)
	s.Equal("[1.5, -2.75]", s.v.String())

	s.NoError(primitive.SafeSet(s.v, primitive.Index{1}, 0, int16(4)))
	s.Equal("[1.5, 4]", s.v.String())
}

func (s *AccessSuite) TestUnsafeFailsOutside() {
	_, err := primitive.Get[float64](s.v, primitive.Index{2}, 0)
	s.ErrorIs(err, primitive.ErrOutOfBounds)
	s.ErrorIs(primitive.Set(s.v, primitive.Index{2}, 0, 0.0), primitive.ErrOutOfBounds)

	_, err = primitive.Get[float64](s.v, primitive.Index{-1}, 0)
	s.ErrorIs(err, primitive.ErrNegativeIndex)
	_, err = primitive.SafeGet[float64](s.v, primitive.Index{-1}, 0)
	s.ErrorIs(err, primitive.ErrNegativeIndex, "negative indices fail in both flavours")
	_, err = primitive.Get[float64](s.v, primitive.Index{0}, -1)
	s.ErrorIs(err, primitive.ErrNegativeComponent)
	_, err = primitive.Get[float64](s.v, primitive.Index{}, 0)
	s.ErrorIs(err, primitive.ErrIndexRank)
}

func (s *AccessSuite) TestIntegerTargets() {
	require.NoError(s.T(), primitive.Set(s.v, primitive.Index{0}, 0, 300.7))
	i8, err := primitive.Get[int8](s.v, primitive.Index{0}, 0)
	s.Require().NoError(err)
	s.Equal(int8(127), i8)
	u8, err := primitive.Get[uint8](s.v, primitive.Index{1}, 0)
	s.Require().NoError(err)
	s.Equal(uint8(0), u8)
	i, err := primitive.Get[int](s.v, primitive.Index{1}, 0)
	s.Require().NoError(err)
	s.Equal(-2, i)

	require.NoError(s.T(), primitive.Set(s.v, primitive.Index{1}, 0, math.NaN()))
	_, err = primitive.Get[int64](s.v, primitive.Index{1}, 0)
	s.ErrorIs(err, primitive.ErrNotFinite)
	f, err := primitive.Get[float32](s.v, primitive.Index{1}, 0)
	s.Require().NoError(err)
	s.True(math.IsNaN(float64(f)))
}

func (s *AccessSuite) TestBigAccessors() {
	q, err := matrix.Float128Algebra.ConstructShape(1, 2)
	s.Require().NoError(err)
	third := new(big.Rat).SetFrac64(1, 3)
	s.Require().NoError(primitive.SetAny(q, primitive.Index{0, 0}, 0, third))
	s.Require().NoError(primitive.SetAny(q, primitive.Index{1, 0}, 0, "1e20"))

	f := new(big.Float)
	s.Require().NoError(primitive.GetBigFloat(q, primitive.Index{0, 0}, 0, f))
	want := new(big.Float).SetPrec(113).SetRat(third)
	s.Equal(0, f.Cmp(want), "got %s", f.Text('g', 40))

	n := new(big.Int)
	s.Require().NoError(primitive.GetBigInt(q, primitive.Index{1, 0}, 0, n))
	s.Equal("100000000000000000000", n.String())

	s.Require().NoError(primitive.SafeGetBigInt(q, primitive.Index{4, 4}, 0, n))
	s.Equal(int64(0), n.Int64())
	s.ErrorIs(primitive.SafeSetBigInt(q, primitive.Index{4, 4}, 0, big.NewInt(2)), primitive.ErrOutOfBounds)

	s.Error(primitive.SetAny(q, primitive.Index{0, 0}, 0, "not a number"))
}

func TestImportExport(t *testing.T) {
	z, err := rmodule.ComplexFloat64Algebra.ConstructLength(2)
	require.NoError(t, err)
	require.NoError(t, primitive.Import(z, []float64{1, 2, 3, 4}))
	require.Equal(t, "[{1, 2}, {3, 4}]", z.String())

	for _, bad := range [][]float64{{1, 2, 3}, {1, 2}, {1, 2, 3, 4, 5, 6}} {
		require.ErrorIs(t, primitive.Import(z, bad), primitive.ErrLengthMismatch, "%v", bad)
	}
	require.Equal(t, "[{1, 2}, {3, 4}]", z.String())

	out, err := primitive.Export[int32](z)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3, 4}, out)

	primitive.Init(z)
	require.True(t, rmodule.ComplexFloat64Algebra.IsZero(z))
}

func TestStrides(t *testing.T) {
	dims := []int{2, 3, 4}
	mult := primitive.Multipliers(dims)
	require.Equal(t, []int{1, 2, 6}, mult)
	require.Equal(t, 1+2*2+3*6, primitive.Offset(primitive.Index{1, 2, 3}, mult))

	idx := make(primitive.Index, len(dims))
	seen := 0
	for {
		require.Equal(t, seen, primitive.Offset(idx, mult))
		seen++
		if !primitive.Increment(idx, dims) {
			break
		}
	}
	require.Equal(t, 24, seen)
	require.Equal(t, primitive.Index{0, 0, 0}, idx)

	m := matrix.Float64Algebra.Construct()
	m.Alloc(3, 2)
	require.Equal(t, []int{2, 3}, primitive.Shape(m))
	require.Equal(t, 6, primitive.ElementCount(m))
}

func TestBytes(t *testing.T) {
	one := float.New(1.0)
	require.Equal(t, []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, primitive.Bytes(one))

	buf := make([]byte, 10)
	require.ErrorIs(t, primitive.ToBytes(one, buf, 3), primitive.ErrShortBuffer)
	require.ErrorIs(t, primitive.ToBytes(one, buf, -1), primitive.ErrShortBuffer)
	require.NoError(t, primitive.ToBytes(one, buf, 2))
	back := float.New(0.0)
	require.NoError(t, primitive.FromBytes(back, buf, 2))
	require.Equal(t, 1.0, back.Value())

	q := quad.NewFromFloat64(-0.1)
	qb := primitive.Bytes(q)
	require.Len(t, qb, 16)
	r := quad.Float128Algebra.Construct()
	require.NoError(t, primitive.FromBytes(r, qb, 0))
	require.True(t, quad.Float128Algebra.IsEqual(q, r))
}

func TestRepBridge(t *testing.T) {
	z := complexnum.Float64Algebra.Construct()
	require.NoError(t, primitive.ParseScalar(z, "{1, -1}"))
	require.Equal(t, "{1, -1}", z.String())
	require.ErrorIs(t, primitive.ParseScalar(z, "{1, 2, 3}"), primitive.ErrOutOfBounds)
	require.NoError(t, primitive.ParseScalar(z, "{1, 2, 0}"))

	x := float.New(0.0)
	require.NoError(t, primitive.ElementFromRep(x, rep.Element{rep.NaNComponent()}))
	require.True(t, math.IsNaN(x.Value()))

	v := vector(t, "[1, 2]")
	require.ErrorIs(t, primitive.FillFromRep(v, rep.MustParse("[1, 2, 3]")), primitive.ErrShape)
	require.ErrorIs(t, primitive.FillFromRep(v, rep.MustParse("[{1, 5}, 2]")), primitive.ErrOutOfBounds)
	require.Equal(t, "[1, 2]", v.String())
	require.NoError(t, primitive.FillFromRep(v, rep.MustParse("[{3, 0}, 4]")))
	require.Equal(t, "[3, 4]", v.String())
}

func TestMustBeScalar(t *testing.T) {
	require.NotPanics(t, primitive.MustBeScalar[quad.Float128])
	require.Panics(t, primitive.MustBeScalar[int])
}
