// SPDX-License-Identifier: MIT

package float_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/primitive"
)

var f64 = float.Float64Algebra

func TestFloat64_FieldIdentities(t *testing.T) {
	a, b := float.New(3.25), float.New(-1.5)
	ab, ba := f64.Construct(), f64.Construct()
	f64.Add(a, b, ab)
	f64.Add(b, a, ba)
	require.True(t, f64.IsEqual(ab, ba))

	inv, one := f64.Construct(), f64.Construct()
	f64.Invert(a, inv)
	f64.Multiply(a, inv, one)
	unity := f64.Construct()
	f64.Unity(unity)
	require.True(t, f64.IsEqual(one, unity))

	// aliasing output with input
	f64.Add(a, a, a)
	require.Equal(t, 6.5, a.Value())
}

func TestFloat64_DivideByZeroPropagates(t *testing.T) {
	a, z, c := float.New(1.0), float.New(0.0), f64.Construct()
	f64.Divide(a, z, c)
	require.True(t, f64.IsInfinite(c))
	f64.Divide(z, z, c)
	require.True(t, f64.IsNaN(c))
}

func TestFloat64_ByteRoundTrip(t *testing.T) {
	for _, v := range []float64{0, -0.0, 1.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1), math.NaN()} {
		a := float.New(v)
		buf := make([]byte, 3+a.ByteCount())
		require.NoError(t, a.ToBytes(buf, 3))
		b := f64.Construct()
		require.NoError(t, b.FromBytes(buf, 3))
		require.Equal(t, math.Float64bits(v), math.Float64bits(b.Value()))
	}
	a := float.New(1.0)
	require.ErrorIs(t, a.ToBytes(make([]byte, 7), 0), primitive.ErrShortBuffer)
}

func TestFloat32_ByteCountAndRounding(t *testing.T) {
	a := float.New[float32](1.1)
	require.Equal(t, 4, a.ByteCount())
	b := float.Float32Algebra.Construct()
	b.Decode(primitive.Bytes(a))
	require.Equal(t, a.Value(), b.Value())
	require.Equal(t, "1.1", a.String())
}

func TestFloat64_Scaling(t *testing.T) {
	a, b := float.New(3.0), f64.Construct()
	f64.ScaleByTwo(3, a, b)
	require.Equal(t, 24.0, b.Value())
	f64.ScaleByOneHalf(2, a, b)
	require.Equal(t, 0.75, b.Value())
	f64.ScaleByRational(big.NewRat(1, 3), a, b)
	require.Equal(t, 1.0, b.Value())
	f64.ScaleByHighPrec(big.NewFloat(2.5), a, b)
	require.Equal(t, 7.5, b.Value())
	f64.ScaleByDouble(-2, a, b)
	require.Equal(t, -6.0, b.Value())
}

func TestFloat64_RoundAndWithin(t *testing.T) {
	a, b := float.New(2.37), f64.Construct()
	f64.Round(algebra.HalfEven, float.New(0.1), a, b)
	require.InDelta(t, 2.4, b.Value(), 1e-12)

	tol := float.New(1e-9)
	require.True(t, f64.Within(tol, float.New(math.NaN()), float.New(math.NaN())))
	require.False(t, f64.Within(tol, float.New(math.NaN()), float.New(1.0)))
	require.True(t, f64.Within(tol, float.New(1.0), float.New(1+1e-10)))
	require.True(t, f64.Within(tol, float.New(math.Inf(1)), float.New(math.Inf(1))))
}

func TestFloat64_Ordering(t *testing.T) {
	nan := float.New(math.NaN())
	require.Equal(t, 1, f64.Compare(nan, float.New(1.0)))
	require.Equal(t, -1, f64.Compare(float.New(1.0), nan))
	require.Equal(t, 0, f64.Compare(nan, nan))
	require.Equal(t, -1, f64.Signum(float.New(-4.0)))

	c := f64.Construct()
	f64.Atan2(float.New(1.0), float.New(0.0), c)
	require.InDelta(t, math.Pi/2, c.Value(), 1e-15)
}

func TestFloat64_Transcendental(t *testing.T) {
	x, s, c := float.New(0.3), f64.Construct(), f64.Construct()
	f64.SinAndCos(x, s, c)
	require.InDelta(t, 1.0, s.Value()*s.Value()+c.Value()*c.Value(), 1e-15)

	r := f64.Construct()
	f64.Asec(float.New(2.0), r)
	require.InDelta(t, math.Pi/3, r.Value(), 1e-15)
	f64.Acoth(float.New(2.0), r)
	require.InDelta(t, math.Atanh(0.5), r.Value(), 1e-15)
	f64.Cbrt(float.New(27.0), r)
	require.Equal(t, 3.0, r.Value())
}

func TestFloat64_StringAndRep(t *testing.T) {
	a, err := f64.ConstructFromString("-2.5e3")
	require.NoError(t, err)
	require.Equal(t, -2500.0, a.Value())

	_, err = f64.ConstructFromString("[1, 2]")
	require.ErrorIs(t, err, primitive.ErrShape)
	// extra components must be zero
	_, err = f64.ConstructFromString("{1, 2}")
	require.ErrorIs(t, err, primitive.ErrOutOfBounds)
	b, err := f64.ConstructFromString("{7, 0}")
	require.NoError(t, err)
	require.Equal(t, 7.0, b.Value())

	n := f64.Construct()
	require.NoError(t, n.FromRep(float.New(math.NaN()).ToRep()))
	require.True(t, f64.IsNaN(n))
}

func TestFloat64_PrimitiveAccess(t *testing.T) {
	a := float.New(-7.9)
	i, err := primitive.Get[int8](a, nil, 0)
	require.NoError(t, err)
	require.Equal(t, int8(-7), i)

	huge := float.New(1e10)
	i, err = primitive.Get[int8](huge, nil, 0)
	require.NoError(t, err)
	require.Equal(t, int8(127), i)
	u, err := primitive.Get[uint16](float.New(-3.0), nil, 0)
	require.NoError(t, err)
	require.Equal(t, uint16(0), u)

	_, err = primitive.Get[int](float.New(math.NaN()), nil, 0)
	require.ErrorIs(t, err, primitive.ErrNotFinite)

	require.NoError(t, primitive.Set[int64](a, nil, 0, 42))
	require.Equal(t, 42.0, a.Value())
	require.Panics(t, func() { a.Dimension(-1) })
	require.Equal(t, 1, a.Dimension(5))
}

func TestFloat64_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := f64.Construct()
	for i := 0; i < 100; i++ {
		f64.Random(rng, a)
		require.GreaterOrEqual(t, a.Value(), 0.0)
		require.Less(t, a.Value(), 1.0)
	}
}
