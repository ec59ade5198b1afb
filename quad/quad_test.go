// SPDX-License-Identifier: MIT

package quad_test

import (
	"encoding/hex"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/quad"
)

var q = quad.Float128Algebra

func n(x float64) *quad.Float128 { return quad.NewFromFloat64(x) }

// pow2 returns 2^e exactly.
func pow2(e int) *quad.Float128 {
	z := new(big.Float).SetPrec(quad.Precision).SetInt64(1)
	return quad.NewFromBig(z.SetMantExp(z, e))
}

func requireNear(t *testing.T, want float64, got *quad.Float128, tol float64) {
	t.Helper()
	require.InDelta(t, want, got.Float64(), tol)
}

func TestFloat128_Binary128Patterns(t *testing.T) {
	maxFinite, _ := hex.DecodeString("7ffeffffffffffffffffffffffffffff")
	cases := []struct {
		name string
		val  *quad.Float128
		hex  string
	}{
		{"one", n(1), "3fff0000000000000000000000000000"},
		{"minus two", n(-2), "c0000000000000000000000000000000"},
		{"one third", mustDiv(n(1), n(3)), "3ffd5555555555555555555555555555"},
		{"negative zero", n(math.Copysign(0, -1)), "80000000000000000000000000000000"},
		{"smallest subnormal", pow2(-16494), "00000000000000000000000000000001"},
		{"smallest normal", pow2(-16382), "00010000000000000000000000000000"},
		{"inf", n(math.Inf(1)), "7fff0000000000000000000000000000"},
		{"nan", n(math.NaN()), "7fff8000000000000000000000000000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := primitive.Bytes(tc.val)
			require.Equal(t, tc.hex, hex.EncodeToString(buf))
			back := q.Construct()
			back.Decode(buf)
			require.Equal(t, tc.hex, hex.EncodeToString(primitive.Bytes(back)))
		})
	}

	m := q.Construct()
	m.Decode(maxFinite)
	require.False(t, q.IsInfinite(m))
	require.Equal(t, maxFinite, primitive.Bytes(m))
	q.Add(m, m, m)
	require.True(t, q.IsInfinite(m))
}

func mustDiv(a, b *quad.Float128) *quad.Float128 {
	c := q.Construct()
	q.Divide(a, b, c)
	return c
}

func TestFloat128_ByteRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, 20)
	for i := 0; i < 200; i++ {
		a := q.Construct()
		q.Random(rng, a)
		q.ScaleByTwo(rng.Intn(32000)-16000, a, a)
		if i%2 == 1 {
			q.Negate(a, a)
		}
		require.NoError(t, a.ToBytes(buf, 4))
		b := q.Construct()
		require.NoError(t, b.FromBytes(buf, 4))
		require.Equal(t, 0, q.Compare(a, b), "value %s", a)
	}
	require.ErrorIs(t, n(1).ToBytes(make([]byte, 15), 0), primitive.ErrShortBuffer)
}

func TestFloat128_RangeClamp(t *testing.T) {
	a := q.Construct()
	q.ScaleByTwo(20000, n(1), a)
	require.True(t, q.IsInfinite(a))
	require.Equal(t, 1, q.Signum(a))

	// half the smallest subnormal is a tie, which goes to zero
	q.ScaleByOneHalf(1, pow2(-16494), a)
	require.True(t, q.IsZero(a))

	q.ScaleByTwo(-6, pow2(-16494), a)
	require.True(t, q.IsZero(a))

	// the smallest subnormal survives exactly
	q.Multiply(pow2(-16000), pow2(-494), a)
	require.Equal(t, 0, q.Compare(a, pow2(-16494)))
}

func TestFloat128_ExtendedPrecision(t *testing.T) {
	// 1 + 2^-100 is lost in float64 but not here
	a, b := q.Construct(), q.Construct()
	q.Add(n(1), pow2(-100), a)
	require.False(t, q.IsEqual(a, n(1)))
	q.Subtract(a, n(1), b)
	require.True(t, q.IsEqual(b, pow2(-100)))

	third := mustDiv(n(1), n(3))
	require.True(t, strings.HasPrefix(third.String(), "0.333333333333333333333333333333"), third.String())
}

func TestFloat128_SpecialArithmetic(t *testing.T) {
	inf, c := n(math.Inf(1)), q.Construct()
	q.Subtract(inf, inf, c)
	require.True(t, q.IsNaN(c))
	q.Multiply(inf, n(0), c)
	require.True(t, q.IsNaN(c))
	q.Divide(n(0), n(0), c)
	require.True(t, q.IsNaN(c))
	q.Divide(n(-1), n(0), c)
	require.True(t, q.IsInfinite(c))
	require.Equal(t, -1, q.Signum(c))
	q.Invert(n(0), c)
	require.True(t, q.IsInfinite(c))

	// NaN is never equal, sorts last, and two NaNs are within any tolerance
	nan := n(math.NaN())
	require.False(t, q.IsEqual(nan, nan))
	require.True(t, q.IsNotEqual(nan, nan))
	require.Equal(t, 1, q.Compare(nan, inf))
	require.Equal(t, -1, q.Compare(inf, nan))
	require.True(t, q.Within(n(0), nan, nan))
	require.False(t, q.Within(n(1e9), nan, n(0)))
	require.True(t, q.Within(n(0), inf, inf))

	require.True(t, q.IsEqual(n(0), n(math.Copysign(0, -1))))
}

func TestFloat128_OrderingAndRounding(t *testing.T) {
	c := q.Construct()
	q.Max(n(2), n(-3), c)
	require.Equal(t, 2.0, c.Float64())
	q.Min(n(2), n(-3), c)
	require.Equal(t, -3.0, c.Float64())
	q.Max(n(2), n(math.NaN()), c)
	require.True(t, q.IsNaN(c))
	q.Abs(n(-4.5), c)
	require.Equal(t, 4.5, c.Float64())

	q.Round(algebra.HalfEven, n(0.5), n(1.25), c)
	require.Equal(t, 1.0, c.Float64())
	q.Round(algebra.HalfUp, n(0.5), n(1.25), c)
	require.Equal(t, 1.5, c.Float64())
	q.Round(algebra.Floor, n(1), n(-0.5), c)
	require.Equal(t, -1.0, c.Float64())
	q.Round(algebra.Truncate, n(1), n(-0.5), c)
	require.True(t, q.IsZero(c))
	require.True(t, math.Signbit(c.Float64()))
	q.Round(algebra.HalfUp, n(0), n(1.25), c)
	require.Equal(t, 1.25, c.Float64())
}

func TestFloat128_Scaling(t *testing.T) {
	c := q.Construct()
	q.ScaleByRational(big.NewRat(1, 3), n(3), c)
	requireNear(t, 1, c, 1e-30)
	q.ScaleByHighPrec(big.NewFloat(0.25), n(8), c)
	require.Equal(t, 2.0, c.Float64())
	q.ScaleByDouble(math.NaN(), n(8), c)
	require.True(t, q.IsNaN(c))
	q.ScaleComponents(n(-2), n(8), c)
	require.Equal(t, -16.0, c.Float64())
}

func TestFloat128_Power(t *testing.T) {
	c := q.Construct()
	q.Power(10, n(2), c)
	require.Equal(t, 1024.0, c.Float64())
	q.Power(-2, n(4), c)
	require.Equal(t, 0.0625, c.Float64())
	q.Power(0, n(math.NaN()), c)
	require.Equal(t, 1.0, c.Float64())
	q.Power(-3, n(0), c)
	require.True(t, q.IsInfinite(c))
	q.Power(3, n(math.Copysign(0, -1)), c)
	require.True(t, math.Signbit(c.Float64()))

	// 3^70 exceeds float64's exact range but fits 113 bits
	q.Power(70, n(3), c)
	want := new(big.Int).Exp(big.NewInt(3), big.NewInt(70), nil)
	got := new(big.Float)
	require.True(t, c.Big(got))
	gi, _ := got.Int(nil)
	require.Equal(t, 0, want.Cmp(gi))
}

func TestFloat128_Pow(t *testing.T) {
	c := q.Construct()
	q.Pow(n(-2), n(3), c)
	require.Equal(t, -8.0, c.Float64())
	q.Pow(n(-8), mustDiv(n(1), n(3)), c)
	require.True(t, q.IsNaN(c))
	q.Pow(n(2), n(0.5), c)
	requireNear(t, math.Sqrt2, c, 1e-15)
	q.Pow(n(math.NaN()), n(0), c)
	require.Equal(t, 1.0, c.Float64())
	q.Pow(n(1), n(math.NaN()), c)
	require.Equal(t, 1.0, c.Float64())
	q.Pow(n(math.Copysign(0, -1)), n(-1), c)
	require.True(t, q.IsInfinite(c))
	require.Equal(t, -1, q.Signum(c))
	q.Pow(n(0.5), n(math.Inf(1)), c)
	require.True(t, q.IsZero(c))
	q.Pow(n(0.5), n(math.Inf(-1)), c)
	require.True(t, q.IsInfinite(c))
	q.Pow(n(10), n(1e6), c)
	require.True(t, q.IsInfinite(c))
}

func TestFloat128_TranscendentalAgainstFloat64(t *testing.T) {
	unary := []struct {
		name string
		fn   func(a, b *quad.Float128)
		ref  func(float64) float64
		args []float64
	}{
		{"exp", q.Exp, math.Exp, []float64{-20, -1, 0.001, 1, 7.5, 200}},
		{"log", q.Log, math.Log, []float64{1e-300, 0.3, 2, 1e300}},
		{"sqrt", q.Sqrt, math.Sqrt, []float64{0.01, 2, 1e10}},
		{"cbrt", q.Cbrt, math.Cbrt, []float64{-27, 0.001, 2}},
		{"sin", q.Sin, math.Sin, []float64{-3, 0.5, 1e10}},
		{"cos", q.Cos, math.Cos, []float64{-3, 0.5, 100}},
		{"tan", q.Tan, math.Tan, []float64{-1.2, 0.5}},
		{"asin", q.Asin, math.Asin, []float64{-0.9999, 0.5, 1}},
		{"acos", q.Acos, halfAngleAcos, []float64{-1, 0.5, 0.99999}},
		{"atan", q.Atan, math.Atan, []float64{-50, 0.1, 3}},
		{"sinh", q.Sinh, math.Sinh, []float64{-2, 1e-5, 0.7, 30}},
		{"cosh", q.Cosh, math.Cosh, []float64{-2, 0.7, 30}},
		{"tanh", q.Tanh, math.Tanh, []float64{-2, 1e-5, 0.7, 500}},
		{"asinh", q.Asinh, math.Asinh, []float64{-3, 1e-8, 100}},
		{"acosh", q.Acosh, math.Acosh, []float64{1.0001, 1.5, 100}},
		{"atanh", q.Atanh, math.Atanh, []float64{-0.5, 1e-8, 0.99}},
	}
	for _, tc := range unary {
		t.Run(tc.name, func(t *testing.T) {
			for _, x := range tc.args {
				got := q.Construct()
				tc.fn(n(x), got)
				want := tc.ref(x)
				require.InEpsilon(t, want, got.Float64(), 1e-13, "%s(%g)", tc.name, x)
			}
		})
	}
}

func TestFloat128_Identities(t *testing.T) {
	tol := pow2(-105)

	// exp(log x) = x
	x, y := n(12.345), q.Construct()
	q.Log(x, y)
	q.Exp(y, y)
	require.True(t, q.Within(tol, x, y))

	// sin² + cos² = 1
	s, c := q.Construct(), q.Construct()
	q.SinAndCos(n(0.75), s, c)
	q.Multiply(s, s, s)
	q.Multiply(c, c, c)
	q.Add(s, c, s)
	require.True(t, q.Within(tol, s, n(1)))

	// √2·√2 = 2
	r := q.Construct()
	q.Sqrt(n(2), r)
	q.Multiply(r, r, r)
	require.True(t, q.Within(tol, r, n(2)))

	// 4·atan(1) = π
	p, pi := q.Construct(), q.Construct()
	q.Atan(n(1), p)
	q.ScaleByTwo(2, p, p)
	q.PI(pi)
	require.True(t, q.Within(tol, p, pi))
	require.True(t, strings.HasPrefix(pi.String(), "3.141592653589793238462643383279"), pi.String())

	e := q.Construct()
	q.E(e)
	require.True(t, strings.HasPrefix(e.String(), "2.718281828459045235360287471352"), e.String())
}

func TestFloat128_TranscendentalSpecials(t *testing.T) {
	c := q.Construct()
	q.Log(n(-1), c)
	require.True(t, q.IsNaN(c))
	q.Log(n(0), c)
	require.True(t, q.IsInfinite(c))
	require.Equal(t, -1, q.Signum(c))
	q.Exp(n(20000), c)
	require.True(t, q.IsInfinite(c))
	q.Exp(n(math.Inf(-1)), c)
	require.True(t, q.IsZero(c))
	q.Sqrt(n(-4), c)
	require.True(t, q.IsNaN(c))
	q.Sin(n(math.Inf(1)), c)
	require.True(t, q.IsNaN(c))
	q.Asin(n(2), c)
	require.True(t, q.IsNaN(c))
	q.Acosh(n(0.5), c)
	require.True(t, q.IsNaN(c))
	q.Atanh(n(-1), c)
	require.True(t, q.IsInfinite(c))
	require.Equal(t, -1, q.Signum(c))
	q.Tanh(n(math.Inf(-1)), c)
	require.Equal(t, -1.0, c.Float64())
	q.Atan(n(math.Inf(1)), c)
	requireNear(t, math.Pi/2, c, 1e-15)
	q.Cosh(n(-20000), c)
	require.True(t, q.IsInfinite(c))
	q.Csc(n(0), c)
	require.True(t, q.IsInfinite(c))
	q.Acot(n(0), c)
	requireNear(t, math.Pi/2, c, 1e-15)
}

// halfAngleAcos keeps full float64 accuracy near 1, where math.Acos does not.
func halfAngleAcos(x float64) float64 { return 2 * math.Asin(math.Sqrt((1-x)/2)) }

func TestFloat128_AcosNearOne(t *testing.T) {
	got := q.Construct()
	q.Acos(n(0.99999), got)
	require.True(t, strings.HasPrefix(got.String(), "0.0044721396817777507428975580984"), got.String())
}

func TestFloat128_Atan2(t *testing.T) {
	ys := []float64{1, -1, 0, math.Copysign(0, -1), math.Inf(1), 3}
	xs := []float64{1, -1, 0, math.Copysign(0, -1), math.Inf(-1), -4}
	c := q.Construct()
	for _, y := range ys {
		for _, x := range xs {
			q.Atan2(n(y), n(x), c)
			want := math.Atan2(y, x)
			require.InDelta(t, want, c.Float64(), 1e-15, "atan2(%g, %g)", y, x)
			require.Equal(t, math.Signbit(want), math.Signbit(c.Float64()), "atan2(%g, %g)", y, x)
		}
	}
	// far below float64's range the quadrant is still right
	q.Atan2(pow2(-12000), n(0), c)
	requireNear(t, math.Pi/2, c, 1e-15)
}

func TestFloat128_StringAndRep(t *testing.T) {
	a, err := quad.NewFromString("0.1")
	require.NoError(t, err)
	require.Equal(t, "0.1", a.String())
	// 0.1 at 113 bits is not the float64 0.1
	require.False(t, q.IsEqual(a, n(0.1)))

	b, err := quad.NewFromString("-inf")
	require.NoError(t, err)
	require.True(t, q.IsInfinite(b))
	require.Equal(t, "-Inf", b.String())

	nan, err := quad.NewFromString("nan")
	require.NoError(t, err)
	require.True(t, nan.IsNaN())

	_, err = quad.NewFromString("{1, 2}")
	require.Error(t, err)

	r := a.ToRep()
	require.Equal(t, 0, r.Rank())
	c := q.Construct()
	require.NoError(t, c.FromRep(r))
	require.True(t, q.IsEqual(a, c))
}

func TestFloat128_PrimitiveAccess(t *testing.T) {
	a := n(2.5)
	v, err := primitive.Get[float64](a, primitive.Index{}, 0)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	require.NoError(t, primitive.Set(a, primitive.Index{}, 0, 7))
	require.Equal(t, 7.0, a.Float64())

	// 1 + 2^-100 survives a high-precision round trip
	in := new(big.Float).SetPrec(200).SetInt64(1)
	in.Add(in, new(big.Float).SetMantExp(big.NewFloat(1), -100))
	require.NoError(t, primitive.SetBigFloat(a, primitive.Index{}, 0, in))
	out := new(big.Float).SetPrec(200)
	require.NoError(t, primitive.GetBigFloat(a, primitive.Index{}, 0, out))
	require.Equal(t, 0, in.Cmp(out))

	_, err = primitive.Get[float64](a, primitive.Index{}, -1)
	require.ErrorIs(t, err, primitive.ErrNegativeComponent)
	v, err = primitive.Get[float64](a, primitive.Index{}, 3)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestFloat128_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := q.Construct()
	for i := 0; i < 100; i++ {
		q.Random(rng, a)
		require.GreaterOrEqual(t, a.Float64(), 0.0)
		require.Less(t, a.Float64(), 1.0)
	}
}

func TestFloat128_AliasingAndCopy(t *testing.T) {
	a := n(3)
	q.Multiply(a, a, a)
	require.Equal(t, 9.0, a.Float64())
	b := a.Duplicate()
	q.Negate(b, b)
	require.Equal(t, 9.0, a.Float64())
	require.Equal(t, -9.0, b.Float64())
	q.Assign(b, a)
	require.True(t, q.IsEqual(a, b))
}
