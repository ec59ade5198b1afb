// SPDX-License-Identifier: MIT

package quaternion_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/quad"
	"github.com/katalvlaran/lvlalg/quaternion"
)

var qa = quaternion.Float64Algebra

func q64(r, i, j, k float64) *quaternion.Float64 {
	return qa.ConstructParts(float.New(r), float.New(i), float.New(j), float.New(k))
}

func parts(a *quaternion.Float64) [4]float64 {
	var out [4]float64
	for k := range out {
		out[k] = a.Part(k).Value()
	}
	return out
}

func requireClose(t *testing.T, want [4]float64, got *quaternion.Float64, tol float64, msg ...any) {
	t.Helper()
	g := parts(got)
	for k := range want {
		require.InDelta(t, want[k], g[k], tol, msg...)
	}
}

func randomQuaternion(rng *rand.Rand) *quaternion.Float64 {
	a := qa.Construct()
	qa.Random(rng, a)
	qa.ScaleByDouble(4, a, a)
	qa.Subtract(a, q64(2, 2, 2, 2), a)
	return a
}

func TestQuaternion_HamiltonIdentities(t *testing.T) {
	i, j, k := q64(0, 1, 0, 0), q64(0, 0, 1, 0), q64(0, 0, 0, 1)
	minusOne := q64(-1, 0, 0, 0)
	c := qa.Construct()
	for _, u := range []*quaternion.Float64{i, j, k} {
		qa.Multiply(u, u, c)
		require.True(t, qa.IsEqual(minusOne, c), "%v² = %v", u, c)
	}
	qa.Multiply(i, j, c)
	require.True(t, qa.IsEqual(k, c))
	qa.Multiply(c, k, c)
	require.True(t, qa.IsEqual(minusOne, c), "ijk = %v", c)
	qa.Multiply(j, i, c)
	qa.Negate(c, c)
	require.True(t, qa.IsEqual(k, c), "ji = -k")
}

func TestQuaternion_FieldIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tol := float.New(1e-12)
	fa := float.Float64Algebra
	for n := 0; n < 50; n++ {
		a, b := randomQuaternion(rng), randomQuaternion(rng)

		// norm is multiplicative
		ab := qa.Construct()
		qa.Multiply(a, b, ab)
		na, nb, nab := fa.Construct(), fa.Construct(), fa.Construct()
		qa.Norm(a, na)
		qa.Norm(b, nb)
		qa.Norm(ab, nab)
		require.InDelta(t, na.Value()*nb.Value(), nab.Value(), 1e-12)

		inv, one := qa.Construct(), qa.Construct()
		qa.Invert(a, inv)
		qa.Multiply(a, inv, one)
		require.True(t, qa.Within(tol, q64(1, 0, 0, 0), one), "a=%v a·a⁻¹=%v", a, one)

		cc := qa.Construct()
		qa.Conjugate(a, cc)
		qa.Conjugate(cc, cc)
		require.True(t, qa.IsEqual(a, cc))

		// conj(ab) = conj(b)conj(a)
		ca, cb, lhs, rhs := qa.Construct(), qa.Construct(), qa.Construct(), qa.Construct()
		qa.Conjugate(ab, lhs)
		qa.Conjugate(a, ca)
		qa.Conjugate(b, cb)
		qa.Multiply(cb, ca, rhs)
		require.True(t, qa.Within(tol, lhs, rhs))

		q := qa.Construct()
		qa.Divide(a, b, q)
		qa.Multiply(q, b, q)
		require.True(t, qa.Within(tol, a, q))
	}
}

func TestQuaternion_DivideByZero(t *testing.T) {
	c := qa.Construct()
	require.NotPanics(t, func() { qa.Divide(q64(1, 2, 3, 4), qa.Construct(), c) })
	require.True(t, qa.IsNaN(c))
}

func TestQuaternion_DivideExtremeMagnitudes(t *testing.T) {
	huge := q64(1e300, 1e300, 1e300, 1e300)
	c := qa.Construct()
	qa.Divide(huge, huge, c)
	requireClose(t, [4]float64{1, 0, 0, 0}, c, 1e-15)

	qa.Invert(huge, c)
	requireClose(t, [4]float64{2.5e-301, -2.5e-301, -2.5e-301, -2.5e-301}, c, 1e-315)

	qa.Invert(q64(0, 0, 1e-300, 0), c)
	require.InEpsilon(t, -1e300, c.Part(2).Value(), 1e-15)
}

func TestQuaternion_ExpLog(t *testing.T) {
	c := qa.Construct()
	qa.Exp(q64(0, 0, math.Pi/2, 0), c)
	requireClose(t, [4]float64{0, 0, 1, 0}, c, 1e-15)

	qa.Log(q64(-1, 0, 0, 0), c)
	requireClose(t, [4]float64{0, math.Pi, 0, 0}, c, 1e-15)

	qa.Sqrt(q64(-4, 0, 0, 0), c)
	requireClose(t, [4]float64{0, 2, 0, 0}, c, 1e-15)

	qa.Log(qa.Construct(), c)
	require.True(t, qa.IsNaN(c))

	rng := rand.New(rand.NewSource(5))
	tol := float.New(1e-12)
	for n := 0; n < 20; n++ {
		a := randomQuaternion(rng)
		l, e := qa.Construct(), qa.Construct()
		qa.Log(a, l)
		qa.Exp(l, e)
		require.True(t, qa.Within(tol, a, e), "exp(log %v) = %v", a, e)

		s := qa.Construct()
		qa.Sqrt(a, s)
		qa.Multiply(s, s, s)
		require.True(t, qa.Within(tol, a, s), "sqrt(%v)² = %v", a, s)
	}
}

func TestQuaternion_PowerAndPow(t *testing.T) {
	a := q64(1, -2, 0.5, 3)
	want, got := qa.Construct(), qa.Construct()
	qa.Multiply(a, a, want)
	qa.Multiply(want, a, want)
	qa.Power(3, a, got)
	tol := float.New(1e-12)
	require.True(t, qa.Within(tol, want, got), "a³ = %v, got %v", want, got)

	qa.Pow(a, q64(3, 0, 0, 0), got)
	require.True(t, qa.Within(tol, want, got))

	qa.Power(-1, a, got)
	qa.Invert(a, want)
	require.True(t, qa.Within(tol, want, got))

	qa.Pow(qa.Construct(), qa.Construct(), got)
	require.True(t, qa.IsNaN(got))
	qa.Pow(qa.Construct(), q64(2, 1, 0, 0), got)
	require.True(t, qa.IsZero(got))
	qa.Power(0, qa.Construct(), got)
	require.True(t, qa.IsNaN(got))
}

func TestQuaternion_TrigIdentity(t *testing.T) {
	a := q64(0.3, -0.2, 0.4, 0.1)
	s, c := qa.Construct(), qa.Construct()
	qa.SinAndCos(a, s, c)
	qa.Multiply(s, s, s)
	qa.Multiply(c, c, c)
	qa.Add(s, c, s)
	require.True(t, qa.Within(float.New(1e-14), q64(1, 0, 0, 0), s), "sin²+cos² = %v", s)

	sh, ch := qa.Construct(), qa.Construct()
	qa.SinhAndCosh(a, sh, ch)
	qa.Multiply(sh, sh, sh)
	qa.Multiply(ch, ch, ch)
	qa.Subtract(ch, sh, ch)
	require.True(t, qa.Within(float.New(1e-14), q64(1, 0, 0, 0), ch))

	at := qa.Construct()
	qa.Tan(a, at)
	qa.Atan(at, at)
	require.True(t, qa.Within(float.New(1e-13), a, at))
}

func TestQuaternion_NonFinite(t *testing.T) {
	a := q64(1, math.Inf(-1), 0, 0)
	require.True(t, qa.IsInfinite(a))
	require.False(t, qa.IsNaN(a))
	qa.Infinite(a)
	require.Equal(t, [4]float64{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)}, parts(a))
	qa.NaN(a)
	require.True(t, qa.IsNaN(a))
	require.False(t, qa.IsInfinite(a))

	c := qa.Construct()
	qa.Exp(a, c)
	require.True(t, qa.IsNaN(c))
}

func TestQuaternion_BytesAndRep(t *testing.T) {
	a := q64(1, -2, 0.5, math.NaN())
	require.Equal(t, 32, a.ByteCount())
	buf := make([]byte, 32)
	require.NoError(t, a.ToBytes(buf, 0))
	b := qa.Construct()
	require.NoError(t, b.FromBytes(buf, 0))
	require.True(t, qa.IsNaN(b))
	require.Equal(t, -2.0, b.Part(1).Value())

	require.Equal(t, "{1, -2, 0.5, NaN}", a.String())
	p, err := qa.ConstructFromString("{1, 2}")
	require.NoError(t, err)
	requireClose(t, [4]float64{1, 2, 0, 0}, p, 0)
	_, err = qa.ConstructFromString("{1, 2, 3, 4, 5}")
	require.ErrorIs(t, err, primitive.ErrOutOfBounds)

	out, err := primitive.Export[float64](q64(4, 3, 2, 1))
	require.NoError(t, err)
	require.Equal(t, []float64{4, 3, 2, 1}, out)
}

func TestQuaternion_Float128(t *testing.T) {
	q := quaternion.Float128Algebra
	n := func(v float64) *quad.Float128 { return quad.NewFromFloat64(v) }
	a := q.ConstructParts(n(1), n(2), n(2), n(4))
	norm := quad.Float128Algebra.Construct()
	q.Norm(a, norm)
	require.Equal(t, 5.0, norm.Float64())

	inv, one := q.Construct(), q.Construct()
	q.Invert(a, inv)
	q.Multiply(a, inv, one)
	unity := q.Construct()
	q.Unity(unity)
	require.True(t, q.Within(n(1e-32), unity, one), "a·a⁻¹ = %v", one)
}
