// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/quad"
	"github.com/katalvlaran/lvlalg/quaternion"
)

func TestMultiply(t *testing.T) {
	a := MustMatrix(t, "[[1, 2], [3, 4]]")
	b := MustMatrix(t, "[[5, 6], [7, 8]]")
	c := ma.Construct()
	require.NoError(t, ma.Multiply(a, b, c))
	requireAllClose(t, [][]float64{{19, 22}, {43, 50}}, c, 0)

	// aliasing the left operand
	require.NoError(t, ma.Multiply(a, b, a))
	requireAllClose(t, [][]float64{{19, 22}, {43, 50}}, a, 0)

	wide := MustMatrix(t, "[[1, 2, 3]]")
	require.NoError(t, ma.Multiply(wide, MustMatrix(t, "[[1], [1], [1]]"), c))
	requireAllClose(t, [][]float64{{6}}, c, 0)

	c = MustMatrix(t, "[[9]]")
	require.ErrorIs(t, ma.Multiply(wide, b, c), matrix.ErrDimensionMismatch)
	require.Equal(t, "[[9]]", c.String())
}

func TestTransposeAndTrace(t *testing.T) {
	a := MustMatrix(t, "[[1, 2, 3], [4, 5, 6]]")
	ma.Transpose(a, a)
	require.Equal(t, "[[1, 4], [2, 5], [3, 6]]", a.String())

	tr := floatOf(0)
	require.ErrorIs(t, ma.Trace(a, tr), matrix.ErrNonSquare)
	require.NoError(t, ma.Trace(MustMatrix(t, "[[1, 2], [3, 4]]"), tr))
	require.Equal(t, 5.0, tr.Value())
	require.NoError(t, ma.Trace(ma.Construct(), tr))
	require.Equal(t, 0.0, tr.Value())
}

func TestDet(t *testing.T) {
	cases := []struct {
		name    string
		literal string
		want    float64
	}{
		{"2x2", "[[4, 7], [2, 6]]", 10},
		{"swap", "[[0, 1], [1, 0]]", -1},
		{"singular", "[[1, 2], [2, 4]]", 0},
		{"3x3", "[[2, 0, 1], [1, 3, 2], [1, 1, 2]]", 6},
		{"1x1", "[[-3]]", -3},
	}
	d := floatOf(0)
	for _, tc := range cases {
		require.NoError(t, ma.Det(MustMatrix(t, tc.literal), d), tc.name)
		require.InDelta(t, tc.want, d.Value(), 1e-14, tc.name)
	}
	require.NoError(t, ma.Det(ma.Construct(), d))
	require.Equal(t, 1.0, d.Value(), "0×0")

	d.SetValue(42)
	require.ErrorIs(t, ma.Det(MustShape(t, 2, 3), d), matrix.ErrNonSquare)
	require.Equal(t, 42.0, d.Value())
}

func TestInvert(t *testing.T) {
	inv := ma.Construct()
	require.NoError(t, ma.Invert(MustMatrix(t, "[[4, 7], [2, 6]]"), inv))
	requireAllClose(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, 1e-15)

	rng := rand.New(rand.NewSource(3))
	for n := 1; n <= 6; n++ {
		a := RandomMatrix(t, rng, n)
		require.NoError(t, ma.Invert(a, inv))
		prod := ma.Construct()
		require.NoError(t, ma.Multiply(a, inv, prod))
		requireIdentity(t, prod, 1e-12)
		require.NoError(t, ma.Multiply(inv, a, prod))
		requireIdentity(t, prod, 1e-12)
	}

	// in place
	a := MustMatrix(t, "[[0, 2], [4, 0]]")
	require.NoError(t, ma.Invert(a, a))
	requireAllClose(t, [][]float64{{0, 0.25}, {0.5, 0}}, a, 0)
}

func TestInvert_SingularIsNaN(t *testing.T) {
	inv := ma.Construct()
	require.NoError(t, ma.Invert(MustMatrix(t, "[[1, 2], [2, 4]]"), inv))
	require.Equal(t, 2, inv.Rows())
	require.True(t, ma.IsNaN(inv))

	require.ErrorIs(t, ma.Invert(MustShape(t, 1, 2), inv), matrix.ErrNonSquare)
}

func TestDivide(t *testing.T) {
	a := MustMatrix(t, "[[1, 2], [3, 4]]")
	b := MustMatrix(t, "[[2, 0], [0, 4]]")
	c := ma.Construct()
	require.NoError(t, ma.Divide(a, b, c))
	requireAllClose(t, [][]float64{{0.5, 0.5}, {1.5, 1}}, c, 0)

	require.ErrorIs(t, ma.Divide(a, MustShape(t, 2, 3), c), matrix.ErrNonSquare)
	require.ErrorIs(t, ma.Divide(MustShape(t, 2, 3), b, c), matrix.ErrDimensionMismatch)
}

func TestPower(t *testing.T) {
	a := MustMatrix(t, "[[1, 1], [1, 0]]")
	b := ma.Construct()
	require.NoError(t, ma.Power(10, a, b))
	requireAllClose(t, [][]float64{{89, 55}, {55, 34}}, b, 0)

	require.NoError(t, ma.Power(0, a, b))
	requireIdentity(t, b, 0)

	require.NoError(t, ma.Power(-2, a, b))
	sq := ma.Construct()
	require.NoError(t, ma.Power(2, a, sq))
	require.NoError(t, ma.Multiply(b, sq, sq))
	requireIdentity(t, sq, 1e-14)

	require.ErrorIs(t, ma.Power(2, MustShape(t, 2, 1), b), matrix.ErrNonSquare)
}

func TestExp(t *testing.T) {
	b := ma.Construct()
	require.NoError(t, ma.Exp(MustShape(t, 3, 3), b))
	requireIdentity(t, b, 0)

	require.NoError(t, ma.Exp(MustMatrix(t, "[[1, 0], [0, 2]]"), b))
	requireAllClose(t, [][]float64{{math.E, 0}, {0, math.Exp(2)}}, b, 1e-13)

	require.NoError(t, ma.Exp(MustMatrix(t, "[[0, 1], [0, 0]]"), b))
	requireAllClose(t, [][]float64{{1, 1}, {0, 1}}, b, 0)

	// rotation by π
	rot := MustMatrix(t, "[[0, -1], [1, 0]]")
	ma.ScaleByDouble(math.Pi, rot, rot)
	require.NoError(t, ma.Exp(rot, b))
	requireAllClose(t, [][]float64{{-1, 0}, {0, -1}}, b, 1e-13)

	nan := MustMatrix(t, "[[1, NaN], [0, 1]]")
	require.NoError(t, ma.Exp(nan, b))
	require.True(t, ma.IsNaN(b))

	require.ErrorIs(t, ma.Exp(MustShape(t, 1, 2), b), matrix.ErrNonSquare)

	// the result may overwrite the operand
	a := MustMatrix(t, "[[0.5, 0.25], [-0.75, 0.125]]")
	want := ma.Construct()
	require.NoError(t, ma.Exp(a, want))
	require.NoError(t, ma.Exp(a, a))
	requireAllClose(t, [][]float64{
		{MustAt(t, want, 0, 0), MustAt(t, want, 0, 1)},
		{MustAt(t, want, 1, 0), MustAt(t, want, 1, 1)},
	}, a, 0)
}

func TestDirectProduct(t *testing.T) {
	a := MustMatrix(t, "[[1, 2]]")
	b := MustMatrix(t, "[[0, 1], [1, 0]]")
	ma.DirectProduct(a, b, a)
	require.Equal(t, "[[0, 1, 0, 2], [1, 0, 2, 0]]", a.String())
}

func TestNorm_Frobenius(t *testing.T) {
	n := floatOf(0)
	ma.Norm(MustMatrix(t, "[[3, 0], [0, 4]]"), n)
	require.Equal(t, 5.0, n.Value())

	huge := MustShape(t, 2, 2)
	huge.RawData()[0].SetValue(math.MaxFloat64 / 2)
	huge.RawData()[3].SetValue(math.MaxFloat64 / 2)
	ma.Norm(huge, n)
	require.False(t, math.IsInf(n.Value(), 0))
	require.InDelta(t, 1, n.Value()/(math.MaxFloat64/math.Sqrt2), 1e-14)
}

func TestComplex_ConjugateTranspose(t *testing.T) {
	m := matrix.ComplexFloat64Algebra
	a, err := m.ConstructFromString("[[{1, 2}, {3, 4}]]")
	require.NoError(t, err)
	b := m.Construct()
	m.ConjugateTranspose(a, b)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 1, b.Cols())
	want, err := m.ConstructFromString("[[{1, -2}], [{3, -4}]]")
	require.NoError(t, err)
	require.True(t, m.IsEqual(want, b))

	// a·aᴴ is the squared norm
	c := m.Construct()
	require.NoError(t, m.Multiply(a, b, c))
	z, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 30.0, z.Real().Value())
	require.Equal(t, 0.0, z.Imag().Value())
}

func TestQuaternion_InverseIsTwoSided(t *testing.T) {
	m := matrix.QuaternionFloat64Algebra
	qa := quaternion.Float64Algebra
	rng := rand.New(rand.NewSource(17))
	a, err := m.ConstructShape(3, 3)
	require.NoError(t, err)
	m.Random(rng, a)
	for i := 0; i < 3; i++ {
		p, _ := a.At(i, i)
		qa.Add(p, qa.ConstructParts(floatOf(3), floatOf(0), floatOf(0), floatOf(0)), p)
	}

	inv, prod, id := m.Construct(), m.Construct(), m.Construct()
	require.NoError(t, m.Invert(a, inv))
	m.Assign(a, id)
	m.Unity(id)
	tol := floatOf(1e-12)
	require.NoError(t, m.Multiply(a, inv, prod))
	require.True(t, m.Within(tol, id, prod), "a·a⁻¹ = %v", prod)
	require.NoError(t, m.Multiply(inv, a, prod))
	require.True(t, m.Within(tol, id, prod), "a⁻¹·a = %v", prod)
}

func TestFloat128_Invert(t *testing.T) {
	m := matrix.Float128Algebra
	a, err := m.ConstructFromString("[[4, 7], [2, 6]]")
	require.NoError(t, err)
	inv := m.Construct()
	require.NoError(t, m.Invert(a, inv))
	p, _ := inv.At(1, 1)
	require.Equal(t, 0.4, p.Float64())

	d := quad.Float128Algebra.Construct()
	require.NoError(t, m.Det(a, d))
	require.Equal(t, "10", d.String())

	prod, id := m.Construct(), m.Construct()
	require.NoError(t, m.Multiply(a, inv, prod))
	m.Assign(a, id)
	m.Unity(id)
	require.True(t, m.Within(quad.NewFromFloat64(1e-30), id, prod))
}
