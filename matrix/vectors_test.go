// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/rmodule"
)

func mustVector(t *testing.T, literal string) *rmodule.Member[float.Float64] {
	t.Helper()
	v, err := rmodule.Float64Algebra.ConstructFromString(literal)
	require.NoError(t, err)
	return v
}

func TestMultiplyVector(t *testing.T) {
	a := MustMatrix(t, "[[1, 2, 3], [4, 5, 6]]")
	v := mustVector(t, "[1, 0, -1]")
	out := rmodule.Float64Algebra.Construct()
	require.NoError(t, ma.MultiplyVector(a, v, out))
	require.Equal(t, "[-2, -2]", out.String())

	sq := MustMatrix(t, "[[0, 1], [1, 0]]")
	require.NoError(t, ma.MultiplyVector(sq, out, out))
	require.Equal(t, "[-2, -2]", out.String())

	require.ErrorIs(t, ma.MultiplyVector(a, out, out), matrix.ErrDimensionMismatch)
}

func TestVectorOuterProduct(t *testing.T) {
	m := ma.Construct()
	ma.VectorOuterProduct(mustVector(t, "[1, 2]"), mustVector(t, "[3, 4, 5]"), m)
	require.Equal(t, "[[3, 4, 5], [6, 8, 10]]", m.String())
}

func TestRowAndColumn(t *testing.T) {
	a := MustMatrix(t, "[[1, 2, 3], [4, 5, 6]]")
	v := rmodule.Float64Algebra.Construct()
	require.NoError(t, ma.Row(a, 1, v))
	require.Equal(t, "[4, 5, 6]", v.String())
	require.NoError(t, ma.Column(a, 2, v))
	require.Equal(t, "[3, 6]", v.String())

	require.ErrorIs(t, ma.Row(a, 2, v), matrix.ErrOutOfRange)
	require.ErrorIs(t, ma.Column(a, -1, v), matrix.ErrOutOfRange)
	require.Equal(t, "[3, 6]", v.String())
}
