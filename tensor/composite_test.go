// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/octonion"
	"github.com/katalvlaran/lvlalg/quad"
	"github.com/katalvlaran/lvlalg/tensor"
)

func TestComplexTensor_NormAndConjugate(t *testing.T) {
	ct := tensor.ComplexFloat64Algebra
	a, err := ct.ConstructFromString("[{3, 4}, {0, 0}]")
	require.NoError(t, err)
	n := float.New(0.0)
	ct.Norm(a, n)
	require.Equal(t, 5.0, n.Value())

	b := ct.Construct()
	ct.Conjugate(a, b)
	want, err := ct.ConstructFromString("[{3, -4}, {0, 0}]")
	require.NoError(t, err)
	require.True(t, ct.IsEqual(want, b))
}

func TestOctonionTensor_ProductKeepsOperandOrder(t *testing.T) {
	ot := tensor.OctonionFloat64Algebra
	oa := octonion.Float64Algebra
	a, err := ot.ConstructFromString("[{0, 1}]")
	require.NoError(t, err)
	b, err := ot.ConstructFromString("[{0, 0, 1}]")
	require.NoError(t, err)

	ab, ba := ot.Construct(), ot.Construct()
	ot.Multiply(a, b, ab)
	ot.Multiply(b, a, ba)

	want := oa.Construct()
	oa.Multiply(&a.RawData()[0], &b.RawData()[0], want)
	require.True(t, oa.IsEqual(want, &ab.RawData()[0]), "e1·e2 = %v", &ab.RawData()[0])
	oa.Negate(want, want)
	require.True(t, oa.IsEqual(want, &ba.RawData()[0]), "e2·e1 = %v", &ba.RawData()[0])
}

func TestFloat128Tensor_IdentityTrace(t *testing.T) {
	qt := tensor.Float128Algebra
	id, err := qt.ConstructShape(3, 3)
	require.NoError(t, err)
	qt.Unity(id)
	tr := qt.Construct()
	require.NoError(t, qt.Contract(1, 0, id, tr))
	require.Equal(t, "3", tr.String())
	require.Equal(t, 3.0, tr.RawData()[0].Float64())

	var zero quad.Float128
	require.True(t, quad.Float128Algebra.IsZero(&zero))
}
