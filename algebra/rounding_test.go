// SPDX-License-Identifier: MIT

package algebra_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
)

func TestRoundFloat64_Modes(t *testing.T) {
	cases := []struct {
		mode algebra.RoundingMode
		in   []float64
		want []float64
	}{
		{algebra.Truncate, []float64{2.5, -2.5, 2.7, -2.7}, []float64{2, -2, 2, -2}},
		{algebra.AwayFromZero, []float64{2.1, -2.1, 3}, []float64{3, -3, 3}},
		{algebra.Ceiling, []float64{2.1, -2.1}, []float64{3, -2}},
		{algebra.Floor, []float64{2.1, -2.1}, []float64{2, -3}},
		{algebra.HalfUp, []float64{2.5, -2.5, 2.4}, []float64{3, -3, 2}},
		{algebra.HalfDown, []float64{2.5, -2.5, 2.6}, []float64{2, -2, 3}},
		{algebra.HalfEven, []float64{2.5, 3.5, -2.5}, []float64{2, 4, -2}},
		{algebra.HalfOdd, []float64{2.5, 3.5, -2.5, 2.2}, []float64{3, 3, -3, 2}},
	}
	for _, tc := range cases {
		for i, x := range tc.in {
			require.Equal(t, tc.want[i], algebra.RoundFloat64(tc.mode, x), "%s(%v)", tc.mode, x)
		}
	}
}

func TestRoundFloat64_SpecialValues(t *testing.T) {
	require.True(t, math.IsNaN(algebra.RoundFloat64(algebra.Floor, math.NaN())))
	require.True(t, math.IsInf(algebra.RoundFloat64(algebra.Ceiling, math.Inf(-1)), -1))
}

func TestRoundToMultiple(t *testing.T) {
	require.InDelta(t, 0.25, algebra.RoundToMultiple(algebra.HalfEven, 0.25, 0.3), 1e-15)
	require.InDelta(t, 1.5, algebra.RoundToMultiple(algebra.Ceiling, 0.5, 1.1), 1e-15)
	// non-positive delta is a no-op
	require.Equal(t, 1.1, algebra.RoundToMultiple(algebra.Ceiling, 0, 1.1))
}

func TestRoundBig_MatchesFloat64(t *testing.T) {
	modes := []algebra.RoundingMode{
		algebra.Truncate, algebra.AwayFromZero, algebra.Ceiling, algebra.Floor,
		algebra.HalfUp, algebra.HalfDown, algebra.HalfEven, algebra.HalfOdd,
	}
	inputs := []float64{2.5, -2.5, 3.5, -3.5, 2.2, -2.7, 7, 0.5, -0.5}
	for _, m := range modes {
		for _, x := range inputs {
			got, _ := algebra.RoundBig(m, big.NewFloat(x), new(big.Float)).Float64()
			require.Equal(t, algebra.RoundFloat64(m, x), got, "%s(%v)", m, x)
		}
	}
}

func TestRoundingMode_String(t *testing.T) {
	require.Equal(t, "HalfEven", algebra.HalfEven.String())
	require.True(t, algebra.HalfOdd.Valid())
	require.False(t, algebra.RoundingMode(200).Valid())
}
