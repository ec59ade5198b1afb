// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures built from literals.
//   • Element-wise closeness checks with a caller-chosen tolerance.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/matrix"
)

var ma = matrix.Float64Algebra

type dense = matrix.Member[float.Float64]

// MustMatrix parses a float64 matrix literal or fails the test.
func MustMatrix(t testing.TB, literal string) *dense {
	t.Helper()
	m, err := ma.ConstructFromString(literal)
	if err != nil {
		t.Fatalf("ConstructFromString(%q): %v", literal, err)
	}
	return m
}

// MustShape allocates a zero rows×cols matrix or fails the test.
func MustShape(t testing.TB, rows, cols int) *dense {
	t.Helper()
	m, err := ma.ConstructShape(rows, cols)
	if err != nil {
		t.Fatalf("ConstructShape(%d, %d): %v", rows, cols, err)
	}
	return m
}

// MustAt returns element (r, c) as float64 or fails the test.
func MustAt(t testing.TB, m *dense, r, c int) float64 {
	t.Helper()
	p, err := m.At(r, c)
	if err != nil {
		t.Fatalf("At(%d, %d): %v", r, c, err)
	}
	return p.Value()
}

// RandomMatrix fills an n×n matrix with values in [-1, 1) and adds n on the
// diagonal, so the result is comfortably regular.
func RandomMatrix(t testing.TB, rng *rand.Rand, n int) *dense {
	t.Helper()
	m := MustShape(t, n, n)
	ma.Random(rng, m)
	ma.ScaleByDouble(2, m, m)
	for i, x := range m.RawData() {
		v := x.Value() - 1
		if i%(n+1) == 0 {
			v += float64(n)
		}
		m.RawData()[i].SetValue(v)
	}
	return m
}

// requireAllClose checks every element of got against want within tol.
func requireAllClose(t *testing.T, want [][]float64, got *dense, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	for r := range want {
		require.Equal(t, len(want[r]), got.Cols(), "cols")
		for c := range want[r] {
			require.InDelta(t, want[r][c], MustAt(t, got, r, c), tol, "(%d,%d) of %v", r, c, got)
		}
	}
}

// requireIdentity checks that m is within tol of the identity.
func requireIdentity(t *testing.T, m *dense, tol float64) {
	t.Helper()
	id := ma.ConstructFrom(m)
	ma.Unity(id)
	require.True(t, ma.Within(float.New(tol), id, m), "not identity: %v", m)
}

func floatOf(v float64) *float.Float64 { return float.New(v) }
