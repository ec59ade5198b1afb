// SPDX-License-Identifier: MIT

package rmodule_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/rmodule"
)

var va = rmodule.Float64Algebra

// MustVector builds a float64 vector from literal values.
func MustVector(t testing.TB, vs ...float64) *rmodule.Member[float.Float64] {
	t.Helper()
	m, err := va.ConstructLength(len(vs))
	if err != nil {
		t.Fatalf("ConstructLength(%d): %v", len(vs), err)
	}
	for i, v := range vs {
		m.At(i).SetValue(v)
	}
	return m
}

// MustParse builds a vector from a literal or fails the test.
func MustParse(t testing.TB, literal string) *rmodule.Member[float.Float64] {
	t.Helper()
	m, err := va.ConstructFromString(literal)
	if err != nil {
		t.Fatalf("ConstructFromString(%q): %v", literal, err)
	}
	return m
}

// MustComplexVector builds a complex vector from (re, im) pairs.
func MustComplexVector(t testing.TB, parts ...float64) *rmodule.Member[complexnum.Float64] {
	t.Helper()
	if len(parts)%2 != 0 {
		t.Fatalf("MustComplexVector: odd part count %d", len(parts))
	}
	alg := rmodule.ComplexFloat64Algebra
	m, err := alg.ConstructLength(len(parts) / 2)
	if err != nil {
		t.Fatalf("ConstructLength: %v", err)
	}
	for i := 0; i < len(parts); i += 2 {
		z := complexnum.Float64Algebra.ConstructParts(float.New(parts[i]), float.New(parts[i+1]))
		complexnum.Float64Algebra.Assign(z, m.At(i/2))
	}
	return m
}

func values(m *rmodule.Member[float.Float64]) []float64 {
	out := make([]float64, m.Length())
	for i := range out {
		out[i] = m.At(i).Value()
	}
	return out
}
