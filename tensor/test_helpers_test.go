// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/tensor"
)

var ta = tensor.Float64Algebra

type real64 = tensor.Member[float.Float64]

// MustTensor parses a float64 tensor literal or fails the test.
func MustTensor(t testing.TB, literal string) *real64 {
	t.Helper()
	m, err := ta.ConstructFromString(literal)
	if err != nil {
		t.Fatalf("ConstructFromString(%q): %v", literal, err)
	}
	return m
}

// MustShape allocates a zero tensor or fails the test.
func MustShape(t testing.TB, dims ...int) *real64 {
	t.Helper()
	m, err := ta.ConstructShape(dims...)
	if err != nil {
		t.Fatalf("ConstructShape(%v): %v", dims, err)
	}
	return m
}

func values(m *real64) []float64 {
	out := make([]float64, len(m.RawData()))
	for i := range out {
		out[i] = m.RawData()[i].Value()
	}
	return out
}
