// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/matrix"
)

func ExampleAlgebra_Invert() {
	m := matrix.Float64Algebra
	a, _ := m.ConstructFromString("[[2, 0], [0, 4]]")
	inv := m.Construct()
	if err := m.Invert(a, inv); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(inv)
	// Output: [[0.5, 0], [0, 0.25]]
}

func ExampleAlgebra_Det() {
	m := matrix.Float64Algebra
	a, _ := m.ConstructFromString("[[4, 7], [2, 6]]")
	d := float.New(0.0)
	_ = m.Det(a, d)
	fmt.Println(d.Value())
	// Output: 10
}

func ExampleAlgebra_Multiply() {
	m := matrix.Float64Algebra
	a, _ := m.ConstructFromString("[[1, 2], [3, 4]]")
	b, _ := m.ConstructFromString("[[1, 2, 3]]")
	err := m.Multiply(a, b, a)
	fmt.Println(err)
	// Output: Multiply: matrix: dimension mismatch
}
