// SPDX-License-Identifier: MIT
// Package matrix: element-wise binary kernels.
//
// Every kernel validates shapes first and only then resizes the destination,
// so a failing call leaves c exactly as it was. c may alias a or b.

package matrix

import "github.com/katalvlaran/lvlalg/algorithm"

// elementwise is the shared Stage 1 (validate) / Stage 2 (broadcast) driver.
func (alg *Algebra[U, R]) elementwise(tag string, op func(x, y, z *U), a, b, c *Member[U]) error {
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}
	c.Alloc(a.rows, a.cols)
	algorithm.Transform3(op, a.data, b.data, c.data)
	return nil
}

// Add sets c = a + b.
func (alg *Algebra[U, R]) Add(a, b, c *Member[U]) error {
	return alg.elementwise(opAdd, alg.s.Add, a, b, c)
}

// Subtract sets c = a − b.
func (alg *Algebra[U, R]) Subtract(a, b, c *Member[U]) error {
	return alg.elementwise(opSub, alg.s.Subtract, a, b, c)
}

// MultiplyElements sets c to the Hadamard product of a and b.
func (alg *Algebra[U, R]) MultiplyElements(a, b, c *Member[U]) error {
	return alg.elementwise(opHadamard, alg.s.Multiply, a, b, c)
}

// DivideElements sets c[i] = a[i]/b[i] with the scalar algebra's division.
func (alg *Algebra[U, R]) DivideElements(a, b, c *Member[U]) error {
	return alg.elementwise(opDivideElements, alg.s.Divide, a, b, c)
}
