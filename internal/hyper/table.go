// SPDX-License-Identifier: MIT

package hyper

// Table is a basis multiplication table. Entry [i][j] encodes e_i·e_j as
// ±(k+1) for ±e_k, so the identity e_1·e_1 = -e_0 is stored as -1.
type Table [][]int

// Octonions is the octonion table. Its top-left 4×4 block is the quaternion
// table and its top-left 2×2 block is the complex one.
var Octonions = Table{
	{+1, +2, +3, +4, +5, +6, +7, +8},
	{+2, -1, +4, -3, +6, -5, -8, +7},
	{+3, -4, -1, +2, +7, +8, -5, -6},
	{+4, +3, -2, -1, +8, -7, +6, -5},
	{+5, -6, -7, -8, -1, +2, +3, +4},
	{+6, +5, -8, +7, -2, -1, -4, +3},
	{+7, +8, +5, -6, -3, +4, -1, -2},
	{+8, -7, +6, +5, -4, -3, +2, -1},
}

// Quaternions is the top-left block of Octonions.
var Quaternions = Octonions.Block(4)

// Block returns the top-left n×n sub-table.
func (t Table) Block(n int) Table {
	b := make(Table, n)
	for i := range b {
		b[i] = t[i][:n:n]
	}
	return b
}

// Multiply sets c = a·b under table t. The product is accumulated in a
// scratch slice, so c may alias a or b.
func (o Ops[R]) Multiply(t Table, a, b, c []R) {
	n := len(t)
	acc := make([]R, n)
	o.Zero(acc)
	p := new(R)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			o.r.Multiply(&a[i], &b[j], p)
			k := t[i][j]
			if k > 0 {
				o.r.Add(&acc[k-1], p, &acc[k-1])
			} else {
				o.r.Subtract(&acc[-k-1], p, &acc[-k-1])
			}
		}
	}
	o.Copy(acc, c)
}
