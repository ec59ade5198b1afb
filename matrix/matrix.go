// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/rep"
)

// Member is a rows×cols matrix of scalars of type U stored row by row.
// The zero value is the empty 0×0 matrix.
type Member[U any] struct {
	rows, cols int
	data       []U
}

// Rows is the number of rows.
func (m *Member[U]) Rows() int { return m.rows }

// Cols is the number of columns.
func (m *Member[U]) Cols() int { return m.cols }

// Alloc sets the shape. The backing store is replaced only when the element
// count changes. Keeping the shape keeps the values; any other shape leaves
// every element zero. Negative extents panic.
func (m *Member[U]) Alloc(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic("matrix: Alloc: negative extent")
	}
	switch {
	case len(m.data) != rows*cols:
		m.data = make([]U, rows*cols)
	case rows != m.rows || cols != m.cols:
		m.PrimitiveInit()
	}
	m.rows, m.cols = rows, cols
}

// Init sets the shape and zeroes every element.
func (m *Member[U]) Init(rows, cols int) {
	m.Alloc(rows, cols)
	m.PrimitiveInit()
}

// RawData exposes the row-major backing store.
func (m *Member[U]) RawData() []U { return m.data }

// At returns a pointer to element (r, c).
func (m *Member[U]) At(r, c int) (*U, error) {
	if err := ValidateIndex(m, r, c); err != nil {
		return nil, matrixErrorf(opAt, err)
	}
	return m.at(r, c), nil
}

func (m *Member[U]) at(r, c int) *U { return &m.data[r*m.cols+c] }

// Set deep-copies other into m. Self-assignment is a no-op.
func (m *Member[U]) Set(other *Member[U]) {
	if m == other {
		return
	}
	m.Alloc(other.rows, other.cols)
	primitive.CopyElements(other.data, m.data)
}

// Duplicate returns a deep copy of m.
func (m *Member[U]) Duplicate() *Member[U] {
	d := &Member[U]{}
	d.Set(m)
	return d
}

// AccessWithOneThread reports that a Member must not be shared between
// goroutines without external locking.
func (m *Member[U]) AccessWithOneThread() bool { return true }

// String renders the matrix as a literal.
func (m *Member[U]) String() string { return rep.Format(m.ToRep()) }

// ---------- primitive.Convertible ----------

// NumDimensions returns the rank.
func (m *Member[U]) NumDimensions() int { return 2 }

// Dimension maps axis 0 to columns and axis 1 to rows.
func (m *Member[U]) Dimension(axis int) int {
	switch axis {
	case 0:
		return m.cols
	case 1:
		return m.rows
	}
	if axis < 0 {
		panic("matrix: negative axis")
	}
	return 1
}

// ComponentCount returns the number of real components.
func (m *Member[U]) ComponentCount() int {
	var u U
	return primitive.As(&u).ComponentCount()
}

// ElementAt returns the element at the given index.
func (m *Member[U]) ElementAt(idx primitive.Index) primitive.Scalar {
	return primitive.As(m.at(idx[1], idx[0]))
}

// PrimitiveInit zeroes the value in place.
func (m *Member[U]) PrimitiveInit() {
	for i := range m.data {
		primitive.As(&m.data[i]).PrimitiveInit()
	}
}

// ToRep returns the literal tree of the matrix.
func (m *Member[U]) ToRep() *rep.Tensor { return primitive.ToRep(m) }

// FromRep replaces m with a representation of rank at most 2. A rank-1
// representation becomes a single row and a rank-0 one a 1×1 matrix.
// On error m is unchanged.
func (m *Member[U]) FromRep(t *rep.Tensor) error {
	rows, cols := 1, 1
	switch t.Rank() {
	case 0:
	case 1:
		cols = t.Dims[0]
	case 2:
		cols, rows = t.Dims[0], t.Dims[1]
	default:
		return matrixErrorf(opFromRep, ErrRank)
	}
	tmp := &Member[U]{}
	tmp.Alloc(rows, cols)
	src := t
	if t.Rank() != 2 {
		src = &rep.Tensor{Dims: []int{cols, rows}, Elements: t.Elements}
	}
	if err := primitive.FillFromRep(tmp, src); err != nil {
		return matrixErrorf(opFromRep, err)
	}
	*m = *tmp
	return nil
}
