// SPDX-License-Identifier: MIT

package tensor

import (
	"slices"

	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/rep"
)

// Member is a Cartesian tensor of scalars of type U. The zero value is a
// rank-0 tensor holding zero; its element is materialised on first access.
type Member[U any] struct {
	dims []int
	mult []int
	data []U
}

// Rank is the number of axes.
func (m *Member[U]) Rank() int { return len(m.dims) }

// Dims returns a copy of the per-axis extents.
func (m *Member[U]) Dims() []int { return slices.Clone(m.dims) }

// Alloc sets the shape. The backing store is replaced only when the element
// count changes. Keeping the shape keeps the values; any other shape leaves
// every element zero. Negative extents panic.
func (m *Member[U]) Alloc(dims ...int) {
	n := 1
	for _, d := range dims {
		if d < 0 {
			panic("tensor: Alloc: negative extent")
		}
		n *= d
	}
	reshaped := !slices.Equal(m.dims, dims)
	if reshaped {
		m.dims = slices.Clone(dims)
		m.mult = primitive.Multipliers(m.dims)
	}
	switch {
	case len(m.data) != n || m.data == nil:
		m.data = make([]U, n)
	case reshaped:
		m.PrimitiveInit()
	}
}

// Init sets the shape and zeroes every element.
func (m *Member[U]) Init(dims ...int) {
	m.Alloc(dims...)
	m.PrimitiveInit()
}

// RawData exposes the backing store, axis 0 fastest.
func (m *Member[U]) RawData() []U {
	if m.data == nil {
		m.Alloc(m.dims...)
	}
	return m.data
}

// At returns a pointer to the element at idx, which must give one coordinate
// per axis.
func (m *Member[U]) At(idx ...int) (*U, error) {
	if len(idx) != len(m.dims) {
		return nil, tensorErrorf(opAt, ErrOutOfRange)
	}
	for a, v := range idx {
		if v < 0 || v >= m.dims[a] {
			return nil, tensorErrorf(opAt, ErrOutOfRange)
		}
	}
	return &m.RawData()[primitive.Offset(idx, m.mult)], nil
}

// Set deep-copies other into m. Self-assignment is a no-op.
func (m *Member[U]) Set(other *Member[U]) {
	if m == other {
		return
	}
	m.Alloc(other.dims...)
	primitive.CopyElements(other.RawData(), m.data)
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

// String renders the tensor as a literal.
func (m *Member[U]) String() string { return rep.Format(m.ToRep()) }

// ---------- primitive.Convertible ----------

// NumDimensions returns the rank.
func (m *Member[U]) NumDimensions() int { return len(m.dims) }

// Dimension returns the extent of the given axis.
func (m *Member[U]) Dimension(axis int) int {
	switch {
	case axis < 0:
		panic("tensor: negative axis")
	case axis < len(m.dims):
		return m.dims[axis]
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
	return primitive.As(&m.RawData()[primitive.Offset(idx, m.mult)])
}

// PrimitiveInit zeroes the value in place.
func (m *Member[U]) PrimitiveInit() {
	for i := range m.data {
		primitive.As(&m.data[i]).PrimitiveInit()
	}
}

// ToRep returns the literal tree of the tensor.
func (m *Member[U]) ToRep() *rep.Tensor { return primitive.ToRep(m) }

// FromRep replaces m with t, adopting its shape. On error m is unchanged.
func (m *Member[U]) FromRep(t *rep.Tensor) error {
	if err := t.Validate(); err != nil {
		return tensorErrorf(opFromRep, err)
	}
	tmp := &Member[U]{}
	tmp.Alloc(t.Dims...)
	if err := primitive.FillFromRep(tmp, t); err != nil {
		return tensorErrorf(opFromRep, err)
	}
	*m = *tmp
	return nil
}
