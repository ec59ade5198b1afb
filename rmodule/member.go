// SPDX-License-Identifier: MIT

package rmodule

import (
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/rep"
)

// Member is a vector of scalars of type U. The zero value has length 0.
type Member[U any] struct {
	data []U
}

// Length is the number of elements.
func (m *Member[U]) Length() int { return len(m.data) }

// Alloc sets the length to n. The backing store is replaced only when the
// length changes; new elements are zero.
func (m *Member[U]) Alloc(n int) {
	if n < 0 {
		panic("rmodule: Alloc: negative length")
	}
	if len(m.data) != n {
		m.data = make([]U, n)
	}
}

// Init sets the length to n and zeroes every element.
func (m *Member[U]) Init(n int) {
	m.Alloc(n)
	m.PrimitiveInit()
}

// RawData exposes the backing store.
func (m *Member[U]) RawData() []U { return m.data }

// At returns a pointer to element i. It panics when i is out of range.
func (m *Member[U]) At(i int) *U { return &m.data[i] }

// Set deep-copies other into m. Self-assignment is a no-op.
func (m *Member[U]) Set(other *Member[U]) {
	if m == other {
		return
	}
	m.Alloc(other.Length())
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

// String renders the vector as a literal.
func (m *Member[U]) String() string { return rep.Format(m.ToRep()) }

// ---------- primitive.Convertible ----------

// NumDimensions returns the rank.
func (m *Member[U]) NumDimensions() int { return 1 }

// Dimension returns the extent of the given axis.
func (m *Member[U]) Dimension(axis int) int {
	switch {
	case axis < 0:
		panic("rmodule: negative axis")
	case axis == 0:
		return len(m.data)
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
	return primitive.As(&m.data[idx[0]])
}

// PrimitiveInit zeroes the value in place.
func (m *Member[U]) PrimitiveInit() {
	for i := range m.data {
		primitive.As(&m.data[i]).PrimitiveInit()
	}
}

// ToRep returns the literal tree of the vector.
func (m *Member[U]) ToRep() *rep.Tensor { return primitive.ToRep(m) }

// FromRep replaces m with a rank-1 representation. On error m is unchanged.
func (m *Member[U]) FromRep(t *rep.Tensor) error {
	if t.Rank() != 1 {
		return rmoduleErrorf(opFromRep, ErrRank)
	}
	tmp := &Member[U]{}
	tmp.Alloc(t.Dims[0])
	if err := primitive.FillFromRep(tmp, t); err != nil {
		return rmoduleErrorf(opFromRep, err)
	}
	m.data = tmp.data
	return nil
}
