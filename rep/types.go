// SPDX-License-Identifier: MIT

package rep

import (
	"math"
	"math/big"
)

// Component is one real component of an element. A NaN component carries no
// Value; every other component has a non-nil Value (which may be ±Inf).
type Component struct {
	Value *big.Float
	NaN   bool
}

// Element is one scalar value: its components in declaration order.
type Element []Component

// Tensor is a shaped, flat list of elements. Dims[0] varies fastest.
// A rank-0 tensor has no Dims and exactly one element.
type Tensor struct {
	Dims     []int
	Elements []Element
}

// Float64Component builds a component from a float64, mapping NaN to the flag.
func Float64Component(v float64) Component {
	if math.IsNaN(v) {
		return Component{NaN: true}
	}
	return Component{Value: new(big.Float).SetFloat64(v)}
}

// BigComponent builds a component holding a copy of v.
func BigComponent(v *big.Float) Component {
	return Component{Value: new(big.Float).Copy(v)}
}

// NaNComponent builds a NaN component.
func NaNComponent() Component { return Component{NaN: true} }

// Float64 returns the component rounded to float64.
func (c Component) Float64() float64 {
	if c.NaN {
		return math.NaN()
	}
	if c.Value == nil {
		return 0
	}
	f, _ := c.Value.Float64()
	return f
}

// IsZero reports whether the component is a (signed) zero.
func (c Component) IsZero() bool {
	return !c.NaN && (c.Value == nil || c.Value.Sign() == 0)
}

// ElementCount is the product of dims; 1 for rank 0.
func ElementCount(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// Rank is the number of axes.
func (t *Tensor) Rank() int { return len(t.Dims) }

// ComponentCount is the widest element in t.
func (t *Tensor) ComponentCount() int {
	n := 0
	for _, e := range t.Elements {
		if len(e) > n {
			n = len(e)
		}
	}
	return n
}

// Validate checks that dims agree with the element count.
func (t *Tensor) Validate() error {
	for _, d := range t.Dims {
		if d < 0 {
			return repErrorf("Validate", ErrShape)
		}
	}
	if ElementCount(t.Dims) != len(t.Elements) {
		return repErrorf("Validate", ErrShape)
	}
	return nil
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	out := &Tensor{Dims: append([]int(nil), t.Dims...), Elements: make([]Element, len(t.Elements))}
	for i, e := range t.Elements {
		ne := make(Element, len(e))
		for j, c := range e {
			if c.Value != nil {
				c.Value = new(big.Float).Copy(c.Value)
			}
			ne[j] = c
		}
		out.Elements[i] = ne
	}
	return out
}
