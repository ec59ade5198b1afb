// SPDX-License-Identifier: MIT

package primitive

import (
	"math/big"
	"slices"

	"github.com/katalvlaran/lvlalg/rep"
)

const (
	opFromRep = "FromRep"
)

// ElementToRep captures every component of s.
func ElementToRep(s Scalar) rep.Element {
	e := make(rep.Element, s.ComponentCount())
	for c := range e {
		f := new(big.Float)
		if s.ComponentBig(c, f) {
			e[c] = rep.NaNComponent()
			continue
		}
		e[c] = rep.Component{Value: f}
	}
	return e
}

// ElementFromRep writes e into s with safe-set semantics: components s does not
// have must be zero, components e does not provide are zeroed.
func ElementFromRep(s Scalar, e rep.Element) error {
	cc := s.ComponentCount()
	for c := cc; c < len(e); c++ {
		if !e[c].IsZero() {
			return primitiveErrorf(opFromRep, ErrOutOfBounds)
		}
	}
	s.PrimitiveInit()
	for c := 0; c < cc && c < len(e); c++ {
		switch {
		case e[c].NaN:
			s.SetComponentNaN(c)
		case e[c].Value != nil:
			s.SetComponentBig(c, e[c].Value)
		}
	}
	return nil
}

// ToRep captures m's shape and every element.
func ToRep(m Convertible) *rep.Tensor {
	t := &rep.Tensor{Dims: Shape(m)}
	t.Elements = make([]rep.Element, 0, ElementCount(m))
	_ = eachElement(m, func(s Scalar) error {
		t.Elements = append(t.Elements, ElementToRep(s))
		return nil
	})
	return t
}

// FillFromRep copies t into m, which must already have t's shape.
// Every check runs before the first write, so on error m is unchanged.
func FillFromRep(m Convertible, t *rep.Tensor) error {
	if err := t.Validate(); err != nil {
		return primitiveErrorf(opFromRep, err)
	}
	if !slices.Equal(Shape(m), t.Dims) {
		return primitiveErrorf(opFromRep, ErrShape)
	}
	for _, e := range t.Elements {
		for c := m.ComponentCount(); c < len(e); c++ {
			if !e[c].IsZero() {
				return primitiveErrorf(opFromRep, ErrOutOfBounds)
			}
		}
	}
	k := 0
	return eachElement(m, func(s Scalar) error {
		err := ElementFromRep(s, t.Elements[k])
		k++
		return err
	})
}

// ParseScalar reads a rank-0 literal such as "2.5" or "{1, -1}" into s.
func ParseScalar(s Scalar, literal string) error {
	t, err := rep.Parse(literal)
	if err != nil {
		return primitiveErrorf(opFromRep, err)
	}
	if t.Rank() != 0 {
		return primitiveErrorf(opFromRep, ErrShape)
	}
	return ElementFromRep(s, t.Elements[0])
}
