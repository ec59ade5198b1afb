// SPDX-License-Identifier: MIT

package rep

import (
	"math/big"
	"reflect"
	"slices"

	"github.com/spf13/cast"
)

// Group marks a composite element inside FromNested input:
//
//	rep.FromNested([]any{rep.Group{1, 2}, rep.Group{3, 4}})
type Group []any

// FromNested builds a Tensor from loosely typed nested Go values: slices or
// arrays of any depth whose leaves are numbers, numeric strings, *big.Float,
// *big.Int, *big.Rat or Group values. Leaf coercion goes through spf13/cast.
func FromNested(v any, opts ...Option) (*Tensor, error) {
	w := anyWalker{opts: gatherOptions(opts...)}
	shape, err := w.walk(v, 0)
	if err != nil {
		return nil, repErrorf(opFromNested, err)
	}
	slices.Reverse(shape)
	return &Tensor{Dims: shape, Elements: w.elements}, nil
}

type anyWalker struct {
	opts     Options
	elements []Element
}

func (w *anyWalker) walk(v any, depth int) ([]int, error) {
	if g, ok := v.(Group); ok {
		e := make(Element, 0, len(g))
		for _, x := range g {
			if _, nested := x.(Group); nested {
				return nil, ErrGroup
			}
			if _, isList := asList(x); isList {
				return nil, ErrGroup
			}
			c, err := w.leaf(x)
			if err != nil {
				return nil, err
			}
			e = append(e, c)
		}
		w.elements = append(w.elements, e)
		return nil, nil
	}
	list, ok := asList(v)
	if !ok {
		c, err := w.leaf(v)
		if err != nil {
			return nil, err
		}
		w.elements = append(w.elements, Element{c})
		return nil, nil
	}
	if depth >= w.opts.maxDepth {
		return nil, ErrTooDeep
	}
	var sub []int
	for i, x := range list {
		s, err := w.walk(x, depth+1)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			sub = s
		} else if !slices.Equal(sub, s) {
			return nil, ErrRagged
		}
	}
	return append([]int{len(list)}, sub...), nil
}

func (w *anyWalker) leaf(v any) (Component, error) {
	prec := w.opts.prec
	switch x := v.(type) {
	case *big.Float:
		return Component{Value: new(big.Float).SetPrec(prec).Set(x)}, nil
	case *big.Int:
		return Component{Value: new(big.Float).SetPrec(prec).SetInt(x)}, nil
	case *big.Rat:
		return Component{Value: new(big.Float).SetPrec(prec).SetRat(x)}, nil
	case nil:
		return Component{}, ErrNumber
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return Component{}, ErrNumber
	}
	return ParseNumber(s, prec)
}

func asList(v any) ([]any, bool) {
	if _, ok := v.(Group); ok {
		return nil, false
	}
	if s, err := cast.ToSliceE(v); err == nil {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
