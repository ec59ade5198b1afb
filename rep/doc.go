// SPDX-License-Identifier: MIT

// Package rep is the intermediate representation members are serialised
// through: a shape plus a flat list of elements, each element a list of
// arbitrary precision components.
//
// Literal grammar (Parse / Format):
//
//	scalar      3.5   -1e300   NaN   +Inf   -Inf
//	composite   {1, 2}          one element, components in order
//	vector      [1, 2, 3]
//	matrix      [[1, 2], [3, 4]]  innermost list runs over axis 0 (columns)
//	tensor      [[[...]]]          any depth, every sub-list the same length
//
// The innermost list always varies fastest, so the flat element order of a
// Tensor matches the axis-0-fastest layout every lvlalg container uses.
//
// Parsing rides on gopkg.in/yaml.v3 flow syntax: composite braces are
// rewritten into a tagged flow sequence before decoding, and the resulting
// yaml.Node tree is walked to recover the shape.
package rep

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("lvlalg.rep")
}
