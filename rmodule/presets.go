// SPDX-License-Identifier: MIT

package rmodule

import (
	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/quad"
	"github.com/katalvlaran/lvlalg/quaternion"
)

// Ready-made vector algebras over the built-in number systems.
var (
	Float32Algebra           = New[float.Float32, float.Float32](float.Float32Algebra, float.Float32Algebra)
	Float64Algebra           = New[float.Float64, float.Float64](float.Float64Algebra, float.Float64Algebra)
	Float128Algebra          = New[quad.Float128, quad.Float128](quad.Float128Algebra, quad.Float128Algebra)
	ComplexFloat64Algebra    = New[complexnum.Float64, float.Float64](complexnum.Float64Algebra, float.Float64Algebra)
	QuaternionFloat64Algebra = New[quaternion.Float64, float.Float64](quaternion.Float64Algebra, float.Float64Algebra)
)
