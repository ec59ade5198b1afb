// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/quad"
	"github.com/katalvlaran/lvlalg/quaternion"
)

// Ready-made matrix algebras with default options.
var (
	Float32Algebra           = New[float.Float32, float.Float32](float.Float32Algebra, float.Float32Algebra)
	Float64Algebra           = New[float.Float64, float.Float64](float.Float64Algebra, float.Float64Algebra)
	Float128Algebra          = New[quad.Float128, quad.Float128](quad.Float128Algebra, quad.Float128Algebra)
	ComplexFloat64Algebra    = New[complexnum.Float64, float.Float64](complexnum.Float64Algebra, float.Float64Algebra)
	QuaternionFloat64Algebra = New[quaternion.Float64, float.Float64](quaternion.Float64Algebra, float.Float64Algebra)
)

var (
	_ algebra.Norm[Member[float.Float64], float.Float64]      = Float64Algebra
	_ algebra.Tolerance[Member[float.Float64], float.Float64] = Float64Algebra
)
