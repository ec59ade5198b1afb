// SPDX-License-Identifier: MIT

package tensor

import (
	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/katalvlaran/lvlalg/float"
	"github.com/katalvlaran/lvlalg/octonion"
	"github.com/katalvlaran/lvlalg/quad"
)

var (
	Float64Algebra         = New[float.Float64, float.Float64](float.Float64Algebra, float.Float64Algebra)
	Float128Algebra        = New[quad.Float128, quad.Float128](quad.Float128Algebra, quad.Float128Algebra)
	ComplexFloat64Algebra  = New[complexnum.Float64, float.Float64](complexnum.Float64Algebra, float.Float64Algebra)
	OctonionFloat64Algebra = New[octonion.Float64, float.Float64](octonion.Float64Algebra, float.Float64Algebra)
)
