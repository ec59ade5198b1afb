// SPDX-License-Identifier: MIT

package gonumio

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/primitive"
	"github.com/katalvlaran/lvlalg/rmodule"
)

func realOnly[U any]() error {
	var u U
	if primitive.As(&u).ComponentCount() != 1 {
		return ErrNotReal
	}
	return nil
}

func readAll[U any](src []U, dst []float64) {
	for i := range src {
		dst[i] = primitive.As(&src[i]).ComponentFloat64(0)
	}
}

func writeAll[U any](dst []U, at func(i int) float64) {
	for i := range dst {
		primitive.As(&dst[i]).SetComponentFloat64(0, at(i))
	}
}

// ToDense copies m into a new *mat.Dense of the same shape.
func ToDense[U any](m *matrix.Member[U]) (*mat.Dense, error) {
	if err := realOnly[U](); err != nil {
		return nil, err
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, ErrEmpty
	}
	data := make([]float64, m.Rows()*m.Cols())
	readAll(m.RawData(), data)
	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// FromDense resizes out to d's shape and copies every element.
func FromDense[U any](d mat.Matrix, out *matrix.Member[U]) error {
	if err := realOnly[U](); err != nil {
		return err
	}
	r, c := d.Dims()
	out.Init(r, c)
	writeAll(out.RawData(), func(i int) float64 { return d.At(i/c, i%c) })
	return nil
}

// ToVecDense copies v into a new *mat.VecDense.
func ToVecDense[U any](v *rmodule.Member[U]) (*mat.VecDense, error) {
	if err := realOnly[U](); err != nil {
		return nil, err
	}
	if v.Length() == 0 {
		return nil, ErrEmpty
	}
	data := make([]float64, v.Length())
	readAll(v.RawData(), data)
	return mat.NewVecDense(len(data), data), nil
}

// FromVector resizes out to v's length and copies every element.
func FromVector[U any](v mat.Vector, out *rmodule.Member[U]) error {
	if err := realOnly[U](); err != nil {
		return err
	}
	out.Init(v.Len())
	writeAll(out.RawData(), v.AtVec)
	return nil
}
