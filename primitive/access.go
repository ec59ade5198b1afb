// SPDX-License-Identifier: MIT

package primitive

import (
	"math"
	"math/big"

	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

// Number is every Go type component values can be read into or written from.
type Number interface {
	constraints.Integer | constraints.Float
}

const (
	opGet     = "Get"
	opSet     = "Set"
	opSafeGet = "SafeGet"
	opSafeSet = "SafeSet"
)

// Get reads component c of the element at idx as T (unsafe flavour).
// Integer targets truncate towards zero and saturate at T's range.
//
// Errors: ErrNegativeIndex, ErrNegativeComponent, ErrIndexRank,
// ErrOutOfBounds, ErrNotFinite (integer T only).
func Get[T Number](m Convertible, idx Index, c int) (T, error) {
	s, err := element(m, idx, c, false)
	if err != nil {
		return 0, primitiveErrorf(opGet, err)
	}
	v, err := read[T](s, c)
	if err != nil {
		return 0, primitiveErrorf(opGet, err)
	}
	return v, nil
}

// Set writes v into component c of the element at idx (unsafe flavour).
func Set[T Number](m Convertible, idx Index, c int, v T) error {
	s, err := element(m, idx, c, false)
	if err != nil {
		return primitiveErrorf(opSet, err)
	}
	write(s, c, v)
	return nil
}

// SafeGet reads component c at idx, returning zero anywhere outside the
// member's shape or component count.
func SafeGet[T Number](m Convertible, idx Index, c int) (T, error) {
	s, err := element(m, idx, c, true)
	if err != nil {
		return 0, primitiveErrorf(opSafeGet, err)
	}
	if s == nil {
		return 0, nil
	}
	v, err := read[T](s, c)
	if err != nil {
		return 0, primitiveErrorf(opSafeGet, err)
	}
	return v, nil
}

// SafeSet writes v into component c at idx. Outside the shape or component
// count a zero v is silently dropped and any other v is ErrOutOfBounds.
func SafeSet[T Number](m Convertible, idx Index, c int, v T) error {
	s, err := element(m, idx, c, true)
	if err != nil {
		return primitiveErrorf(opSafeSet, err)
	}
	if s == nil {
		if v == 0 {
			return nil
		}
		return primitiveErrorf(opSafeSet, ErrOutOfBounds)
	}
	write(s, c, v)
	return nil
}

// SetAny writes a loosely typed value (string, any Go number, *big.Float,
// *big.Int, *big.Rat) into component c at idx with unsafe-flavour bounds.
func SetAny(m Convertible, idx Index, c int, v any) error {
	switch x := v.(type) {
	case *big.Float:
		return SetBigFloat(m, idx, c, x)
	case *big.Int:
		return SetBigInt(m, idx, c, x)
	case *big.Rat:
		return SetBigFloat(m, idx, c, new(big.Float).SetPrec(bigPrec).SetRat(x))
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return primitiveErrorf(opSet, ErrNotFinite)
	}
	return Set(m, idx, c, f)
}

// element resolves idx and validates c. In safe mode a nil Scalar with a nil
// error means "outside, treat as zero".
func element(m Convertible, idx Index, c int, safe bool) (Scalar, error) {
	if c < 0 {
		return nil, ErrNegativeComponent
	}
	inside, err := locate(m, idx)
	if err != nil {
		return nil, err
	}
	if !inside {
		if safe {
			return nil, nil
		}
		return nil, ErrOutOfBounds
	}
	if safe && c >= m.ComponentCount() {
		return nil, nil
	}
	return m.ElementAt(idx), nil
}

func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

func read[T Number](s Scalar, c int) (T, error) {
	if isFloat[T]() {
		return T(s.ComponentFloat64(c)), nil
	}
	f := new(big.Float)
	if s.ComponentBig(c, f) || f.IsInf() {
		return 0, ErrNotFinite
	}
	i, _ := f.Int(nil)
	return fromBigInt[T](i), nil
}

func write[T Number](s Scalar, c int, v T) {
	if isFloat[T]() {
		s.SetComponentFloat64(c, float64(v))
		return
	}
	f := new(big.Float).SetPrec(64)
	if isSigned[T]() {
		f.SetInt64(int64(v))
	} else {
		f.SetUint64(uint64(v))
	}
	s.SetComponentBig(c, f)
}

// fromBigInt converts with saturation at T's bounds.
func fromBigInt[T Number](i *big.Int) T {
	if isSigned[T]() {
		bits := intBits[T]()
		lim := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		var hi, lo int64 = math.MaxInt64, math.MinInt64
		if i.Cmp(lim) >= 0 {
			return T(hi >> (64 - bits))
		}
		if i.Cmp(lim.Neg(lim)) <= 0 {
			return T(lo >> (64 - bits))
		}
		return T(i.Int64())
	}
	if i.Sign() < 0 {
		return 0
	}
	bits := intBits[T]()
	if i.BitLen() > bits {
		var hi uint64 = math.MaxUint64
		return T(hi >> (64 - bits))
	}
	return T(i.Uint64())
}

// intBits counts T's width by doubling a one bit until it overflows to zero.
// Only meaningful for integer T.
func intBits[T Number]() int {
	var probe T = 1
	n := 0
	for x := probe; x != 0; x += x {
		n++
	}
	return n
}
