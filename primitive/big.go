// SPDX-License-Identifier: MIT

package primitive

import "math/big"

// bigPrec is the working precision used when a caller hands in a value with
// no precision of its own (rationals, integers).
const bigPrec = 128

// GetBigFloat stores component c at idx into dst (unsafe flavour).
// NaN components report ErrNotFinite; infinities are representable.
func GetBigFloat(m Convertible, idx Index, c int, dst *big.Float) error {
	s, err := element(m, idx, c, false)
	if err != nil {
		return primitiveErrorf(opGet, err)
	}
	if s.ComponentBig(c, dst) {
		return primitiveErrorf(opGet, ErrNotFinite)
	}
	return nil
}

// SetBigFloat writes v into component c at idx (unsafe flavour).
func SetBigFloat(m Convertible, idx Index, c int, v *big.Float) error {
	s, err := element(m, idx, c, false)
	if err != nil {
		return primitiveErrorf(opSet, err)
	}
	s.SetComponentBig(c, v)
	return nil
}

// SafeGetBigFloat is GetBigFloat that reads zero outside the shape.
func SafeGetBigFloat(m Convertible, idx Index, c int, dst *big.Float) error {
	s, err := element(m, idx, c, true)
	if err != nil {
		return primitiveErrorf(opSafeGet, err)
	}
	if s == nil {
		dst.SetInt64(0)
		return nil
	}
	if s.ComponentBig(c, dst) {
		return primitiveErrorf(opSafeGet, ErrNotFinite)
	}
	return nil
}

// SafeSetBigFloat is SetBigFloat with safe-flavour bounds.
func SafeSetBigFloat(m Convertible, idx Index, c int, v *big.Float) error {
	s, err := element(m, idx, c, true)
	if err != nil {
		return primitiveErrorf(opSafeSet, err)
	}
	if s == nil {
		if v.Sign() == 0 {
			return nil
		}
		return primitiveErrorf(opSafeSet, ErrOutOfBounds)
	}
	s.SetComponentBig(c, v)
	return nil
}

// GetBigInt stores component c at idx, truncated towards zero, into dst.
func GetBigInt(m Convertible, idx Index, c int, dst *big.Int) error {
	f := new(big.Float)
	if err := GetBigFloat(m, idx, c, f); err != nil {
		return err
	}
	if f.IsInf() {
		return primitiveErrorf(opGet, ErrNotFinite)
	}
	f.Int(dst)
	return nil
}

// SetBigInt writes an integer into component c at idx.
func SetBigInt(m Convertible, idx Index, c int, v *big.Int) error {
	return SetBigFloat(m, idx, c, intToFloat(v))
}

// SafeGetBigInt is GetBigInt with safe-flavour bounds.
func SafeGetBigInt(m Convertible, idx Index, c int, dst *big.Int) error {
	f := new(big.Float)
	if err := SafeGetBigFloat(m, idx, c, f); err != nil {
		return err
	}
	if f.IsInf() {
		return primitiveErrorf(opSafeGet, ErrNotFinite)
	}
	f.Int(dst)
	return nil
}

// SafeSetBigInt is SetBigInt with safe-flavour bounds.
func SafeSetBigInt(m Convertible, idx Index, c int, v *big.Int) error {
	return SafeSetBigFloat(m, idx, c, intToFloat(v))
}

func intToFloat(v *big.Int) *big.Float {
	prec := uint(v.BitLen())
	if prec < bigPrec {
		prec = bigPrec
	}
	return new(big.Float).SetPrec(prec).SetInt(v)
}
