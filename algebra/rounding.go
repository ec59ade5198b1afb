// SPDX-License-Identifier: MIT

package algebra

import (
	"math"
	"math/big"
)

// RoundingMode selects how a value is snapped onto a grid of multiples of delta.
type RoundingMode uint8

const (
	// Truncate rounds towards zero.
	Truncate RoundingMode = iota
	// AwayFromZero rounds away from zero.
	AwayFromZero
	// Ceiling rounds towards +Inf.
	Ceiling
	// Floor rounds towards -Inf.
	Floor
	// HalfUp rounds to nearest, ties away from zero.
	HalfUp
	// HalfDown rounds to nearest, ties towards zero.
	HalfDown
	// HalfEven rounds to nearest, ties to the even neighbour.
	HalfEven
	// HalfOdd rounds to nearest, ties to the odd neighbour.
	HalfOdd
)

var roundingModeNames = [...]string{
	Truncate:     "Truncate",
	AwayFromZero: "AwayFromZero",
	Ceiling:      "Ceiling",
	Floor:        "Floor",
	HalfUp:       "HalfUp",
	HalfDown:     "HalfDown",
	HalfEven:     "HalfEven",
	HalfOdd:      "HalfOdd",
}

// String implements fmt.Stringer.
func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return "RoundingMode(?)"
}

// Valid reports whether m is one of the declared modes.
func (m RoundingMode) Valid() bool { return int(m) < len(roundingModeNames) }

// RoundFloat64 rounds x to an integral value under mode.
// NaN and infinities are returned unchanged. An unknown mode behaves like HalfEven.
func RoundFloat64(mode RoundingMode, x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	switch mode {
	case Truncate:
		return math.Trunc(x)
	case AwayFromZero:
		if x < 0 {
			return math.Floor(x)
		}
		return math.Ceil(x)
	case Ceiling:
		return math.Ceil(x)
	case Floor:
		return math.Floor(x)
	case HalfUp:
		return math.Round(x)
	case HalfDown:
		t := math.Trunc(x)
		if math.Abs(x-t) > 0.5 {
			return t + math.Copysign(1, x)
		}
		return t
	case HalfOdd:
		t := math.Trunc(x)
		d := math.Abs(x - t)
		switch {
		case d > 0.5:
			return t + math.Copysign(1, x)
		case d < 0.5:
			return t
		}
		if math.Mod(t, 2) == 0 {
			return t + math.Copysign(1, x)
		}
		return t
	default:
		return math.RoundToEven(x)
	}
}

// RoundToMultiple snaps x onto the grid delta*k under mode.
// A zero, negative or non-finite delta leaves x unchanged.
func RoundToMultiple(mode RoundingMode, delta, x float64) float64 {
	if !(delta > 0) || math.IsInf(delta, 0) {
		return x
	}
	return delta * RoundFloat64(mode, x/delta)
}

// RoundBig rounds a finite x to an integral value under mode and stores it in z.
// z may alias x. Infinite inputs are copied unchanged.
func RoundBig(mode RoundingMode, x, z *big.Float) *big.Float {
	if x.IsInf() || x.IsInt() {
		return z.Set(x)
	}
	prec := x.Prec()
	if prec < 64 {
		prec = 64
	}
	ti, _ := x.Int(nil) // truncates towards zero
	t := new(big.Float).SetPrec(prec).SetInt(ti)
	frac := new(big.Float).SetPrec(prec).Sub(x, t)
	frac.Abs(frac)
	half := big.NewFloat(0.5)
	step := big.NewFloat(1)
	if x.Sign() < 0 {
		step.Neg(step)
	}
	away := false
	switch mode {
	case Truncate:
	case AwayFromZero:
		away = true
	case Ceiling:
		away = x.Sign() > 0
	case Floor:
		away = x.Sign() < 0
	default:
		c := frac.Cmp(half)
		switch {
		case c > 0:
			away = true
		case c == 0:
			odd := ti.Bit(0) == 1
			switch mode {
			case HalfUp:
				away = true
			case HalfDown:
			case HalfOdd:
				away = !odd
			default:
				away = odd
			}
		}
	}
	if away {
		t.Add(t, step)
	}
	z.SetPrec(x.Prec())
	return z.Set(t)
}
