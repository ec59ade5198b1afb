// SPDX-License-Identifier: MIT

package quad

import "math/big"

var (
	fractionMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), fractionBits), big.NewInt(1))
	hiddenBit    = new(big.Int).Lsh(big.NewInt(1), fractionBits)
)

const (
	expAllOnes = 0x7fff
	quietNaN   = 0x8000 // top fraction bit, in the 16-bit word below the exponent
)

// encodeBinary128 writes m as a big-endian IEEE binary128 bit pattern.
//
// Layout: 1 sign bit, 15 exponent bits (bias 16383), 112 fraction bits.
// NaN is written as the canonical quiet NaN.
func encodeBinary128(m *Float128, buf []byte) {
	buf = buf[:ByteCount]
	for i := range buf {
		buf[i] = 0
	}
	if m.nan {
		buf[0], buf[1], buf[2] = 0x7f, 0xff, byte(quietNaN>>8)
		return
	}
	x := &m.v
	var sign byte
	if x.Signbit() {
		sign = 0x80
	}
	switch {
	case x.IsInf():
		buf[0], buf[1] = sign|0x7f, 0xff
		return
	case x.Sign() == 0:
		buf[0] = sign
		return
	}

	mant := new(big.Float)
	e := x.MantExp(mant)
	mant.Abs(mant)
	biased := e + exponentBias - 1
	frac := new(big.Int)
	if biased <= 0 {
		// subnormal: the fraction is |x|·2^16494, an integer by construction
		a := new(big.Float).SetPrec(Precision).Abs(x)
		a.SetMantExp(a, subnormalShift)
		a.Int(frac)
		biased = 0
	} else {
		mant.SetMantExp(mant, Precision) // integer in [2^112, 2^113)
		mant.Int(frac)
		frac.Sub(frac, hiddenBit)
	}
	word := new(big.Int).Lsh(big.NewInt(int64(biased)), fractionBits)
	word.Or(word, frac)
	word.FillBytes(buf)
	buf[0] |= sign
}

// decodeBinary128 reads a big-endian IEEE binary128 bit pattern into m.
func decodeBinary128(buf []byte, m *Float128) {
	buf = buf[:ByteCount]
	neg := buf[0]&0x80 != 0
	exp := (int(buf[0]&0x7f) << 8) | int(buf[1])
	frac := new(big.Int).SetBytes(buf[2:ByteCount])

	switch exp {
	case expAllOnes:
		if frac.Sign() != 0 {
			m.setNaN()
		} else {
			m.setInf(neg)
		}
		return
	case 0:
		if frac.Sign() == 0 {
			m.setZero(neg)
			return
		}
		z := new(big.Float).SetPrec(Precision).SetInt(frac)
		z.SetMantExp(z, -subnormalShift)
		if neg {
			z.Neg(z)
		}
		m.setBig(z)
		return
	}
	frac.Or(frac, hiddenBit)
	z := new(big.Float).SetPrec(Precision).SetInt(frac)
	z.SetMantExp(z, exp-exponentBias-fractionBits)
	if neg {
		z.Neg(z)
	}
	m.setBig(z)
}
