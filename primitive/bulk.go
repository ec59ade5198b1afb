// SPDX-License-Identifier: MIT

package primitive

const (
	opImport    = "Import"
	opExport    = "Export"
	opToBytes   = "ToBytes"
	opFromBytes = "FromBytes"
)

// Init zeroes every element of m in place.
func Init(m Convertible) { m.PrimitiveInit() }

// Import fills m from a flat array holding every component of every element,
// elements in axis-0-fastest order. The length must be exactly
// elements*ComponentCount(); anything else is ErrLengthMismatch and m is left
// untouched.
func Import[T Number](m Convertible, values []T) error {
	cc := m.ComponentCount()
	if cc == 0 || len(values)%cc != 0 || len(values) != ElementCount(m)*cc {
		return primitiveErrorf(opImport, ErrLengthMismatch)
	}
	k := 0
	err := eachElement(m, func(s Scalar) error {
		for c := 0; c < cc; c++ {
			write(s, c, values[k])
			k++
		}
		return nil
	})
	if err != nil {
		return primitiveErrorf(opImport, err)
	}
	return nil
}

// Export returns every component of m as a flat array, the inverse of Import.
// Integer T reports ErrNotFinite for NaN or infinite components.
func Export[T Number](m Convertible) ([]T, error) {
	cc := m.ComponentCount()
	out := make([]T, 0, ElementCount(m)*cc)
	err := eachElement(m, func(s Scalar) error {
		for c := 0; c < cc; c++ {
			v, err := read[T](s, c)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, primitiveErrorf(opExport, err)
	}
	return out, nil
}

// eachElement visits every element of m in axis-0-fastest order.
func eachElement(m Convertible, fn func(Scalar) error) error {
	dims := Shape(m)
	for _, d := range dims {
		if d == 0 {
			return nil
		}
	}
	idx := make(Index, len(dims))
	for {
		if err := fn(m.ElementAt(idx)); err != nil {
			return err
		}
		if !Increment(idx, dims) {
			return nil
		}
	}
}

// ToBytes encodes s into buf at off.
func ToBytes(s Scalar, buf []byte, off int) error {
	n := s.ByteCount()
	if off < 0 || off+n > len(buf) {
		return primitiveErrorf(opToBytes, ErrShortBuffer)
	}
	s.Encode(buf[off : off+n])
	return nil
}

// FromBytes decodes s from buf at off.
func FromBytes(s Scalar, buf []byte, off int) error {
	n := s.ByteCount()
	if off < 0 || off+n > len(buf) {
		return primitiveErrorf(opFromBytes, ErrShortBuffer)
	}
	s.Decode(buf[off : off+n])
	return nil
}

// Bytes encodes s into a fresh slice.
func Bytes(s Scalar) []byte {
	buf := make([]byte, s.ByteCount())
	s.Encode(buf)
	return buf
}
