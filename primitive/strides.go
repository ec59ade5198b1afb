// SPDX-License-Identifier: MIT

package primitive

// Multipliers returns the stride table for dims: mult[i] is the product of
// every extent before axis i, so axis 0 varies fastest.
func Multipliers(dims []int) []int {
	mult := make([]int, len(dims))
	m := 1
	for i, d := range dims {
		mult[i] = m
		m *= d
	}
	return mult
}

// Offset converts an index to a flat offset. Coordinates beyond len(mult) are
// ignored; callers validate them first.
func Offset(idx Index, mult []int) int {
	off := 0
	for i, m := range mult {
		off += idx[i] * m
	}
	return off
}

// Increment advances idx over dims, axis 0 fastest, like an odometer.
// It returns false once idx wraps back to all zeros.
func Increment(idx Index, dims []int) bool {
	for i := range dims {
		idx[i]++
		if idx[i] < dims[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}

// locate validates idx against m and reports whether it falls inside the shape.
// Coordinates past the rank are inside only when they are zero.
func locate(m Shaped, idx Index) (inside bool, err error) {
	rank := m.NumDimensions()
	if len(idx) < rank {
		return false, ErrIndexRank
	}
	inside = true
	for axis, v := range idx {
		if v < 0 {
			return false, ErrNegativeIndex
		}
		if axis < rank {
			if v >= m.Dimension(axis) {
				inside = false
			}
		} else if v != 0 {
			inside = false
		}
	}
	return inside, nil
}
