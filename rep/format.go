// SPDX-License-Identifier: MIT

package rep

import "strings"

// Format renders t in the literal grammar Parse accepts. Components print with
// the shortest decimal that reads back to the same value at their precision.
func Format(t *Tensor) string {
	if t == nil || t.Validate() != nil {
		return "<invalid>"
	}
	var sb strings.Builder
	if t.Rank() == 0 {
		writeElement(&sb, t.Elements[0])
		return sb.String()
	}
	mult := make([]int, t.Rank())
	m := 1
	for i, d := range t.Dims {
		mult[i] = m
		m *= d
	}
	writeAxis(&sb, t, mult, t.Rank()-1, 0)
	return sb.String()
}

func writeAxis(sb *strings.Builder, t *Tensor, mult []int, axis, offset int) {
	sb.WriteByte('[')
	for i := 0; i < t.Dims[axis]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if axis == 0 {
			writeElement(sb, t.Elements[offset+i])
		} else {
			writeAxis(sb, t, mult, axis-1, offset+i*mult[axis])
		}
	}
	sb.WriteByte(']')
}

func writeElement(sb *strings.Builder, e Element) {
	if len(e) == 1 {
		sb.WriteString(FormatComponent(e[0]))
		return
	}
	sb.WriteByte('{')
	for i, c := range e {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatComponent(c))
	}
	sb.WriteByte('}')
}

// FormatComponent renders a single component.
func FormatComponent(c Component) string {
	switch {
	case c.NaN:
		return "NaN"
	case c.Value == nil:
		return "0"
	case c.Value.IsInf():
		if c.Value.Signbit() {
			return "-Inf"
		}
		return "+Inf"
	}
	return c.Value.Text('g', -1)
}
