// SPDX-License-Identifier: MIT

package rep

const (
	// DefaultPrecision is the mantissa size, in bits, of parsed components.
	// It matches the 113-bit significand of the widest built-in real type.
	DefaultPrecision uint = 113

	// DefaultMaxDepth bounds how many list levels a literal may nest.
	DefaultMaxDepth = 16
)

// Option configures Parse and FromNested.
type Option func(*Options)

// Options holds parser settings. Fields are unexported; use With* constructors.
type Options struct {
	prec     uint
	maxDepth int
}

// WithPrecision sets the precision of parsed components. Panics on zero.
func WithPrecision(bits uint) Option {
	if bits == 0 {
		panic("rep: WithPrecision(0): precision must be positive")
	}
	return func(o *Options) { o.prec = bits }
}

// WithMaxDepth bounds nesting depth. Panics on values below 1.
func WithMaxDepth(depth int) Option {
	if depth < 1 {
		panic("rep: WithMaxDepth: depth must be >= 1")
	}
	return func(o *Options) { o.maxDepth = depth }
}

func gatherOptions(opts ...Option) Options {
	o := Options{prec: DefaultPrecision, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
