// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the matrix algebra.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options are fixed when an Algebra is built; there is no global state.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting enables partial pivoting in the LU factorisation behind
	// Det and Invert. Without it a zero leading pivot makes a regular matrix
	// look singular.
	DefaultPivoting = true

	// DefaultExpTerms bounds the Taylor series evaluated by Exp after the
	// argument has been scaled below one half.
	DefaultExpTerms = 64
)

const panicExpTermsInvalid = "matrix: WithExpTerms: terms must be >= 1"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	pivoting bool // DefaultPivoting
	expTerms int  // DefaultExpTerms
}

// WithPivoting turns partial pivoting on or off.
//
// Behavior highlights:
//   - Pivoting picks the remaining row whose leading element has the largest
//     norm, which keeps LU stable and finds a usable pivot whenever one exists.
//   - With pivoting off the factorisation is plain Doolittle; the result is
//     deterministic for a given input in both modes.
func WithPivoting(on bool) Option {
	return func(o *Options) { o.pivoting = on }
}

// WithExpTerms sets the maximum number of Taylor terms used by Exp.
// Panics with a stable message when terms < 1 (programmer error).
func WithExpTerms(terms int) Option {
	if terms < 1 {
		panic(panicExpTermsInvalid)
	}
	return func(o *Options) { o.expTerms = terms }
}

// gatherOptions applies user setters on top of the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivoting: DefaultPivoting,
		expTerms: DefaultExpTerms,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	return o
}
