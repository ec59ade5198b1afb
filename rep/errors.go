// SPDX-License-Identifier: MIT

package rep

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned when a literal is not well formed.
	ErrSyntax = errors.New("rep: malformed literal")

	// ErrNumber is returned when a leaf cannot be read as a number.
	ErrNumber = errors.New("rep: invalid number")

	// ErrRagged is returned when sibling lists differ in shape.
	ErrRagged = errors.New("rep: ragged nesting")

	// ErrTooDeep is returned when nesting exceeds the configured depth.
	ErrTooDeep = errors.New("rep: nesting too deep")

	// ErrGroup is returned when a composite group holds anything but numbers.
	ErrGroup = errors.New("rep: composite group must hold numbers only")

	// ErrShape is returned when dims and element count disagree.
	ErrShape = errors.New("rep: shape does not match element count")
)

func repErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
