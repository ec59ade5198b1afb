// SPDX-License-Identifier: MIT

package primitive

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeIndex is returned when any index coordinate is negative.
	ErrNegativeIndex = errors.New("primitive: negative index")

	// ErrNegativeComponent is returned for a negative component number.
	ErrNegativeComponent = errors.New("primitive: negative component")

	// ErrIndexRank is returned when an index has fewer coordinates than the rank.
	ErrIndexRank = errors.New("primitive: index shorter than rank")

	// ErrOutOfBounds is returned by unsafe access outside the shape and by
	// safe writes of a nonzero value outside the shape.
	ErrOutOfBounds = errors.New("primitive: index out of bounds")

	// ErrLengthMismatch is returned by bulk import when the array length is not
	// exactly elements*components.
	ErrLengthMismatch = errors.New("primitive: array length mismatch")

	// ErrShortBuffer is returned when a byte buffer cannot hold a value at the offset.
	ErrShortBuffer = errors.New("primitive: byte buffer too short")

	// ErrNotFinite is returned when NaN or Inf is read into an integer or big type.
	ErrNotFinite = errors.New("primitive: value is not finite")

	// ErrShape is returned when a representation does not fit the member shape.
	ErrShape = errors.New("primitive: shape mismatch")
)

func primitiveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
