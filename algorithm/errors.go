// SPDX-License-Identifier: MIT

package algorithm

import "errors"

// ErrShapeMismatch is returned when aggregates differ in rank or in the extent
// of some axis.
var ErrShapeMismatch = errors.New("algorithm: shape mismatch")

const panicLength = "algorithm: slice length mismatch"
