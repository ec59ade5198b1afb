// SPDX-License-Identifier: MIT

// Package algorithm holds the element-level machinery shared by every
// container algebra: shape gates, the Transform family that broadcasts a
// scalar operation over raw backing stores, sequence predicates, the outer
// product and a scaled norm.
//
// Functions here operate on []U slices and take the scalar algebra (or just
// the capability they need) as an argument, so one implementation serves
// vectors, matrices and tensors over any number system. Slice lengths are
// checked by callers after shape validation; a mismatch at this level is a
// programming error and panics.
package algorithm
