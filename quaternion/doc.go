// SPDX-License-Identifier: MIT

// Package quaternion is the quaternion number system over a generic real
// algebra. Multiplication is the Hamilton product with i·j = k, j·k = i and
// k·i = j; it does not commute, so Divide(a, b) multiplies a by b⁻¹ on the
// right.
//
// Functions of one variable such as Exp, Log and the trigonometric family
// are evaluated in the complex plane spanned by 1 and the unit imaginary
// direction of the argument, then mapped back. A purely real argument uses
// i as that direction, so Log(-1) = π·i.
package quaternion
