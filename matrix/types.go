// SPDX-License-Identifier: MIT

// Package matrix: scalar constraint and shape helper types.
// This file intentionally contains ONLY the type vocabulary shared by the
// dense storage, the arithmetic kernels and the validators. Errors and
// render options live in dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the element constraint for Dense.
// Any type in the set supports the capability set required by the
// arithmetic kernels: +, -, * and a zero value that is the additive identity.
//
// Notes:
//   - Integer scalars wrap on overflow exactly like plain Go arithmetic.
//   - Floating-point sums are not bit-exact associative; kernels fix the
//     accumulation order so results are reproducible run to run.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Shaped is the read-only shape surface shared by every matrix value.
// Validators accept Shaped so they stay independent of the scalar type.
type Shaped interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
}

// Shape is a (rows, cols) pair used in diagnostics.
type Shape struct {
	Rows int // number of rows (>= 0)
	Cols int // number of columns (>= 0)
}

// String renders the shape as "<rows>x<cols>".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// shapeOf packs the dimensions of m into a Shape.
func shapeOf(m Shaped) Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }
