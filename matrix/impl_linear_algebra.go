// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over Dense: element-wise
// addition and subtraction, scalar scaling, matrix multiplication, transpose
// and their in-place variants. All kernels perform strict fail-fast
// validation and panic with a wrapped sentinel on dimension mismatches.
//
// Purpose:
//   - Define the canonical kernels and the operation tags used in panics.
//   - Keep every result freshly allocated: operands are never mutated by the
//     package functions; the *Assign methods replace their receiver wholesale.
//
// Notes:
//   - Preconditions are checked by the central validators (validators.go)
//     and converted into panics by mustValid.

package matrix

import "fmt"

// Operation name constants for unified panic wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opDot       = "Dot"
	opTranspose = "Transpose"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise computes out[k] = f(a[k], b[k]) over the flat buffers.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Internal helper for Add/Sub/Hadamard to share validation and allocation.
//
// Determinism:
//   - Single flat walk 0..(r*c−1), i.e. linear (row-major) order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func elementwise[T Scalar](a, b *Dense[T], f func(x, y T) T, opTag string) *Dense[T] {
	mustValid(opTag, ValidateBinarySameShape(a, b))

	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range a.data { // deterministic 0..n-1
		res.data[idx] = f(a.data[idx], b.data[idx])
	}

	return res
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat loop, C[k] = A[k] + B[k].
//
// Inputs:
//   - a: left operand.
//   - b: right operand with the same shape as a.
//
// Returns:
//   - *Dense: a new matrix with C[i,j] = A[i,j] + B[i,j].
//
// Errors (panic):
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Scalar](a, b *Dense[T]) *Dense[T] {
	return elementwise(a, b, func(x, y T) T { return x + y }, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same preconditions and complexity as Add.
func Sub[T Scalar](a, b *Dense[T]) *Dense[T] {
	return elementwise(a, b, func(x, y T) T { return x - y }, opSub)
}

// Hadamard computes the element-wise product (a ⊙ b) with a fresh Dense result.
// Same preconditions and complexity as Add.
func Hadamard[T Scalar](a, b *Dense[T]) *Dense[T] {
	return elementwise(a, b, func(x, y T) T { return x * y }, opHadamard)
}

// Scale returns a new matrix whose elements are k * m[i,j].
// The original matrix is never mutated; k = 0 yields an explicit zero matrix
// with the same shape.
//
// Errors (panic):
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Scalar](k T, m *Dense[T]) *Dense[T] {
	mustValid(opScale, ValidateNotNil(m))

	res := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = k * v
	}

	return res
}

// ScaleBy is the commutative form of Scale: m * k == k * m.
func ScaleBy[T Scalar](m *Dense[T], k T) *Dense[T] { return Scale(k, m) }

// Dot returns the dot product of two equal-length vectors, accumulated left
// to right from the zero value.
// Panics with ErrDimensionMismatch when the lengths differ.
func Dot[T Scalar](x, y []T) T {
	mustValid(opDot, ValidateVecLen(x, y))

	var sum T
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; C[i,j] is the dot product of row i of A
//     and column j of B, accumulated left to right from zero.
//
// Behavior highlights:
//   - Naive triple loop, no tiling; one allocation for C.
//   - Shape rule is the conventional one, so any (r×n)·(n×c) pair is accepted.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new matrix C with shape (r × c).
//
// Errors (panic):
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→j→k order; the accumulation order of every cell is fixed.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Scalar](a, b *Dense[T]) *Dense[T] {
	mustValid(opMul, ValidateMulCompatible(a, b))

	rows, inner, cols := a.r, a.c, b.c
	res := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}

	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				// a[i,k] at i*inner+k, b[k,j] at k*cols+j
				sum += a.data[i*inner+k] * b.data[k*cols+j]
			}
			res.data[i*cols+j] = sum
		}
	}

	return res
}

// MatVec computes y = m·x for a vector x of length Cols().
// Panics with ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(r*c).
func MatVec[T Scalar](m *Dense[T], x []T) []T {
	mustValid(opMatVec, ValidateNotNil(m))
	if len(x) != m.c {
		panic(matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch)))
	}

	y := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		y[i] = Dot(m.data[i*m.c:(i+1)*m.c], x)
	}

	return y
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Complexity: O(r*c).
func Transpose[T Scalar](m *Dense[T]) *Dense[T] {
	mustValid(opTranspose, ValidateNotNil(m))

	rows, cols := m.r, m.c
	res := &Dense[T]{r: cols, c: rows, data: make([]T, len(m.data))}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// ---------- In-place variants ----------
//
// Each *Assign method is equivalent to replacing the receiver with the result
// of the corresponding package function. The receiver gets a new backing
// buffer, so values obtained earlier via Clone, Row, Col or RawData are
// unaffected.

// AddAssign replaces m with Add(m, b).
func (m *Dense[T]) AddAssign(b *Dense[T]) { m.replace(Add(m, b)) }

// SubAssign replaces m with Sub(m, b).
func (m *Dense[T]) SubAssign(b *Dense[T]) { m.replace(Sub(m, b)) }

// ScaleAssign replaces m with Scale(k, m).
func (m *Dense[T]) ScaleAssign(k T) { m.replace(Scale(k, m)) }

// MulAssign replaces m with Mul(m, b). The receiver takes the product's
// shape (m.Rows() × b.Cols()), which differs from the original when b is
// not square.
func (m *Dense[T]) MulAssign(b *Dense[T]) { m.replace(Mul(m, b)) }

// replace swaps the receiver's contents for res.
func (m *Dense[T]) replace(res *Dense[T]) { *m = *res }
