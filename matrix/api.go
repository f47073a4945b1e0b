// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate accumulators.
func ZerosLike[T Scalar](m *Dense[T]) *Dense[T] {
	mustValid("ZerosLike", ValidateNotNil(m))

	return NewZeros[T](m.r, m.c)
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
// Panics with ErrDimensionMismatch otherwise.
func IdentityLike[T Scalar](m *Dense[T]) *Dense[T] {
	mustValid("IdentityLike", ValidateNotNil(m))
	if m.r != m.c {
		panic(matrixErrorf("IdentityLike", ErrDimensionMismatch))
	}

	return NewIdentity[T](m.r)
}

// Sum is an alias for Add: element-wise a + b.
func Sum[T Scalar](a, b *Dense[T]) *Dense[T] { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Scalar](a, b *Dense[T]) *Dense[T] { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Scalar](a, b *Dense[T]) *Dense[T] { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E Scalar](m *Dense[E]) *Dense[E] { return Transpose(m) }
