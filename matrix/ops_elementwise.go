// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison of two Dense values (exact and tolerance based).
//   - Keep loops deterministic: a single flat walk over the row-major buffers.
//
// Comparisons never panic on a shape mismatch: differently shaped matrices
// are simply not equal.

package matrix

import "math"

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c), early exit on the first difference.
func Equal[T Scalar](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns false when either operand is nil or the shapes differ.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN never compares close, not even to NaN.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[T Scalar](a, b *Dense[T], rtol, atol float64) bool {
	if a == nil || b == nil || ValidateSameShape(a, b) != nil {
		return false
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var av, bv float64
	for idx := range a.data {
		av, bv = float64(a.data[idx]), float64(b.data[idx])
		// Negated form so that NaN differences fail the check.
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false
		}
	}

	return true
}
