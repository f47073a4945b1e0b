// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, nil and index checks.
//  - Keep kernels minimal by delegating every precondition here.
//  - Return wrapped sentinel errors (never panic) so callers can pre-check
//    operands; the kernels turn a non-nil result into a panic via mustValid.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mustValid panics with err wrapped under tag when err is non-nil.
// It is the single place where a failed precondition becomes a panic.
func mustValid(tag string, err error) {
	if err != nil {
		panic(matrixErrorf(tag, err))
	}
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Scalar](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateDims rejects negative dimensions and shapes whose element count
// rows*cols does not fit in an int.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrBadShape)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d): overflow", rows, cols), ErrBadShape)
	}

	return nil
}

// ValidateShape checks that rows and cols are non-negative, that rows*cols
// does not overflow int, and that a backing slice of length n fits them
// exactly (n == rows*cols).
//
// Errors: ErrBadShape.
// Complexity: O(1).
func ValidateShape(rows, cols, n int) error {
	if err := validateDims(rows, cols); err != nil {
		return err
	}
	if n != rows*cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape(%d,%d): %d values", rows, cols, n), ErrBadShape,
		)
	}

	return nil
}

// ValidateIndex checks 0 ≤ row < Rows() and 0 ≤ col < Cols().
// Assumes m is not nil (caller must ensure).
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(m Shaped, row, col int) error {
	if row < 0 || row >= m.Rows() {
		return validatorErrorf("ValidateIndex: Row", ErrOutOfRange)
	}
	if col < 0 || col >= m.Cols() {
		return validatorErrorf("ValidateIndex: Column", ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape[T Scalar](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows with both inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Scalar](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %v x %v", shapeOf(a), shapeOf(b)),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateVecLen ensures two vectors have the same length.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen[T Scalar](x, y []T) error {
	if len(x) != len(y) {
		return validatorErrorf(
			fmt.Sprintf("ValidateVecLen(%d,%d)", len(x), len(y)), ErrDimensionMismatch,
		)
	}

	return nil
}
