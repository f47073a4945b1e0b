// Package matrix provides Dense, a generic row-major matrix value type, and
// the arithmetic defined on it.
//
// The matrix package provides:
//
//   - Dense[T] over any integer or floating-point scalar, with indexed
//     access (At/Set) and row/column vector extraction (Row/Col).
//   - Arithmetic kernels Add, Sub, Scale/ScaleBy, Mul, Hadamard, Transpose,
//     MatVec and Dot, plus in-place AddAssign, SubAssign, ScaleAssign and
//     MulAssign.
//   - Validators that report shape and index problems as errors, for callers
//     that want to check operands before calling a kernel.
//   - Interop with gonum (AsGonum, ToGonum, FromGonum).
//
// Preconditions are contracts, not runtime conditions: a kernel called with
// mismatched shapes or an out-of-range index panics with an error that wraps
// one of the package sentinels (ErrBadShape, ErrOutOfRange,
// ErrDimensionMismatch, ErrNilMatrix), so a recovered value can be matched
// with errors.Is.
//
// Every kernel returns a freshly allocated result; a Dense is never aliased
// by another. Mul follows the conventional shape rule (r×n)·(n×c) → r×c.
//
// See the examples in this package for usage patterns.
package matrix
