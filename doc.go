// Package densemat is a small, generic dense-matrix toolkit: a row-major
// matrix value type with the classic arithmetic on top of it.
//
// 🚀 What is densemat?
//
//	A value-semantic matrix library that brings together:
//		• Construction: from flat data, from rows, zeros, identity
//		• Access: At/Set, Row/Col copies, Clone
//		• Arithmetic: Add, Sub, Scale, Mul, Hadamard, Transpose, MatVec, Dot
//		• In-place forms: AddAssign, SubAssign, ScaleAssign, MulAssign
//		• Text rendering: String and a configurable Format
//		• Interop: zero-copy views and copies to/from gonum
//
// ✨ Why choose densemat?
//
//   - Generic – one Dense[T] for every integer and floating-point scalar
//   - Predictable – every kernel returns a fresh matrix, nothing is aliased
//   - Checked – shape and index contracts fail fast with errors.Is-able values
//
// Everything lives in one subpackage:
//
//	matrix/ - Dense[T], arithmetic kernels, validators, formatting, gonum interop
//
// Quick example:
//
//	a := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	b := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})
//	fmt.Println(matrix.Mul(a, b)) // [19, 22][43, 50]
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
