// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Let Dense values flow into gonum routines without hand-written loops
//     (AsGonum is a zero-copy read view, ToGonum a materialized copy).
//   - Import gonum results back as Dense[float64] (FromGonum).
//
// Notes:
//   - gonum works on float64 only; elements are converted with float64(v).
//   - gonum's mat.NewDense rejects zero-sized shapes, so empty matrices map
//     to an empty *mat.Dense (IsEmpty() == true).

package matrix

import "gonum.org/v1/gonum/mat"

const opGonum = "FromGonum"

// gonumView adapts a *Dense[T] to the mat.Matrix interface without copying.
type gonumView[T Scalar] struct {
	m *Dense[T]
}

// Compile-time assertion for mat.Matrix conformance.
var _ mat.Matrix = gonumView[float64]{}

// Dims returns the dimensions of the underlying Dense.
func (v gonumView[E]) Dims() (r, c int) { return v.m.r, v.m.c }

// At returns element (i, j) converted to float64.
// Panics with ErrOutOfRange like Dense.At.
func (v gonumView[E]) At(i, j int) float64 { return float64(v.m.At(i, j)) }

// T returns the implicit transpose, as gonum expects.
func (v gonumView[E]) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// AsGonum returns a read-only mat.Matrix view over m.
// Writes to m after the call are visible through the view.
// Complexity: O(1).
func AsGonum[T Scalar](m *Dense[T]) mat.Matrix {
	mustValid("AsGonum", ValidateNotNil(m))

	return gonumView[T]{m: m}
}

// ToGonum copies m into a new *mat.Dense.
// Complexity: O(r*c).
func ToGonum[T Scalar](m *Dense[T]) *mat.Dense {
	mustValid("ToGonum", ValidateNotNil(m))
	if m.IsEmpty() {
		return &mat.Dense{}
	}
	data := make([]float64, len(m.data))
	for idx, v := range m.data {
		data[idx] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any mat.Matrix into a new Dense[float64].
// A nil or empty source yields the 0×0 matrix.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) *Dense[float64] {
	if src == nil {
		return Zero[float64]()
	}
	if e, ok := src.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return Zero[float64]()
	}
	r, c := src.Dims()
	mustValid(opGonum, validateDims(r, c))

	out := NewZeros[float64](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out
}
