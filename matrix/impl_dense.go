// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & fail-fast accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Enforce every precondition at the public surface: a violation is a
//     programming bug and panics with an error wrapping a package sentinel.
//   - Keep value semantics: constructors copy their input, vector reads return
//     fresh slices and Clone yields an independent deep copy.
//
// Complexity quicksheet:
//   - New/NewFromRows: O(r*c) copy; At/Set: O(1); Row: O(c); Col: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxNewFromRows = "NewFromRows"
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxRow         = "Row"
	ctxCol         = "Col"
	ctxNewZeros    = "NewZeros"
	ctxShape       = "Shape"
	ctxRawData     = "RawData"
	ctxClone       = "Clone"
	ctxFormat      = "Format"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the scalar type T.
//   - r,c hold dimensions (rows, cols), fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Dense is not safe for concurrent mutation; guard shared instances externally.
type Dense[T Scalar] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for Shaped & fmt.Stringer conformance.
var (
	_ Shaped       = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// New creates a rows×cols matrix holding values in row-major order.
// MAIN DESCRIPTION:
//   - Primary constructor: stores rows, cols and a copy of values verbatim.
//
// Implementation:
//   - Stage 1: ValidateShape(rows, cols, len(values)).
//   - Stage 2: copy values into a fresh backing slice.
//
// Behavior highlights:
//   - The caller's slice is not retained; later writes to it do not leak in.
//   - 0×0, 0×k and k×0 are legal when values is empty.
//
// Errors (panic):
//   - ErrBadShape when a dimension is negative or len(values) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Scalar](rows, cols int, values []T) *Dense[T] {
	mustValid(ctxNew, ValidateShape(rows, cols, len(values)))
	buf := make([]T, len(values))
	copy(buf, values)

	return &Dense[T]{r: rows, c: cols, data: buf}
}

// NewFromRows creates a matrix from a slice of rows.
// MAIN DESCRIPTION:
//   - rows = len(src), cols = len(src[0]) (0 when src is empty); all rows are
//     flattened in order and validated exactly like New.
//
// Behavior highlights:
//   - Row lengths are not compared one by one: only the flattened total is
//     checked against rows*cols, so unequal rows fail unless their total
//     happens to match.
//
// Errors (panic):
//   - ErrBadShape when the flattened length differs from rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows[T Scalar](src [][]T) *Dense[T] {
	rows, cols := len(src), 0
	if rows > 0 {
		cols = len(src[0])
	}

	total := 0
	for _, row := range src {
		total += len(row)
	}
	flat := make([]T, 0, total)
	for _, row := range src {
		flat = append(flat, row...)
	}
	mustValid(ctxNewFromRows, ValidateShape(rows, cols, len(flat)))

	return &Dense[T]{r: rows, c: cols, data: flat}
}

// NewZeros returns a rows×cols matrix filled with the zero value of T.
// Panics with ErrBadShape on negative dimensions or when rows*cols
// overflows int.
func NewZeros[T Scalar](rows, cols int) *Dense[T] {
	mustValid(ctxNewZeros, validateDims(rows, cols))

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewIdentity returns the n×n identity (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Scalar](n int) *Dense[T] {
	m := NewZeros[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Zero returns the designated 0×0 matrix used as the additive-identity
// placeholder. Every call returns a fresh value, so it can never be aliased.
func Zero[T Scalar]() *Dense[T] {
	return &Dense[T]{data: []T{}}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int {
	mustValid(ctxShape, ValidateNotNil(m))

	return m.r
}

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int {
	mustValid(ctxShape, ValidateNotNil(m))

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) {
	mustValid(ctxShape, ValidateNotNil(m))

	return m.r, m.c
}

// IsEmpty reports whether the matrix holds no elements (a zero dimension).
func (m *Dense[T]) IsEmpty() bool {
	mustValid(ctxShape, ValidateNotNil(m))

	return len(m.data) == 0
}

// offset bounds-checks (row, col) for method and returns the row-major offset.
// Panics with ErrOutOfRange wrapped in method context.
func (m *Dense[T]) offset(method string, row, col int) int {
	mustValid(method, ValidateNotNil(m))
	if err := ValidateIndex(m, row, col); err != nil {
		panic(denseErrorf(method, row, col, err))
	}

	// Row-major offset: i*c + j.
	return row*m.c + col
}

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Element read; the "get" half of indexed access.
//
// Errors (panic):
//   - ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) T {
	return m.data[m.offset(ctxAt, row, col)]
}

// Set stores v at (row, col). Same precondition as At.
// Only this instance changes; clones and earlier results are unaffected.
func (m *Dense[T]) Set(row, col int, v T) {
	m.data[m.offset(ctxSet, row, col)] = v
}

// Row returns a fresh copy of row i: columns 0..Cols()-1 in ascending order.
// Panics with ErrOutOfRange when i is not a valid row.
func (m *Dense[T]) Row(i int) []T {
	mustValid(ctxRow, ValidateNotNil(m))
	if i < 0 || i >= m.r {
		panic(denseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Col returns a fresh copy of column j: rows 0..Rows()-1 in ascending order.
// Panics with ErrOutOfRange when j is not a valid column.
func (m *Dense[T]) Col(j int) []T {
	mustValid(ctxCol, ValidateNotNil(m))
	if j < 0 || j >= m.c {
		panic(denseErrorf(ctxCol, 0, j, ErrOutOfRange))
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// RawData returns a copy of the row-major backing slice.
func (m *Dense[T]) RawData() []T {
	mustValid(ctxRawData, ValidateNotNil(m))
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original and vice versa.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	mustValid(ctxClone, ValidateNotNil(m))
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String renders every row as "[v0, v1, ...]" and concatenates the rows with
// no separator, e.g. "[1, 2][3, 4]". It is a debug format, not a
// serialization; use Format for other layouts.
func (m *Dense[T]) String() string {
	return m.Format()
}

// Format renders the matrix row by row under the given options.
// With no options the output equals String.
//
// Determinism:
//   - Fixed i→j traversal; output depends only on the data and options.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the built string.
func (m *Dense[T]) Format(opts ...FormatOption) string {
	mustValid(ctxFormat, ValidateNotNil(m))
	o := gatherFormatOptions(opts...)

	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		if i > 0 {
			b.WriteString(o.rowSep)
		}
		b.WriteString(o.open)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(o.elemSep)
			}
			b.WriteString(o.element(m.data[base+j]))
		}
		b.WriteString(o.close)
	}

	return b.String()
}

// element formats a single value with the configured verb and printer.
func (o *formatOptions) element(v any) string {
	if o.printer != nil {
		return o.printer.Sprintf(o.verb, v)
	}

	return fmt.Sprintf(o.verb, v)
}
