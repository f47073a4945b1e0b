// Package matrix_test contains unit tests for the Dense storage type.
package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNew_StoresValuesRowMajor verifies element (r,c) lives at r*cols+c.
func TestNew_StoresValuesRowMajor(t *testing.T) {
	m := matrix.New(2, 3, []float64{1, 2, 3, 4, 5, 6})

	MustDims(t, m, 2, 3)
	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 3.0, m.At(0, 2))
	require.Equal(t, 4.0, m.At(1, 0))
	require.Equal(t, 6.0, m.At(1, 2))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.RawData())
}

// TestNew_CopiesInput ensures the caller's slice is not retained.
func TestNew_CopiesInput(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	m := matrix.New(2, 2, vals)

	vals[0] = 99 // mutate the source after construction
	require.Equal(t, 1.0, m.At(0, 0))
}

// TestNew_BadShape ensures mismatched value counts and negative dims panic.
func TestNew_BadShape(t *testing.T) {
	MustPanicIs(t, matrix.ErrBadShape, func() { matrix.New(2, 2, []float64{1, 2, 3}) })
	MustPanicIs(t, matrix.ErrBadShape, func() { matrix.New(1, 1, []float64{}) })
	MustPanicIs(t, matrix.ErrBadShape, func() { matrix.New(-1, 0, []float64{}) })
	MustPanicIs(t, matrix.ErrBadShape, func() { matrix.NewZeros[float64](2, -3) })
}

// TestNew_EmptyShapes accepts 0×0, 0×k and k×0.
func TestNew_EmptyShapes(t *testing.T) {
	require.True(t, matrix.New(0, 0, []float64{}).IsEmpty())
	MustDims(t, matrix.New(0, 4, []float64(nil)), 0, 4)
	MustDims(t, matrix.New(3, 0, []float64(nil)), 3, 0)
}

// TestNewFromRows covers the row-slice constructor and its ragged-input check.
func TestNewFromRows(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		m := matrix.NewFromRows(rowsA)
		MustDims(t, m, 2, 2)
		CompareExact(t, rowsA, m)
	})
	t.Run("rectangular", func(t *testing.T) {
		m := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
		MustDims(t, m, 2, 3)
		require.Equal(t, 6.0, m.At(1, 2))
	})
	t.Run("empty", func(t *testing.T) {
		m := matrix.NewFromRows[float64](nil)
		MustDims(t, m, 0, 0)
		require.True(t, matrix.Equal(matrix.Zero[float64](), m))
	})
	t.Run("ragged", func(t *testing.T) {
		// flattened length 5 != 2*3
		MustPanicIs(t, matrix.ErrBadShape, func() {
			matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5}})
		})
	})
	t.Run("ragged but total matches", func(t *testing.T) {
		// 2+1+3 == 3*2: only the flattened length is checked
		m := matrix.NewFromRows([][]float64{{1, 2}, {3}, {4, 5, 6}})
		MustDims(t, m, 3, 2)
		require.Equal(t, 3.0, m.At(1, 0))
		require.Equal(t, 4.0, m.At(1, 1))
	})
}

// TestAtSet_OutOfRange ensures every out-of-range access panics with ErrOutOfRange.
func TestAtSet_OutOfRange(t *testing.T) {
	m := matrix.NewFromRows(rowsA)

	MustPanicIs(t, matrix.ErrOutOfRange, func() { m.At(2, 0) })
	MustPanicIs(t, matrix.ErrOutOfRange, func() { m.At(-1, 0) })
	MustPanicIs(t, matrix.ErrOutOfRange, func() { m.At(0, 2) })
	MustPanicIs(t, matrix.ErrOutOfRange, func() { m.Set(0, -1, 1) })
	MustPanicIs(t, matrix.ErrOutOfRange, func() { m.Set(2, 2, 1) })
	MustPanicIs(t, matrix.ErrOutOfRange, func() { m.Row(2) })
	MustPanicIs(t, matrix.ErrOutOfRange, func() { m.Col(-1) })
	MustPanicIs(t, matrix.ErrOutOfRange, func() { matrix.Zero[float64]().At(0, 0) })
}

// TestNilReceiver ensures accessors on a nil *Dense panic with ErrNilMatrix.
func TestNilReceiver(t *testing.T) {
	var m *matrix.Dense[float64]

	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.At(0, 0) })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.Set(0, 0, 1) })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.Row(0) })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.Col(0) })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.Rows() })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.Cols() })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.Shape() })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.IsEmpty() })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.RawData() })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { m.Clone() })
	MustPanicIs(t, matrix.ErrNilMatrix, func() { _ = m.Format() })
}

// TestShapeOverflow rejects dimensions whose element count does not fit in int.
func TestShapeOverflow(t *testing.T) {
	MustPanicIs(t, matrix.ErrBadShape, func() { matrix.New[float64](math.MaxInt/2+1, 2, nil) })
	MustPanicIs(t, matrix.ErrBadShape, func() { matrix.NewZeros[float64](math.MaxInt/4+1, 4) })
	MustPanicIs(t, matrix.ErrBadShape, func() { matrix.NewZeros[float64](math.MaxInt, 2) })
	MustPanicIs(t, matrix.ErrBadShape, func() { matrix.NewZeros[float64](-1, 2) })

	// a zero dimension never overflows
	MustDims(t, matrix.NewZeros[float64](math.MaxInt, 0), math.MaxInt, 0)
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m := matrix.NewZeros[float64](2, 3)
	m.Set(1, 2, 7.89)

	require.Equal(t, 7.89, m.At(1, 2))
	require.Equal(t, 0.0, m.At(0, 0))
}

// TestRowCol checks vector extraction order and independence.
func TestRowCol(t *testing.T) {
	m := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	if diff := cmp.Diff([]float64{4, 5, 6}, m.Row(1)); diff != "" {
		t.Fatalf("Row(1) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{3, 6}, m.Col(2)); diff != "" {
		t.Fatalf("Col(2) (-want +got):\n%s", diff)
	}

	row := m.Row(0)
	row[0] = 100 // writing into the copy must not reach the matrix
	require.Equal(t, 1.0, m.At(0, 0))
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := matrix.NewFromRows(rowsA)
	clone := m.Clone()

	clone.Set(0, 0, 3)
	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 3.0, clone.At(0, 0))

	m.Set(1, 1, -4)
	require.Equal(t, 4.0, clone.At(1, 1))
}

// TestIdentityAndZero checks the constructors used as neutral elements.
func TestIdentityAndZero(t *testing.T) {
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, matrix.NewIdentity[float64](3))
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, matrix.NewZeros[float64](2, 2))

	z := matrix.Zero[float64]()
	MustDims(t, z, 0, 0)
	require.Empty(t, z.RawData())
	require.NotSame(t, z, matrix.Zero[float64]())
}

// TestIntegerScalar exercises a non-float instantiation.
func TestIntegerScalar(t *testing.T) {
	m := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
	m.Set(0, 0, 10)

	require.Equal(t, 10, m.At(0, 0))
	require.Equal(t, []int{2, 4}, m.Col(1))
	require.Equal(t, "[10, 2][3, 4]", m.String())
}

// TestStringOutput checks that String concatenates rows with no separator.
func TestStringOutput(t *testing.T) {
	require.Equal(t, "[1, 2][3, 4]", matrix.NewFromRows(rowsA).String())
	require.Equal(t, "[0.5, -1.25]", matrix.New(1, 2, []float64{0.5, -1.25}).String())
	require.Equal(t, "", matrix.Zero[float64]().String())
	require.Equal(t, "[][]", matrix.NewZeros[float64](2, 0).String())
}
