// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/stretchr/testify/require"
)

func mustSparse(tb testing.TB, kind dtype.Kind, n uint64, def any, entries map[uint64]any, opts ...matrix.Option) *matrix.SparseVector {
	tb.Helper()
	v, err := matrix.NewSparseVector(kind, n, def, opts...)
	require.NoError(tb, err)
	for i, x := range entries {
		require.NoError(tb, v.Set(i, x))
	}

	return v
}

// TestNewSparseVector_IndexKind verifies the narrowest index kind and overrides.
func TestNewSparseVector_IndexKind(t *testing.T) {
	v, err := matrix.NewSparseVector(dtype.Float32, 200, nil)
	require.NoError(t, err)
	require.Equal(t, dtype.IndexUint8, v.IndexKind())
	require.Equal(t, float32(0), v.Default())

	v, err = matrix.NewSparseVector(dtype.Float32, 1000, nil)
	require.NoError(t, err)
	require.Equal(t, dtype.IndexUint16, v.IndexKind())

	v, err = matrix.NewSparseVector(dtype.Float32, 10, nil, matrix.WithIndexKind(dtype.IndexUint64))
	require.NoError(t, err)
	require.Equal(t, dtype.IndexUint64, v.IndexKind())

	_, err = matrix.NewSparseVector(dtype.Float32, 1000, nil, matrix.WithIndexKind(dtype.IndexUint8))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewSparseVector(dtype.Float32, 0, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewSparseVector(dtype.Int8, 4, "seven")
	require.ErrorIs(t, err, matrix.ErrTypeConversion)
}

// TestNewSparseVector_IndexBoundary verifies that n positions need indices up to n-1 only.
func TestNewSparseVector_IndexBoundary(t *testing.T) {
	v, err := matrix.NewSparseVector(dtype.Int16, 256, nil)
	require.NoError(t, err)
	require.Equal(t, dtype.IndexUint8, v.IndexKind())
	require.NoError(t, v.Set(255, 7))
	got, err := v.At(255)
	require.NoError(t, err)
	require.Equal(t, int16(7), got)

	v, err = matrix.NewSparseVector(dtype.Int16, 256, nil, matrix.WithIndexKind(dtype.IndexUint8))
	require.NoError(t, err)
	require.Equal(t, dtype.IndexUint8, v.IndexKind())

	_, err = matrix.NewSparseVector(dtype.Int16, 257, nil, matrix.WithIndexKind(dtype.IndexUint8))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	v, err = matrix.NewSparseVector(dtype.Int16, 257, nil)
	require.NoError(t, err)
	require.Equal(t, dtype.IndexUint16, v.IndexKind())
}

// TestSparseVector_SetAt verifies ordered insertion and default reads.
func TestSparseVector_SetAt(t *testing.T) {
	v := mustSparse(t, dtype.Int32, 8, 1, map[uint64]any{5: 50, 2: 20})
	require.NoError(t, v.Set(5, 55)) // overwrite keeps NNZ
	require.Equal(t, 2, v.NNZ())

	x, err := v.At(5)
	require.NoError(t, err)
	require.Equal(t, int32(55), x)
	x, err = v.At(0)
	require.NoError(t, err)
	require.Equal(t, int32(1), x)

	_, err = v.At(8)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(9, 1), matrix.ErrOutOfRange)

	d, err := v.ToDense()
	require.NoError(t, err)
	require.Equal(t, []int32{1, 1, 20, 1, 1, 55, 1, 1}, d.Raw())
}

// TestSparseElementWise_MergesAndCompacts verifies the union walk and that
// entries equal to the merged default are dropped.
func TestSparseElementWise_MergesAndCompacts(t *testing.T) {
	a := mustSparse(t, dtype.Int64, 10, 0, map[uint64]any{1: 3, 4: -2, 7: 5})
	b := mustSparse(t, dtype.Int64, 10, 0, map[uint64]any{4: 2, 9: 1})

	sum, err := matrix.SparseElementWise(ops.Add, a, b)
	require.NoError(t, err)
	require.Equal(t, dtype.Int64, sum.Kind())
	require.Equal(t, 3, sum.NNZ()) // position 4 cancels to the default

	d, err := sum.ToDense()
	require.NoError(t, err)
	require.Equal(t, []int64{0, 3, 0, 0, 0, 0, 0, 5, 0, 1}, d.Raw())

	// Dense and sparse paths agree.
	da, _ := a.ToDense()
	db, _ := b.ToDense()
	dense, err := matrix.ElementWise(ops.Add, da, db)
	require.NoError(t, err)
	require.Equal(t, dense.Raw(), d.Raw())
}

// TestSparseElementWise_Defaults verifies that the result default is op over
// both defaults.
func TestSparseElementWise_Defaults(t *testing.T) {
	a := mustSparse(t, dtype.Float64, 4, 2.0, map[uint64]any{0: 1.0})
	b := mustSparse(t, dtype.Float64, 4, 3.0, nil)

	prod, err := matrix.SparseElementWise(ops.Mul, a, b)
	require.NoError(t, err)
	require.Equal(t, 6.0, prod.Default())
	x, _ := prod.At(0)
	require.Equal(t, 3.0, x)

	lt, err := matrix.SparseElementWise(ops.Lt, a, b)
	require.NoError(t, err)
	require.Equal(t, dtype.Uint8, lt.Kind())
	require.Equal(t, uint8(1), lt.Default())
	require.Equal(t, 0, lt.NNZ())
}

// TestSparseElementWise_Errors covers the validation order.
func TestSparseElementWise_Errors(t *testing.T) {
	a := mustSparse(t, dtype.Int16, 4, 0, nil)

	_, err := matrix.SparseElementWise(ops.Add, a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.SparseElementWise(ops.Add, a, mustSparse(t, dtype.Int16, 5, 0, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SparseElementWise(ops.Add, a, mustSparse(t, dtype.Int8, 4, 0, nil))
	require.ErrorIs(t, err, matrix.ErrKindMismatch)

	wide := mustSparse(t, dtype.Int16, 4, 0, nil, matrix.WithIndexKind(dtype.IndexUint32))
	_, err = matrix.SparseElementWise(ops.Add, a, wide)
	require.ErrorIs(t, err, matrix.ErrKindMismatch)

	b := mustSparse(t, dtype.Int16, 4, 0, map[uint64]any{2: 1})
	_, err = matrix.SparseElementWise(ops.Div, a, b) // 0 / default 0
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	c := mustSparse(t, dtype.Complex64, 4, 0, nil)
	_, err = matrix.SparseElementWise(ops.Mod, c, c)
	require.ErrorIs(t, err, matrix.ErrUnsupportedOperation)
}
