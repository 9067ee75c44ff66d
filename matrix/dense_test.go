// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/scalar"
	"github.com/stretchr/testify/require"
)

// TestNewDense_ShapeAndKind covers constructor validation and metadata.
func TestNewDense_ShapeAndKind(t *testing.T) {
	_, err := matrix.NewDense(dtype.Int8, 0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(dtype.Kind(99), 1, 1)
	require.ErrorIs(t, err, dtype.ErrUnknownKind)

	m, err := matrix.NewDense(dtype.Complex64, 2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})
	require.Equal(t, dtype.Complex64, m.Kind())
	require.Equal(t, uintptr(6*8), m.Bytes())
	require.IsType(t, []scalar.Complex64{}, m.Raw())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, scalar.Complex64{}, v)
}

// TestDense_SetConverts verifies explicit conversion on write and bounds checks.
func TestDense_SetConverts(t *testing.T) {
	m, err := matrix.NewDense(dtype.Int16, 2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 3.9))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int16(3), v)

	require.NoError(t, m.Set(1, 0, uint16(7)))
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int16(7), v)

	require.NoError(t, m.Set(1, 1, uint64(9)))
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, int16(9), v)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, "x"), matrix.ErrTypeConversion)
	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestDense_NaNPolicy verifies WithValidateNaNInf on floats and complex parts.
func TestDense_NaNPolicy(t *testing.T) {
	loose, err := matrix.NewDense(dtype.Float32, 1, 1)
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))

	strict, err := matrix.NewDense(dtype.Complex128, 1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, scalar.Complex128{Imag: math.Inf(-1)}), matrix.ErrNaNInf)
	require.NoError(t, strict.Set(0, 0, 2.5))
}

// TestDense_CloneIsDeep verifies storage independence.
func TestDense_CloneIsDeep(t *testing.T) {
	m := mustDenseFrom(t, dtype.Float64, 1, 2, 1, 2.5)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, "[1, 2.5]\n", m.String())
}

// TestNewDenseFrom_Mismatch verifies the value count check.
func TestNewDenseFrom_Mismatch(t *testing.T) {
	_, err := matrix.NewDenseFrom(dtype.Uint8, 2, 2, []any{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(dtype.Uint8, 1, 1, []any{struct{}{}})
	require.ErrorIs(t, err, matrix.ErrTypeConversion)
}
