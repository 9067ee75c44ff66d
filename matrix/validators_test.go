// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(dtype.Float64, r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second typed nil", dense(2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSparsePair covers every mismatch the merge refuses.
func TestValidateSparsePair(t *testing.T) {
	t.Parallel()

	vec := func(k dtype.Kind, n uint64, opts ...matrix.Option) *matrix.SparseVector {
		v, err := matrix.NewSparseVector(k, n, nil, opts...)
		require.NoError(t, err)
		return v
	}

	require.NoError(t, matrix.ValidateSparsePair(vec(dtype.Int8, 4), vec(dtype.Int8, 4)))
	require.ErrorIs(t, matrix.ValidateSparsePair(nil, vec(dtype.Int8, 4)), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSparsePair(vec(dtype.Int8, 4), vec(dtype.Int8, 5)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSparsePair(vec(dtype.Int8, 4), vec(dtype.Int16, 4)), matrix.ErrKindMismatch)
	require.ErrorIs(t,
		matrix.ValidateSparsePair(vec(dtype.Int8, 4), vec(dtype.Int8, 4, matrix.WithIndexKind(dtype.IndexUint64))),
		matrix.ErrKindMismatch)
}
