// SPDX-License-Identifier: MIT

package dtype_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/stretchr/testify/require"
)

// TestUpcastSymmetric checks upcast(a,b) == upcast(b,a) over the whole catalogue.
func TestUpcastSymmetric(t *testing.T) {
	for _, a := range dtype.Kinds() {
		for _, b := range dtype.Kinds() {
			require.Equal(t, dtype.Upcast(a, b), dtype.Upcast(b, a), "%s/%s", a, b)
		}
	}
}

func TestUpcastIdempotentOnDiagonal(t *testing.T) {
	for _, k := range dtype.Kinds() {
		require.Equal(t, k, dtype.Upcast(k, k))
	}
}

func TestUpcastRules(t *testing.T) {
	cases := []struct {
		a, b, want dtype.Kind
	}{
		{dtype.Uint8, dtype.Int32, dtype.Int32},
		{dtype.Uint8, dtype.Int8, dtype.Int16},
		{dtype.Int8, dtype.Int64, dtype.Int64},
		{dtype.Int16, dtype.Float32, dtype.Float32},
		{dtype.Int32, dtype.Float32, dtype.Float64},
		{dtype.Int64, dtype.Float32, dtype.Float64},
		{dtype.Int32, dtype.Float64, dtype.Float64},
		{dtype.Float32, dtype.Float64, dtype.Float64},
		{dtype.Int32, dtype.Complex64, dtype.Complex64},
		{dtype.Float32, dtype.Complex64, dtype.Complex64},
		{dtype.Float64, dtype.Complex64, dtype.Complex128},
		{dtype.Complex64, dtype.Complex128, dtype.Complex128},
		{dtype.Uint8, dtype.Complex128, dtype.Complex128},
		{dtype.Complex64, dtype.Boxed, dtype.Boxed},
		{dtype.Uint8, dtype.Boxed, dtype.Boxed},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, dtype.Upcast(tc.a, tc.b), "%s/%s", tc.a, tc.b)
	}
}

// TestUpcastNeverNarrows checks that the result is at least as wide as both
// operands in the catalogue order, boxed included.
func TestUpcastNeverNarrows(t *testing.T) {
	for _, a := range dtype.Kinds() {
		for _, b := range dtype.Kinds() {
			got := dtype.Upcast(a, b)
			require.GreaterOrEqual(t, int(got), int(a), "%s/%s", a, b)
			require.GreaterOrEqual(t, int(got), int(b), "%s/%s", a, b)
		}
	}
}

func TestUpcastInvalidKindIsBoxed(t *testing.T) {
	require.Equal(t, dtype.Boxed, dtype.Upcast(dtype.Kind(99), dtype.Int8))
	table := dtype.UpcastTable()
	require.Equal(t, dtype.Complex64, table[dtype.Int32][dtype.Complex64])
}
