// SPDX-License-Identifier: MIT

package dtype_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKindOrdinalsAreFixed pins the catalogue order used as a table index.
func TestKindOrdinalsAreFixed(t *testing.T) {
	want := []string{"uint8", "int8", "int16", "int32", "int64", "float32", "float64", "complex64", "complex128", "boxed"}
	require.Len(t, dtype.Kinds(), dtype.NumKinds)
	for i, k := range dtype.Kinds() {
		require.Equal(t, i, int(k))
		require.Equal(t, want[i], k.String())
	}
}

// TestKindSizes checks the byte-size table consumed by storage.
func TestKindSizes(t *testing.T) {
	cases := map[dtype.Kind]uintptr{
		dtype.Uint8: 1, dtype.Int8: 1, dtype.Int16: 2, dtype.Int32: 4, dtype.Int64: 8,
		dtype.Float32: 4, dtype.Float64: 8, dtype.Complex64: 8, dtype.Complex128: 16,
	}
	for k, size := range cases {
		assert.Equal(t, size, k.Size(), k.String())
	}
	assert.NotZero(t, dtype.Boxed.Size())
	assert.Zero(t, dtype.Kind(200).Size())
}

func TestKindClassification(t *testing.T) {
	for _, k := range dtype.Kinds() {
		n := 0
		for _, is := range []bool{k.IsInteger(), k.IsFloat(), k.IsComplex(), k.IsBoxed()} {
			if is {
				n++
			}
		}
		require.Equal(t, 1, n, "%s must belong to exactly one class", k)
	}
	require.True(t, dtype.Uint8.IsUnsigned())
	require.False(t, dtype.Int8.IsUnsigned())
	require.True(t, dtype.Float32.IsNative())
	require.False(t, dtype.Complex64.IsReal())
	require.Equal(t, "complex", dtype.Complex128.Class())
}

func TestParse(t *testing.T) {
	for _, k := range dtype.Kinds() {
		got, err := dtype.Parse(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	got, err := dtype.Parse(" Byte ")
	require.NoError(t, err)
	require.Equal(t, dtype.Uint8, got)

	got, err = dtype.Parse("object")
	require.NoError(t, err)
	require.Equal(t, dtype.Boxed, got)

	_, err = dtype.Parse("float16")
	require.ErrorIs(t, err, dtype.ErrUnknownKind)
	require.Equal(t, "kind(42)", dtype.Kind(42).String())
}

func TestIndexKinds(t *testing.T) {
	require.Len(t, dtype.IndexKinds(), dtype.NumIndexKinds)

	ik, err := dtype.AsIndex(dtype.Uint8)
	require.NoError(t, err)
	require.Equal(t, dtype.IndexUint8, ik)

	for _, k := range []dtype.Kind{dtype.Int8, dtype.Float64, dtype.Complex64, dtype.Complex128, dtype.Boxed} {
		_, err := dtype.AsIndex(k)
		require.ErrorIs(t, err, dtype.ErrNotIndexKind, k.String())
	}

	require.Equal(t, dtype.IndexUint8, dtype.IndexFor(0))
	require.Equal(t, dtype.IndexUint8, dtype.IndexFor(255))
	require.Equal(t, dtype.IndexUint8, dtype.IndexFor(256)) // positions 0..255
	require.Equal(t, dtype.IndexUint16, dtype.IndexFor(257))
	require.Equal(t, dtype.IndexUint16, dtype.IndexFor(1<<16))
	require.Equal(t, dtype.IndexUint32, dtype.IndexFor(1<<16+1))
	require.Equal(t, dtype.IndexUint32, dtype.IndexFor(1<<32))
	require.Equal(t, dtype.IndexUint64, dtype.IndexFor(1<<32+1))
	require.Equal(t, uint64(255), dtype.IndexUint8.MaxIndex())
	require.Equal(t, uint64(math.MaxUint64), dtype.IndexUint64.MaxIndex())
	require.Equal(t, dtype.IndexUint32, dtype.IndexFor(1<<20))
	require.Equal(t, dtype.IndexUint64, dtype.IndexFor(1<<40))
	require.Equal(t, uintptr(4), dtype.IndexUint32.Size())

	got, err := dtype.ParseIndex("uint16")
	require.NoError(t, err)
	require.Equal(t, dtype.IndexUint16, got)
	_, err = dtype.ParseIndex("int16")
	require.ErrorIs(t, err, dtype.ErrUnknownKind)
}

func TestMinKind(t *testing.T) {
	cases := []struct {
		in   any
		want dtype.Kind
	}{
		{200, dtype.Uint8},
		{-3, dtype.Int8},
		{300, dtype.Int16},
		{-70000, dtype.Int32},
		{int64(1) << 40, dtype.Int64},
		{uint64(1) << 63, dtype.Boxed},
		{1.5, dtype.Float32},
		{0.1, dtype.Float64},
		{float32(0.1), dtype.Float32},
		{complex(1, 2), dtype.Complex64},
		{complex(0.1, 2), dtype.Complex128},
		{"text", dtype.Boxed},
		{true, dtype.Boxed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, dtype.MinKind(tc.in), "%v", tc.in)
	}
}
