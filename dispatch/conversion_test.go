// SPDX-License-Identifier: MIT

package dispatch_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
	"github.com/stretchr/testify/require"
)

func TestConversionEveryCellReady(t *testing.T) {
	tbl := dispatch.NewConversionTable()
	require.Equal(t, dtype.NumKinds*dtype.NumKinds, tbl.Stats().Unbuilt)

	tbl.Build()
	require.Equal(t, dtype.NumKinds*dtype.NumKinds, tbl.Stats().Ready)

	for _, from := range dtype.Kinds() {
		zero, err := scalar.Zero(from)
		require.NoError(t, err)
		for _, to := range dtype.Kinds() {
			h, err := tbl.Resolve(from, to)
			require.NoError(t, err)
			out, err := h.Call(zero)
			require.NoError(t, err, "%s→%s", from, to)
			got, _ := scalar.KindOf(out)
			require.Equal(t, to, got)
		}
	}
}

func TestConversionValues(t *testing.T) {
	h, err := dispatch.ResolveConversion(dtype.Float64, dtype.Int8)
	require.NoError(t, err)
	out, err := h.Call(3.9)
	require.NoError(t, err)
	require.Equal(t, int8(3), out)

	_, err = h.Call(float32(3.9))
	require.ErrorIs(t, err, dispatch.ErrTypeConversion)

	unbox, err := dispatch.ResolveConversion(dtype.Boxed, dtype.Uint8)
	require.NoError(t, err)
	_, err = unbox.Call(boxInt(256))
	require.ErrorIs(t, err, dispatch.ErrTypeConversion)

	_, err = dispatch.ResolveConversion(dtype.Kind(10), dtype.Int8)
	require.ErrorIs(t, err, dtype.ErrUnknownKind)
}

func TestConversionComplexWitnessKinds(t *testing.T) {
	widen, err := dispatch.ResolveConversion(dtype.Complex64, dtype.Complex128)
	require.NoError(t, err)
	out, err := widen.Call(scalar.Complex64{Real: 1, Imag: -2})
	require.NoError(t, err)
	require.Equal(t, scalar.Complex128{Real: 1, Imag: -2}, out)

	// A Complex128 is not a Complex64 operand.
	_, err = widen.Call(scalar.Complex128{Real: 1})
	require.ErrorIs(t, err, dispatch.ErrTypeConversion)

	h, err := dispatch.Resolve(ops.Add, dtype.Complex64, dtype.Complex64)
	require.NoError(t, err)
	require.Equal(t, dtype.Complex64, h.Result)
	sum, err := h.Call(scalar.Complex64{Real: 1}, scalar.Complex64{Imag: 1})
	require.NoError(t, err)
	require.Equal(t, scalar.Complex64{Real: 1, Imag: 1}, sum)
}
