// SPDX-License-Identifier: MIT

package dispatch_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnaryStats(t *testing.T) {
	tbl := dispatch.NewUnaryTable().Build()
	s := tbl.Stats()

	// erf, erfc, cbrt and gamma over both complex kinds
	require.Equal(t, 8, s.NotImplemented)
	require.Equal(t, ops.NumUnary*dtype.NumKinds-8, s.Ready)
	require.Zero(t, s.Unsupported)
	require.True(t, tbl.Equal(dispatch.NewUnaryTable()))
}

func TestUnaryComplexGapsAreNotImplemented(t *testing.T) {
	tbl := dispatch.NewUnaryTable()
	for _, op := range []ops.Unary{ops.Erf, ops.Erfc, ops.Cbrt, ops.Gamma} {
		_, err := tbl.Resolve(op, dtype.Complex64)
		assert.ErrorIs(t, err, dispatch.ErrNotImplemented, op.String())

		_, st := tbl.Lookup(op, dtype.Complex128)
		assert.Equal(t, dispatch.NotImplemented, st, op.String())
	}
}

func TestUnaryResultKinds(t *testing.T) {
	tbl := dispatch.NewUnaryTable()

	cases := []struct {
		op   ops.Unary
		in   any
		kind dtype.Kind
		want any
	}{
		{ops.Sin, int16(0), dtype.Float64, 0.0},
		{ops.Sqrt, float32(4), dtype.Float64, 2.0},
		{ops.Floor, float32(-1.5), dtype.Int64, int64(-2)},
		{ops.Ceil, int8(3), dtype.Int8, int8(3)},
		{ops.Round, float32(2.5), dtype.Float32, float32(3)},
		{ops.Negate, int8(5), dtype.Int8, int8(-5)},
		{ops.Abs, int32(-9), dtype.Int32, int32(9)},
		{ops.Abs, scalar.Complex128{Real: 3, Imag: 4}, dtype.Float64, 5.0},
		{ops.Abs, scalar.Complex64{Real: 3, Imag: 4}, dtype.Float32, float32(5)},
		{ops.Exp, scalar.Complex64{}, dtype.Complex128, scalar.Complex128{Real: 1}},
		{ops.Floor, scalar.Complex64{Real: 1.5, Imag: -1.5}, dtype.Complex64, scalar.Complex64{Real: 1, Imag: -2}},
	}
	for _, tc := range cases {
		k, ok := scalar.KindOf(tc.in)
		require.True(t, ok)

		h, err := tbl.Resolve(tc.op, k)
		require.NoError(t, err, "%s(%s)", tc.op, k)
		assert.Equal(t, tc.kind, h.Result, "%s(%s)", tc.op, k)

		got, err := h.Call(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s(%v)", tc.op, tc.in)
	}
}

func TestUnaryBoxedDelegates(t *testing.T) {
	h, err := dispatch.NewUnaryTable().Resolve(ops.Sqrt, dtype.Boxed)
	require.NoError(t, err)
	require.Equal(t, dtype.Boxed, h.Result)

	out, err := h.Call(boxInt(16))
	require.NoError(t, err)
	f, err := out.(scalar.Boxed).ToFloat64()
	require.NoError(t, err)
	require.Equal(t, 4.0, f)

	gamma, err := dispatch.NewUnaryTable().Resolve(ops.Gamma, dtype.Boxed)
	require.NoError(t, err, "boxed cells are always Ready")
	_, err = gamma.Call(scalar.NewBoxed(scalar.NewHostComplex(1i)))
	require.ErrorIs(t, err, dispatch.ErrNotImplemented)

	_, err = h.Call(16.0)
	require.ErrorIs(t, err, dispatch.ErrTypeConversion)
}
