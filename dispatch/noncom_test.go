// SPDX-License-Identifier: MIT

package dispatch_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
	"github.com/stretchr/testify/require"
)

func TestNonComStats(t *testing.T) {
	s := dispatch.NewNonComTable().Build().Stats()

	// Per op: 7×7 real natives plus boxed×boxed are Ready, the rest is not.
	require.Equal(t, 3*50, s.Ready)
	require.Equal(t, 3*50, s.Unsupported)
	require.Zero(t, s.NotImplemented)
}

func TestNonComNatives(t *testing.T) {
	atan2, err := dispatch.ResolveNonCom(ops.Atan2, dtype.Int32, dtype.Float32)
	require.NoError(t, err)
	require.Equal(t, dtype.Float64, atan2.Result)
	out, err := atan2.Call(int32(1), float32(1))
	require.NoError(t, err)
	require.InDelta(t, math.Pi/4, out, 1e-12)

	ldexp, err := dispatch.ResolveNonCom(ops.Ldexp, dtype.Float64, dtype.Int8)
	require.NoError(t, err)
	out, err = ldexp.Call(0.5, int8(3))
	require.NoError(t, err)
	require.Equal(t, 4.0, out)

	_, err = dispatch.ResolveNonCom(ops.Hypot, dtype.Complex64, dtype.Float64)
	require.ErrorIs(t, err, dispatch.ErrUnsupportedOperation)
	_, err = dispatch.ResolveNonCom(ops.Hypot, dtype.Boxed, dtype.Float64)
	require.ErrorIs(t, err, dispatch.ErrUnsupportedOperation)
}

func TestNonComBoxed(t *testing.T) {
	hypot, err := dispatch.NewNonComTable().Resolve(ops.Hypot, dtype.Boxed, dtype.Boxed)
	require.NoError(t, err)
	require.Equal(t, dtype.Boxed, hypot.Result)

	out, err := hypot.Call(boxInt(3), boxInt(4))
	require.NoError(t, err)
	f, err := out.(scalar.Boxed).ToFloat64()
	require.NoError(t, err)
	require.Equal(t, 5.0, f)

	_, err = hypot.Call(scalar.NewBoxed(scalar.Bool(true)), boxInt(0))
	require.NoError(t, err, "booleans coerce through the truth shortcut")
}
