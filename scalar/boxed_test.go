// SPDX-License-Identifier: MIT

package scalar_test

import (
	"testing"
	"unsafe"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyBool is a boolean host value that counts numeric coercion calls.
type spyBool struct {
	v     bool
	calls *int
}

func (s spyBool) Bool() bool                               { return s.v }
func (s spyBool) Class() scalar.Class                      { return scalar.ClassBoolean }
func (s spyBool) Add(scalar.Number) (scalar.Number, error) { return nil, scalar.ErrTypeConversion }
func (s spyBool) Sub(scalar.Number) (scalar.Number, error) { return nil, scalar.ErrTypeConversion }
func (s spyBool) Mul(scalar.Number) (scalar.Number, error) { return nil, scalar.ErrTypeConversion }
func (s spyBool) Div(scalar.Number) (scalar.Number, error) { return nil, scalar.ErrTypeConversion }
func (s spyBool) Cmp(scalar.Number) (int, error)           { return 0, scalar.ErrTypeConversion }
func (s spyBool) Equal(scalar.Number) (bool, error)        { return false, scalar.ErrTypeConversion }
func (s spyBool) Abs() (scalar.Number, error)              { return nil, scalar.ErrTypeConversion }

func (s spyBool) Int64() (int64, error) {
	*s.calls++
	return 7, nil
}

func (s spyBool) Float64() (float64, error) {
	*s.calls++
	return 7, nil
}

// opaque is a non-numeric host object with only the mandatory capability set.
type opaque struct{ class scalar.Class }

func (o opaque) Class() scalar.Class                      { return o.class }
func (o opaque) Add(scalar.Number) (scalar.Number, error) { return o, nil }
func (o opaque) Sub(scalar.Number) (scalar.Number, error) { return o, nil }
func (o opaque) Mul(scalar.Number) (scalar.Number, error) { return o, nil }
func (o opaque) Div(scalar.Number) (scalar.Number, error) { return o, nil }
func (o opaque) Cmp(scalar.Number) (int, error)           { return 0, nil }
func (o opaque) Equal(scalar.Number) (bool, error)        { return true, nil }
func (o opaque) Abs() (scalar.Number, error)              { return o, nil }
func (o opaque) Int64() (int64, error)                    { return 1, nil }
func (o opaque) Float64() (float64, error)                { return 1, nil }

func boxInt(t *testing.T, v int64) scalar.Boxed {
	t.Helper()
	b, err := scalar.Box(v)
	require.NoError(t, err)

	return b
}

func TestBoxedSizeIsHandleSize(t *testing.T) {
	require.Equal(t, dtype.Boxed.Size(), unsafe.Sizeof(scalar.Boxed{}))
}

func TestBoxedInverseNotImplemented(t *testing.T) {
	for _, b := range []scalar.Boxed{boxInt(t, 2), scalar.NewBoxed(scalar.NewBigFloat(0.5)), {}} {
		_, err := b.Inverse()
		require.ErrorIs(t, err, scalar.ErrNotImplemented)
	}
}

func TestBoxedDelegatesArithmetic(t *testing.T) {
	a, b := boxInt(t, -7), boxInt(t, 2)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "-5", sum.String())
	require.IsType(t, scalar.Int{}, sum.Ref())

	q, err := a.Div(b)
	require.NoError(t, err)
	require.Equal(t, "-4", q.String()) // floor division

	m, err := a.Mod(b)
	require.NoError(t, err)
	require.Equal(t, "1", m.String()) // sign follows the divisor

	p, err := b.Pow(boxInt(t, 10))
	require.NoError(t, err)
	require.Equal(t, "1024", p.String())

	neg, err := a.Neg()
	require.NoError(t, err)
	require.Equal(t, "7", neg.String())

	abs, err := a.Abs()
	require.NoError(t, err)
	require.Equal(t, "7", abs.String())

	_, err = a.Div(boxInt(t, 0))
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)
}

func TestBoxedMixedHostRanks(t *testing.T) {
	half := scalar.NewBoxed(scalar.NewBigFloat(0.5))
	sum, err := boxInt(t, 2).Add(half)
	require.NoError(t, err)
	require.IsType(t, scalar.BigFloat{}, sum.Ref()) // Int < BigFloat
	f, err := sum.ToFloat64()
	require.NoError(t, err)
	require.Equal(t, 2.5, f)

	inv, err := boxInt(t, 2).Pow(boxInt(t, -1))
	require.NoError(t, err)
	f, err = inv.ToFloat64()
	require.NoError(t, err)
	require.Equal(t, 0.5, f)

	z := scalar.NewBoxed(scalar.NewHostComplex(complex(0, 1)))
	sq, err := z.Mul(z)
	require.NoError(t, err)
	c, err := scalar.ComplexFromBoxed[float64](sq)
	require.NoError(t, err)
	require.Equal(t, scalar.NewComplex(-1.0, 0.0), c)
}

func TestBoxedComparisons(t *testing.T) {
	a, b := boxInt(t, 3), boxInt(t, 5)

	for _, tc := range []struct {
		name string
		fn   func(scalar.Boxed) (bool, error)
		want bool
	}{
		{"eq", a.Eq, false},
		{"ne", a.Ne, true},
		{"lt", a.Lt, true},
		{"gt", a.Gt, false},
		{"le", a.Le, true},
		{"ge", a.Ge, false},
	} {
		got, err := tc.fn(b)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got, tc.name)
	}

	eq, err := b.EqValue(int32(5)) // native operand is boxed first
	require.NoError(t, err)
	require.True(t, eq)

	c, err := b.CmpValue(2.5)
	require.NoError(t, err)
	require.Equal(t, 1, c)

	_, err = b.EqValue("5")
	require.ErrorIs(t, err, scalar.ErrTypeConversion)
}

func TestBoxedBooleanShortcut(t *testing.T) {
	calls := 0
	yes := scalar.NewBoxed(spyBool{v: true, calls: &calls})
	no := scalar.NewBoxed(spyBool{v: false, calls: &calls})

	v, err := scalar.UnboxTo[int32](yes)
	require.NoError(t, err)
	require.Equal(t, int32(1), v)

	u, err := scalar.UnboxTo[uint8](no)
	require.NoError(t, err)
	require.Equal(t, uint8(0), u)

	f, err := no.ToFloat64()
	require.NoError(t, err)
	require.Zero(t, f)

	require.Zero(t, calls, "numeric coercion must not be invoked for truth values")

	b, err := scalar.Box(true)
	require.NoError(t, err)
	i, err := b.ToInt64()
	require.NoError(t, err)
	require.Equal(t, int64(1), i)

	_, err = b.Add(b)
	require.ErrorIs(t, err, scalar.ErrTypeConversion) // booleans carry no arithmetic
}

func TestBoxedNonNumericReferent(t *testing.T) {
	other := scalar.NewBoxed(opaque{class: scalar.ClassOther})

	_, err := other.ToInt64()
	require.ErrorIs(t, err, scalar.ErrTypeConversion)
	_, err = other.Add(boxInt(t, 1))
	require.ErrorIs(t, err, scalar.ErrTypeConversion)
	_, err = scalar.ComplexFromBoxed[float32](other)
	require.ErrorIs(t, err, scalar.ErrTypeConversion)

	var empty scalar.Boxed
	require.True(t, empty.IsNil())
	require.Equal(t, "<nil>", empty.String())
	_, err = empty.ToFloat64()
	require.ErrorIs(t, err, scalar.ErrTypeConversion)
	_, err = empty.Eq(boxInt(t, 1))
	require.ErrorIs(t, err, scalar.ErrTypeConversion)
}

func TestBoxedMissingCapability(t *testing.T) {
	plain := scalar.NewBoxed(opaque{class: scalar.ClassInteger})

	_, err := plain.Mod(plain)
	require.ErrorIs(t, err, scalar.ErrNotImplemented)
	_, err = plain.Pow(plain)
	require.ErrorIs(t, err, scalar.ErrNotImplemented)
	_, err = plain.Neg()
	require.ErrorIs(t, err, scalar.ErrNotImplemented)
	_, err = plain.Unary(ops.Sin)
	require.ErrorIs(t, err, scalar.ErrNotImplemented)

	abs, err := plain.Unary(ops.Abs) // falls back to the mandatory Abs
	require.NoError(t, err)
	require.Equal(t, plain, abs)
}

func TestComplexFromBoxed(t *testing.T) {
	c, err := scalar.ComplexFromBoxed[float64](scalar.NewBoxed(scalar.NewHostComplex(complex(1, 2))))
	require.NoError(t, err)
	require.Equal(t, scalar.NewComplex(1.0, 2.0), c)

	r, err := scalar.ComplexFromBoxed[float32](boxInt(t, 3))
	require.NoError(t, err)
	require.Equal(t, scalar.NewComplex[float32](3, 0), r)

	_, err = scalar.ComplexFromBoxed[float64](scalar.NewBoxed(scalar.Bool(true)))
	require.ErrorIs(t, err, scalar.ErrTypeConversion)
}

func TestBoxedUnary(t *testing.T) {
	root, err := boxInt(t, 9).Unary(ops.Sqrt)
	require.NoError(t, err)
	f, err := root.ToFloat64()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	for _, tc := range []struct {
		in   float64
		op   ops.Unary
		want string
	}{
		{2.5, ops.Round, "3"},
		{-2.5, ops.Round, "-3"},
		{-2.5, ops.Floor, "-3"},
		{-2.5, ops.Ceil, "-2"},
		{2.0, ops.Floor, "2"},
	} {
		got, err := scalar.NewBoxed(scalar.NewBigFloat(tc.in)).Unary(tc.op)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String(), "%s(%v)", tc.op, tc.in)
		assert.IsType(t, scalar.Int{}, got.Ref())
	}

	_, err = scalar.NewBoxed(scalar.NewHostComplex(1)).Unary(ops.Erf)
	require.ErrorIs(t, err, scalar.ErrNotImplemented)

	_, err = scalar.NewBoxed(scalar.NewBigFloat(-1)).Unary(ops.Sqrt)
	require.ErrorIs(t, err, scalar.ErrTypeConversion) // NaN has no host representation
}
