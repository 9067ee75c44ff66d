// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/lvnum/ops"
)

// DecimalPrecision is the number of significant digits kept by Decimal
// arithmetic, matching IEEE 754 decimal128.
const DecimalPrecision = 34

// decimalContext is shared read-only; apd contexts are safe for concurrent use
// as long as nobody mutates them.
var decimalContext = apd.BaseContext.WithPrecision(DecimalPrecision)

// Decimal is an exact decimal host number backed by *apd.Decimal.
// Modulo rounds toward negative infinity like Int. The zero Decimal is 0.
type Decimal struct {
	v *apd.Decimal
}

// NewDecimal returns coeff × 10^exp.
func NewDecimal(coeff int64, exp int32) Decimal { return Decimal{v: apd.New(coeff, exp)} }

// ParseDecimal parses a decimal literal such as "12.50" or "-1E+3".
// NaN literals are rejected.
func ParseDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("ParseDecimal(%q): %w: %w", s, ErrTypeConversion, err)
	}
	if isDecimalNaN(d) {
		return Decimal{}, fmt.Errorf("ParseDecimal(%q): %w: NaN has no order", s, ErrTypeConversion)
	}

	return Decimal{v: d}, nil
}

// DecimalFrom wraps a copy of x; nil is 0. A quiet or signaling NaN
// yields ErrTypeConversion.
func DecimalFrom(x *apd.Decimal) (Decimal, error) {
	if x == nil {
		return NewDecimal(0, 0), nil
	}
	if isDecimalNaN(x) {
		return Decimal{}, fmt.Errorf("DecimalFrom(%s): %w: NaN has no order", x, ErrTypeConversion)
	}

	return Decimal{v: new(apd.Decimal).Set(x)}, nil
}

func isDecimalNaN(x *apd.Decimal) bool {
	return x.Form == apd.NaN || x.Form == apd.NaNSignaling
}

func (d Decimal) norm() Decimal {
	if d.v == nil {
		return NewDecimal(0, 0)
	}

	return d
}

// Apd returns a copy of the value.
func (d Decimal) Apd() *apd.Decimal { return new(apd.Decimal).Set(d.norm().v) }

func (d Decimal) String() string { return d.norm().v.String() }
func (d Decimal) Class() Class   { return ClassFloat }

func (d Decimal) Add(o Number) (Number, error) { return hostBinary(hostAdd, d, o) }
func (d Decimal) Sub(o Number) (Number, error) { return hostBinary(hostSub, d, o) }
func (d Decimal) Mul(o Number) (Number, error) { return hostBinary(hostMul, d, o) }
func (d Decimal) Div(o Number) (Number, error) { return hostBinary(hostDiv, d, o) }
func (d Decimal) Mod(o Number) (Number, error) { return hostBinary(hostMod, d, o) }
func (d Decimal) Pow(o Number) (Number, error) { return hostBinary(hostPow, d, o) }

func (d Decimal) Cmp(o Number) (int, error)    { return hostCmp(d, o) }
func (d Decimal) Equal(o Number) (bool, error) { return hostEqual(d, o) }

func (d Decimal) Neg() (Number, error) { return Decimal{v: new(apd.Decimal).Neg(d.norm().v)}, nil }
func (d Decimal) Abs() (Number, error) { return Decimal{v: new(apd.Decimal).Abs(d.norm().v)}, nil }

// Int64 truncates toward zero.
func (d Decimal) Int64() (int64, error) {
	ctx := *decimalContext
	ctx.Rounding = apd.RoundDown
	t := new(apd.Decimal)
	if _, err := ctx.RoundToIntegralValue(t, d.norm().v); err != nil {
		return 0, fmt.Errorf("Decimal.Int64(%s): %w: %w", d, ErrTypeConversion, err)
	}
	i, err := t.Int64()
	if err != nil {
		return 0, fmt.Errorf("Decimal.Int64(%s): %w: %w", d, ErrTypeConversion, err)
	}

	return i, nil
}

// Float64 returns the nearest float64.
func (d Decimal) Float64() (float64, error) {
	f, err := d.norm().v.Float64()
	if err != nil {
		return 0, fmt.Errorf("Decimal.Float64(%s): %w: %w", d, ErrTypeConversion, err)
	}

	return f, nil
}

// Unary evaluates exactly where apd offers the operation and falls back to
// float64 for the trigonometric family.
func (d Decimal) Unary(op ops.Unary) (Number, error) {
	var f func(res, x *apd.Decimal) (apd.Condition, error)
	ctx := *decimalContext

	switch op {
	case ops.Negate:
		return d.Neg()
	case ops.Abs:
		return d.Abs()
	case ops.Sqrt:
		f = ctx.Sqrt
	case ops.Cbrt:
		f = ctx.Cbrt
	case ops.Exp:
		f = ctx.Exp
	case ops.Log:
		f = ctx.Ln
	case ops.Log10:
		f = ctx.Log10
	case ops.Floor:
		f = ctx.Floor
	case ops.Ceil:
		f = ctx.Ceil
	case ops.Round:
		ctx.Rounding = apd.RoundHalfUp
		f = ctx.RoundToIntegralValue
	default:
		if !op.Valid() {
			return nil, fmt.Errorf("Decimal.Unary(%s): %w", op, ErrNotImplemented)
		}
		return unaryViaFloat64(d, op.Real())
	}

	res := new(apd.Decimal)
	if _, err := f(res, d.norm().v); err != nil {
		return nil, fmt.Errorf("Decimal.%s(%s): %w: %w", op, d, ErrTypeConversion, err)
	}

	return Decimal{v: res}, nil
}

func (d Decimal) binary(op hostOp, o Decimal) (Number, error) {
	x, y := d.norm().v, o.norm().v
	z := new(apd.Decimal)

	var err error
	switch op {
	case hostAdd:
		_, err = decimalContext.Add(z, x, y)
	case hostSub:
		_, err = decimalContext.Sub(z, x, y)
	case hostMul:
		_, err = decimalContext.Mul(z, x, y)
	case hostDiv:
		if y.IsZero() {
			return nil, fmt.Errorf("Decimal.%s: %w", op, ErrDivisionByZero)
		}
		_, err = decimalContext.Quo(z, x, y)
	case hostMod:
		if y.IsZero() {
			return nil, fmt.Errorf("Decimal.%s: %w", op, ErrDivisionByZero)
		}
		if _, err = decimalContext.Rem(z, x, y); err == nil && !z.IsZero() && z.Negative != y.Negative {
			_, err = decimalContext.Add(z, z, y)
		}
	default:
		_, err = decimalContext.Pow(z, x, y)
	}
	if err != nil {
		return nil, fmt.Errorf("Decimal.%s: %w: %w", op, ErrTypeConversion, err)
	}

	return Decimal{v: z}, nil
}
