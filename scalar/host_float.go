// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/lvnum/ops"
)

// DefaultFloatPrec is the mantissa precision, in bits, of BigFloat values built
// from float64 or decimal input.
const DefaultFloatPrec = 53

// BigFloat is a binary floating-point host number backed by *big.Float.
// It represents ±Inf but never NaN: operations whose IEEE result would be NaN
// fail with ErrTypeConversion. The zero BigFloat is +0.
type BigFloat struct {
	v *big.Float
}

// NewBigFloat returns f as a BigFloat. It panics on NaN, like big.NewFloat.
func NewBigFloat(f float64) BigFloat { return BigFloat{v: big.NewFloat(f)} }

// BigFloatFrom wraps a copy of x; nil is 0.
func BigFloatFrom(x *big.Float) BigFloat {
	if x == nil {
		return NewBigFloat(0)
	}

	return BigFloat{v: new(big.Float).Copy(x)}
}

func (f BigFloat) norm() BigFloat {
	if f.v == nil {
		return NewBigFloat(0)
	}

	return f
}

// Big returns a copy of the value.
func (f BigFloat) Big() *big.Float { return new(big.Float).Copy(f.norm().v) }

func (f BigFloat) String() string { return f.norm().v.Text('g', -1) }
func (f BigFloat) Class() Class   { return ClassFloat }

func (f BigFloat) Add(o Number) (Number, error) { return hostBinary(hostAdd, f, o) }
func (f BigFloat) Sub(o Number) (Number, error) { return hostBinary(hostSub, f, o) }
func (f BigFloat) Mul(o Number) (Number, error) { return hostBinary(hostMul, f, o) }
func (f BigFloat) Div(o Number) (Number, error) { return hostBinary(hostDiv, f, o) }
func (f BigFloat) Mod(o Number) (Number, error) { return hostBinary(hostMod, f, o) }
func (f BigFloat) Pow(o Number) (Number, error) { return hostBinary(hostPow, f, o) }

func (f BigFloat) Cmp(o Number) (int, error)    { return hostCmp(f, o) }
func (f BigFloat) Equal(o Number) (bool, error) { return hostEqual(f, o) }

func (f BigFloat) Neg() (Number, error) { return BigFloat{v: new(big.Float).Neg(f.norm().v)}, nil }
func (f BigFloat) Abs() (Number, error) { return BigFloat{v: new(big.Float).Abs(f.norm().v)}, nil }

// Int64 truncates toward zero. Infinite or out-of-range values fail.
func (f BigFloat) Int64() (int64, error) {
	v := f.norm().v
	if v.IsInf() {
		return 0, fmt.Errorf("BigFloat.Int64(%s): %w", f, ErrTypeConversion)
	}
	i, acc := v.Int64()
	if (acc == big.Below && v.Sign() > 0 && i == math.MaxInt64) || (acc == big.Above && v.Sign() < 0 && i == math.MinInt64) {
		return 0, fmt.Errorf("BigFloat.Int64(%s): %w", f, ErrTypeConversion)
	}

	return i, nil
}

// Float64 returns the nearest float64.
func (f BigFloat) Float64() (float64, error) {
	x, _ := f.norm().v.Float64()

	return x, nil
}

// Unary maps Floor, Ceil and Round onto exact Int values and evaluates the
// transcendental ops through float64.
func (f BigFloat) Unary(op ops.Unary) (Number, error) {
	switch {
	case op == ops.Negate:
		return f.Neg()
	case op == ops.Abs:
		return f.Abs()
	case op.IsRounding():
		return f.round(op)
	case !op.Valid():
		return nil, fmt.Errorf("BigFloat.Unary(%s): %w", op, ErrNotImplemented)
	}

	return unaryViaFloat64(f, op.Real())
}

func (f BigFloat) round(op ops.Unary) (Number, error) {
	v := f.norm().v
	if v.IsInf() {
		return nil, fmt.Errorf("BigFloat.%s(%s): %w", op, f, ErrTypeConversion)
	}

	src := v
	if op == ops.Round {
		half := big.NewFloat(0.5)
		if v.Sign() < 0 {
			half.Neg(half)
		}
		src = new(big.Float).SetPrec(v.Prec() + 1).Add(v, half)
	}
	i, _ := src.Int(nil) // truncates toward zero
	if op == ops.Round {
		return Int{v: i}, nil
	}

	frac := new(big.Float).Sub(v, new(big.Float).SetInt(i))
	switch {
	case op == ops.Floor && frac.Sign() < 0:
		i.Sub(i, big.NewInt(1))
	case op == ops.Ceil && frac.Sign() > 0:
		i.Add(i, big.NewInt(1))
	}

	return Int{v: i}, nil
}

func (f BigFloat) binary(op hostOp, o BigFloat) (res Number, err error) {
	x, y := f.norm().v, o.norm().v
	prec := max(x.Prec(), y.Prec(), DefaultFloatPrec)

	// big.Float panics with ErrNaN where IEEE would produce NaN.
	defer func() {
		if r := recover(); r != nil {
			nan, ok := r.(big.ErrNaN)
			if !ok {
				panic(r)
			}
			res, err = nil, fmt.Errorf("BigFloat.%s: %s: %w", op, nan.Error(), errNaNResult)
		}
	}()

	z := new(big.Float).SetPrec(prec)
	switch op {
	case hostAdd:
		return BigFloat{v: z.Add(x, y)}, nil
	case hostSub:
		return BigFloat{v: z.Sub(x, y)}, nil
	case hostMul:
		return BigFloat{v: z.Mul(x, y)}, nil
	case hostDiv:
		return BigFloat{v: z.Quo(x, y)}, nil
	case hostMod:
		return floatMod(x, y, prec)
	default:
		xf, _ := x.Float64()
		yf, _ := y.Float64()
		return newFloatChecked(math.Pow(xf, yf))
	}
}

// floatMod returns x - y·floor(x/y), whose sign follows y.
func floatMod(x, y *big.Float, prec uint) (Number, error) {
	if y.Sign() == 0 || x.IsInf() {
		return nil, fmt.Errorf("BigFloat.Mod: %w", errNaNResult)
	}
	if y.IsInf() {
		if x.Sign() == 0 || (x.Sign() < 0) == (y.Sign() < 0) {
			return BigFloat{v: new(big.Float).Copy(x)}, nil
		}
		return BigFloat{v: new(big.Float).Copy(y)}, nil
	}

	q := new(big.Float).SetPrec(prec).Quo(x, y)
	fl, err := BigFloat{v: q}.round(ops.Floor)
	if err != nil {
		return nil, err
	}
	fq := new(big.Float).SetPrec(prec).SetInt(fl.(Int).v)
	m := new(big.Float).SetPrec(prec).Mul(y, fq)

	return BigFloat{v: m.Sub(x, m)}, nil
}

// errNaNResult marks results IEEE arithmetic would have made NaN.
var errNaNResult = fmt.Errorf("result is not a number: %w", ErrTypeConversion)
