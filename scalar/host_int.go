// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/lvnum/ops"
)

// MaxIntExponent bounds the exponent accepted by Int.Pow so that a single
// element cannot allocate an unbounded result.
const MaxIntExponent = 1 << 20

// Int is an arbitrary-precision integer host number backed by *big.Int.
// Division and modulo round toward negative infinity, so the sign of a
// remainder follows the divisor. The zero Int is 0.
type Int struct {
	v *big.Int
}

// NewInt returns x as an Int.
func NewInt(x int64) Int { return Int{v: big.NewInt(x)} }

// IntFrom wraps a copy of x; nil is 0.
func IntFrom(x *big.Int) Int {
	if x == nil {
		return NewInt(0)
	}

	return Int{v: new(big.Int).Set(x)}
}

func (i Int) norm() Int {
	if i.v == nil {
		return NewInt(0)
	}

	return i
}

// Big returns a copy of the value.
func (i Int) Big() *big.Int { return new(big.Int).Set(i.norm().v) }

func (i Int) String() string { return i.norm().v.String() }
func (i Int) Class() Class   { return ClassInteger }

func (i Int) Add(o Number) (Number, error) { return hostBinary(hostAdd, i, o) }
func (i Int) Sub(o Number) (Number, error) { return hostBinary(hostSub, i, o) }
func (i Int) Mul(o Number) (Number, error) { return hostBinary(hostMul, i, o) }
func (i Int) Div(o Number) (Number, error) { return hostBinary(hostDiv, i, o) }
func (i Int) Mod(o Number) (Number, error) { return hostBinary(hostMod, i, o) }
func (i Int) Pow(o Number) (Number, error) { return hostBinary(hostPow, i, o) }

func (i Int) Cmp(o Number) (int, error)    { return hostCmp(i, o) }
func (i Int) Equal(o Number) (bool, error) { return hostEqual(i, o) }

func (i Int) Neg() (Number, error) { return Int{v: new(big.Int).Neg(i.norm().v)}, nil }
func (i Int) Abs() (Number, error) { return Int{v: new(big.Int).Abs(i.norm().v)}, nil }

// Int64 fails with ErrTypeConversion when the value does not fit.
func (i Int) Int64() (int64, error) {
	v := i.norm().v
	if !v.IsInt64() {
		return 0, fmt.Errorf("Int.Int64(%s): %w", v, ErrTypeConversion)
	}

	return v.Int64(), nil
}

// Float64 returns the nearest float64, ±Inf beyond its range.
func (i Int) Float64() (float64, error) {
	f, _ := new(big.Float).SetInt(i.norm().v).Float64()

	return f, nil
}

// Unary keeps rounding ops exact and evaluates the rest through float64.
func (i Int) Unary(op ops.Unary) (Number, error) {
	switch {
	case op.IsRounding():
		return i.norm(), nil
	case op == ops.Negate:
		return i.Neg()
	case op == ops.Abs:
		return i.Abs()
	case !op.Valid():
		return nil, fmt.Errorf("Int.Unary(%s): %w", op, ErrNotImplemented)
	}

	return unaryViaFloat64(i, op.Real())
}

func (i Int) binary(op hostOp, o Int) (Number, error) {
	x, y := i.norm().v, o.norm().v
	z := new(big.Int)

	switch op {
	case hostAdd:
		return Int{v: z.Add(x, y)}, nil
	case hostSub:
		return Int{v: z.Sub(x, y)}, nil
	case hostMul:
		return Int{v: z.Mul(x, y)}, nil
	case hostDiv, hostMod:
		if y.Sign() == 0 {
			return nil, fmt.Errorf("Int.%s: %w", op, ErrDivisionByZero)
		}
		m := new(big.Int)
		z.QuoRem(x, y, m)
		if m.Sign() != 0 && (m.Sign() < 0) != (y.Sign() < 0) {
			z.Sub(z, big.NewInt(1))
			m.Add(m, y)
		}
		if op == hostDiv {
			return Int{v: z}, nil
		}
		return Int{v: m}, nil
	default:
		return i.pow(o)
	}
}

// pow returns an exact Int for non-negative exponents and a BigFloat otherwise.
func (i Int) pow(o Int) (Number, error) {
	x, y := i.norm().v, o.norm().v
	if y.Sign() < 0 {
		xf, _ := i.Float64()
		yf, _ := o.Float64()
		return newFloatChecked(math.Pow(xf, yf))
	}
	if !y.IsInt64() || y.Int64() > MaxIntExponent {
		return nil, fmt.Errorf("Int.Pow: exponent %s exceeds %d: %w", y, MaxIntExponent, ErrUnsupportedOperation)
	}

	return Int{v: new(big.Int).Exp(x, y, nil)}, nil
}
