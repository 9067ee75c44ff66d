// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/lvnum/ops"
)

// HostComplex is a complex host number backed by complex128.
// It orders lexicographically like Complex and has no modulo.
type HostComplex struct {
	v complex128
}

// NewHostComplex wraps z.
func NewHostComplex(z complex128) HostComplex { return HostComplex{v: z} }

// Complex128 returns the wrapped value.
func (c HostComplex) Complex128() complex128 { return c.v }

func (c HostComplex) String() string { return ComplexFrom[float64](c.v).String() }
func (c HostComplex) Class() Class   { return ClassComplex }

func (c HostComplex) Parts() (re, im float64, err error) { return real(c.v), imag(c.v), nil }

func (c HostComplex) Add(o Number) (Number, error) { return hostBinary(hostAdd, c, o) }
func (c HostComplex) Sub(o Number) (Number, error) { return hostBinary(hostSub, c, o) }
func (c HostComplex) Mul(o Number) (Number, error) { return hostBinary(hostMul, c, o) }
func (c HostComplex) Div(o Number) (Number, error) { return hostBinary(hostDiv, c, o) }
func (c HostComplex) Pow(o Number) (Number, error) { return hostBinary(hostPow, c, o) }

func (c HostComplex) Cmp(o Number) (int, error)    { return hostCmp(c, o) }
func (c HostComplex) Equal(o Number) (bool, error) { return hostEqual(c, o) }

func (c HostComplex) Neg() (Number, error) { return HostComplex{v: -c.v}, nil }

// Abs returns the modulus as a BigFloat.
func (c HostComplex) Abs() (Number, error) { return newFloatChecked(cmplx.Abs(c.v)) }

// Int64 narrows to the real part.
func (c HostComplex) Int64() (int64, error) { return int64(real(c.v)), nil }

// Float64 narrows to the real part.
func (c HostComplex) Float64() (float64, error) { return real(c.v), nil }

// Unary fails with ErrNotImplemented for ops undefined on the complex plane
// (erf, erfc, cbrt, gamma).
func (c HostComplex) Unary(op ops.Unary) (Number, error) {
	if op == ops.Abs {
		return c.Abs()
	}
	f := op.Complex()
	if f == nil {
		return nil, fmt.Errorf("HostComplex.Unary(%s): %w", op, ErrNotImplemented)
	}

	return HostComplex{v: f(c.v)}, nil
}

func (c HostComplex) binary(op hostOp, o HostComplex) (Number, error) {
	switch op {
	case hostAdd:
		return HostComplex{v: c.v + o.v}, nil
	case hostSub:
		return HostComplex{v: c.v - o.v}, nil
	case hostMul:
		return HostComplex{v: c.v * o.v}, nil
	case hostDiv:
		return HostComplex{v: c.v / o.v}, nil
	case hostPow:
		return HostComplex{v: cmplx.Pow(c.v, o.v)}, nil
	default:
		return nil, fmt.Errorf("HostComplex.%s: %w", op, ErrUnsupportedOperation)
	}
}
