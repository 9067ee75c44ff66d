// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Host arithmetic between adapters of different types coerces both operands
// to the higher rank first: Int < Decimal < BigFloat < HostComplex. Foreign
// Number implementations rank by their Class.
type rank uint8

const (
	rankInt rank = iota
	rankDecimal
	rankFloat
	rankComplex
)

type hostOp uint8

const (
	hostAdd hostOp = iota
	hostSub
	hostMul
	hostDiv
	hostMod
	hostPow
)

var hostOpNames = [...]string{"Add", "Sub", "Mul", "Div", "Mod", "Pow"}

func (op hostOp) String() string { return hostOpNames[op] }

func rankOf(n Number) (rank, error) {
	switch n.(type) {
	case Int:
		return rankInt, nil
	case Decimal:
		return rankDecimal, nil
	case BigFloat:
		return rankFloat, nil
	case HostComplex:
		return rankComplex, nil
	}
	if n == nil {
		return 0, fmt.Errorf("nil operand: %w", ErrTypeConversion)
	}
	switch n.Class() {
	case ClassInteger:
		return rankInt, nil
	case ClassFloat:
		return rankFloat, nil
	case ClassComplex:
		return rankComplex, nil
	}

	return 0, fmt.Errorf("%s operand: %w", n.Class(), ErrTypeConversion)
}

// coerce ranks a and b and returns the common rank.
func coerce(a, b Number) (rank, error) {
	ra, err := rankOf(a)
	if err != nil {
		return 0, err
	}
	rb, err := rankOf(b)
	if err != nil {
		return 0, err
	}

	return max(ra, rb), nil
}

func hostBinary(op hostOp, a, b Number) (Number, error) {
	r, err := coerce(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	switch r {
	case rankInt:
		x, err := liftInt(a)
		if err != nil {
			return nil, err
		}
		y, err := liftInt(b)
		if err != nil {
			return nil, err
		}
		return x.binary(op, y)
	case rankDecimal:
		x, err := liftDecimal(a)
		if err != nil {
			return nil, err
		}
		y, err := liftDecimal(b)
		if err != nil {
			return nil, err
		}
		return x.binary(op, y)
	case rankFloat:
		x, err := liftFloat(a)
		if err != nil {
			return nil, err
		}
		y, err := liftFloat(b)
		if err != nil {
			return nil, err
		}
		return x.binary(op, y)
	default:
		x, err := liftComplex(a)
		if err != nil {
			return nil, err
		}
		y, err := liftComplex(b)
		if err != nil {
			return nil, err
		}
		return x.binary(op, y)
	}
}

func hostCmp(a, b Number) (int, error) {
	r, err := coerce(a, b)
	if err != nil {
		return 0, fmt.Errorf("Cmp: %w", err)
	}

	switch r {
	case rankInt:
		x, err := liftInt(a)
		if err != nil {
			return 0, err
		}
		y, err := liftInt(b)
		if err != nil {
			return 0, err
		}
		return x.v.Cmp(y.v), nil
	case rankDecimal:
		x, err := liftDecimal(a)
		if err != nil {
			return 0, err
		}
		y, err := liftDecimal(b)
		if err != nil {
			return 0, err
		}
		return x.v.Cmp(y.v), nil
	case rankFloat:
		x, err := liftFloat(a)
		if err != nil {
			return 0, err
		}
		y, err := liftFloat(b)
		if err != nil {
			return 0, err
		}
		return x.v.Cmp(y.v), nil
	default:
		x, err := liftComplex(a)
		if err != nil {
			return 0, err
		}
		y, err := liftComplex(b)
		if err != nil {
			return 0, err
		}
		return ComplexFrom[float64](x.v).CompareEps(ComplexFrom[float64](y.v), 0), nil
	}
}

func hostEqual(a, b Number) (bool, error) {
	c, err := hostCmp(a, b)
	if err != nil {
		return false, err
	}

	return c == 0, nil
}

func liftInt(n Number) (Int, error) {
	if i, ok := n.(Int); ok {
		return i.norm(), nil
	}
	v, err := n.Int64()
	if err != nil {
		return Int{}, fmt.Errorf("lift to Int: %w: %w", ErrTypeConversion, err)
	}

	return NewInt(v), nil
}

func liftDecimal(n Number) (Decimal, error) {
	switch x := n.(type) {
	case Decimal:
		return x.norm(), nil
	case Int:
		d, _, err := apd.NewFromString(x.norm().v.String())
		if err != nil {
			return Decimal{}, fmt.Errorf("lift to Decimal: %w: %w", ErrTypeConversion, err)
		}
		return Decimal{v: d}, nil
	}
	v, err := n.Int64()
	if err != nil {
		return Decimal{}, fmt.Errorf("lift to Decimal: %w: %w", ErrTypeConversion, err)
	}

	return NewDecimal(v, 0), nil
}

func liftFloat(n Number) (BigFloat, error) {
	switch x := n.(type) {
	case BigFloat:
		return x.norm(), nil
	case Int:
		return BigFloat{v: new(big.Float).SetInt(x.norm().v)}, nil
	case Decimal:
		f, ok := new(big.Float).SetPrec(DefaultFloatPrec).SetString(x.norm().v.Text('f'))
		if !ok {
			return BigFloat{}, fmt.Errorf("lift to BigFloat: %s: %w", x, ErrTypeConversion)
		}
		return BigFloat{v: f}, nil
	}
	v, err := n.Float64()
	if err != nil {
		return BigFloat{}, fmt.Errorf("lift to BigFloat: %w: %w", ErrTypeConversion, err)
	}

	return newFloatChecked(v)
}

func liftComplex(n Number) (HostComplex, error) {
	if c, ok := n.(HostComplex); ok {
		return c, nil
	}
	if p, ok := n.(ComplexParts); ok {
		re, im, err := p.Parts()
		if err != nil {
			return HostComplex{}, fmt.Errorf("lift to HostComplex: %w: %w", ErrTypeConversion, err)
		}
		return NewHostComplex(complex(re, im)), nil
	}
	v, err := n.Float64()
	if err != nil {
		return HostComplex{}, fmt.Errorf("lift to HostComplex: %w: %w", ErrTypeConversion, err)
	}

	return NewHostComplex(complex(v, 0)), nil
}

// newFloatChecked boxes f as a Float; big.Float has no NaN.
func newFloatChecked(f float64) (BigFloat, error) {
	if math.IsNaN(f) {
		return BigFloat{}, fmt.Errorf("NaN has no host representation: %w", ErrTypeConversion)
	}

	return NewBigFloat(f), nil
}

// unaryViaFloat64 evaluates a transcendental op through float64.
func unaryViaFloat64(n Number, f func(float64) float64) (Number, error) {
	x, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTypeConversion, err)
	}

	return newFloatChecked(f(x))
}
