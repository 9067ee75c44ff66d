// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
)

// Integer arithmetic wraps on overflow, exactly like the Go operators.

func intWitness[T scalar.Integer]() *witness {
	w := baseWitness[T](scalar.KindFor[T]())
	w.same = sameFn[T]()

	w.binary[ops.Add] = lift(func(a, b T) T { return a + b })
	w.binary[ops.Sub] = lift(func(a, b T) T { return a - b })
	w.binary[ops.Mul] = lift(func(a, b T) T { return a * b })
	w.binary[ops.Div] = liftErr(floorDiv[T])
	w.binary[ops.Mod] = liftErr(floorMod[T])
	w.binary[ops.Pow] = liftErr(intPow[T])
	setComparisons(&w.binary,
		func(a, b T) bool { return a == b },
		func(a, b T) bool { return a < b })

	w.unary = intUnary[T](w.kind)

	return w
}

// floorDiv divides rounding toward negative infinity.
func floorDiv[T scalar.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q, nil
}

// floorMod returns a remainder with the sign of the divisor.
func floorMod[T scalar.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}

	return m, nil
}

// intPow raises base to exp by squaring. A negative exponent yields the
// truncated reciprocal: 1 and -1 keep a magnitude of one, every other
// non-zero base truncates to 0, and base 0 is a division by zero.
func intPow[T scalar.Integer](base, exp T) (T, error) {
	if exp < 0 {
		switch {
		case base == 0:
			return 0, ErrDivisionByZero
		case base == 1:
			return 1, nil
		case int64(base) == -1:
			if exp%2 == 0 {
				return 1, nil
			}
			return base, nil
		}
		return 0, nil
	}

	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}

	return result, nil
}

func intUnary[T scalar.Integer](k dtype.Kind) func(op ops.Unary) unaryPlan {
	return func(op ops.Unary) unaryPlan {
		switch {
		case op.IsTranscendental():
			f := op.Real()
			return unaryPlan{
				result: dtype.Upcast(k, dtype.Float64),
				fn:     func(a any) (any, error) { return f(float64(a.(T))), nil },
				state:  Ready,
			}
		case op.IsRounding():
			return unaryPlan{result: k, fn: func(a any) (any, error) { return a.(T), nil }, state: Ready}
		case op == ops.Negate:
			return unaryPlan{result: k, fn: func(a any) (any, error) { return -a.(T), nil }, state: Ready}
		case op == ops.Abs:
			return unaryPlan{result: k, fn: func(a any) (any, error) {
				v := a.(T)
				if v < 0 {
					v = -v
				}
				return v, nil
			}, state: Ready}
		}

		return unaryPlan{result: k, state: NotImplemented}
	}
}
