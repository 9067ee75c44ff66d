// SPDX-License-Identifier: MIT

package dispatch

import (
	"math"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
)

func floatWitness[T scalar.Float](o Options) *witness {
	w := baseWitness[T](scalar.KindFor[T]())
	w.same = sameFn[T]()
	eps := epsFor[T](o)

	w.binary[ops.Add] = lift(func(a, b T) T { return a + b })
	w.binary[ops.Sub] = lift(func(a, b T) T { return a - b })
	w.binary[ops.Mul] = lift(func(a, b T) T { return a * b })
	w.binary[ops.Div] = lift(func(a, b T) T { return a / b })
	w.binary[ops.Mod] = lift(func(a, b T) T { return T(floorModFloat(float64(a), float64(b))) })
	w.binary[ops.Pow] = lift(func(a, b T) T { return T(math.Pow(float64(a), float64(b))) })
	setComparisons(&w.binary,
		func(a, b T) bool { return a == b || math.Abs(float64(a)-float64(b)) <= eps },
		func(a, b T) bool { return a < b })

	w.unary = floatUnary[T](w.kind)

	return w
}

// floorModFloat is the floating remainder with the sign of the divisor.
func floorModFloat(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}

	return m
}

func floatUnary[T scalar.Float](k dtype.Kind) func(op ops.Unary) unaryPlan {
	return func(op ops.Unary) unaryPlan {
		f := op.Real()
		switch {
		case f == nil:
			return unaryPlan{result: k, state: NotImplemented}
		case op.IsTranscendental():
			return unaryPlan{
				result: dtype.Upcast(k, dtype.Float64),
				fn:     func(a any) (any, error) { return f(float64(a.(T))), nil },
				state:  Ready,
			}
		case op == ops.Floor || op == ops.Ceil:
			return unaryPlan{
				result: dtype.Int64,
				fn:     func(a any) (any, error) { return int64(f(float64(a.(T)))), nil },
				state:  Ready,
			}
		}

		// Negate, Round and Abs keep the kind.
		return unaryPlan{
			result: k,
			fn:     func(a any) (any, error) { return T(f(float64(a.(T)))), nil },
			state:  Ready,
		}
	}
}
