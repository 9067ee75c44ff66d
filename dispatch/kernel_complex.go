// SPDX-License-Identifier: MIT

package dispatch

import (
	"math/cmplx"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
)

// Complex kinds have no modulo; the Mod kernel stays nil.

func complexWitness[F scalar.Float](o Options) *witness {
	k := dtype.Complex128
	if scalar.KindFor[F]() == dtype.Float32 {
		k = dtype.Complex64
	}
	w := baseWitness[scalar.Complex[F]](k)
	w.same = sameFn[scalar.Complex[F]]()
	eps := epsFor[F](o)

	w.binary[ops.Add] = lift(scalar.Complex[F].Add)
	w.binary[ops.Sub] = lift(scalar.Complex[F].Sub)
	w.binary[ops.Mul] = lift(scalar.Complex[F].Mul)
	w.binary[ops.Div] = lift(scalar.Complex[F].Div)
	w.binary[ops.Pow] = lift(func(a, b scalar.Complex[F]) scalar.Complex[F] {
		return scalar.ComplexFrom[F](cmplx.Pow(a.Complex128(), b.Complex128()))
	})
	setComparisons(&w.binary,
		func(a, b scalar.Complex[F]) bool { return a.CompareEps(b, eps) == 0 },
		func(a, b scalar.Complex[F]) bool { return a.CompareEps(b, eps) < 0 })

	w.unary = complexUnary[F](w.kind)

	return w
}

func complexUnary[F scalar.Float](k dtype.Kind) func(op ops.Unary) unaryPlan {
	part := scalar.KindFor[F]()

	return func(op ops.Unary) unaryPlan {
		if op == ops.Abs {
			return unaryPlan{
				result: part,
				fn:     func(a any) (any, error) { return F(a.(scalar.Complex[F]).Abs()), nil },
				state:  Ready,
			}
		}

		f := op.Complex()
		switch {
		case op.IsTranscendental():
			result := dtype.Upcast(k, dtype.Float64)
			if f == nil {
				return unaryPlan{result: result, state: NotImplemented}
			}
			return unaryPlan{
				result: result,
				fn: func(a any) (any, error) {
					return scalar.ComplexFrom[float64](f(a.(scalar.Complex[F]).Complex128())), nil
				},
				state: Ready,
			}
		case f == nil:
			return unaryPlan{result: k, state: NotImplemented}
		}

		// Negate and the componentwise rounding ops keep the kind.
		return unaryPlan{
			result: k,
			fn: func(a any) (any, error) {
				return scalar.ComplexFrom[F](f(a.(scalar.Complex[F]).Complex128())), nil
			},
			state: Ready,
		}
	}
}
