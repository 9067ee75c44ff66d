// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
)

// Boxed kernels delegate to the referent's own capabilities. Comparisons
// produce the same 1/0 uint8 as every other kind.

func boxedWitness() *witness {
	w := baseWitness[scalar.Boxed](dtype.Boxed)

	w.binary[ops.Add] = liftErr(scalar.Boxed.Add)
	w.binary[ops.Sub] = liftErr(scalar.Boxed.Sub)
	w.binary[ops.Mul] = liftErr(scalar.Boxed.Mul)
	w.binary[ops.Div] = liftErr(scalar.Boxed.Div)
	w.binary[ops.Mod] = liftErr(scalar.Boxed.Mod)
	w.binary[ops.Pow] = liftErr(scalar.Boxed.Pow)
	w.binary[ops.Eq] = boxedPredicate(scalar.Boxed.Eq)
	w.binary[ops.Ne] = boxedPredicate(scalar.Boxed.Ne)
	w.binary[ops.Lt] = boxedPredicate(scalar.Boxed.Lt)
	w.binary[ops.Gt] = boxedPredicate(scalar.Boxed.Gt)
	w.binary[ops.Le] = boxedPredicate(scalar.Boxed.Le)
	w.binary[ops.Ge] = boxedPredicate(scalar.Boxed.Ge)

	w.unary = func(op ops.Unary) unaryPlan {
		return unaryPlan{
			result: dtype.Boxed,
			fn:     func(a any) (any, error) { return a.(scalar.Boxed).Unary(op) },
			state:  Ready,
		}
	}

	return w
}

func boxedPredicate(f func(a, b scalar.Boxed) (bool, error)) BinaryFunc {
	return func(a, b any) (any, error) {
		ok, err := f(a.(scalar.Boxed), b.(scalar.Boxed))
		if err != nil {
			return nil, err
		}
		return truth(ok), nil
	}
}
