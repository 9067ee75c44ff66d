// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
)

// unaryPlan is what a witness offers for one unary op: the result kind, the
// function and the cell state.
type unaryPlan struct {
	result dtype.Kind
	fn     UnaryFunc
	state  State
}

// witness gathers everything the builders need to know about one kind. It is
// produced by a generic constructor instantiated for the kind's Go type, so
// kernels type-assert once and then run on concrete values.
type witness struct {
	kind  dtype.Kind
	check func(v any) bool
	cast  func(v any) (any, error)
	same  func(a, b any) bool // exact equality; nil for boxed

	// binary kernels take two values already of this kind. A nil entry means
	// the kind has no implementation of that op.
	binary [ops.NumEW]BinaryFunc
	unary  func(op ops.Unary) unaryPlan
}

type witnessSet [dtype.NumKinds]*witness

func newWitnesses(o Options) witnessSet {
	return witnessSet{
		dtype.Uint8:      intWitness[uint8](),
		dtype.Int8:       intWitness[int8](),
		dtype.Int16:      intWitness[int16](),
		dtype.Int32:      intWitness[int32](),
		dtype.Int64:      intWitness[int64](),
		dtype.Float32:    floatWitness[float32](o),
		dtype.Float64:    floatWitness[float64](o),
		dtype.Complex64:  complexWitness[float32](o),
		dtype.Complex128: complexWitness[float64](o),
		dtype.Boxed:      boxedWitness(),
	}
}

// baseWitness accepts values of exactly T and casts everything else to k.
func baseWitness[T any](k dtype.Kind) *witness {
	return &witness{
		kind: k,
		check: func(v any) bool {
			_, ok := v.(T)
			return ok
		},
		cast: func(v any) (any, error) {
			if _, ok := v.(T); ok {
				return v, nil
			}
			return scalar.CastKind(k, v)
		},
	}
}

func sameFn[T comparable]() func(a, b any) bool {
	return func(a, b any) bool { return a.(T) == b.(T) }
}

// epsFor is the comparison tolerance for values of type F.
func epsFor[F scalar.Float](o Options) float64 {
	if eps, ok := o.Epsilon(); ok {
		return eps
	}

	return float64(scalar.Epsilon[F]())
}

func lift[T, R any](f func(a, b T) R) BinaryFunc {
	return func(a, b any) (any, error) { return f(a.(T), b.(T)), nil }
}

func liftErr[T, R any](f func(a, b T) (R, error)) BinaryFunc {
	return func(a, b any) (any, error) { return f(a.(T), b.(T)) }
}

func truth(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}

// setComparisons fills the six comparison kernels from an equality and a
// strict ordering. Orderings exclude values that compare equal, so an
// epsilon applies to every comparison alike.
func setComparisons[T any](ks *[ops.NumEW]BinaryFunc, eq, less func(a, b T) bool) {
	ks[ops.Eq] = lift(func(a, b T) uint8 { return truth(eq(a, b)) })
	ks[ops.Ne] = lift(func(a, b T) uint8 { return truth(!eq(a, b)) })
	ks[ops.Lt] = lift(func(a, b T) uint8 { return truth(less(a, b) && !eq(a, b)) })
	ks[ops.Gt] = lift(func(a, b T) uint8 { return truth(less(b, a) && !eq(a, b)) })
	ks[ops.Le] = lift(func(a, b T) uint8 { return truth(less(a, b) || eq(a, b)) })
	ks[ops.Ge] = lift(func(a, b T) uint8 { return truth(less(b, a) || eq(a, b)) })
}
