// SPDX-License-Identifier: MIT

package dispatch

import "math"

// Internal panic messages.
const (
	panicEpsilonInvalid = "dispatch: WithEpsilon: eps must be finite, non-negative"
)

// Option configures how a table is built. Options are applied in order; the
// last setter of a field wins.
type Option func(*Options)

// Options stores the effective build configuration. Two tables built with
// equal Options have equal cells.
type Options struct {
	guardedIntDiv bool    // integer Div/Mod Ready with floor semantics
	eps           float64 // < 0 ⇒ machine epsilon of the compared type
}

// WithGuardedIntegerDivision makes Div and Mod on integer×integer pairs Ready.
// Implementation:
//   - Stage 1: set guardedIntDiv=true.
//
// Behavior highlights:
//   - Quotients round toward negative infinity; remainders take the sign of
//     the divisor.
//   - A zero divisor fails the call with ErrDivisionByZero.
//
// Notes:
//   - Without this option the cells are Unsupported, so an integer storage
//     never divides by accident.
func WithGuardedIntegerDivision() Option {
	return func(o *Options) { o.guardedIntDiv = true }
}

// WithEpsilon overrides the tolerance used by float and complex comparisons.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Two values compare equal when |a-b| ≤ eps. The default is the machine
//     epsilon of the compared type (float32 for float32 and complex64).
//   - WithEpsilon(0) gives exact comparisons.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(opts ...Option) Options {
	o := Options{eps: -1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// GuardedIntegerDivision reports whether integer division cells are Ready.
func (o Options) GuardedIntegerDivision() bool { return o.guardedIntDiv }

// Epsilon returns the overriding tolerance and whether one was set.
func (o Options) Epsilon() (float64, bool) { return o.eps, o.eps >= 0 }
