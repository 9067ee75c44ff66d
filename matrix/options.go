// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for storage and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: options select dispatch tables, they never
//     change a table after it is built.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Element-wise operations always resolve against tables built with
//     guarded integer division, so integer matrices divide with floor
//     semantics and report ErrDivisionByZero instead of being refused.
//   - Epsilon applies to float and complex comparisons only. When unset, each
//     type compares with its own machine epsilon.
//   - The index kind of a sparse vector defaults to the narrowest unsigned
//     kind able to address its length.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/dtype"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// ingestion for float and complex matrices.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicIndexKindInvalid = "matrix: WithIndexKind: unknown index kind"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0 when epsSet
	epsSet         bool    // false ⇒ machine epsilon per type
	validateNaNInf bool    // DefaultValidateNaNInf

	// sparse storage
	indexKind    dtype.IndexKind
	indexKindSet bool // false ⇒ dtype.IndexFor(length)
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance used by float and complex comparisons.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Eq holds when |a-b| ≤ eps; Lt and Gt additionally require the operands
//     not to be equal under the same rule.
//   - WithEpsilon(0) gives exact comparisons.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.epsSet = true
	}
}

// WithValidateNaNInf rejects NaN and ±Inf on Set and ingestion.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - Applies to float kinds and to either component of complex kinds.
//   - Results of element-wise operations inherit the policy of the left
//     operand's options, i.e. the options passed to the operation.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithIndexKind fixes the index kind of a sparse vector.
// Implementation:
//   - Stage 1: validate ik belongs to the index catalogue.
//   - Stage 2: return a setter that records it.
//
// Behavior highlights:
//   - NewSparseVector fails with ErrBadShape when the length cannot be
//     addressed by ik.
//
// Errors:
//   - Panics with a stable message when ik is not an index kind.
func WithIndexKind(ik dtype.IndexKind) Option {
	if !ik.Valid() {
		panic(panicIndexKindInvalid)
	}

	return func(o *Options) {
		o.indexKind = ik
		o.indexKindSet = true
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// dispatchOptions translates the numeric policy for the dispatch tables.
func (o Options) dispatchOptions() []dispatch.Option {
	out := []dispatch.Option{dispatch.WithGuardedIntegerDivision()}
	if o.epsSet {
		out = append(out, dispatch.WithEpsilon(o.eps))
	}

	return out
}
