// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (or the dispatch
// sentinels re-exported below) and tests MUST check them via errors.Is.
// No operation should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/scalar"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added with matrixErrorf at the
// public boundary; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> kind/dispatch -> per-element failures.

var (
	// ErrBadShape is returned when requested shape is invalid (e.g., r<=0 or c<=0).
	// Constructors validate the shape before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or sparse position)
	// is outside valid bounds. Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., element-wise operands of different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was written into a matrix built
	// with WithValidateNaNInf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrKindMismatch indicates operands whose element kinds must agree but
	// do not, e.g., merging sparse vectors of different kinds. Cast first.
	ErrKindMismatch = errors.New("matrix: element kind mismatch")
)

// Dispatch-level sentinels, re-exported for callers that only import matrix.
var (
	// ErrUnsupportedOperation marks an operation/kind combination that the
	// dispatch tables will never serve (e.g., boxed with native operands).
	ErrUnsupportedOperation = scalar.ErrUnsupportedOperation

	// ErrNotImplemented marks a catalogue operation without an implementation
	// for the requested kinds (e.g., erf over complex elements).
	ErrNotImplemented = scalar.ErrNotImplemented

	// ErrTypeConversion marks a value that cannot be converted to the kind of
	// the matrix it is written to.
	ErrTypeConversion = scalar.ErrTypeConversion

	// ErrDivisionByZero marks an integer division by zero inside an
	// element-wise operation.
	ErrDivisionByZero = scalar.ErrDivisionByZero
)

// BACKWARD-COMPATIBILITY ALIASES.
// They are semantically identical sentinels.

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ErrInvalidDimensions historically named the same condition as ErrBadShape.
var ErrInvalidDimensions = ErrBadShape // Deprecated: use ErrBadShape.

// matrixErrorf wraps err with the public operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
