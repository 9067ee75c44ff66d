// SPDX-License-Identifier: MIT

package scalar

import "errors"

// Sentinel errors. Every failure surfaced by scalar, dispatch and matrix wraps
// exactly one of these, so callers match with errors.Is and never on text.
var (
	// ErrTypeConversion reports a value whose runtime kind cannot satisfy a
	// requested conversion, e.g. a boxed referent that is not numeric.
	ErrTypeConversion = errors.New("scalar: type conversion failed")

	// ErrUnsupportedOperation reports a combination that will never be
	// supported, e.g. arithmetic between a boxed and a native operand.
	ErrUnsupportedOperation = errors.New("scalar: unsupported operation")

	// ErrNotImplemented reports an operation that exists in the catalogue but
	// has no implementation for the given kind, e.g. boxed inversion.
	ErrNotImplemented = errors.New("scalar: not implemented")

	// ErrDivisionByZero reports an exact (integer or decimal) division by zero.
	ErrDivisionByZero = errors.New("scalar: division by zero")
)
