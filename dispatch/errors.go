// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"

	"github.com/katalvlaran/lvnum/scalar"
)

// Sentinels shared with scalar, re-exported so callers of this package can
// match errors without importing scalar.
var (
	ErrUnsupportedOperation = scalar.ErrUnsupportedOperation
	ErrNotImplemented       = scalar.ErrNotImplemented
	ErrTypeConversion       = scalar.ErrTypeConversion
	ErrDivisionByZero       = scalar.ErrDivisionByZero
)

var (
	// ErrLengthMismatch is returned when two sparse vectors of different
	// logical lengths are merged, or when a vector's values and indices differ
	// in length.
	ErrLengthMismatch = errors.New("dispatch: sparse length mismatch")

	// ErrInvalidIndices is returned for sparse indices that are not strictly
	// increasing or not below the vector length.
	ErrInvalidIndices = errors.New("dispatch: invalid sparse indices")
)
