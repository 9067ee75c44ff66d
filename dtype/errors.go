// SPDX-License-Identifier: MIT

package dtype

import "errors"

// Sentinel errors for the kind catalogue. Match them with errors.Is.
var (
	// ErrUnknownKind is returned when a name or ordinal does not denote a Kind.
	ErrUnknownKind = errors.New("dtype: unknown kind")

	// ErrNotIndexKind is returned when a kind cannot be used as an index kind.
	// Only unsigned native integer kinds qualify; complex and boxed never do.
	ErrNotIndexKind = errors.New("dtype: not an index kind")
)
