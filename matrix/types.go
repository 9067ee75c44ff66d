// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense storage and operations.
// This file contains ONLY the public Matrix interface. Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

import "github.com/katalvlaran/lvnum/dtype"

// Matrix represents a two-dimensional mutable array whose elements all have
// one kind. Values cross the interface as the Go type backing that kind
// (see scalar.KindOf).
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Kind returns the element kind.
	Kind() dtype.Kind

	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (any, error)

	// Set converts v to Kind() and stores it at position (i, j).
	// Returns ErrOutOfRange if indices are invalid and ErrTypeConversion
	// if v cannot be converted.
	Set(i, j int, v any) error

	// Clone returns a deep copy of the matrix.
	// Boxed elements share their referents; the storage is copied.
	Clone() Matrix
}
