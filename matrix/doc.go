// SPDX-License-Identifier: MIT

// Package matrix offers typed storage on top of the dispatch tables.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix of one element kind, backed by a flat []T.
//   - SparseVector: a compressed vector (sorted positions, values, default)
//     whose position slice uses the narrowest sufficient index kind.
//   - ElementWise, ElementWiseScalar, Unary, NonCommutative, Cast and
//     SparseElementWise: whole-storage operations that resolve one dispatch
//     handle from the operand kinds and apply it to every element.
//
// Kinds never mix implicitly across the boxed/native boundary: Cast a boxed
// matrix to a native kind (or the reverse) before combining them.
//
// See the examples in this package for usage patterns.
package matrix
