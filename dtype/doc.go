// SPDX-License-Identifier: MIT

// Package dtype defines the closed catalogue of numeric kinds understood by
// lvnum and the promotion rules between them.
//
// The package provides:
//
//   - Kind: the ten element kinds (uint8, int8, int16, int32, int64, float32,
//     float64, complex64, complex128, boxed) in a fixed ordinal order.
//     The ordinal is used as an array index by every dispatch table, so the
//     order never changes.
//   - IndexKind: the four unsigned kinds allowed as storage-position indices
//     in compressed layouts.
//   - Upcast: the total, symmetric promotion function used whenever two
//     differently-kinded operands must produce one homogeneous result kind.
//   - MinKind: the narrowest kind able to hold a Go literal.
//
// Everything in this package is immutable after package initialization and
// safe for concurrent use.
package dtype
