// SPDX-License-Identifier: MIT

// Package dispatch resolves an operation and the kinds of its operands to a
// concrete implementation, chosen once and reused for every element.
//
// Five tables are provided:
//
//   - UnaryTable:       op × kind, e.g. sin over float32.
//   - ConversionTable:  kind × kind, the implicit cast between storages.
//   - ElementwiseTable: op × left kind × right kind for the twelve
//     element-wise operations.
//   - NonComTable:      op × left kind × right kind for atan2, ldexp, hypot.
//   - IndexTable:       op × index kind × value kind for merging compressed
//     sparse vectors.
//
// Every cell is in exactly one state. Ready cells carry a handle; Unsupported
// cells mark combinations that will never exist (boxed with native, modulo
// of complex); NotImplemented cells mark catalogue entries nobody has written
// yet (erf of a complex). A table starts Unbuilt. Build fills every cell in a
// deterministic order and runs at most once; Lookup only reads; Resolve
// builds on first use.
//
// Tables are built from per-kind generic witnesses, one instantiation per Go
// backing type, so the three-dimensional tables are a loop over the catalogues
// rather than hand-written listings.
//
// The package-level tables returned by Unaries, Conversions, Elementwise,
// NonCommutative and Indexed are shared process-wide. After Build they are
// immutable and safe for concurrent use without locks.
//
// Handles take and return values as any. A handle checks that its operands
// have exactly the Go types of its bound kinds and fails with
// ErrTypeConversion otherwise; it never converts silently.
package dispatch
