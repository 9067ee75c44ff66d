// Package lvnum is the generic-numeric core of a multi-kind matrix library:
// one closed catalogue of element kinds, one catalogue of operations, and
// dispatch tables that resolve every (operation, kinds) combination to a
// typed function up front.
//
// 🚀 What is lvnum?
//
//	A small, dependency-light core that brings together:
//		• Kinds: ten element kinds from uint8 to complex128 plus boxed host numbers
//		• Upcast: a total, symmetric promotion table
//		• Scalars: Complex[F] and Boxed, a handle over big.Int, big.Float and apd decimals
//		• Dispatch: element-wise, unary, non-commutative, conversion and sparse tables
//		• Storage: typed Dense matrices and compressed SparseVectors on top of them
//
// ✨ Why choose lvnum?
//
//   - Resolve once, call many: a handle is looked up per operation, never per element
//   - Immutable after build: tables are populated once and shared without locks
//   - Explicit states: every cell is Ready, Unsupported or NotImplemented
//   - Pure Go: no cgo, no code generation
//
// Under the hood, everything is organized under these subpackages:
//
//	dtype/    - Kind and IndexKind catalogues, MinKind, Upcast
//	ops/      - element-wise, unary and non-commutative operation catalogues
//	scalar/   - Complex[F], Boxed, host number adapters, conversions
//	dispatch/ - lazily built dispatch tables and their handles
//	matrix/   - Dense and SparseVector storage driven by the tables
//	cmd/lvnum - a CLI to inspect kinds, upcasts and table cells
//
// Quick example:
//
//	h, err := dispatch.Resolve(ops.Add, dtype.Int32, dtype.Float64)
//	// h.Result == dtype.Float64
//	v, err := h.Call(int32(3), 2.5) // 5.5
//
//	go get github.com/katalvlaran/lvnum
package lvnum
