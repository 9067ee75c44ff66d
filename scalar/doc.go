// SPDX-License-Identifier: MIT

// Package scalar implements the element values stored under each dtype.Kind.
//
// Native kinds map onto Go's fixed-width numbers (uint8 … float64). The
// complex kinds are the generic value type Complex[F] instantiated as
// Complex64 and Complex128. The boxed kind is Boxed, a handle onto an
// externally owned arbitrary-precision number that implements the Number
// capability interface; Boxed never computes anything itself and delegates
// every operator to its referent.
//
// The package also ships the host numbers a Boxed usually refers to:
//
//   - Int over *big.Int (floor division and modulo);
//   - BigFloat over *big.Float;
//   - Decimal over *apd.Decimal (github.com/cockroachdb/apd/v3);
//   - HostComplex over complex128;
//   - Bool, a truth value usable as 1/0.
//
// Conversions are always explicit and failable: Cast, CastKind, Box, BoxKind,
// Unbox and UnboxTo return ErrTypeConversion instead of silently coercing.
// Narrowing a complex value to a native kind is the one deliberate lossy
// conversion and keeps only the real part.
package scalar
