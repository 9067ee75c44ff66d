// SPDX-License-Identifier: MIT

// Package ops is the closed catalogue of operations understood by the
// dispatch tables.
//
// Three families exist:
//
//   - EW: element-wise binary arithmetic and comparison (add … ge);
//   - NonCom: two-argument math functions whose operands do not commute
//     (atan2, ldexp, hypot);
//   - Unary: transcendental and rounding functions (sin … round, log, abs).
//
// Every operation is a small integer constant whose ordinal is stable and is
// used directly as a table index. Names are lower-case and round-trip through
// the Parse functions.
package ops
