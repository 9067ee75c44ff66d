// SPDX-License-Identifier: MIT

package scalar

// Mixed complex/native arithmetic. The native operand is lifted with FromReal
// and the complex-complex operator applied, so c+n and n+c agree exactly.

func AddNative[F Float, N Native](c Complex[F], n N) Complex[F] { return c.Add(FromReal[F](n)) }
func SubNative[F Float, N Native](c Complex[F], n N) Complex[F] { return c.Sub(FromReal[F](n)) }
func MulNative[F Float, N Native](c Complex[F], n N) Complex[F] { return c.Mul(FromReal[F](n)) }
func DivNative[F Float, N Native](c Complex[F], n N) Complex[F] { return c.Div(FromReal[F](n)) }

func NativeAdd[F Float, N Native](n N, c Complex[F]) Complex[F] { return FromReal[F](n).Add(c) }
func NativeSub[F Float, N Native](n N, c Complex[F]) Complex[F] { return FromReal[F](n).Sub(c) }
func NativeMul[F Float, N Native](n N, c Complex[F]) Complex[F] { return FromReal[F](n).Mul(c) }
func NativeDiv[F Float, N Native](n N, c Complex[F]) Complex[F] { return FromReal[F](n).Div(c) }
