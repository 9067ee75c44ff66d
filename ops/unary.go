// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Unary is a one-argument math function.
type Unary uint8

// Unary operations, in ordinal order. Log and Abs follow the historical
// catalogue of twenty-four.
const (
	Sin Unary = iota
	Cos
	Tan
	Asin
	Acos
	Atan
	Sinh
	Cosh
	Tanh
	Asinh
	Acosh
	Atanh
	Exp
	Log2
	Log10
	Sqrt
	Erf
	Erfc
	Cbrt
	Gamma
	Negate
	Floor
	Ceil
	Round
	Log
	Abs
)

// NumUnary is the number of unary operations.
const NumUnary = int(Abs) + 1

var unaryNames = [NumUnary]string{
	"sin", "cos", "tan", "asin", "acos", "atan",
	"sinh", "cosh", "tanh", "asinh", "acosh", "atanh",
	"exp", "log2", "log10", "sqrt", "erf", "erfc", "cbrt", "gamma",
	"negate", "floor", "ceil", "round", "log", "abs",
}

var unaryReal = [NumUnary]func(float64) float64{
	Sin: math.Sin, Cos: math.Cos, Tan: math.Tan,
	Asin: math.Asin, Acos: math.Acos, Atan: math.Atan,
	Sinh: math.Sinh, Cosh: math.Cosh, Tanh: math.Tanh,
	Asinh: math.Asinh, Acosh: math.Acosh, Atanh: math.Atanh,
	Exp: math.Exp, Log2: math.Log2, Log10: math.Log10, Sqrt: math.Sqrt,
	Erf: math.Erf, Erfc: math.Erfc, Cbrt: math.Cbrt, Gamma: math.Gamma,
	Negate: func(x float64) float64 { return -x },
	Floor:  math.Floor, Ceil: math.Ceil, Round: math.Round,
	Log: math.Log, Abs: math.Abs,
}

var unaryComplex = [NumUnary]func(complex128) complex128{
	Sin: cmplx.Sin, Cos: cmplx.Cos, Tan: cmplx.Tan,
	Asin: cmplx.Asin, Acos: cmplx.Acos, Atan: cmplx.Atan,
	Sinh: cmplx.Sinh, Cosh: cmplx.Cosh, Tanh: cmplx.Tanh,
	Asinh: cmplx.Asinh, Acosh: cmplx.Acosh, Atanh: cmplx.Atanh,
	Exp:    cmplx.Exp,
	Log2:   func(z complex128) complex128 { return cmplx.Log(z) / math.Ln2 },
	Log10:  cmplx.Log10,
	Sqrt:   cmplx.Sqrt,
	Negate: func(z complex128) complex128 { return -z },
	Floor:  componentwise(math.Floor),
	Ceil:   componentwise(math.Ceil),
	Round:  componentwise(math.Round),
	Log:    cmplx.Log,
}

func componentwise(f func(float64) float64) func(complex128) complex128 {
	return func(z complex128) complex128 { return complex(f(real(z)), f(imag(z))) }
}

// AllUnary returns every unary operation in ordinal order.
func AllUnary() []Unary {
	out := make([]Unary, NumUnary)
	for i := range out {
		out[i] = Unary(i)
	}

	return out
}

// Valid reports whether op belongs to the catalogue.
func (op Unary) Valid() bool { return int(op) < NumUnary }

func (op Unary) String() string {
	if !op.Valid() {
		return fmt.Sprintf("unary(%d)", uint8(op))
	}

	return unaryNames[op]
}

// IsRounding reports whether op maps integers onto themselves
// (Floor, Ceil, Round).
func (op Unary) IsRounding() bool { return op == Floor || op == Ceil || op == Round }

// IsTranscendental reports whether op always produces a floating result.
func (op Unary) IsTranscendental() bool {
	return op.Valid() && op != Negate && op != Abs && !op.IsRounding()
}

// Real returns the float64 implementation of op, or nil for an invalid op.
func (op Unary) Real() func(float64) float64 {
	if !op.Valid() {
		return nil
	}

	return unaryReal[op]
}

// Complex returns the complex128 implementation of op. It is nil where the
// complex plane has no implementation (Erf, Erfc, Cbrt, Gamma) and for Abs,
// whose result is real; see cmplx.Abs.
func (op Unary) Complex() func(complex128) complex128 {
	if !op.Valid() {
		return nil
	}

	return unaryComplex[op]
}

// ParseUnary returns the unary op named by s.
func ParseUnary(s string) (Unary, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range unaryNames {
		if n == name {
			return Unary(i), nil
		}
	}

	return 0, fmt.Errorf("ParseUnary(%q): %w", s, ErrUnknownOp)
}
