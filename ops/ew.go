// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"strings"
)

// EW is an element-wise binary operation.
type EW uint8

// Element-wise operations, in ordinal order.
const (
	Add EW = iota
	Sub
	Mul
	Div
	Pow
	Mod
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
)

// NumEW is the number of element-wise operations.
const NumEW = int(Ge) + 1

var ewNames = [NumEW]string{"add", "sub", "mul", "div", "pow", "mod", "eq", "ne", "lt", "gt", "le", "ge"}

var ewSymbols = [NumEW]string{"+", "-", "*", "/", "**", "%", "==", "!=", "<", ">", "<=", ">="}

// AllEW returns every element-wise operation in ordinal order.
func AllEW() []EW {
	out := make([]EW, NumEW)
	for i := range out {
		out[i] = EW(i)
	}

	return out
}

// Valid reports whether op belongs to the catalogue.
func (op EW) Valid() bool { return int(op) < NumEW }

func (op EW) String() string {
	if !op.Valid() {
		return fmt.Sprintf("ew(%d)", uint8(op))
	}

	return ewNames[op]
}

// Symbol returns the infix operator spelling, e.g. "+" or "<=".
func (op EW) Symbol() string {
	if !op.Valid() {
		return "?"
	}

	return ewSymbols[op]
}

// IsComparison reports whether op yields a truth value rather than a number.
func (op EW) IsComparison() bool { return op >= Eq && op <= Ge }

// IsDivisionLike reports whether op divides (Div, Mod). Over pure integer
// operands these ops follow floor semantics and can fail on a zero divisor.
func (op EW) IsDivisionLike() bool { return op == Div || op == Mod }

// ParseEW returns the element-wise op named by s. Both the name ("add") and
// the symbol ("+") are accepted.
func ParseEW(s string) (EW, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i := 0; i < NumEW; i++ {
		if ewNames[i] == name || ewSymbols[i] == name {
			return EW(i), nil
		}
	}

	return 0, fmt.Errorf("ParseEW(%q): %w", s, ErrUnknownOp)
}
