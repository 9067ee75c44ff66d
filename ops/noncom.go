// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
	"strings"
)

// NonCom is a two-argument math function; f(a, b) and f(b, a) differ.
type NonCom uint8

// Non-commutative operations, in ordinal order.
const (
	Atan2 NonCom = iota
	Ldexp
	Hypot
)

// NumNonCom is the number of non-commutative operations.
const NumNonCom = int(Hypot) + 1

var nonComNames = [NumNonCom]string{"atan2", "ldexp", "hypot"}

// AllNonCom returns every non-commutative operation in ordinal order.
func AllNonCom() []NonCom {
	out := make([]NonCom, NumNonCom)
	for i := range out {
		out[i] = NonCom(i)
	}

	return out
}

// Valid reports whether op belongs to the catalogue.
func (op NonCom) Valid() bool { return int(op) < NumNonCom }

func (op NonCom) String() string {
	if !op.Valid() {
		return fmt.Sprintf("noncom(%d)", uint8(op))
	}

	return nonComNames[op]
}

// Real returns the float64 reference implementation of op.
// Ldexp truncates its exponent operand toward zero.
func (op NonCom) Real() func(a, b float64) float64 {
	switch op {
	case Atan2:
		return math.Atan2
	case Ldexp:
		return func(frac, exp float64) float64 { return math.Ldexp(frac, int(exp)) }
	case Hypot:
		return math.Hypot
	default:
		return nil
	}
}

// ParseNonCom returns the non-commutative op named by s.
func ParseNonCom(s string) (NonCom, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range nonComNames {
		if n == name {
			return NonCom(i), nil
		}
	}

	return 0, fmt.Errorf("ParseNonCom(%q): %w", s, ErrUnknownOp)
}
