// SPDX-License-Identifier: MIT

package scalar

import "github.com/katalvlaran/lvnum/ops"

// Class is the coarse runtime kind of a host number.
type Class uint8

// Host number classes.
const (
	ClassOther Class = iota
	ClassInteger
	ClassFloat
	ClassComplex
	ClassBoolean
)

var classNames = [...]string{"other", "integer", "float", "complex", "boolean"}

func (c Class) String() string {
	if int(c) >= len(classNames) {
		return "other"
	}

	return classNames[c]
}

// IsNumeric reports whether values of class c can be coerced to a native kind.
func (c Class) IsNumeric() bool { return c == ClassInteger || c == ClassFloat || c == ClassComplex }

// Number is the capability set a host object must offer to be boxed.
// Implementations are owned by the host: Boxed keeps a reference and never
// copies, locks or releases it.
//
// Binary methods receive the other operand as a Number of any class and are
// expected to coerce it themselves, the way a dynamic host would.
type Number interface {
	Class() Class
	Add(o Number) (Number, error)
	Sub(o Number) (Number, error)
	Mul(o Number) (Number, error)
	Div(o Number) (Number, error)
	Cmp(o Number) (int, error)
	Equal(o Number) (bool, error)
	Abs() (Number, error)
	Int64() (int64, error)
	Float64() (float64, error)
}

// Optional capabilities. Boxed probes for them with a type assertion and
// reports ErrNotImplemented when the referent lacks one.
type (
	// Negator negates a number.
	Negator interface {
		Neg() (Number, error)
	}

	// Modder computes a modulo whose sign follows the divisor.
	Modder interface {
		Mod(o Number) (Number, error)
	}

	// Power raises a number to the power o.
	Power interface {
		Pow(o Number) (Number, error)
	}

	// ComplexParts exposes the components of a complex-class number.
	ComplexParts interface {
		Parts() (re, im float64, err error)
	}

	// Truth marks a boolean-like number usable as 1 or 0.
	Truth interface {
		Bool() bool
	}

	// UnaryMath evaluates a unary catalogue op on the number.
	UnaryMath interface {
		Unary(op ops.Unary) (Number, error)
	}
)
