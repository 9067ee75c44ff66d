// SPDX-License-Identifier: MIT

package scalar

import "fmt"

// Bool is a truth value. It carries no arithmetic and no numeric coercion of
// its own: Boxed converts it to 1 or 0 through the Truth capability.
type Bool bool

func (b Bool) Bool() bool     { return bool(b) }
func (b Bool) Class() Class   { return ClassBoolean }
func (b Bool) String() string { return fmt.Sprint(bool(b)) }

func (b Bool) Add(Number) (Number, error) { return nil, b.notNumeric("Add") }
func (b Bool) Sub(Number) (Number, error) { return nil, b.notNumeric("Sub") }
func (b Bool) Mul(Number) (Number, error) { return nil, b.notNumeric("Mul") }
func (b Bool) Div(Number) (Number, error) { return nil, b.notNumeric("Div") }
func (b Bool) Abs() (Number, error)       { return nil, b.notNumeric("Abs") }
func (b Bool) Int64() (int64, error)      { return 0, b.notNumeric("Int64") }
func (b Bool) Float64() (float64, error)  { return 0, b.notNumeric("Float64") }

// Cmp orders false before true. Only Bool operands compare.
func (b Bool) Cmp(o Number) (int, error) {
	ob, ok := o.(Bool)
	if !ok {
		return 0, b.notNumeric("Cmp")
	}
	switch {
	case b == ob:
		return 0, nil
	case !bool(b):
		return -1, nil
	default:
		return 1, nil
	}
}

func (b Bool) Equal(o Number) (bool, error) {
	c, err := b.Cmp(o)

	return c == 0 && err == nil, err
}

func (b Bool) notNumeric(op string) error {
	return fmt.Errorf("Bool.%s: %w", op, ErrTypeConversion)
}
