// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"

	"github.com/katalvlaran/lvnum/ops"
)

// Boxed is the element type of the boxed kind: a non-owning handle onto a
// host Number. Boxed performs no arithmetic of its own. Every operator
// delegates to the referent and re-boxes the result.
//
// The zero Boxed holds no referent; every operation on it fails with
// ErrTypeConversion.
type Boxed struct {
	ref Number
}

// NewBoxed wraps n without copying it.
func NewBoxed(n Number) Boxed { return Boxed{ref: n} }

// Ref returns the referent, nil for the zero Boxed.
func (b Boxed) Ref() Number { return b.ref }

// IsNil reports whether b has no referent.
func (b Boxed) IsNil() bool { return b.ref == nil }

func (b Boxed) String() string {
	if b.ref == nil {
		return "<nil>"
	}
	if s, ok := b.ref.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprint(b.ref)
}

// Class returns the class of the referent, ClassOther when there is none.
func (b Boxed) Class() Class {
	if b.ref == nil {
		return ClassOther
	}

	return b.ref.Class()
}

func (b Boxed) numeric(op string) error {
	if b.ref == nil {
		return fmt.Errorf("Boxed.%s: nil referent: %w", op, ErrTypeConversion)
	}
	if !b.ref.Class().IsNumeric() {
		return fmt.Errorf("Boxed.%s: %s referent: %w", op, b.ref.Class(), ErrTypeConversion)
	}

	return nil
}

func (b Boxed) binary(op string, o Boxed, f func(x, y Number) (Number, error)) (Boxed, error) {
	if err := b.numeric(op); err != nil {
		return Boxed{}, err
	}
	if err := o.numeric(op); err != nil {
		return Boxed{}, err
	}
	r, err := f(b.ref, o.ref)
	if err != nil {
		return Boxed{}, fmt.Errorf("Boxed.%s: %w", op, err)
	}

	return Boxed{ref: r}, nil
}

func (b Boxed) Add(o Boxed) (Boxed, error) {
	return b.binary("Add", o, func(x, y Number) (Number, error) { return x.Add(y) })
}

func (b Boxed) Sub(o Boxed) (Boxed, error) {
	return b.binary("Sub", o, func(x, y Number) (Number, error) { return x.Sub(y) })
}

func (b Boxed) Mul(o Boxed) (Boxed, error) {
	return b.binary("Mul", o, func(x, y Number) (Number, error) { return x.Mul(y) })
}

func (b Boxed) Div(o Boxed) (Boxed, error) {
	return b.binary("Div", o, func(x, y Number) (Number, error) { return x.Div(y) })
}

// Mod requires the Modder capability.
func (b Boxed) Mod(o Boxed) (Boxed, error) {
	return b.binary("Mod", o, func(x, y Number) (Number, error) {
		m, ok := x.(Modder)
		if !ok {
			return nil, ErrNotImplemented
		}
		return m.Mod(y)
	})
}

// Pow requires the Power capability.
func (b Boxed) Pow(o Boxed) (Boxed, error) {
	return b.binary("Pow", o, func(x, y Number) (Number, error) {
		p, ok := x.(Power)
		if !ok {
			return nil, ErrNotImplemented
		}
		return p.Pow(y)
	})
}

// Cmp delegates ordering to the referent.
func (b Boxed) Cmp(o Boxed) (int, error) {
	if b.ref == nil || o.ref == nil {
		return 0, fmt.Errorf("Boxed.Cmp: nil referent: %w", ErrTypeConversion)
	}
	c, err := b.ref.Cmp(o.ref)
	if err != nil {
		return 0, fmt.Errorf("Boxed.Cmp: %w", err)
	}

	return c, nil
}

// Eq delegates equality to the referent.
func (b Boxed) Eq(o Boxed) (bool, error) {
	if b.ref == nil || o.ref == nil {
		return false, fmt.Errorf("Boxed.Eq: nil referent: %w", ErrTypeConversion)
	}
	eq, err := b.ref.Equal(o.ref)
	if err != nil {
		return false, fmt.Errorf("Boxed.Eq: %w", err)
	}

	return eq, nil
}

func (b Boxed) Ne(o Boxed) (bool, error) {
	eq, err := b.Eq(o)
	return !eq && err == nil, err
}

func (b Boxed) Lt(o Boxed) (bool, error) { return b.order(o, func(c int) bool { return c < 0 }) }
func (b Boxed) Gt(o Boxed) (bool, error) { return b.order(o, func(c int) bool { return c > 0 }) }
func (b Boxed) Le(o Boxed) (bool, error) { return b.order(o, func(c int) bool { return c <= 0 }) }
func (b Boxed) Ge(o Boxed) (bool, error) { return b.order(o, func(c int) bool { return c >= 0 }) }

func (b Boxed) order(o Boxed, pred func(int) bool) (bool, error) {
	c, err := b.Cmp(o)
	if err != nil {
		return false, err
	}

	return pred(c), nil
}

// Neg requires the Negator capability.
func (b Boxed) Neg() (Boxed, error) {
	if err := b.numeric("Neg"); err != nil {
		return Boxed{}, err
	}
	n, ok := b.ref.(Negator)
	if !ok {
		return Boxed{}, fmt.Errorf("Boxed.Neg: %w", ErrNotImplemented)
	}
	r, err := n.Neg()
	if err != nil {
		return Boxed{}, fmt.Errorf("Boxed.Neg: %w", err)
	}

	return Boxed{ref: r}, nil
}

// Abs delegates to the referent's absolute value.
func (b Boxed) Abs() (Boxed, error) {
	if err := b.numeric("Abs"); err != nil {
		return Boxed{}, err
	}
	r, err := b.ref.Abs()
	if err != nil {
		return Boxed{}, fmt.Errorf("Boxed.Abs: %w", err)
	}

	return Boxed{ref: r}, nil
}

// Inverse always fails with ErrNotImplemented. Inverting an arbitrary host
// number element by element has no meaning here; matrix-level inversion is
// structural and lives elsewhere.
func (b Boxed) Inverse() (Boxed, error) {
	return Boxed{}, fmt.Errorf("Boxed.Inverse: %w", ErrNotImplemented)
}

// Unary evaluates op through the UnaryMath capability. Negate and Abs fall
// back to Neg and Abs when the referent offers no UnaryMath.
func (b Boxed) Unary(op ops.Unary) (Boxed, error) {
	if err := b.numeric(op.String()); err != nil {
		return Boxed{}, err
	}
	if u, ok := b.ref.(UnaryMath); ok {
		r, err := u.Unary(op)
		if err != nil {
			return Boxed{}, fmt.Errorf("Boxed.%s: %w", op, err)
		}
		return Boxed{ref: r}, nil
	}
	switch op {
	case ops.Negate:
		return b.Neg()
	case ops.Abs:
		return b.Abs()
	}

	return Boxed{}, fmt.Errorf("Boxed.%s: %w", op, ErrNotImplemented)
}

// truth implements the boolean shortcut: a Truth referent converts to 1 or 0
// without its numeric coercion ever being called.
func (b Boxed) truth(op string) (v int64, ok bool, err error) {
	if b.ref == nil {
		return 0, false, fmt.Errorf("Boxed.%s: nil referent: %w", op, ErrTypeConversion)
	}
	if t, isTruth := b.ref.(Truth); isTruth {
		if t.Bool() {
			return 1, true, nil
		}
		return 0, true, nil
	}
	if !b.ref.Class().IsNumeric() {
		return 0, false, fmt.Errorf("Boxed.%s: %s referent: %w", op, b.ref.Class(), ErrTypeConversion)
	}

	return 0, false, nil
}

// ToInt64 coerces the referent to an int64.
func (b Boxed) ToInt64() (int64, error) {
	v, ok, err := b.truth("ToInt64")
	if err != nil || ok {
		return v, err
	}
	i, err := b.ref.Int64()
	if err != nil {
		return 0, fmt.Errorf("Boxed.ToInt64: %w: %w", ErrTypeConversion, err)
	}

	return i, nil
}

// ToFloat64 coerces the referent to a float64.
func (b Boxed) ToFloat64() (float64, error) {
	v, ok, err := b.truth("ToFloat64")
	if err != nil || ok {
		return float64(v), err
	}
	f, err := b.ref.Float64()
	if err != nil {
		return 0, fmt.Errorf("Boxed.ToFloat64: %w: %w", ErrTypeConversion, err)
	}

	return f, nil
}

// UnboxTo coerces b to the native type T. Integer targets fail with
// ErrTypeConversion when the value does not fit.
func UnboxTo[T Native](b Boxed) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		f, err := b.ToFloat64()
		if err != nil {
			return zero, err
		}
		return T(f), nil
	}

	i, err := b.ToInt64()
	if err != nil {
		return zero, err
	}
	t := T(i)
	if int64(t) != i {
		return zero, fmt.Errorf("UnboxTo(%d): %w", i, ErrTypeConversion)
	}

	return t, nil
}

// ComplexFromBoxed converts b to a complex value. Complex-class referents
// supply both components through ComplexParts; integer and float referents
// land on the real axis.
func ComplexFromBoxed[F Float](b Boxed) (Complex[F], error) {
	if b.ref == nil {
		return Complex[F]{}, fmt.Errorf("ComplexFromBoxed: nil referent: %w", ErrTypeConversion)
	}
	switch b.ref.Class() {
	case ClassComplex:
		p, ok := b.ref.(ComplexParts)
		if !ok {
			return Complex[F]{}, fmt.Errorf("ComplexFromBoxed: no components: %w", ErrTypeConversion)
		}
		re, im, err := p.Parts()
		if err != nil {
			return Complex[F]{}, fmt.Errorf("ComplexFromBoxed: %w: %w", ErrTypeConversion, err)
		}
		return Complex[F]{Real: F(re), Imag: F(im)}, nil
	case ClassInteger, ClassFloat:
		f, err := b.ref.Float64()
		if err != nil {
			return Complex[F]{}, fmt.Errorf("ComplexFromBoxed: %w: %w", ErrTypeConversion, err)
		}
		return Complex[F]{Real: F(f)}, nil
	}

	return Complex[F]{}, fmt.Errorf("ComplexFromBoxed: %s referent: %w", b.ref.Class(), ErrTypeConversion)
}

// EqValue boxes v and compares for equality, so native and complex operands
// share the single boxed comparison path.
func (b Boxed) EqValue(v any) (bool, error) {
	o, err := Box(v)
	if err != nil {
		return false, err
	}

	return b.Eq(o)
}

// CmpValue boxes v and orders b against it.
func (b Boxed) CmpValue(v any) (int, error) {
	o, err := Box(v)
	if err != nil {
		return 0, err
	}

	return b.Cmp(o)
}
