// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"unsafe"
)

// Complex is a complex number whose components share the floating type F.
// The zero value is 0+0i. Values are plain data and copy independently.
type Complex[F Float] struct {
	Real F
	Imag F
}

// Complex64 is the complex kind built from two float32 components.
type Complex64 = Complex[float32]

// Complex128 is the complex kind built from two float64 components.
type Complex128 = Complex[float64]

// NewComplex returns re + im·i.
func NewComplex[F Float](re, im F) Complex[F] { return Complex[F]{Real: re, Imag: im} }

// FromReal lifts a native value onto the real axis.
func FromReal[F Float, N Native](n N) Complex[F] { return Complex[F]{Real: F(n)} }

// Convert changes the component type of c. Narrowing to float32 rounds.
func Convert[G, F Float](c Complex[F]) Complex[G] {
	return Complex[G]{Real: G(c.Real), Imag: G(c.Imag)}
}

// Widen converts a Complex64 to a Complex128 exactly.
func Widen(c Complex64) Complex128 { return Convert[float64](c) }

// ToNative narrows c to a native kind, keeping only the real component.
// The imaginary part is discarded without error.
func ToNative[T Native, F Float](c Complex[F]) T { return T(c.Real) }

// Epsilon returns the machine epsilon of F: 2⁻²³ for float32, 2⁻⁵² for float64.
func Epsilon[F Float]() F {
	var zero F
	if unsafe.Sizeof(zero) == 4 {
		return F(math.Nextafter32(1, 2) - 1)
	}

	return F(math.Nextafter(1, 2) - 1)
}

// approxEqual reports |a-b| <= eps. A zero eps degrades to exact equality.
func approxEqual[F Float](a, b F, eps float64) bool {
	d := float64(a) - float64(b)
	if d < 0 {
		d = -d
	}

	return a == b || d <= eps
}

// Conjugate returns re - im·i.
func (c Complex[F]) Conjugate() Complex[F] { return Complex[F]{Real: c.Real, Imag: -c.Imag} }

// Inverse returns 1/c computed as conj(c)/(re²+im²). A zero c is not special
// cased: the components become ±Inf or NaN following IEEE division.
func (c Complex[F]) Inverse() Complex[F] {
	d := c.Real*c.Real + c.Imag*c.Imag
	conj := c.Conjugate()

	return Complex[F]{Real: conj.Real / d, Imag: conj.Imag / d}
}

// Neg negates both components.
func (c Complex[F]) Neg() Complex[F] { return Complex[F]{Real: -c.Real, Imag: -c.Imag} }

func (c Complex[F]) Add(o Complex[F]) Complex[F] {
	return Complex[F]{Real: c.Real + o.Real, Imag: c.Imag + o.Imag}
}

func (c Complex[F]) Sub(o Complex[F]) Complex[F] {
	return Complex[F]{Real: c.Real - o.Real, Imag: c.Imag - o.Imag}
}

func (c Complex[F]) Mul(o Complex[F]) Complex[F] {
	return Complex[F]{
		Real: c.Real*o.Real - c.Imag*o.Imag,
		Imag: c.Real*o.Imag + c.Imag*o.Real,
	}
}

// Div divides c by o with denominator o.Imag²+o.Real².
func (c Complex[F]) Div(o Complex[F]) Complex[F] {
	d := o.Imag*o.Imag + o.Real*o.Real

	return Complex[F]{
		Real: (c.Real*o.Real + c.Imag*o.Imag) / d,
		Imag: (c.Imag*o.Real - c.Real*o.Imag) / d,
	}
}

// CompareEps orders c and o lexicographically, real part first, treating
// components within eps as equal. It returns -1, 0 or +1. The order exists for
// determinism only and does not agree with ordering by magnitude.
func (c Complex[F]) CompareEps(o Complex[F], eps float64) int {
	if !approxEqual(c.Real, o.Real, eps) {
		if c.Real < o.Real {
			return -1
		}
		return 1
	}
	if !approxEqual(c.Imag, o.Imag, eps) {
		if c.Imag < o.Imag {
			return -1
		}
		return 1
	}

	return 0
}

// Compare is CompareEps with the machine epsilon of F.
func (c Complex[F]) Compare(o Complex[F]) int { return c.CompareEps(o, float64(Epsilon[F]())) }

// Equal compares both components independently within the machine epsilon.
// The tolerance is absolute: components far from unit magnitude compare
// almost exactly.
func (c Complex[F]) Equal(o Complex[F]) bool        { return c.Compare(o) == 0 }
func (c Complex[F]) NotEqual(o Complex[F]) bool     { return c.Compare(o) != 0 }
func (c Complex[F]) Less(o Complex[F]) bool         { return c.Compare(o) < 0 }
func (c Complex[F]) Greater(o Complex[F]) bool      { return c.Compare(o) > 0 }
func (c Complex[F]) LessEqual(o Complex[F]) bool    { return c.Compare(o) <= 0 }
func (c Complex[F]) GreaterEqual(o Complex[F]) bool { return c.Compare(o) >= 0 }
func (c Complex[F]) IsZero() bool                   { return c.Real == 0 && c.Imag == 0 }
func (c Complex[F]) Complex128() complex128         { return complex(float64(c.Real), float64(c.Imag)) }
func (c Complex[F]) String() string                 { return fmt.Sprintf("(%v,%vi)", c.Real, c.Imag) }

// Abs returns the modulus |c| as a float64.
func (c Complex[F]) Abs() float64 { return math.Hypot(float64(c.Real), float64(c.Imag)) }

// PiecewiseAbs returns |re| + |im|·i.
func (c Complex[F]) PiecewiseAbs() Complex[F] {
	return Complex[F]{Real: c.RealAbs(), Imag: c.ImagAbs()}
}

// RealAbs returns |re|.
func (c Complex[F]) RealAbs() F { return F(math.Abs(float64(c.Real))) }

// ImagAbs returns |im|.
func (c Complex[F]) ImagAbs() F { return F(math.Abs(float64(c.Imag))) }

// ComplexFrom converts a Go builtin complex value.
func ComplexFrom[F Float](z complex128) Complex[F] { return Complex[F]{Real: F(real(z)), Imag: F(imag(z))} }
