// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/lvnum/dtype"
)

// KindOf reports the kind whose backing Go type is the dynamic type of v.
func KindOf(v any) (dtype.Kind, bool) {
	switch v.(type) {
	case uint8:
		return dtype.Uint8, true
	case int8:
		return dtype.Int8, true
	case int16:
		return dtype.Int16, true
	case int32:
		return dtype.Int32, true
	case int64:
		return dtype.Int64, true
	case float32:
		return dtype.Float32, true
	case float64:
		return dtype.Float64, true
	case Complex64:
		return dtype.Complex64, true
	case Complex128:
		return dtype.Complex128, true
	case Boxed:
		return dtype.Boxed, true
	}

	return 0, false
}

// KindFor returns the kind backed by T.
func KindFor[T Element]() dtype.Kind {
	var zero T
	k, _ := KindOf(any(zero))

	return k
}

// Zero returns the zero element of kind k: 0, 0+0i or a boxed Int 0.
func Zero(k dtype.Kind) (any, error) { return CastKind(k, uint8(0)) }

// Box wraps a Go value as a Boxed host number. Accepted inputs are the
// native Go numbers, Complex64/Complex128 and builtin complex values, bool,
// *big.Int, *big.Float, *apd.Decimal, any Number, and Boxed itself.
func Box(v any) (Boxed, error) {
	switch x := v.(type) {
	case Boxed:
		return x, nil
	case uint8:
		return NewBoxed(NewInt(int64(x))), nil
	case int8:
		return NewBoxed(NewInt(int64(x))), nil
	case int16:
		return NewBoxed(NewInt(int64(x))), nil
	case int32:
		return NewBoxed(NewInt(int64(x))), nil
	case int64:
		return NewBoxed(NewInt(x)), nil
	case int:
		return NewBoxed(NewInt(int64(x))), nil
	case uint16:
		return NewBoxed(NewInt(int64(x))), nil
	case uint32:
		return NewBoxed(NewInt(int64(x))), nil
	case uint64:
		return NewBoxed(IntFrom(new(big.Int).SetUint64(x))), nil
	case uint:
		return NewBoxed(IntFrom(new(big.Int).SetUint64(uint64(x)))), nil
	case float32:
		return boxFloat(float64(x))
	case float64:
		return boxFloat(x)
	case Complex64:
		return NewBoxed(NewHostComplex(x.Complex128())), nil
	case Complex128:
		return NewBoxed(NewHostComplex(x.Complex128())), nil
	case complex64:
		return NewBoxed(NewHostComplex(complex128(x))), nil
	case complex128:
		return NewBoxed(NewHostComplex(x)), nil
	case bool:
		return NewBoxed(Bool(x)), nil
	case *big.Int:
		return NewBoxed(IntFrom(x)), nil
	case *big.Float:
		return NewBoxed(BigFloatFrom(x)), nil
	case *apd.Decimal:
		d, err := DecimalFrom(x)
		if err != nil {
			return Boxed{}, err
		}
		return NewBoxed(d), nil
	case Number:
		return NewBoxed(x), nil
	}

	return Boxed{}, fmt.Errorf("Box(%T): %w", v, ErrTypeConversion)
}

func boxFloat(f float64) (Boxed, error) {
	if math.IsNaN(f) {
		return Boxed{}, fmt.Errorf("Box(NaN): %w", ErrTypeConversion)
	}

	return NewBoxed(NewBigFloat(f)), nil
}

// BoxKind boxes v after checking that its Go type backs kind k.
func BoxKind(k dtype.Kind, v any) (Boxed, error) {
	got, ok := KindOf(v)
	if !ok || got != k {
		return Boxed{}, fmt.Errorf("BoxKind(%s, %T): %w", k, v, ErrTypeConversion)
	}

	return Box(v)
}

// Unbox converts b to the Go type backing kind k.
func Unbox(b Boxed, k dtype.Kind) (any, error) {
	switch k {
	case dtype.Uint8:
		return UnboxTo[uint8](b)
	case dtype.Int8:
		return UnboxTo[int8](b)
	case dtype.Int16:
		return UnboxTo[int16](b)
	case dtype.Int32:
		return UnboxTo[int32](b)
	case dtype.Int64:
		return UnboxTo[int64](b)
	case dtype.Float32:
		return UnboxTo[float32](b)
	case dtype.Float64:
		return UnboxTo[float64](b)
	case dtype.Complex64:
		return ComplexFromBoxed[float32](b)
	case dtype.Complex128:
		return ComplexFromBoxed[float64](b)
	case dtype.Boxed:
		return b, nil
	}

	return nil, fmt.Errorf("Unbox(%s): %w: %w", k, ErrTypeConversion, dtype.ErrUnknownKind)
}

// Cast converts v to the element type T. See CastKind for the rules.
func Cast[T Element](v any) (T, error) {
	var zero T
	out, err := CastKind(KindFor[T](), v)
	if err != nil {
		return zero, err
	}

	return out.(T), nil
}

// CastKind converts v to the Go type backing kind k. It is the only
// conversion used between kinds; nothing converts implicitly.
//
//   - native to native: Go conversion (integers wrap, floats truncate);
//   - native to complex: zero imaginary part;
//   - complex to native: the real part, the imaginary part is dropped;
//   - complex to complex: component conversion;
//   - anything to boxed: Box;
//   - boxed to native or complex: Unbox.
//
// Builtin int, uint, uint16, uint32, uint64, complex64 and complex128 values
// are accepted as sources. A uint64 above MaxInt64 only casts to Boxed.
func CastKind(k dtype.Kind, v any) (any, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("CastKind(%s): %w: %w", k, ErrTypeConversion, dtype.ErrUnknownKind)
	}

	switch x := v.(type) {
	case uint8:
		return castNative(k, x)
	case int8:
		return castNative(k, x)
	case int16:
		return castNative(k, x)
	case int32:
		return castNative(k, x)
	case int64:
		return castNative(k, x)
	case int:
		return castNative(k, int64(x))
	case uint16:
		return castNative(k, int64(x))
	case uint32:
		return castNative(k, int64(x))
	case uint:
		return castUint64(k, uint64(x))
	case uint64:
		return castUint64(k, x)
	case float32:
		return castNative(k, x)
	case float64:
		return castNative(k, x)
	case Complex64:
		return castComplex(k, x)
	case Complex128:
		return castComplex(k, x)
	case complex64:
		return castComplex(k, ComplexFrom[float32](complex128(x)))
	case complex128:
		return castComplex(k, ComplexFrom[float64](x))
	case Boxed:
		return Unbox(x, k)
	}

	return nil, fmt.Errorf("CastKind(%s, %T): %w", k, v, ErrTypeConversion)
}

func castNative[S Native](k dtype.Kind, s S) (any, error) {
	switch k {
	case dtype.Uint8:
		return uint8(s), nil
	case dtype.Int8:
		return int8(s), nil
	case dtype.Int16:
		return int16(s), nil
	case dtype.Int32:
		return int32(s), nil
	case dtype.Int64:
		return int64(s), nil
	case dtype.Float32:
		return float32(s), nil
	case dtype.Float64:
		return float64(s), nil
	case dtype.Complex64:
		return FromReal[float32](s), nil
	case dtype.Complex128:
		return FromReal[float64](s), nil
	default:
		return Box(s)
	}
}

// castUint64 keeps values above MaxInt64 exact by boxing them; no native
// kind can hold one.
func castUint64(k dtype.Kind, x uint64) (any, error) {
	if x <= math.MaxInt64 {
		return castNative(k, int64(x))
	}
	if k == dtype.Boxed {
		return Box(x)
	}

	return nil, fmt.Errorf("CastKind(%s, %d): %w", k, x, ErrTypeConversion)
}

func castComplex[F Float](k dtype.Kind, c Complex[F]) (any, error) {
	switch k {
	case dtype.Complex64:
		return Convert[float32](c), nil
	case dtype.Complex128:
		return Convert[float64](c), nil
	case dtype.Boxed:
		return Box(c)
	}

	return castNative(k, c.Real)
}
