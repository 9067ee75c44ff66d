// SPDX-License-Identifier: MIT

package dtype

import "math"

// MinKind returns the narrowest kind able to hold the Go literal v without
// loss. Integers pick the smallest integer kind covering the value, floats
// pick float32 when the value survives a float32 round trip, builtin complex
// values pick complex64 under the same rule. Anything else, including values
// outside every native range, is Boxed.
func MinKind(v any) Kind {
	switch x := v.(type) {
	case int:
		return minIntKind(int64(x))
	case int8:
		return minIntKind(int64(x))
	case int16:
		return minIntKind(int64(x))
	case int32:
		return minIntKind(int64(x))
	case int64:
		return minIntKind(x)
	case uint:
		return minUintKind(uint64(x))
	case uint8:
		return Uint8
	case uint16:
		return minUintKind(uint64(x))
	case uint32:
		return minUintKind(uint64(x))
	case uint64:
		return minUintKind(x)
	case float32:
		return Float32
	case float64:
		return minFloatKind(x)
	case complex64:
		return Complex64
	case complex128:
		if minFloatKind(real(x)) == Float32 && minFloatKind(imag(x)) == Float32 {
			return Complex64
		}
		return Complex128
	default:
		return Boxed
	}
}

func minIntKind(x int64) Kind {
	switch {
	case x >= 0 && x <= math.MaxUint8:
		return Uint8
	case x >= math.MinInt8 && x <= math.MaxInt8:
		return Int8
	case x >= math.MinInt16 && x <= math.MaxInt16:
		return Int16
	case x >= math.MinInt32 && x <= math.MaxInt32:
		return Int32
	default:
		return Int64
	}
}

func minUintKind(x uint64) Kind {
	if x > math.MaxInt64 {
		return Boxed
	}

	return minIntKind(int64(x))
}

func minFloatKind(x float64) Kind {
	if math.IsNaN(x) || float64(float32(x)) == x {
		return Float32
	}

	return Float64
}
