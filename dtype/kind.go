// SPDX-License-Identifier: MIT

package dtype

import (
	"fmt"
	"strings"
	"unsafe"
)

// Kind identifies one member of the closed numeric catalogue.
// The ordinal of every constant is stable and doubles as a table index.
type Kind uint8

// The catalogue, in ordinal order.
const (
	Uint8 Kind = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Complex64
	Complex128
	Boxed
)

// NumKinds is the number of kinds in the catalogue.
const NumKinds = int(Boxed) + 1

// kindNames holds the canonical name of every kind, indexed by ordinal.
var kindNames = [NumKinds]string{
	Uint8:      "uint8",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
	Boxed:      "boxed",
}

// kindAliases maps the historical dtype names onto the catalogue.
var kindAliases = map[string]Kind{
	"byte":   Uint8,
	"object": Boxed,
}

// kindSizes holds the storage size in bytes of one element of each kind.
// Boxed elements are stored as an interface handle; the size is the handle's,
// never the referenced value's.
var kindSizes = [NumKinds]uintptr{
	Uint8:      unsafe.Sizeof(uint8(0)),
	Int8:       unsafe.Sizeof(int8(0)),
	Int16:      unsafe.Sizeof(int16(0)),
	Int32:      unsafe.Sizeof(int32(0)),
	Int64:      unsafe.Sizeof(int64(0)),
	Float32:    unsafe.Sizeof(float32(0)),
	Float64:    unsafe.Sizeof(float64(0)),
	Complex64:  unsafe.Sizeof(complex64(0)),
	Complex128: unsafe.Sizeof(complex128(0)),
	Boxed:      unsafe.Sizeof(any(nil)),
}

// Kinds returns the catalogue in ordinal order. The slice is a fresh copy.
func Kinds() []Kind {
	out := make([]Kind, NumKinds)
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// Valid reports whether k is a member of the catalogue.
func (k Kind) Valid() bool { return int(k) < NumKinds }

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// Size returns the byte size of one stored element of kind k, or 0 for an
// invalid kind.
func (k Kind) Size() uintptr {
	if !k.Valid() {
		return 0
	}

	return kindSizes[k]
}

// IsInteger reports whether k is a fixed-width integer kind.
func (k Kind) IsInteger() bool { return k <= Int64 }

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool { return k == Uint8 }

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// IsComplex reports whether k is a complex kind.
func (k Kind) IsComplex() bool { return k == Complex64 || k == Complex128 }

// IsBoxed reports whether k is the boxed-numeric kind.
func (k Kind) IsBoxed() bool { return k == Boxed }

// IsNative reports whether k is an integer or floating-point kind.
func (k Kind) IsNative() bool { return k.IsInteger() || k.IsFloat() }

// IsReal is an alias of IsNative kept for readability at call sites that
// contrast real and complex kinds.
func (k Kind) IsReal() bool { return k.IsNative() }

// bits returns the width of a native kind in bits (0 otherwise).
func (k Kind) bits() int {
	switch k {
	case Uint8, Int8:
		return 8
	case Int16:
		return 16
	case Int32, Float32:
		return 32
	case Int64, Float64:
		return 64
	default:
		return 0
	}
}

// Class returns a coarse class name: "integer", "float", "complex" or "boxed".
func (k Kind) Class() string {
	switch {
	case k.IsInteger():
		return "integer"
	case k.IsFloat():
		return "float"
	case k.IsComplex():
		return "complex"
	case k.IsBoxed():
		return "boxed"
	default:
		return "invalid"
	}
}

// Parse returns the Kind named by s. Matching is case-insensitive and accepts
// the historical aliases "byte" and "object".
func Parse(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("Parse(%q): %w", s, ErrUnknownKind)
}
