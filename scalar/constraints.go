// SPDX-License-Identifier: MIT

package scalar

// Integer is the set of Go types backing the integer kinds.
type Integer interface {
	uint8 | int8 | int16 | int32 | int64
}

// Float is the set of Go types backing the floating kinds and the components
// of the complex kinds.
type Float interface {
	float32 | float64
}

// Native is the set of Go types backing the native (integer or float) kinds.
type Native interface {
	Integer | Float
}

// Element is the set of Go types backing every kind in the catalogue.
// The type lists are exact: a named type such as `type Meters float64` is not
// an Element and must be converted before it enters a table.
type Element interface {
	Native | Complex64 | Complex128 | Boxed
}
