// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvnum/dtype"
)

// Typed element slices. Storage layers keep one []T per buffer, T being the
// Go type backing the buffer's kind, and reach it through these helpers
// without knowing T statically.

// MakeSlice returns a []T of length n holding the zero element of kind k.
func MakeSlice(k dtype.Kind, n int) (any, error) {
	switch k {
	case dtype.Uint8:
		return make([]uint8, n), nil
	case dtype.Int8:
		return make([]int8, n), nil
	case dtype.Int16:
		return make([]int16, n), nil
	case dtype.Int32:
		return make([]int32, n), nil
	case dtype.Int64:
		return make([]int64, n), nil
	case dtype.Float32:
		return make([]float32, n), nil
	case dtype.Float64:
		return make([]float64, n), nil
	case dtype.Complex64:
		return make([]Complex64, n), nil
	case dtype.Complex128:
		return make([]Complex128, n), nil
	case dtype.Boxed:
		s := make([]Boxed, n)
		zero := NewBoxed(NewInt(0))
		for i := range s {
			s[i] = zero
		}
		return s, nil
	}

	return nil, fmt.Errorf("MakeSlice(%s): %w", k, dtype.ErrUnknownKind)
}

// SliceKind reports the kind whose Go type is the element type of s.
func SliceKind(s any) (dtype.Kind, bool) {
	switch s.(type) {
	case []uint8:
		return dtype.Uint8, true
	case []int8:
		return dtype.Int8, true
	case []int16:
		return dtype.Int16, true
	case []int32:
		return dtype.Int32, true
	case []int64:
		return dtype.Int64, true
	case []float32:
		return dtype.Float32, true
	case []float64:
		return dtype.Float64, true
	case []Complex64:
		return dtype.Complex64, true
	case []Complex128:
		return dtype.Complex128, true
	case []Boxed:
		return dtype.Boxed, true
	}

	return 0, false
}

// SliceLen returns len(s), or -1 when s is not an element slice.
func SliceLen(s any) int {
	switch x := s.(type) {
	case []uint8:
		return len(x)
	case []int8:
		return len(x)
	case []int16:
		return len(x)
	case []int32:
		return len(x)
	case []int64:
		return len(x)
	case []float32:
		return len(x)
	case []float64:
		return len(x)
	case []Complex64:
		return len(x)
	case []Complex128:
		return len(x)
	case []Boxed:
		return len(x)
	}

	return -1
}

// SliceAt returns s[i] boxed in an interface. It panics like an index
// expression when i is out of range, and returns nil for a non-element s.
func SliceAt(s any, i int) any {
	switch x := s.(type) {
	case []uint8:
		return x[i]
	case []int8:
		return x[i]
	case []int16:
		return x[i]
	case []int32:
		return x[i]
	case []int64:
		return x[i]
	case []float32:
		return x[i]
	case []float64:
		return x[i]
	case []Complex64:
		return x[i]
	case []Complex128:
		return x[i]
	case []Boxed:
		return x[i]
	}

	return nil
}

// SliceSet stores v at s[i]. The dynamic type of v must be the element type
// of s exactly; nothing is converted.
func SliceSet(s any, i int, v any) error {
	switch x := s.(type) {
	case []uint8:
		return sliceSet(x, i, v)
	case []int8:
		return sliceSet(x, i, v)
	case []int16:
		return sliceSet(x, i, v)
	case []int32:
		return sliceSet(x, i, v)
	case []int64:
		return sliceSet(x, i, v)
	case []float32:
		return sliceSet(x, i, v)
	case []float64:
		return sliceSet(x, i, v)
	case []Complex64:
		return sliceSet(x, i, v)
	case []Complex128:
		return sliceSet(x, i, v)
	case []Boxed:
		return sliceSet(x, i, v)
	}

	return fmt.Errorf("SliceSet(%T): %w", s, ErrTypeConversion)
}

func sliceSet[T Element](s []T, i int, v any) error {
	t, ok := v.(T)
	if !ok {
		return fmt.Errorf("SliceSet(%T into %T): %w", v, s, ErrTypeConversion)
	}
	s[i] = t

	return nil
}

// SliceAppend appends v to s, with the same typing rule as SliceSet.
func SliceAppend(s any, v any) (any, error) {
	switch x := s.(type) {
	case []uint8:
		return sliceAppend(x, v)
	case []int8:
		return sliceAppend(x, v)
	case []int16:
		return sliceAppend(x, v)
	case []int32:
		return sliceAppend(x, v)
	case []int64:
		return sliceAppend(x, v)
	case []float32:
		return sliceAppend(x, v)
	case []float64:
		return sliceAppend(x, v)
	case []Complex64:
		return sliceAppend(x, v)
	case []Complex128:
		return sliceAppend(x, v)
	case []Boxed:
		return sliceAppend(x, v)
	}

	return nil, fmt.Errorf("SliceAppend(%T): %w", s, ErrTypeConversion)
}

func sliceAppend[T Element](s []T, v any) (any, error) {
	t, ok := v.(T)
	if !ok {
		return s, fmt.Errorf("SliceAppend(%T onto %T): %w", v, s, ErrTypeConversion)
	}

	return append(s, t), nil
}

// SliceClone returns an independent copy of an element slice.
func SliceClone(s any) any {
	switch x := s.(type) {
	case []uint8:
		return append([]uint8(nil), x...)
	case []int8:
		return append([]int8(nil), x...)
	case []int16:
		return append([]int16(nil), x...)
	case []int32:
		return append([]int32(nil), x...)
	case []int64:
		return append([]int64(nil), x...)
	case []float32:
		return append([]float32(nil), x...)
	case []float64:
		return append([]float64(nil), x...)
	case []Complex64:
		return append([]Complex64(nil), x...)
	case []Complex128:
		return append([]Complex128(nil), x...)
	case []Boxed:
		return append([]Boxed(nil), x...)
	}

	return nil
}

// SliceInsert inserts v at position i, with the same typing rule as SliceSet.
func SliceInsert(s any, i int, v any) (any, error) {
	switch x := s.(type) {
	case []uint8:
		return sliceInsert(x, i, v)
	case []int8:
		return sliceInsert(x, i, v)
	case []int16:
		return sliceInsert(x, i, v)
	case []int32:
		return sliceInsert(x, i, v)
	case []int64:
		return sliceInsert(x, i, v)
	case []float32:
		return sliceInsert(x, i, v)
	case []float64:
		return sliceInsert(x, i, v)
	case []Complex64:
		return sliceInsert(x, i, v)
	case []Complex128:
		return sliceInsert(x, i, v)
	case []Boxed:
		return sliceInsert(x, i, v)
	}

	return nil, fmt.Errorf("SliceInsert(%T): %w", s, ErrTypeConversion)
}

func sliceInsert[T Element](s []T, i int, v any) (any, error) {
	t, ok := v.(T)
	if !ok {
		return s, fmt.Errorf("SliceInsert(%T into %T): %w", v, s, ErrTypeConversion)
	}

	return slices.Insert(s, i, t), nil
}
