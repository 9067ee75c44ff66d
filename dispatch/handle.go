// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
)

// Function shapes stored in Ready cells.
type (
	BinaryFunc  func(a, b any) (any, error)
	UnaryFunc   func(a any) (any, error)
	ConvertFunc func(v any) (any, error)
	SparseFunc  func(a, b Sparse) (Sparse, error)
)

// BinaryHandle is a resolved element-wise or non-commutative implementation.
// Left and Right are the operand kinds it accepts; Result is the kind of
// every value it returns.
type BinaryHandle struct {
	Name   string
	Left   dtype.Kind
	Right  dtype.Kind
	Result dtype.Kind
	fn     BinaryFunc
}

// Call applies the handle to one pair of elements.
func (h BinaryHandle) Call(a, b any) (any, error) {
	if h.fn == nil {
		return nil, fmt.Errorf("%s(%s,%s): %w", h.Name, h.Left, h.Right, ErrNotImplemented)
	}

	return h.fn(a, b)
}

// Func returns the underlying function, nil for the zero handle.
func (h BinaryHandle) Func() BinaryFunc { return h.fn }

// UnaryHandle is a resolved unary implementation.
type UnaryHandle struct {
	Op      ops.Unary
	Operand dtype.Kind
	Result  dtype.Kind
	fn      UnaryFunc
}

// Call applies the handle to one element.
func (h UnaryHandle) Call(a any) (any, error) {
	if h.fn == nil {
		return nil, fmt.Errorf("%s(%s): %w", h.Op, h.Operand, ErrNotImplemented)
	}

	return h.fn(a)
}

// Func returns the underlying function.
func (h UnaryHandle) Func() UnaryFunc { return h.fn }

// ConversionHandle converts elements of kind From to kind To.
type ConversionHandle struct {
	From dtype.Kind
	To   dtype.Kind
	fn   ConvertFunc
}

// Call converts one element.
func (h ConversionHandle) Call(v any) (any, error) {
	if h.fn == nil {
		return nil, fmt.Errorf("cast(%s→%s): %w", h.From, h.To, ErrNotImplemented)
	}

	return h.fn(v)
}

// Func returns the underlying function.
func (h ConversionHandle) Func() ConvertFunc { return h.fn }

// IndexedHandle merges two sparse vectors sharing an index kind and a value
// kind into a sparse vector of kind Result.
type IndexedHandle struct {
	Op     ops.EW
	Index  dtype.IndexKind
	Value  dtype.Kind
	Result dtype.Kind
	fn     SparseFunc
}

// Call merges a and b.
func (h IndexedHandle) Call(a, b Sparse) (Sparse, error) {
	if h.fn == nil {
		return Sparse{}, fmt.Errorf("%s[%s](%s): %w", h.Op, h.Index, h.Value, ErrNotImplemented)
	}

	return h.fn(a, b)
}

// Func returns the underlying function.
func (h IndexedHandle) Func() SparseFunc { return h.fn }

func typeMismatch(name string, want dtype.Kind, got any) error {
	return fmt.Errorf("%s: operand %T is not %s: %w", name, got, want, ErrTypeConversion)
}
