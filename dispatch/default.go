// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
)

// Process-wide tables. They are created unbuilt and populated on first
// Resolve or explicit Build; afterwards they never change.
var (
	unaries        = NewUnaryTable()
	conversions    = NewConversionTable()
	elementwise    = NewElementwiseTable()
	nonCommutative = NewNonComTable()
	indexed        = NewIndexTable()
)

// Unaries returns the shared unary table.
func Unaries() *UnaryTable { return unaries }

// Conversions returns the shared conversion table.
func Conversions() *ConversionTable { return conversions }

// Elementwise returns the shared element-wise table. It is built with the
// default options, so integer division is Unsupported.
func Elementwise() *ElementwiseTable { return elementwise }

// NonCommutative returns the shared table for atan2, ldexp and hypot.
func NonCommutative() *NonComTable { return nonCommutative }

// Indexed returns the shared sparse-merge table.
func Indexed() *IndexTable { return indexed }

// BuildAll populates every shared table.
func BuildAll() {
	unaries.Build()
	conversions.Build()
	elementwise.Build()
	nonCommutative.Build()
	indexed.Build()
}

// Resolve resolves an element-wise op against the shared table.
func Resolve(op ops.EW, l, r dtype.Kind) (BinaryHandle, error) {
	return elementwise.Resolve(op, l, r)
}

// ResolveUnary resolves a unary op against the shared table.
func ResolveUnary(op ops.Unary, k dtype.Kind) (UnaryHandle, error) {
	return unaries.Resolve(op, k)
}

// ResolveNonCom resolves a non-commutative op against the shared table.
func ResolveNonCom(op ops.NonCom, l, r dtype.Kind) (BinaryHandle, error) {
	return nonCommutative.Resolve(op, l, r)
}

// ResolveConversion resolves the cast from one kind to another.
func ResolveConversion(from, to dtype.Kind) (ConversionHandle, error) {
	return conversions.Resolve(from, to)
}

// ResolveIndexed resolves a sparse merge against the shared table.
func ResolveIndexed(op ops.EW, ik dtype.IndexKind, v dtype.Kind) (IndexedHandle, error) {
	return indexed.Resolve(op, ik, v)
}
