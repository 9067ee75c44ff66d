// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Public element-wise operations over typed matrices: ElementWise,
//     ElementWiseScalar, Unary, NonCommutative and Cast.
//   - Every operation resolves ONE dispatch handle up front from the operand
//     kinds and applies it to every element; no per-element type switching.
//
// Design:
//   - Kind rules live in the dispatch tables. An Unsupported or
//     NotImplemented combination fails before any allocation.
//   - Boxed and native operands never mix implicitly; Cast first.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1 over row-major storage.
//   - Dense fast-path reads the typed buffer directly; other Matrix
//     implementations fall back to At.
//   - The first failing element aborts the operation; its flat index is part
//     of the error.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
)

// elementAt reads flat element idx of m (row-major).
func elementAt(m Matrix, idx int) (any, error) {
	// Dense fast-path: typed flat buffer.
	if d, ok := m.(*Dense); ok {
		return scalar.SliceAt(d.data, idx), nil
	}

	// Generic fallback via At.
	return m.At(idx/m.Cols(), idx%m.Cols())
}

// fill allocates a rows×cols result of kind and writes gen(idx) into every
// element in flat order.
func fill(tag string, kind dtype.Kind, rows, cols int, o Options, gen func(idx int) (any, error)) (*Dense, error) {
	out, err := NewDense(kind, rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out.validateNaNInf = o.validateNaNInf

	n := rows * cols
	for idx := 0; idx < n; idx++ {
		v, err := gen(idx)
		if err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", tag, idx, err)
		}
		if out.validateNaNInf && !finite(v) {
			return nil, fmt.Errorf("%s: element %d: %w", tag, idx, ErrNaNInf)
		}
		if err = scalar.SliceSet(out.data, idx, v); err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", tag, idx, err)
		}
	}

	return out, nil
}

// ElementWise applies op to every pair a[i,j], b[i,j].
// Implementation:
//   - Stage 1: validate both operands and their shapes.
//   - Stage 2: resolve (op, a.Kind(), b.Kind()) in the element-wise table
//     selected by opts (always with guarded integer division).
//   - Stage 3: allocate the result with the handle's result kind and fill it.
//
// Behavior highlights:
//   - Arithmetic results have kind Upcast(a.Kind(), b.Kind()); comparisons
//     produce a uint8 matrix of 1/0.
//   - Integer Div/Mod floor; a zero divisor fails with ErrDivisionByZero.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnsupportedOperation (e.g.,
//     boxed with native, modulo of complex), per-element failures.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ElementWise(op ops.EW, a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf("ElementWise", err)
	}
	o := gatherOptions(opts...)
	h, err := elementwiseTable(o).Resolve(op, a.Kind(), b.Kind())
	if err != nil {
		return nil, matrixErrorf("ElementWise", err)
	}

	return fill("ElementWise", h.Result, a.Rows(), a.Cols(), o, func(idx int) (any, error) {
		x, err := elementAt(a, idx)
		if err != nil {
			return nil, err
		}
		y, err := elementAt(b, idx)
		if err != nil {
			return nil, err
		}
		return h.Call(x, y)
	})
}

// ScalarKind is the kind a scalar operand takes against a matrix of kind
// against. Complex and boxed values keep their kind, any scalar is boxed
// against a boxed matrix, and a Go number takes the narrowest kind holding it
// (dtype.MinKind).
func ScalarKind(against dtype.Kind, v any) dtype.Kind {
	switch v.(type) {
	case scalar.Complex64, scalar.Complex128, scalar.Boxed:
		k, _ := scalar.KindOf(v)
		return k
	}
	if against.IsBoxed() {
		return dtype.Boxed
	}

	return dtype.MinKind(v)
}

// ElementWiseScalar applies op to every pair a[i,j], v.
// Implementation:
//   - Stage 1: choose the scalar kind with ScalarKind and convert v to it.
//   - Stage 2: resolve (op, a.Kind(), scalar kind) and fill the result.
//
// Behavior highlights:
//   - A literal does not widen the matrix more than needed: 2 against an
//     int16 matrix stays int16, 2.5 against it becomes float32.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ElementWiseScalar(op ops.EW, a Matrix, v any, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("ElementWiseScalar", err)
	}
	k := ScalarKind(a.Kind(), v)
	sv, err := scalar.CastKind(k, v)
	if err != nil {
		return nil, matrixErrorf("ElementWiseScalar", err)
	}
	o := gatherOptions(opts...)
	h, err := elementwiseTable(o).Resolve(op, a.Kind(), k)
	if err != nil {
		return nil, matrixErrorf("ElementWiseScalar", err)
	}

	return fill("ElementWiseScalar", h.Result, a.Rows(), a.Cols(), o, func(idx int) (any, error) {
		x, err := elementAt(a, idx)
		if err != nil {
			return nil, err
		}
		return h.Call(x, sv)
	})
}

// Unary applies op to every element of a.
// Result kinds follow the unary table: transcendental ops produce float64
// (complex128 for complex input), Floor/Ceil send floats to int64, Abs sends
// complex to its component float kind.
//
// Complexity: Time O(r*c), Space O(r*c).
func Unary(op ops.Unary, a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Unary", err)
	}
	h, err := dispatch.ResolveUnary(op, a.Kind())
	if err != nil {
		return nil, matrixErrorf("Unary", err)
	}

	return fill("Unary", h.Result, a.Rows(), a.Cols(), gatherOptions(opts...), func(idx int) (any, error) {
		x, err := elementAt(a, idx)
		if err != nil {
			return nil, err
		}
		return h.Call(x)
	})
}

// NonCommutative applies atan2, ldexp or hypot element by element.
// With reversed=false the result is op(a[i,j], b[i,j]); with reversed=true
// it is op(b[i,j], a[i,j]).
//
// Errors:
//   - ErrUnsupportedOperation for complex operands and boxed/native mixes.
//
// Complexity: Time O(r*c), Space O(r*c).
func NonCommutative(op ops.NonCom, a, b Matrix, reversed bool, opts ...Option) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf("NonCommutative", err)
	}
	first, second := a, b
	if reversed {
		first, second = b, a
	}
	h, err := dispatch.ResolveNonCom(op, first.Kind(), second.Kind())
	if err != nil {
		return nil, matrixErrorf("NonCommutative", err)
	}

	return fill("NonCommutative", h.Result, a.Rows(), a.Cols(), gatherOptions(opts...), func(idx int) (any, error) {
		x, err := elementAt(first, idx)
		if err != nil {
			return nil, err
		}
		y, err := elementAt(second, idx)
		if err != nil {
			return nil, err
		}
		return h.Call(x, y)
	})
}

// Cast converts m to kind through the conversion table.
// Casting to the same kind returns an independent copy.
//
// Errors:
//   - ErrTypeConversion for a boxed element that cannot be unboxed to kind.
//
// Complexity: Time O(r*c), Space O(r*c).
func Cast(m Matrix, kind dtype.Kind, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Cast", err)
	}
	h, err := dispatch.ResolveConversion(m.Kind(), kind)
	if err != nil {
		return nil, matrixErrorf("Cast", err)
	}

	return fill("Cast", kind, m.Rows(), m.Cols(), gatherOptions(opts...), func(idx int) (any, error) {
		x, err := elementAt(m, idx)
		if err != nil {
			return nil, err
		}
		return h.Call(x)
	})
}
