// SPDX-License-Identifier: MIT

// Package matrix provides typed dense and sparse storage for lvnum.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in one flat slice of the kind's Go type for performance
// and cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/scalar"
)

// Dense is a row-major matrix of one element kind.
// r is rows, c is columns, and data holds r*c elements in row-major order as
// a []T, T being the Go type backing kind.
type Dense struct {
	kind dtype.Kind
	r, c int // number of rows and columns
	data any // flat backing storage, length == r*c

	validateNaNInf bool
}

// NewDense creates an r×c Dense matrix of kind initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0 and the kind is known.
// Stage 2 (Prepare): allocate the flat typed backing slice.
// Stage 3 (Finalize): return new Dense or a wrapped sentinel.
// Complexity: O(r*c) time and memory.
func NewDense(kind dtype.Kind, rows, cols int, opts ...Option) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}
	// Allocate flat slice of the kind's Go type
	data, err := scalar.MakeSlice(kind, rows*cols)
	if err != nil {
		return nil, matrixErrorf("NewDense", err)
	}
	o := gatherOptions(opts...)

	return &Dense{kind: kind, r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFrom creates an r×c Dense matrix of kind from row-major values.
// Every value is converted with scalar.CastKind, so mixed Go number types are
// accepted.
// Stage 1 (Validate): shape and len(values) == rows*cols.
// Stage 2 (Execute): convert and store each value in order.
// Complexity: O(r*c).
func NewDenseFrom(kind dtype.Kind, rows, cols int, values []any, opts ...Option) (*Dense, error) {
	m, err := NewDense(kind, rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf("NewDenseFrom", err)
	}
	if len(values) != rows*cols {
		return nil, matrixErrorf("NewDenseFrom", ErrDimensionMismatch)
	}
	for i, v := range values {
		if err = m.store(i, v); err != nil {
			return nil, fmt.Errorf("NewDenseFrom: value %d: %w", i, err)
		}
	}

	return m, nil
}

// Kind returns the element kind.
func (m *Dense) Kind() dtype.Kind { return m.kind }

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// Len returns the number of elements.
func (m *Dense) Len() int { return m.r * m.c }

// Bytes returns the storage size of the elements, Len()*Kind().Size().
// Boxed elements count as one reference each.
func (m *Dense) Bytes() uintptr { return uintptr(m.r*m.c) * m.kind.Size() }

// Raw returns the backing []T. It aliases the matrix storage.
func (m *Dense) Raw() any { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row and column index
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col) as the kind's Go type.
// Complexity: O(1).
func (m *Dense) At(row, col int) (any, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return scalar.SliceAt(m.data, idx), nil
}

// Set converts v to the matrix kind and assigns it at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): explicit conversion via scalar.CastKind, then the
// NaN/Inf policy, then the write.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v any) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if err = m.store(idx, v); err != nil {
		return denseErrorf("Set", row, col, err)
	}

	return nil
}

// store converts and writes v at flat index idx.
func (m *Dense) store(idx int, v any) error {
	x, err := scalar.CastKind(m.kind, v)
	if err != nil {
		return err
	}
	if m.validateNaNInf && !finite(x) {
		return ErrNaNInf
	}

	return scalar.SliceSet(m.data, idx, x)
}

// finite reports whether a float or complex element has no NaN or Inf part.
func finite(v any) bool {
	switch x := v.(type) {
	case float32:
		return isFinite(float64(x))
	case float64:
		return isFinite(x)
	case scalar.Complex64:
		return isFinite(float64(x.Real)) && isFinite(float64(x.Imag))
	case scalar.Complex128:
		return isFinite(x.Real) && isFinite(x.Imag)
	}

	return true
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return &Dense{kind: m.kind, r: m.r, c: m.c, data: scalar.SliceClone(m.data), validateNaNInf: m.validateNaNInf}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, scalar.SliceAt(m.data, i*m.c+j))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
