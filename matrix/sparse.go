// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
)

// SparseVector is a compressed vector of n elements of one kind. Positions
// without a stored entry hold the default value. Stored positions are kept
// strictly increasing in a slice of the index kind.
type SparseVector struct {
	kind dtype.Kind
	ik   dtype.IndexKind
	n    uint64
	def  any // default element, of kind
	idx  any // []uint8 | []uint16 | []uint32 | []uint64
	vals any // []T parallel to idx
}

// NewSparseVector creates a vector of length n whose every element is def,
// converted to kind. A nil def is the zero of kind.
//
// The index kind is the narrowest able to address n positions unless fixed
// with WithIndexKind.
//
// Errors: ErrBadShape for n == 0 or an index kind too narrow for n,
// ErrTypeConversion for an unconvertible def.
func NewSparseVector(kind dtype.Kind, n uint64, def any, opts ...Option) (*SparseVector, error) {
	if n == 0 {
		return nil, matrixErrorf("NewSparseVector", ErrBadShape)
	}
	o := gatherOptions(opts...)
	ik := dtype.IndexFor(n)
	if o.indexKindSet {
		if n-1 > o.indexKind.MaxIndex() {
			return nil, fmt.Errorf("NewSparseVector: %d positions with %s indices: %w", n, o.indexKind, ErrBadShape)
		}
		ik = o.indexKind
	}

	if def == nil {
		def = uint8(0)
	}
	d, err := scalar.CastKind(kind, def)
	if err != nil {
		return nil, matrixErrorf("NewSparseVector", err)
	}
	vals, err := scalar.MakeSlice(kind, 0)
	if err != nil {
		return nil, matrixErrorf("NewSparseVector", err)
	}

	return &SparseVector{kind: kind, ik: ik, n: n, def: d, idx: makeIndex(ik), vals: vals}, nil
}

// Kind returns the element kind.
func (v *SparseVector) Kind() dtype.Kind { return v.kind }

// IndexKind returns the kind of the stored positions.
func (v *SparseVector) IndexKind() dtype.IndexKind { return v.ik }

// Len returns the logical length.
func (v *SparseVector) Len() uint64 { return v.n }

// Default returns the value of every position without a stored entry.
func (v *SparseVector) Default() any { return v.def }

// NNZ returns the number of stored entries.
func (v *SparseVector) NNZ() int { return scalar.SliceLen(v.vals) }

// At returns the element at position i.
func (v *SparseVector) At(i uint64) (any, error) {
	if i >= v.n {
		return nil, fmt.Errorf("SparseVector.At(%d): %w", i, ErrOutOfRange)
	}
	if p, ok := searchIndex(v.idx, i); ok {
		return scalar.SliceAt(v.vals, p), nil
	}

	return v.def, nil
}

// Set converts x to the vector kind and stores it at position i. Storing the
// default keeps the entry explicit; the next ElementWise compacts it.
func (v *SparseVector) Set(i uint64, x any) error {
	if i >= v.n {
		return fmt.Errorf("SparseVector.Set(%d): %w", i, ErrOutOfRange)
	}
	c, err := scalar.CastKind(v.kind, x)
	if err != nil {
		return fmt.Errorf("SparseVector.Set(%d): %w", i, err)
	}

	p, ok := searchIndex(v.idx, i)
	if ok {
		return scalar.SliceSet(v.vals, p, c)
	}
	vals, err := scalar.SliceInsert(v.vals, p, c)
	if err != nil {
		return fmt.Errorf("SparseVector.Set(%d): %w", i, err)
	}
	v.vals = vals
	v.idx = insertIndex(v.idx, p, i)

	return nil
}

// ToDense expands v into a 1×n Dense matrix.
func (v *SparseVector) ToDense(opts ...Option) (*Dense, error) {
	out, err := NewDense(v.kind, 1, int(v.n), opts...)
	if err != nil {
		return nil, matrixErrorf("SparseVector.ToDense", err)
	}
	for i := 0; i < int(v.n); i++ {
		x, _ := v.At(uint64(i))
		if err = out.store(i, x); err != nil {
			return nil, fmt.Errorf("SparseVector.ToDense: element %d: %w", i, err)
		}
	}

	return out, nil
}

func (v *SparseVector) sparse() dispatch.Sparse {
	return dispatch.Sparse{Len: v.n, Indices: v.idx, Values: v.vals, Default: v.def}
}

// SparseElementWise merges a and b position by position with op.
// Implementation:
//   - Stage 1: ValidateSparsePair (length, value kind, index kind).
//   - Stage 2: resolve (op, index kind, value kind) in the index table
//     selected by opts.
//   - Stage 3: merge the compressed entries; the result default is op over
//     the two defaults.
//
// Behavior highlights:
//   - Work is proportional to the stored entries, not to Len.
//   - Native and complex results drop entries equal to the result default.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrKindMismatch (cast first),
//     ErrUnsupportedOperation, per-entry failures.
func SparseElementWise(op ops.EW, a, b *SparseVector, opts ...Option) (*SparseVector, error) {
	if err := ValidateSparsePair(a, b); err != nil {
		return nil, matrixErrorf("SparseElementWise", err)
	}
	h, err := indexTable(gatherOptions(opts...)).Resolve(op, a.ik, a.kind)
	if err != nil {
		return nil, matrixErrorf("SparseElementWise", err)
	}
	s, err := h.Call(a.sparse(), b.sparse())
	if err != nil {
		return nil, matrixErrorf("SparseElementWise", err)
	}

	return &SparseVector{kind: h.Result, ik: a.ik, n: s.Len, def: s.Default, idx: s.Indices, vals: s.Values}, nil
}

func makeIndex(ik dtype.IndexKind) any {
	switch ik {
	case dtype.IndexUint8:
		return []uint8{}
	case dtype.IndexUint16:
		return []uint16{}
	case dtype.IndexUint32:
		return []uint32{}
	default:
		return []uint64{}
	}
}

// searchIndex returns the slot of position i, or where it would be inserted.
func searchIndex(idx any, i uint64) (int, bool) {
	switch x := idx.(type) {
	case []uint8:
		return slices.BinarySearch(x, uint8(i))
	case []uint16:
		return slices.BinarySearch(x, uint16(i))
	case []uint32:
		return slices.BinarySearch(x, uint32(i))
	default:
		return slices.BinarySearch(idx.([]uint64), i)
	}
}

func insertIndex(idx any, p int, i uint64) any {
	switch x := idx.(type) {
	case []uint8:
		return slices.Insert(x, p, uint8(i))
	case []uint16:
		return slices.Insert(x, p, uint16(i))
	case []uint32:
		return slices.Insert(x, p, uint32(i))
	default:
		return slices.Insert(idx.([]uint64), p, i)
	}
}
