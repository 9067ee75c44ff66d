// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
)

// Sparse is a compressed vector as seen by IndexTable handles.
//
// Indices is a []uint8, []uint16, []uint32 or []uint64 matching the handle's
// index kind, strictly increasing and below Len. Values is the element slice
// of the value kind, parallel to Indices. Every position absent from Indices
// holds Default.
type Sparse struct {
	Len     uint64
	Indices any
	Values  any
	Default any
}

type index interface {
	uint8 | uint16 | uint32 | uint64
}

// IndexTable maps (op, index kind, value kind) to an IndexedHandle that
// merges two sparse vectors position by position.
//
// Legality follows the element-wise table on its diagonal: (op, ik, v) is
// Ready exactly when (op, v, v) is. The merged default is op applied to the
// two defaults. Native and complex results drop stored entries equal to the
// merged default, so the output stays compressed; boxed results keep every
// entry.
type IndexTable struct {
	lazy
	opts  Options
	cells [ops.NumEW][dtype.NumIndexKinds][dtype.NumKinds]cell[IndexedHandle]
}

// NewIndexTable returns an unbuilt table configured by opts.
func NewIndexTable(opts ...Option) *IndexTable {
	return &IndexTable{opts: gatherOptions(opts...)}
}

// Build populates every cell once.
func (t *IndexTable) Build() *IndexTable {
	t.build(t.populate)

	return t
}

func (t *IndexTable) populate() {
	ws := newWitnesses(t.opts)
	for _, op := range ops.AllEW() {
		for _, ik := range dtype.IndexKinds() {
			for _, v := range dtype.Kinds() {
				t.cells[op][ik][v] = indexCell(ws, op, ik, v, t.opts)
			}
		}
	}
}

func indexCell(ws witnessSet, op ops.EW, ik dtype.IndexKind, v dtype.Kind, o Options) cell[IndexedHandle] {
	st := elementwiseState(op, v, v, o)
	if st != Ready {
		return cell[IndexedHandle]{state: st}
	}
	kernel := ws[v].binary[op]
	if kernel == nil {
		return cell[IndexedHandle]{state: NotImplemented}
	}

	res := elementwiseResult(op, v, v)
	var fn SparseFunc
	switch ik {
	case dtype.IndexUint8:
		fn = sparseMerge[uint8](op, ws[v], ws[res], kernel)
	case dtype.IndexUint16:
		fn = sparseMerge[uint16](op, ws[v], ws[res], kernel)
	case dtype.IndexUint32:
		fn = sparseMerge[uint32](op, ws[v], ws[res], kernel)
	default:
		fn = sparseMerge[uint64](op, ws[v], ws[res], kernel)
	}

	return cell[IndexedHandle]{
		state:  Ready,
		handle: IndexedHandle{Op: op, Index: ik, Value: v, Result: res, fn: fn},
	}
}

// sparseMerge walks the union of both index lists in order. A position
// present in only one vector meets the other vector's default.
func sparseMerge[I index](op ops.EW, wv, wres *witness, kernel BinaryFunc) SparseFunc {
	name := fmt.Sprintf("%s[%T](%s)", op, I(0), wv.kind)

	return func(a, b Sparse) (Sparse, error) {
		ai, err := sparseIndices[I](name, a)
		if err != nil {
			return Sparse{}, err
		}
		bi, err := sparseIndices[I](name, b)
		if err != nil {
			return Sparse{}, err
		}
		if a.Len != b.Len {
			return Sparse{}, fmt.Errorf("%s: %d vs %d: %w", name, a.Len, b.Len, ErrLengthMismatch)
		}
		if err := checkSparseValues(name, wv, a, len(ai)); err != nil {
			return Sparse{}, err
		}
		if err := checkSparseValues(name, wv, b, len(bi)); err != nil {
			return Sparse{}, err
		}

		def, err := kernel(a.Default, b.Default)
		if err != nil {
			return Sparse{}, fmt.Errorf("%s: default: %w", name, err)
		}
		vals, err := scalar.MakeSlice(wres.kind, 0)
		if err != nil {
			return Sparse{}, err
		}
		idx := make([]I, 0, max(len(ai), len(bi)))

		i, j := 0, 0
		for i < len(ai) || j < len(bi) {
			var pos I
			var x, y any
			switch {
			case j == len(bi) || (i < len(ai) && ai[i] < bi[j]):
				pos, x, y = ai[i], scalar.SliceAt(a.Values, i), b.Default
				i++
			case i == len(ai) || bi[j] < ai[i]:
				pos, x, y = bi[j], a.Default, scalar.SliceAt(b.Values, j)
				j++
			default:
				pos, x, y = ai[i], scalar.SliceAt(a.Values, i), scalar.SliceAt(b.Values, j)
				i++
				j++
			}

			z, err := kernel(x, y)
			if err != nil {
				return Sparse{}, fmt.Errorf("%s: at %d: %w", name, pos, err)
			}
			if wres.same != nil && wres.same(z, def) {
				continue
			}
			idx = append(idx, pos)
			if vals, err = scalar.SliceAppend(vals, z); err != nil {
				return Sparse{}, fmt.Errorf("%s: %w", name, err)
			}
		}

		return Sparse{Len: a.Len, Indices: idx, Values: vals, Default: def}, nil
	}
}

func sparseIndices[I index](name string, s Sparse) ([]I, error) {
	idx, ok := s.Indices.([]I)
	if !ok {
		return nil, fmt.Errorf("%s: indices %T: %w", name, s.Indices, ErrTypeConversion)
	}
	for i, p := range idx {
		if uint64(p) >= s.Len || (i > 0 && idx[i-1] >= p) {
			return nil, fmt.Errorf("%s: index %d at %d: %w", name, p, i, ErrInvalidIndices)
		}
	}

	return idx, nil
}

func checkSparseValues(name string, wv *witness, s Sparse, n int) error {
	if k, ok := scalar.SliceKind(s.Values); !ok || k != wv.kind {
		return fmt.Errorf("%s: values %T: %w", name, s.Values, ErrTypeConversion)
	}
	if got := scalar.SliceLen(s.Values); got != n {
		return fmt.Errorf("%s: %d values for %d indices: %w", name, got, n, ErrLengthMismatch)
	}
	if !wv.check(s.Default) {
		return typeMismatch(name+": default", wv.kind, s.Default)
	}

	return nil
}

// Lookup returns the cell for (op, ik, v) without building.
func (t *IndexTable) Lookup(op ops.EW, ik dtype.IndexKind, v dtype.Kind) (IndexedHandle, State) {
	if !t.Built() || !op.Valid() || !ik.Valid() || !v.Valid() {
		return IndexedHandle{}, Unbuilt
	}
	c := t.cells[op][ik][v]

	return c.handle, c.state
}

// Resolve builds the table if needed and returns the handle for (op, ik, v).
func (t *IndexTable) Resolve(op ops.EW, ik dtype.IndexKind, v dtype.Kind) (IndexedHandle, error) {
	if !op.Valid() {
		return IndexedHandle{}, fmt.Errorf("ResolveIndexed(%s): %w: %w", op, ErrUnsupportedOperation, ops.ErrUnknownOp)
	}
	if !ik.Valid() {
		return IndexedHandle{}, fmt.Errorf("ResolveIndexed(%s,%s): %w: %w", op, ik, ErrUnsupportedOperation, dtype.ErrNotIndexKind)
	}
	if !v.Valid() {
		return IndexedHandle{}, fmt.Errorf("ResolveIndexed(%s,%s,%s): %w: %w", op, ik, v, ErrUnsupportedOperation, dtype.ErrUnknownKind)
	}
	t.Build()
	h, st := t.Lookup(op, ik, v)

	return h, stateError(st, "%s[%s](%s)", op, ik, v)
}

// Stats counts the cells by state without building.
func (t *IndexTable) Stats() Stats {
	var s Stats
	for _, op := range ops.AllEW() {
		for _, ik := range dtype.IndexKinds() {
			for _, v := range dtype.Kinds() {
				_, st := t.Lookup(op, ik, v)
				s.add(st)
			}
		}
	}

	return s
}

// Equal reports whether t and o agree on every cell's state and result kind.
func (t *IndexTable) Equal(o *IndexTable) bool {
	t.Build()
	o.Build()
	for _, op := range ops.AllEW() {
		for _, ik := range dtype.IndexKinds() {
			for _, v := range dtype.Kinds() {
				a, b := t.cells[op][ik][v], o.cells[op][ik][v]
				if a.state != b.state || a.handle.Result != b.handle.Result {
					return false
				}
			}
		}
	}

	return true
}
