// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
)

// ElementwiseTable maps (op, left kind, right kind) to a BinaryHandle for the
// twelve element-wise operations.
//
// A Ready handle accepts operands of exactly its Left and Right kinds,
// converts both to Upcast(Left, Right) and applies the kernel of that kind.
// Arithmetic results have the upcast kind; comparisons return a uint8 1 or 0.
type ElementwiseTable struct {
	lazy
	opts  Options
	cells [ops.NumEW][dtype.NumKinds][dtype.NumKinds]cell[BinaryHandle]
}

// NewElementwiseTable returns an unbuilt table configured by opts.
func NewElementwiseTable(opts ...Option) *ElementwiseTable {
	return &ElementwiseTable{opts: gatherOptions(opts...)}
}

// Options returns the configuration the table is built with.
func (t *ElementwiseTable) Options() Options { return t.opts }

// Build populates every cell. Calls after the first are no-ops, including
// concurrent ones, which wait for the first to finish.
func (t *ElementwiseTable) Build() *ElementwiseTable {
	t.build(t.populate)

	return t
}

func (t *ElementwiseTable) populate() {
	ws := newWitnesses(t.opts)
	for _, op := range ops.AllEW() {
		for _, l := range dtype.Kinds() {
			for _, r := range dtype.Kinds() {
				t.cells[op][l][r] = elementwiseCell(ws, op, l, r, t.opts)
			}
		}
	}
}

func elementwiseCell(ws witnessSet, op ops.EW, l, r dtype.Kind, o Options) cell[BinaryHandle] {
	st := elementwiseState(op, l, r, o)
	if st != Ready {
		return cell[BinaryHandle]{state: st}
	}

	k := dtype.Upcast(l, r)
	kernel := ws[k].binary[op]
	if kernel == nil {
		return cell[BinaryHandle]{state: NotImplemented}
	}

	name := fmt.Sprintf("%s(%s,%s)", op, l, r)
	wl, wr, wk := ws[l], ws[r], ws[k]
	fn := func(a, b any) (any, error) {
		if !wl.check(a) {
			return nil, typeMismatch(name, l, a)
		}
		if !wr.check(b) {
			return nil, typeMismatch(name, r, b)
		}
		x, err := wk.cast(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		y, err := wk.cast(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out, err := kernel(x, y)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return out, nil
	}

	return cell[BinaryHandle]{
		state:  Ready,
		handle: BinaryHandle{Name: op.String(), Left: l, Right: r, Result: elementwiseResult(op, l, r), fn: fn},
	}
}

// Lookup returns the cell for (op, l, r) without building. An unbuilt table
// reports Unbuilt for every cell; so does an out-of-catalogue argument.
func (t *ElementwiseTable) Lookup(op ops.EW, l, r dtype.Kind) (BinaryHandle, State) {
	if !t.Built() || !op.Valid() || !l.Valid() || !r.Valid() {
		return BinaryHandle{}, Unbuilt
	}
	c := t.cells[op][l][r]

	return c.handle, c.state
}

// Resolve builds the table if needed and returns the Ready handle for
// (op, l, r), or an error wrapping ErrUnsupportedOperation or
// ErrNotImplemented.
func (t *ElementwiseTable) Resolve(op ops.EW, l, r dtype.Kind) (BinaryHandle, error) {
	if !op.Valid() {
		return BinaryHandle{}, fmt.Errorf("Resolve(%s): %w: %w", op, ErrUnsupportedOperation, ops.ErrUnknownOp)
	}
	if !l.Valid() || !r.Valid() {
		return BinaryHandle{}, fmt.Errorf("Resolve(%s,%s,%s): %w: %w", op, l, r, ErrUnsupportedOperation, dtype.ErrUnknownKind)
	}
	t.Build()
	h, st := t.Lookup(op, l, r)

	return h, stateError(st, "%s(%s,%s)", op, l, r)
}

// Stats counts the cells by state without building.
func (t *ElementwiseTable) Stats() Stats {
	var s Stats
	for _, op := range ops.AllEW() {
		for _, l := range dtype.Kinds() {
			for _, r := range dtype.Kinds() {
				_, st := t.Lookup(op, l, r)
				s.add(st)
			}
		}
	}

	return s
}

// Equal reports whether t and o agree on the state and result kind of every
// cell. Both tables are built first.
func (t *ElementwiseTable) Equal(o *ElementwiseTable) bool {
	t.Build()
	o.Build()
	for _, op := range ops.AllEW() {
		for _, l := range dtype.Kinds() {
			for _, r := range dtype.Kinds() {
				a, b := t.cells[op][l][r], o.cells[op][l][r]
				if a.state != b.state || a.handle.Result != b.handle.Result {
					return false
				}
			}
		}
	}

	return true
}

// stateError maps a non-Ready state to its sentinel.
func stateError(st State, format string, args ...any) error {
	switch st {
	case Ready:
		return nil
	case Unsupported:
		return fmt.Errorf(format+": %w", append(args, ErrUnsupportedOperation)...)
	case NotImplemented:
		return fmt.Errorf(format+": %w", append(args, ErrNotImplemented)...)
	}

	return fmt.Errorf(format+": table not built: %w", append(args, ErrNotImplemented)...)
}
