// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
)

// UnaryTable maps (op, kind) to a UnaryHandle.
//
// Result kinds:
//   - transcendental ops: Upcast(kind, float64), so integers and float32
//     produce float64 and complex64 produces complex128;
//   - Negate and Round keep the kind;
//   - Floor and Ceil keep integer and complex kinds and send floats to int64;
//   - Abs keeps real kinds and sends a complex kind to its component float.
//
// Erf, Erfc, Cbrt and Gamma have no complex implementation and are
// NotImplemented there. Boxed cells are always Ready and defer to the
// referent, which may itself report ErrNotImplemented per call.
type UnaryTable struct {
	lazy
	cells [ops.NumUnary][dtype.NumKinds]cell[UnaryHandle]
}

// NewUnaryTable returns an unbuilt table.
func NewUnaryTable() *UnaryTable { return &UnaryTable{} }

// Build populates every cell once.
func (t *UnaryTable) Build() *UnaryTable {
	t.build(t.populate)

	return t
}

func (t *UnaryTable) populate() {
	ws := newWitnesses(gatherOptions())
	for _, op := range ops.AllUnary() {
		for _, k := range dtype.Kinds() {
			t.cells[op][k] = unaryCell(ws[k], op)
		}
	}
}

func unaryCell(w *witness, op ops.Unary) cell[UnaryHandle] {
	p := w.unary(op)
	if p.state != Ready {
		return cell[UnaryHandle]{state: p.state, handle: UnaryHandle{Op: op, Operand: w.kind, Result: p.result}}
	}

	name := fmt.Sprintf("%s(%s)", op, w.kind)
	kernel := p.fn
	fn := func(a any) (any, error) {
		if !w.check(a) {
			return nil, typeMismatch(name, w.kind, a)
		}
		out, err := kernel(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return out, nil
	}

	return cell[UnaryHandle]{
		state:  Ready,
		handle: UnaryHandle{Op: op, Operand: w.kind, Result: p.result, fn: fn},
	}
}

// Lookup returns the cell for (op, k) without building.
func (t *UnaryTable) Lookup(op ops.Unary, k dtype.Kind) (UnaryHandle, State) {
	if !t.Built() || !op.Valid() || !k.Valid() {
		return UnaryHandle{}, Unbuilt
	}
	c := t.cells[op][k]

	return c.handle, c.state
}

// Resolve builds the table if needed and returns the handle for (op, k).
func (t *UnaryTable) Resolve(op ops.Unary, k dtype.Kind) (UnaryHandle, error) {
	if !op.Valid() {
		return UnaryHandle{}, fmt.Errorf("ResolveUnary(%s): %w: %w", op, ErrUnsupportedOperation, ops.ErrUnknownOp)
	}
	if !k.Valid() {
		return UnaryHandle{}, fmt.Errorf("ResolveUnary(%s,%s): %w: %w", op, k, ErrUnsupportedOperation, dtype.ErrUnknownKind)
	}
	t.Build()
	h, st := t.Lookup(op, k)
	if st != Ready {
		return UnaryHandle{}, stateError(st, "%s(%s)", op, k)
	}

	return h, nil
}

// Stats counts the cells by state without building.
func (t *UnaryTable) Stats() Stats {
	var s Stats
	for _, op := range ops.AllUnary() {
		for _, k := range dtype.Kinds() {
			_, st := t.Lookup(op, k)
			s.add(st)
		}
	}

	return s
}

// Equal reports whether t and o agree on every cell's state and result kind.
func (t *UnaryTable) Equal(o *UnaryTable) bool {
	t.Build()
	o.Build()
	for _, op := range ops.AllUnary() {
		for _, k := range dtype.Kinds() {
			a, b := t.cells[op][k], o.cells[op][k]
			if a.state != b.state || a.handle.Result != b.handle.Result {
				return false
			}
		}
	}

	return true
}
