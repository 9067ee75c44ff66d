// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
)

// NonComTable maps (op, left kind, right kind) to a BinaryHandle for the
// non-commutative real functions atan2, ldexp and hypot.
//
// Real native operands produce float64. Boxed pairs coerce both referents to
// float64 and box the result as a host BigFloat. Complex operands and mixed
// boxed/native pairs are Unsupported.
type NonComTable struct {
	lazy
	cells [ops.NumNonCom][dtype.NumKinds][dtype.NumKinds]cell[BinaryHandle]
}

// NewNonComTable returns an unbuilt table.
func NewNonComTable() *NonComTable { return &NonComTable{} }

// Build populates every cell once.
func (t *NonComTable) Build() *NonComTable {
	t.build(t.populate)

	return t
}

func (t *NonComTable) populate() {
	ws := newWitnesses(gatherOptions())
	for _, op := range ops.AllNonCom() {
		for _, l := range dtype.Kinds() {
			for _, r := range dtype.Kinds() {
				t.cells[op][l][r] = nonComCell(ws, op, l, r)
			}
		}
	}
}

func nonComCell(ws witnessSet, op ops.NonCom, l, r dtype.Kind) cell[BinaryHandle] {
	if st := nonComState(l, r); st != Ready {
		return cell[BinaryHandle]{state: st}
	}

	name := fmt.Sprintf("%s(%s,%s)", op, l, r)
	f := op.Real()
	wl, wr := ws[l], ws[r]
	result := dtype.Float64
	if l.IsBoxed() {
		result = dtype.Boxed
	}

	fn := func(a, b any) (any, error) {
		if !wl.check(a) {
			return nil, typeMismatch(name, l, a)
		}
		if !wr.check(b) {
			return nil, typeMismatch(name, r, b)
		}
		x, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		y, err := toFloat64(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		z := f(x, y)
		if result == dtype.Boxed {
			boxed, err := scalar.Box(z)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return boxed, nil
		}
		return z, nil
	}

	return cell[BinaryHandle]{
		state:  Ready,
		handle: BinaryHandle{Name: op.String(), Left: l, Right: r, Result: result, fn: fn},
	}
}

func toFloat64(v any) (float64, error) {
	if b, ok := v.(scalar.Boxed); ok {
		return b.ToFloat64()
	}

	return scalar.Cast[float64](v)
}

// Lookup returns the cell for (op, l, r) without building.
func (t *NonComTable) Lookup(op ops.NonCom, l, r dtype.Kind) (BinaryHandle, State) {
	if !t.Built() || !op.Valid() || !l.Valid() || !r.Valid() {
		return BinaryHandle{}, Unbuilt
	}
	c := t.cells[op][l][r]

	return c.handle, c.state
}

// Resolve builds the table if needed and returns the handle for (op, l, r).
func (t *NonComTable) Resolve(op ops.NonCom, l, r dtype.Kind) (BinaryHandle, error) {
	if !op.Valid() {
		return BinaryHandle{}, fmt.Errorf("ResolveNonCom(%s): %w: %w", op, ErrUnsupportedOperation, ops.ErrUnknownOp)
	}
	if !l.Valid() || !r.Valid() {
		return BinaryHandle{}, fmt.Errorf("ResolveNonCom(%s,%s,%s): %w: %w", op, l, r, ErrUnsupportedOperation, dtype.ErrUnknownKind)
	}
	t.Build()
	h, st := t.Lookup(op, l, r)

	return h, stateError(st, "%s(%s,%s)", op, l, r)
}

// Stats counts the cells by state without building.
func (t *NonComTable) Stats() Stats {
	var s Stats
	for _, op := range ops.AllNonCom() {
		for _, l := range dtype.Kinds() {
			for _, r := range dtype.Kinds() {
				_, st := t.Lookup(op, l, r)
				s.add(st)
			}
		}
	}

	return s
}

// Equal reports whether t and o agree on every cell's state and result kind.
func (t *NonComTable) Equal(o *NonComTable) bool {
	t.Build()
	o.Build()
	for _, op := range ops.AllNonCom() {
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
