// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/scalar"
)

// ConversionTable maps (from, to) to the cast between two storages. Every
// cell is Ready; a conversion that fails for a particular value, such as an
// out-of-range boxed integer, fails per call with ErrTypeConversion.
type ConversionTable struct {
	lazy
	cells [dtype.NumKinds][dtype.NumKinds]cell[ConversionHandle]
}

// NewConversionTable returns an unbuilt table.
func NewConversionTable() *ConversionTable { return &ConversionTable{} }

// Build populates every cell once.
func (t *ConversionTable) Build() *ConversionTable {
	t.build(t.populate)

	return t
}

func (t *ConversionTable) populate() {
	ws := newWitnesses(gatherOptions())
	for _, from := range dtype.Kinds() {
		for _, to := range dtype.Kinds() {
			t.cells[from][to] = conversionCell(ws[from], to)
		}
	}
}

func conversionCell(w *witness, to dtype.Kind) cell[ConversionHandle] {
	from := w.kind
	name := fmt.Sprintf("cast(%s→%s)", from, to)
	fn := func(v any) (any, error) {
		if !w.check(v) {
			return nil, typeMismatch(name, from, v)
		}
		if from == to {
			return v, nil
		}
		out, err := scalar.CastKind(to, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return out, nil
	}

	return cell[ConversionHandle]{state: Ready, handle: ConversionHandle{From: from, To: to, fn: fn}}
}

// Lookup returns the cell for (from, to) without building.
func (t *ConversionTable) Lookup(from, to dtype.Kind) (ConversionHandle, State) {
	if !t.Built() || !from.Valid() || !to.Valid() {
		return ConversionHandle{}, Unbuilt
	}
	c := t.cells[from][to]

	return c.handle, c.state
}

// Resolve builds the table if needed and returns the handle for (from, to).
func (t *ConversionTable) Resolve(from, to dtype.Kind) (ConversionHandle, error) {
	if !from.Valid() || !to.Valid() {
		return ConversionHandle{}, fmt.Errorf("ResolveConversion(%s,%s): %w: %w", from, to, ErrUnsupportedOperation, dtype.ErrUnknownKind)
	}
	t.Build()
	h, st := t.Lookup(from, to)

	return h, stateError(st, "cast(%s→%s)", from, to)
}

// Stats counts the cells by state without building.
func (t *ConversionTable) Stats() Stats {
	var s Stats
	for _, from := range dtype.Kinds() {
		for _, to := range dtype.Kinds() {
			_, st := t.Lookup(from, to)
			s.add(st)
		}
	}

	return s
}

// Equal reports whether t and o agree on every cell's state.
func (t *ConversionTable) Equal(o *ConversionTable) bool {
	t.Build()
	o.Build()
	for _, from := range dtype.Kinds() {
		for _, to := range dtype.Kinds() {
			if t.cells[from][to].state != o.cells[from][to].state {
				return false
			}
		}
	}

	return true
}
