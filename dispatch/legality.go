// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
)

// elementwiseState decides whether (op, l, r) may be Ready before any kernel
// is looked at. Kinds are assumed valid.
//
//   - boxed combines only with boxed;
//   - complex operands have no modulo;
//   - integer division and modulo need WithGuardedIntegerDivision.
func elementwiseState(op ops.EW, l, r dtype.Kind, o Options) State {
	switch {
	case l.IsBoxed() != r.IsBoxed():
		return Unsupported
	case l.IsBoxed():
		return Ready
	case op == ops.Mod && (l.IsComplex() || r.IsComplex()):
		return Unsupported
	case op.IsDivisionLike() && l.IsInteger() && r.IsInteger() && !o.guardedIntDiv:
		return Unsupported
	}

	return Ready
}

// elementwiseResult is the kind produced by a Ready (op, l, r) cell.
func elementwiseResult(op ops.EW, l, r dtype.Kind) dtype.Kind {
	if op.IsComparison() {
		return dtype.Uint8
	}

	return dtype.Upcast(l, r)
}

// nonComState applies the rules for atan2, ldexp and hypot: defined over the
// reals, so complex operands are Unsupported, and boxed pairs only with
// boxed.
func nonComState(l, r dtype.Kind) State {
	switch {
	case l.IsBoxed() && r.IsBoxed():
		return Ready
	case l.IsBoxed() || r.IsBoxed():
		return Unsupported
	case l.IsComplex() || r.IsComplex():
		return Unsupported
	}

	return Ready
}
