// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of internal Options to matrix_test ONLY.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf accordingly (tests will catch drift).

import "github.com/katalvlaran/lvnum/dtype"

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly   = panicEpsilonInvalid
	PanicIndexKindInvalid_TestOnly = panicIndexKindInvalid
)

// OptionsSnapshot is a stable, exported copy of Options.
type OptionsSnapshot struct {
	Eps            float64
	EpsSet         bool
	ValidateNaNInf bool
	IndexKind      dtype.IndexKind
	IndexKindSet   bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.eps,
		EpsSet:         o.epsSet,
		ValidateNaNInf: o.validateNaNInf,
		IndexKind:      o.indexKind,
		IndexKindSet:   o.indexKindSet,
	}
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// SameElementwiseTable_TestOnly reports whether two option sets share one
// cached element-wise table.
func SameElementwiseTable_TestOnly(a, b []Option) bool {
	return elementwiseTable(gatherOptions(a...)) == elementwiseTable(gatherOptions(b...))
}
