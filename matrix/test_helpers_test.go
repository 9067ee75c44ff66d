// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for dense and sparse storage.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (At) fallback paths.
type hide struct{ matrix.Matrix }

// mustDenseFrom ALLOCATES an r×c *Dense of kind from row-major values or
// fails the test.
func mustDenseFrom(tb testing.TB, kind dtype.Kind, r, c int, values ...any) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(kind, r, c, values)
	require.NoError(tb, err)

	return m
}
