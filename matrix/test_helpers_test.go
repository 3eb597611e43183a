// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/nashpoly/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for solver round-trips.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths in kernels.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}
