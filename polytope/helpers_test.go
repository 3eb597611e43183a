// SPDX-License-Identifier: MIT

package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nashpoly/matrix"
	"github.com/katalvlaran/nashpoly/polytope"
)

const tol = 1e-9

// coordination is the shifted 2×2 coordination game I + J.
var coordination = [][]float64{{2, 1}, {1, 2}}

// cube is the shifted 3×3 coordination game; its polytope is a combinatorial cube.
var cube = [][]float64{{2, 1, 1}, {1, 2, 1}, {1, 1, 2}}

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustBuild(t testing.TB, rows [][]float64, owner polytope.Player) *polytope.Polytope {
	t.Helper()
	p, err := polytope.Build(mustDense(t, rows), owner)
	require.NoError(t, err)

	return p
}

// degenerateDescriptor has three inequalities tight at (1/2, 1/2):
// x+y ≤ 1, 2x ≤ 1, 2y ≤ 1, x ≥ 0, y ≥ 0.
func degenerateDescriptor(t testing.TB) *polytope.Descriptor {
	t.Helper()
	a := mustDense(t, [][]float64{{1, 1}, {2, 0}, {0, 2}, {-1, 0}, {0, -1}})
	d, err := polytope.NewDescriptor(a, []float64{1, 1, 1, 0, 0}, 3)
	require.NoError(t, err)

	return d
}
