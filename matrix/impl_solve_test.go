// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/nashpoly/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
		b    []float64
		want []float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, []float64{3, 4}, []float64{3, 4}},
		{"needs pivot", [][]float64{{0, 1}, {1, 0}}, []float64{2, 5}, []float64{5, 2}},
		{"payoff basis", [][]float64{{2, 1}, {1, 2}}, []float64{1, 1}, []float64{1.0 / 3, 1.0 / 3}},
		{"mixed rows", [][]float64{{2, 1, 1}, {-1, 0, 0}, {1, 1, 3}}, []float64{1, 0, 1}, []float64{0, 1, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := MustRows(t, tc.a)
			x, err := matrix.Solve(a, tc.b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, x, tol)

			// the fallback read path must produce the same answer
			x2, err := matrix.Solve(hide{a}, tc.b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, x, x2, tol)

			// the input matrix is never mutated
			assert.Equal(t, tc.a, a.RawRows())
		})
	}
}

func TestSolveSingular(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Solve(a, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrSingular)

	// near-singular within a loose tolerance
	b := MustRows(t, [][]float64{{1, 1}, {1, 1 + 1e-9}})
	_, err = matrix.Solve(b, []float64{1, 1}, matrix.WithPivotTolerance(1e-6))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Solve(b, []float64{1, 1})
	require.NoError(t, err)
}

func TestSolveValidation(t *testing.T) {
	_, err := matrix.Solve(MustRows(t, [][]float64{{1, 2}}), []float64{1})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Solve(MustRows(t, [][]float64{{1}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.Panics(t, func() { matrix.WithPivotTolerance(-1) })
}

func TestLUPReuse(t *testing.T) {
	a := MustRows(t, [][]float64{{4, 3}, {6, 3}})
	lup, err := matrix.LUP(a)
	require.NoError(t, err)

	for _, b := range [][]float64{{10, 12}, {1, 0}, {0, 1}} {
		x, err := lup.Solve(b)
		require.NoError(t, err)
		back, err := matrix.MatVec(a, x)
		require.NoError(t, err)
		assert.InDeltaSlice(t, b, back, tol)
	}
}
