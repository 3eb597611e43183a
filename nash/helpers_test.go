// SPDX-License-Identifier: MIT

package nash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nashpoly/matrix"
	"github.com/katalvlaran/nashpoly/nash"
	"github.com/katalvlaran/nashpoly/polytope"
)

// fixture is a game prepared the way the solver pipeline prepares it.
type fixture struct {
	a, b   *matrix.Dense
	pa, pb *polytope.Polytope
}

// prepare shifts both matrices by 1 - min, orients them and builds the
// two polytopes: polytope A over transpose(B), polytope B over A.
func prepare(t testing.TB, a, b [][]float64) *fixture {
	t.Helper()
	ma, err := matrix.NewFromRows(a)
	require.NoError(t, err)
	mb, err := matrix.NewFromRows(b)
	require.NoError(t, err)

	delta := 1 - min(ma.Min(), mb.Min())
	sa, err := matrix.Shift(ma, delta)
	require.NoError(t, err)
	sb, err := matrix.Shift(mb, delta)
	require.NoError(t, err)
	sbT, err := matrix.Transpose(sb)
	require.NoError(t, err)

	pa, err := polytope.Build(sbT, polytope.PlayerA)
	require.NoError(t, err)
	pb, err := polytope.Build(sa, polytope.PlayerB)
	require.NoError(t, err)

	return &fixture{a: ma, b: mb, pa: pa, pb: pb}
}

func (f *fixture) enumerate(t testing.TB) []*nash.Equilibrium {
	t.Helper()
	eqs, err := nash.Enumerate(f.pa, f.pb, f.a, f.b)
	require.NoError(t, err)

	return eqs
}

var (
	identity2 = [][]float64{{1, 0}, {0, 1}}
	identity3 = [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	bosA = [][]float64{{3, 0}, {0, 2}}
	bosB = [][]float64{{2, 0}, {0, 3}}
)
