// SPDX-License-Identifier: MIT

package nash_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nashpoly/matrix"
	"github.com/katalvlaran/nashpoly/nash"
	"github.com/katalvlaran/nashpoly/polytope"
)

func ratStrings(rs []*big.Rat) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.RatString()
	}

	return out
}

func TestEnumerateCoordination(t *testing.T) {
	f := prepare(t, identity2, identity2)
	eqs := f.enumerate(t)
	require.Len(t, eqs, 3)

	want := []struct {
		x, y   []string
		payoff string
	}{
		{[]string{"1/2", "1/2"}, []string{"1/2", "1/2"}, "1/2"},
		{[]string{"1", "0"}, []string{"1", "0"}, "1"},
		{[]string{"0", "1"}, []string{"0", "1"}, "1"},
	}
	for i, w := range want {
		eq := eqs[i]
		assert.Equal(t, i, eq.ID)
		assert.Equal(t, w.x, ratStrings(f.pa.Vertices[eq.A].Normalized), "eq %d x", i)
		assert.Equal(t, w.y, ratStrings(f.pb.Vertices[eq.B].Normalized), "eq %d y", i)
		assert.Equal(t, w.payoff, eq.PayoffA.RatString())
		assert.Equal(t, w.payoff, eq.PayoffB.RatString())
	}
}

func TestEnumerateBattleOfTheSexes(t *testing.T) {
	f := prepare(t, bosA, bosB)
	eqs := f.enumerate(t)
	require.Len(t, eqs, 3)

	got := make([][2]string, len(eqs))
	for i, eq := range eqs {
		got[i] = [2]string{eq.PayoffA.RatString(), eq.PayoffB.RatString()}
	}
	assert.Equal(t, [][2]string{{"6/5", "6/5"}, {"3", "2"}, {"2", "3"}}, got)
	assert.Equal(t, []string{"3/5", "2/5"}, ratStrings(f.pa.Vertices[eqs[0].A].Normalized))
	assert.Equal(t, []string{"2/5", "3/5"}, ratStrings(f.pb.Vertices[eqs[0].B].Normalized))
}

func TestEnumeratePayoffsRecompute(t *testing.T) {
	a := [][]float64{{3, 1, 2}, {0, 2, 4}}
	b := [][]float64{{1, 3, 0}, {2, 1, 3}}
	f := prepare(t, a, b)
	eqs := f.enumerate(t)
	require.NotEmpty(t, eqs)

	for _, eq := range eqs {
		x := floats(f.pa.Vertices[eq.A].Normalized)
		y := floats(f.pb.Vertices[eq.B].Normalized)
		pa, _ := eq.PayoffA.Float64()
		pb, _ := eq.PayoffB.Float64()
		assert.InDelta(t, bilinear(x, a, y), pa, 1e-6)
		assert.InDelta(t, bilinear(x, b, y), pb, 1e-6)
	}
}

func TestEnumerateSkipsZeroAndTagsVertices(t *testing.T) {
	f := prepare(t, identity3, identity3)
	eqs := f.enumerate(t)

	// every non-empty common support is an equilibrium
	require.Len(t, eqs, 7)
	for _, eq := range eqs {
		assert.NotEqual(t, f.pa.Zero, eq.A)
		assert.NotEqual(t, f.pb.Zero, eq.B)
		assert.Contains(t, f.pa.Vertices[eq.A].EquilibriumIDs, eq.ID)
		assert.Contains(t, f.pb.Vertices[eq.B].EquilibriumIDs, eq.ID)
	}
	assert.Empty(t, f.pa.ZeroVertex().EquilibriumIDs)

	// a second call resets the tags instead of accumulating them
	again := f.enumerate(t)
	require.Len(t, again, 7)
	for _, v := range f.pa.Vertices {
		assert.LessOrEqual(t, len(v.EquilibriumIDs), 1)
	}
}

func TestEnumerateRejectsMismatch(t *testing.T) {
	f := prepare(t, identity2, identity2)
	g := prepare(t, identity3, identity3)

	_, err := nash.Enumerate(f.pa, g.pb, f.a, f.b)
	require.ErrorIs(t, err, nash.ErrPolytopeMismatch)

	_, err = nash.Enumerate(f.pb, f.pa, f.a, f.b)
	require.ErrorIs(t, err, nash.ErrPolytopeMismatch)

	_, err = nash.Enumerate(f.pa, f.pb, g.a, f.b)
	require.ErrorIs(t, err, nash.ErrPolytopeMismatch)

	_, err = nash.Enumerate(nil, f.pb, f.a, f.b)
	require.ErrorIs(t, err, nash.ErrNilPolytope)
}

func TestEnumerateRectangular(t *testing.T) {
	// 2×3: row player has 2 actions, column player 3
	f := prepare(t, [][]float64{{1, 0, 2}, {0, 2, 1}}, [][]float64{{2, 1, 0}, {0, 1, 3}})
	assert.Equal(t, 2, f.pa.Dimension)
	assert.Equal(t, 3, f.pb.Dimension)
	assert.Equal(t, polytope.PlayerA, f.pa.Owner)

	eqs := f.enumerate(t)
	require.NotEmpty(t, eqs)
	for _, eq := range eqs {
		assert.Len(t, f.pa.Vertices[eq.A].Normalized, 2)
		assert.Len(t, f.pb.Vertices[eq.B].Normalized, 3)
	}
}

func floats(rs []*big.Rat) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i], _ = r.Float64()
	}

	return out
}

func bilinear(x []float64, m [][]float64, y []float64) float64 {
	mx, _ := matrix.NewFromRows(m)
	my, _ := matrix.MatVec(mx, y)
	v, _ := matrix.Dot(x, my)

	return v
}
