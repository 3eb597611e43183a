// SPDX-License-Identifier: MIT

package nash_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nashpoly/nash"
	"github.com/katalvlaran/nashpoly/polytope"
)

func TestLemkeHowsonCoordinationPath(t *testing.T) {
	f := prepare(t, identity2, identity2)
	eqs := f.enumerate(t)

	runs, err := nash.LemkeHowson(context.Background(), f.pa, f.pb, eqs)
	require.NoError(t, err)
	require.Len(t, runs, 4)

	wantStarts := []string{"a1", "a2", "b1", "b2"}
	wantEq := []int{1, 2, 1, 2}
	for i, r := range runs {
		require.NoError(t, r.Err, "run %s", wantStarts[i])
		assert.Equal(t, wantStarts[i], r.Start().String())
		require.NotNil(t, r.Equilibrium)
		assert.Equal(t, wantEq[i], r.Equilibrium.ID, "run %s", wantStarts[i])
		assert.Nil(t, r.Steps[len(r.Steps)-1].Drop)
	}

	// a1: drop a1 in B (origin → (1/2,0)), duplicate b1, drop it in A
	a1 := runs[0]
	assert.Equal(t, []nash.Step{
		{A: 3, B: 3, Drop: &nash.Label{Value: 1, Type: polytope.PlayerA}},
		{A: 3, B: 1, Drop: &nash.Label{Value: 1, Type: polytope.PlayerB}},
		{A: 1, B: 1},
	}, a1.Steps)
	assert.Equal(t, []nash.TrailEdge{
		{Owner: polytope.PlayerB, Edge: 2},
		{Owner: polytope.PlayerA, Edge: 2},
	}, a1.Trail)
	assert.Equal(t, []string{"a1", "b1"}, labelStrings(a1.Labels()))
}

func TestLemkeHowsonTerminatesInEnumeratedSet(t *testing.T) {
	games := []struct {
		name string
		a, b [][]float64
	}{
		{"coordination 3x3", identity3, identity3},
		{"battle of the sexes", bosA, bosB},
		{"matching pennies", [][]float64{{1, -1}, {-1, 1}}, [][]float64{{-1, 1}, {1, -1}}},
		{"rectangular", [][]float64{{1, 0, 2}, {0, 2, 1}}, [][]float64{{2, 1, 0}, {0, 1, 3}}},
		{"3x2", [][]float64{{3, 3}, {2, 5}, {0, 6}}, [][]float64{{3, 2}, {2, 6}, {3, 1}}},
	}
	for _, tc := range games {
		t.Run(tc.name, func(t *testing.T) {
			f := prepare(t, tc.a, tc.b)
			eqs := f.enumerate(t)
			require.NotEmpty(t, eqs)

			runs, err := nash.LemkeHowson(context.Background(), f.pa, f.pb, eqs, nash.WithParallelism(2))
			require.NoError(t, err)
			assert.Len(t, runs, f.pa.Dimension+f.pb.Dimension)
			for _, r := range runs {
				require.NoError(t, r.Err, "start %s", r.Start())
				require.NotNil(t, r.Equilibrium)
				assert.Contains(t, eqs, r.Equilibrium)
				assert.Len(t, r.Trail, len(r.Steps)-1)
			}
		})
	}
}

func TestLemkeHowsonDisconnectedHitsCap(t *testing.T) {
	f := prepare(t, identity2, identity2)
	eqs := f.enumerate(t)
	for _, v := range f.pb.Vertices {
		v.Neighbors = nil
	}

	runs, err := nash.LemkeHowson(context.Background(), f.pa, f.pb, eqs, nash.WithMaxSteps(25))
	require.NoError(t, err)

	// type A starts stall in B at once
	for _, r := range runs[:2] {
		require.ErrorIs(t, r.Err, nash.ErrNonTermination)
		assert.Nil(t, r.Equilibrium)
		assert.Len(t, r.Steps, 1)
		assert.Empty(t, r.Trail)
	}
	// type B starts make one move in A, then stall in B
	for _, r := range runs[2:] {
		require.ErrorIs(t, r.Err, nash.ErrNonTermination)
		assert.Len(t, r.Steps, 2)
	}

	failed, unexpected := nash.Failed(runs)
	assert.Len(t, failed, 4)
	assert.False(t, unexpected)
}

func TestLemkeHowsonEquilibriumMismatch(t *testing.T) {
	f := prepare(t, identity2, identity2)
	var buf bytes.Buffer

	runs, err := nash.LemkeHowson(context.Background(), f.pa, f.pb, nil, nash.WithLogger(log.New(&buf)))
	require.NoError(t, err)
	for _, r := range runs {
		require.ErrorIs(t, r.Err, nash.ErrEquilibriumMismatch)
	}
	assert.Contains(t, buf.String(), "lemke-howson run failed")

	_, unexpected := nash.Failed(runs)
	assert.True(t, unexpected)
}

func TestLemkeHowsonCancelled(t *testing.T) {
	f := prepare(t, identity2, identity2)
	eqs := f.enumerate(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs, err := nash.LemkeHowson(ctx, f.pa, f.pb, eqs)
	require.NoError(t, err)
	for _, r := range runs {
		require.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestSimulate(t *testing.T) {
	f := prepare(t, bosA, bosB)
	eqs := f.enumerate(t)

	r := nash.Simulate(context.Background(), f.pa, f.pb, eqs, nash.Label{Value: 2, Type: polytope.PlayerB})
	require.NoError(t, r.Err)
	require.NotNil(t, r.Equilibrium)

	r = nash.Simulate(context.Background(), f.pa, f.pb, eqs, nash.Label{Value: 3, Type: polytope.PlayerA})
	require.ErrorIs(t, r.Err, nash.ErrInvalidStartLabel)
	r = nash.Simulate(context.Background(), f.pa, f.pb, eqs, nash.Label{Value: 0, Type: polytope.PlayerB})
	require.ErrorIs(t, r.Err, nash.ErrInvalidStartLabel)

	r = nash.Simulate(context.Background(), f.pa, nil, eqs, nash.Label{Value: 1})
	require.ErrorIs(t, r.Err, nash.ErrNilPolytope)
}

func TestLemkeHowsonRejectsInput(t *testing.T) {
	f := prepare(t, identity2, identity2)

	_, err := nash.LemkeHowson(context.Background(), f.pb, f.pa, nil)
	require.ErrorIs(t, err, nash.ErrPolytopeMismatch)

	f.pa.Zero = -1
	_, err = nash.LemkeHowson(context.Background(), f.pa, f.pb, nil)
	require.ErrorIs(t, err, nash.ErrNoZeroVertex)
}

func TestEdgeIndex(t *testing.T) {
	f := prepare(t, identity2, identity2)
	eqs := f.enumerate(t)
	runs, err := nash.LemkeHowson(context.Background(), f.pa, f.pb, eqs)
	require.NoError(t, err)

	idx := nash.EdgeIndex(runs)
	assert.Equal(t, map[nash.TrailEdge][]int{
		{Owner: polytope.PlayerA, Edge: 2}: {0, 2},
		{Owner: polytope.PlayerB, Edge: 2}: {0, 2},
		{Owner: polytope.PlayerA, Edge: 3}: {1, 3},
		{Owner: polytope.PlayerB, Edge: 3}: {1, 3},
	}, idx)
	assert.Empty(t, nash.EdgeIndex(nil))
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { nash.WithMaxSteps(0) })
	assert.Panics(t, func() { nash.WithParallelism(-1) })
}

func labelStrings(ls []nash.Label) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}

	return out
}
