// SPDX-License-Identifier: MIT

package game_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nashpoly/game"
	"github.com/katalvlaran/nashpoly/matrix"
)

func TestNew(t *testing.T) {
	g, err := game.New("bos", [][]float64{{3, 0}, {0, 2}}, [][]float64{{2, 0}, {0, 3}})
	require.NoError(t, err)

	m, n := g.Shape()
	assert.Equal(t, 2, m)
	assert.Equal(t, 2, n)
	assert.Equal(t, "bos", g.Name)
	assert.Equal(t, [][][2]float64{{{3, 2}, {0, 0}}, {{0, 0}, {2, 3}}}, g.Pairs())
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name string
		a, b [][]float64
	}{
		{"empty", nil, nil},
		{"ragged", [][]float64{{1, 2}, {3}}, [][]float64{{1, 2}, {3, 4}}},
		{"shape mismatch", [][]float64{{1, 2}}, [][]float64{{1}, {2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := game.New("", tc.a, tc.b)
			require.ErrorIs(t, err, game.ErrInvalidPayoff)
		})
	}

	_, err := game.New("", [][]float64{{1, 2}, {3}}, [][]float64{{1}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = game.NewFromPayoffs("", nil, nil)
	require.ErrorIs(t, err, game.ErrInvalidPayoff)
}

func TestOriented(t *testing.T) {
	g, err := game.New("", [][]float64{{3, 0}, {0, 2}}, [][]float64{{2, 0}, {0, 3}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.Delta())

	forA, forB, err := g.Oriented()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1}, {1, 4}}, forA.RawRows())
	assert.Equal(t, [][]float64{{4, 1}, {1, 3}}, forB.RawRows())

	// the raw matrices are left alone
	assert.Equal(t, [][]float64{{3, 0}, {0, 2}}, g.A.RawRows())

	neg, err := game.New("", [][]float64{{-3, 1}}, [][]float64{{0, 2}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, neg.Delta())
	_, forB, err = neg.Oriented()
	require.NoError(t, err)
	assert.Equal(t, 1.0, forB.Min())
}

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantName string
		wantA    [][]float64
		wantB    [][]float64
	}{
		{
			name:  "pairs",
			in:    `[[[1, 1], [0, 0]], [[0, 0], [1, 1]]]`,
			wantA: [][]float64{{1, 0}, {0, 1}},
			wantB: [][]float64{{1, 0}, {0, 1}},
		},
		{
			name:     "matrices",
			in:       `{"name": "Battle", "A": [[3, 0], [0, 2]], "B": [[2, 0], [0, 3]]}`,
			wantName: "Battle",
			wantA:    [][]float64{{3, 0}, {0, 2}},
			wantB:    [][]float64{{2, 0}, {0, 3}},
		},
		{
			name:     "named pairs",
			in:       ` {"name": "Pennies", "payoff": [[[1, -1], [-1, 1]], [[-1, 1], [1, -1]]]}`,
			wantName: "Pennies",
			wantA:    [][]float64{{1, -1}, {-1, 1}},
			wantB:    [][]float64{{-1, 1}, {1, -1}},
		},
		{
			name:  "rectangular",
			in:    `{"A": [[1, 0, 2], [0, 2, 1]], "B": [[2, 1, 0], [0, 1, 3]]}`,
			wantA: [][]float64{{1, 0, 2}, {0, 2, 1}},
			wantB: [][]float64{{2, 1, 0}, {0, 1, 3}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := game.ParseJSON([]byte(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, g.Name)
			assert.Equal(t, tc.wantA, g.A.RawRows())
			assert.Equal(t, tc.wantB, g.B.RawRows())
		})
	}
}

func TestParseJSONRejects(t *testing.T) {
	for _, in := range []string{
		``,
		`   `,
		`{`,
		`{"name": "nothing"}`,
		`[]`,
		`{"A": [[1, 2]], "B": [[1]]}`,
		`{"A": [[1, 2]]}`,
		`[[[1, 1], [0, 0]], [[0, 0]]]`,
		`"text"`,
	} {
		_, err := game.ParseJSON([]byte(in))
		require.ErrorIs(t, err, game.ErrInvalidPayoff, "input %q", in)
	}
}

func TestGameMarshalJSON(t *testing.T) {
	g, err := game.New("Coordination", [][]float64{{1, 0}, {0, 1}}, [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	raw, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Coordination", "A": [[1, 0], [0, 1]], "B": [[1, 0], [0, 1]]}`, string(raw))

	back, err := game.ParseJSON(raw)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(g.A, back.A, 0))
	assert.True(t, matrix.Equal(g.B, back.B, 0))
}

func TestLoadFile(t *testing.T) {
	_, err := game.LoadFile("testdata/missing.json")
	require.Error(t, err)

	g, err := game.LoadFile("testdata/bos.json")
	require.NoError(t, err)
	assert.Equal(t, "Battle of the sexes", g.Name)
}
