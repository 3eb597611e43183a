// SPDX-License-Identifier: MIT

package game

import (
	"fmt"

	"github.com/katalvlaran/nashpoly/matrix"
)

// Game is a two-player bimatrix game. A and B have the same m×n shape:
// rows are the row player's actions, columns the column player's.
type Game struct {
	Name string
	A    *matrix.Dense
	B    *matrix.Dense
}

// New builds a game from literal payoff rows.
// Errors: ErrInvalidPayoff (wrapping the matrix error when there is one).
func New(name string, a, b [][]float64) (*Game, error) {
	ma, err := matrix.NewFromRows(a)
	if err != nil {
		return nil, gameErrorf("New", fmt.Errorf("A: %w: %w", ErrInvalidPayoff, err))
	}
	mb, err := matrix.NewFromRows(b)
	if err != nil {
		return nil, gameErrorf("New", fmt.Errorf("B: %w: %w", ErrInvalidPayoff, err))
	}

	return NewFromPayoffs(name, ma, mb)
}

// NewFromPairs builds a game from a matrix of (a, b) payoff pairs.
func NewFromPairs(name string, pairs [][][2]float64) (*Game, error) {
	a := make([][]float64, len(pairs))
	b := make([][]float64, len(pairs))
	for i, row := range pairs {
		a[i] = make([]float64, len(row))
		b[i] = make([]float64, len(row))
		for j, p := range row {
			a[i][j], b[i][j] = p[0], p[1]
		}
	}

	return New(name, a, b)
}

// NewFromPayoffs wraps two existing matrices.
func NewFromPayoffs(name string, a, b *matrix.Dense) (*Game, error) {
	if a == nil || b == nil {
		return nil, gameErrorf("NewFromPayoffs", fmt.Errorf("nil matrix: %w", ErrInvalidPayoff))
	}
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc {
		return nil, gameErrorf("NewFromPayoffs", fmt.Errorf("A is %dx%d, B is %dx%d: %w", ar, ac, br, bc, ErrInvalidPayoff))
	}

	return &Game{Name: name, A: a, B: b}, nil
}

// Shape returns (m, n): the row player's and the column player's action counts.
func (g *Game) Shape() (m, n int) { return g.A.Shape() }

// Delta returns the common shift 1 - min(all entries of A and B).
func (g *Game) Delta() float64 {
	return 1 - min(g.A.Min(), g.B.Min())
}

// Oriented returns the two strictly positive matrices the polytopes are
// built from: transpose(B + δ) for player A and A + δ for player B.
func (g *Game) Oriented() (forA, forB *matrix.Dense, err error) {
	delta := g.Delta()
	sa, err := matrix.Shift(g.A, delta)
	if err != nil {
		return nil, nil, gameErrorf("Oriented", err)
	}
	sb, err := matrix.Shift(g.B, delta)
	if err != nil {
		return nil, nil, gameErrorf("Oriented", err)
	}
	forA, err = matrix.Transpose(sb)
	if err != nil {
		return nil, nil, gameErrorf("Oriented", err)
	}

	return forA, sa, nil
}

// Pairs returns the payoffs as a matrix of (a, b) pairs.
func (g *Game) Pairs() [][][2]float64 {
	ra, rb := g.A.RawRows(), g.B.RawRows()
	out := make([][][2]float64, len(ra))
	for i := range ra {
		out[i] = make([][2]float64, len(ra[i]))
		for j := range ra[i] {
			out[i][j] = [2]float64{ra[i][j], rb[i][j]}
		}
	}

	return out
}
