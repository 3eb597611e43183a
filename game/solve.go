// SPDX-License-Identifier: MIT

package game

import (
	"context"
	"fmt"
	"math/big"

	"github.com/katalvlaran/nashpoly/nash"
	"github.com/katalvlaran/nashpoly/polytope"
)

// Solution is everything Solve derives from a game.
type Solution struct {
	Game       *Game               `json:"-"`
	Delta      float64             `json:"shift"`
	PolyA      *polytope.Polytope  `json:"polytope_a"`
	PolyB      *polytope.Polytope  `json:"polytope_b"`
	Equilibria []*nash.Equilibrium `json:"equilibria"`
	Runs       []*nash.Run         `json:"lemke_howson"`
}

// Solve runs the full pipeline on g: shift, orient, build both polytopes,
// enumerate equilibria and simulate Lemke–Howson from every start label.
//
// Errors:
//   - ErrInvalidPayoff for a nil or malformed game.
//   - Errors of package polytope and nash, wrapped.
//   - ctx.Err() when ctx is done before the runs start.
func Solve(ctx context.Context, g *Game, opts ...Option) (*Solution, error) {
	if g == nil || g.A == nil || g.B == nil {
		return nil, gameErrorf("Solve", fmt.Errorf("nil game: %w", ErrInvalidPayoff))
	}
	if err := ctx.Err(); err != nil {
		return nil, gameErrorf("Solve", err)
	}
	o := gatherOptions(opts...)

	forA, forB, err := g.Oriented()
	if err != nil {
		return nil, gameErrorf("Solve", err)
	}
	pa, err := polytope.Build(forA, polytope.PlayerA, o.poly...)
	if err != nil {
		return nil, gameErrorf("Solve", err)
	}
	pb, err := polytope.Build(forB, polytope.PlayerB, o.poly...)
	if err != nil {
		return nil, gameErrorf("Solve", err)
	}

	eqs, err := nash.Enumerate(pa, pb, g.A, g.B)
	if err != nil {
		return nil, gameErrorf("Solve", err)
	}
	o.logger.Info("equilibria enumerated", "game", g.Name, "count", len(eqs))

	runs, err := nash.LemkeHowson(ctx, pa, pb, eqs, o.lh...)
	if err != nil {
		return nil, gameErrorf("Solve", err)
	}

	return &Solution{
		Game:       g,
		Delta:      g.Delta(),
		PolyA:      pa,
		PolyB:      pb,
		Equilibria: eqs,
		Runs:       runs,
	}, nil
}

// Strategies returns the mixed strategies (x for the row player, y for the
// column player) of eq.
func (s *Solution) Strategies(eq *nash.Equilibrium) (x, y []*big.Rat) {
	return s.PolyA.Vertices[eq.A].Normalized, s.PolyB.Vertices[eq.B].Normalized
}
