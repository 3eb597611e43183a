// SPDX-License-Identifier: MIT

package nash

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/nashpoly/matrix"
	"github.com/katalvlaran/nashpoly/polytope"
)

// Enumerate returns every Nash equilibrium of the game whose best-response
// polytopes are pa (owner A, over the row player's strategies) and pb (owner
// B, over the column player's strategies). payoffA and payoffB are the raw,
// unshifted m×n payoff matrices.
//
// Implementation:
//   - Stage 1: clear EquilibriumIDs on every vertex of both polytopes.
//   - Stage 2: for v in pa, w in pb (both skipping the zero vertex), in ID
//     order: a completely labeled pair is an equilibrium with the next ID.
//   - Stage 3: payoffs x·M·yᵀ in exact arithmetic on the normalized vertices.
//
// Errors:
//   - ErrNilPolytope, ErrPolytopeMismatch.
//
// Complexity:
//   - O(Va · Vb · N log N) label checks plus O(E · m · n) payoff products.
func Enumerate(pa, pb *polytope.Polytope, payoffA, payoffB *matrix.Dense) ([]*Equilibrium, error) {
	if err := checkPair(pa, pb); err != nil {
		return nil, nashErrorf("Enumerate", err)
	}
	m, n := pa.Dimension, pb.Dimension
	for _, pm := range []*matrix.Dense{payoffA, payoffB} {
		if pm == nil {
			return nil, nashErrorf("Enumerate", fmt.Errorf("nil payoff: %w", ErrPolytopeMismatch))
		}
		if r, c := pm.Shape(); r != m || c != n {
			return nil, nashErrorf("Enumerate", fmt.Errorf("payoff is %dx%d, polytopes are %dx%d: %w", r, c, m, n, ErrPolytopeMismatch))
		}
	}

	for _, p := range []*polytope.Polytope{pa, pb} {
		for _, v := range p.Vertices {
			v.EquilibriumIDs = nil
		}
	}

	ratA, ratB := toRat(payoffA), toRat(payoffB)
	total := pa.Descriptor.N
	var eqs []*Equilibrium
	for _, v := range pa.Vertices {
		if v.ID == pa.Zero || v.Normalized == nil {
			continue
		}
		for _, w := range pb.Vertices {
			if w.ID == pb.Zero || w.Normalized == nil {
				continue
			}
			if !completelyLabeled(v, w, total) {
				continue
			}
			eq := &Equilibrium{
				ID:      len(eqs),
				A:       v.ID,
				B:       w.ID,
				PayoffA: expected(v.Normalized, ratA, w.Normalized),
				PayoffB: expected(v.Normalized, ratB, w.Normalized),
			}
			eqs = append(eqs, eq)
			v.EquilibriumIDs = append(v.EquilibriumIDs, eq.ID)
			w.EquilibriumIDs = append(w.EquilibriumIDs, eq.ID)
		}
	}

	return eqs, nil
}

// completelyLabeled reports |v.A ∪ w.A| + |v.B ∪ w.B| == total.
func completelyLabeled(v, w *polytope.Vertex, total int) bool {
	return v.Labels.A.Union(w.Labels.A).Len()+v.Labels.B.Union(w.Labels.B).Len() == total
}

// checkPair verifies that pa and pb are the two halves of one game.
func checkPair(pa, pb *polytope.Polytope) error {
	if pa == nil || pb == nil || pa.Descriptor == nil || pb.Descriptor == nil {
		return ErrNilPolytope
	}
	if pa.Owner != polytope.PlayerA || pb.Owner != polytope.PlayerB {
		return fmt.Errorf("owners %s,%s: %w", pa.Owner, pb.Owner, ErrPolytopeMismatch)
	}
	if pa.Descriptor.N != pb.Descriptor.N {
		return fmt.Errorf("N=%d vs N=%d: %w", pa.Descriptor.N, pb.Descriptor.N, ErrPolytopeMismatch)
	}

	return nil
}

// toRat converts a payoff matrix exactly (every float64 is a dyadic rational).
func toRat(m *matrix.Dense) [][]*big.Rat {
	rows := m.RawRows()
	out := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			out[i][j] = new(big.Rat).SetFloat64(v)
		}
	}

	return out
}

// expected returns x·M·yᵀ.
func expected(x []*big.Rat, m [][]*big.Rat, y []*big.Rat) *big.Rat {
	sum := new(big.Rat)
	term := new(big.Rat)
	for i := range x {
		if x[i].Sign() == 0 {
			continue
		}
		for j := range y {
			term.Mul(x[i], m[i][j])
			term.Mul(term, y[j])
			sum.Add(sum, term)
		}
	}

	return sum
}
