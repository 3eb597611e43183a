// SPDX-License-Identifier: MIT

package polytope

import (
	"errors"
	"math"

	"github.com/katalvlaran/nashpoly/matrix"
)

// candidate is one feasible basic solution before merging.
type candidate struct {
	x     []float64
	basis IndexSet
}

// EnumerateVertices returns the deduplicated vertices of {x : A·x ≤ b}.
//
// Implementation:
//   - Stage 1: for every strictly increasing size-n row subset S, solve the
//     n×n system A[S]·x = b[S]. Singular systems are skipped.
//   - Stage 2: keep x when A[i]·x ≤ b[i] + ε for every row i.
//   - Stage 3: merge candidates whose L1 distance is ≤ ε; the survivor's
//     basis becomes the union of both bases.
//
// Behavior highlights:
//   - Vertex IDs follow discovery order (lexicographic order of the first
//     basis that produced them).
//   - A merged basis larger than n marks a degenerate vertex; it is logged
//     at warn level and kept with the union basis.
//   - No feasible vertex yields an empty slice, not an error.
//
// Errors:
//   - ErrMalformedDescriptor for an invalid descriptor.
//
// Complexity:
//   - C(N, n) solves of O(n^3) plus O(N·n) feasibility checks, then O(V^2·n) merging.
func EnumerateVertices(d *Descriptor, opts ...Option) ([]*Vertex, error) {
	if err := d.Validate(); err != nil {
		return nil, polytopeErrorf("EnumerateVertices", err)
	}
	o := gatherOptions(opts...)

	cols := make([]int, d.Dim)
	for j := range cols {
		cols[j] = j
	}
	rhs := make([]float64, d.Dim)

	var found []candidate
	var singular, infeasible int
	for cur, ok := newBasisCursor(d.N, d.Dim); ok; cur, ok = cur.next() {
		rows := cur.rows()
		sys, err := d.A.Induced(rows, cols)
		if err != nil {
			return nil, polytopeErrorf("EnumerateVertices", err)
		}
		for i, r := range rows {
			rhs[i] = d.B[r]
		}
		x, err := matrix.Solve(sys, rhs, o.solver...)
		if errors.Is(err, matrix.ErrSingular) {
			singular++
			continue
		}
		if err != nil {
			return nil, polytopeErrorf("EnumerateVertices", err)
		}
		feasible, err := d.Feasible(x, o.eps)
		if err != nil {
			return nil, polytopeErrorf("EnumerateVertices", err)
		}
		if !feasible {
			infeasible++
			continue
		}
		found = append(found, candidate{x: x, basis: NewIndexSet(rows...)})
	}
	o.logger.Debug("basis scan finished",
		"rows", d.N, "dim", d.Dim,
		"feasible", len(found), "singular", singular, "infeasible", infeasible)

	return mergeCoincident(found, d.Dim, o), nil
}

// mergeCoincident collapses candidates closer than eps (L1) into one vertex
// with the union basis, preserving discovery order of the survivors.
func mergeCoincident(found []candidate, dim int, o Options) []*Vertex {
	removed := make([]bool, len(found))
	for i := 0; i < len(found); i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(found); j++ {
			if removed[j] {
				continue
			}
			if l1Distance(found[i].x, found[j].x) <= o.eps {
				found[i].basis = found[i].basis.Union(found[j].basis)
				removed[j] = true
			}
		}
	}

	vertices := make([]*Vertex, 0, len(found))
	for i, c := range found {
		if removed[i] {
			continue
		}
		v := &Vertex{ID: len(vertices), X: cleanZeros(c.x, o.eps), Basis: c.basis}
		if v.Degenerate(dim) {
			o.logger.Warn("degenerate vertex", "id", v.ID, "x", v.X, "basis", v.Basis.String(), "dim", dim)
		}
		vertices = append(vertices, v)
	}

	return vertices
}

// cleanZeros snaps |x_j| ≤ eps to exactly 0 so -0 and 1e-17 noise do not
// leak into coordinates.
func cleanZeros(x []float64, eps float64) []float64 {
	for j, v := range x {
		if math.Abs(v) <= eps {
			x[j] = 0
		}
	}

	return x
}

func l1Distance(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += math.Abs(a[i] - b[i])
	}

	return s
}
