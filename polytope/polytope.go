// SPDX-License-Identifier: MIT

package polytope

import (
	"math"

	"github.com/katalvlaran/nashpoly/matrix"
)

// Build derives the full best-response polytope of owner from an oriented,
// strictly positive payoff matrix (rows are the opponent's actions, columns
// are owner's actions).
//
// Errors: ErrNilPayoff, ErrNonPositivePayoff, plus anything from
// BuildFromDescriptor.
func Build(payoff *matrix.Dense, owner Player, opts ...Option) (*Polytope, error) {
	d, err := DescriptorFromPayoff(payoff)
	if err != nil {
		return nil, err
	}

	return BuildFromDescriptor(d, owner, opts...)
}

// BuildFromDescriptor runs the pipeline on an existing inequality system:
// EnumerateVertices → BuildEdges → BuildFacets → LabelVertices →
// NormalizeVertices.
//
// Complexity: dominated by vertex enumeration, C(N, n)·O(n^3).
func BuildFromDescriptor(d *Descriptor, owner Player, opts ...Option) (*Polytope, error) {
	o := gatherOptions(opts...)
	vertices, err := EnumerateVertices(d, opts...)
	if err != nil {
		return nil, err
	}
	edges := BuildEdges(vertices, d.Dim)
	facets, err := BuildFacets(d, vertices, opts...)
	if err != nil {
		return nil, err
	}
	if err = LabelVertices(d, vertices, owner, opts...); err != nil {
		return nil, err
	}
	NormalizeVertices(vertices, opts...)

	p := &Polytope{
		Owner:      owner,
		Descriptor: d,
		Vertices:   vertices,
		Edges:      edges,
		Facets:     facets,
		Dimension:  d.Dim,
		Zero:       zeroVertex(vertices, o.eps),
	}
	o.logger.Debug("polytope built",
		"owner", owner.String(), "vertices", len(vertices), "edges", len(edges), "facets", len(facets))

	return p, nil
}

func zeroVertex(vertices []*Vertex, eps float64) int {
	for _, v := range vertices {
		s := 0.0
		for _, c := range v.X {
			s += math.Abs(c)
		}
		if s <= eps {
			return v.ID
		}
	}

	return -1
}
