// SPDX-License-Identifier: MIT

package polytope

import "math"

// LabelVertices assigns game-theoretic labels to every vertex of a polytope
// owned by owner:
//
//   - a basis row i < M (an opponent payoff row held with equality) adds
//     label 1+i to the set of type owner;
//   - a coordinate with |x_j| ≤ ε (an unplayed own action) adds label 1+j
//     to the set of type owner.Other().
//
// Labels are 1-based. The previous labels of each vertex are replaced.
func LabelVertices(d *Descriptor, vertices []*Vertex, owner Player, opts ...Option) error {
	if err := d.Validate(); err != nil {
		return polytopeErrorf("LabelVertices", err)
	}
	o := gatherOptions(opts...)

	for _, v := range vertices {
		var own, other []int
		for _, i := range v.Basis.Ints() {
			if i < d.M {
				own = append(own, 1+i)
			}
		}
		for j, c := range v.X {
			if math.Abs(c) <= o.eps {
				other = append(other, 1+j)
			}
		}

		if owner == PlayerA {
			v.Labels = Labels{A: NewIndexSet(own...), B: NewIndexSet(other...)}
		} else {
			v.Labels = Labels{A: NewIndexSet(other...), B: NewIndexSet(own...)}
		}
	}

	return nil
}
