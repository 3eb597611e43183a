// SPDX-License-Identifier: MIT

package polytope

import "math"

// Adjacent reports whether u and v share at least dim-1 basis rows, the
// simple-polytope edge rule (bases differ in exactly one index).
// Complexity: O(dim · log dim).
func Adjacent(u, v *Vertex, dim int) bool {
	return u.Basis.IntersectLen(v.Basis) >= dim-1
}

// BuildEdges derives the skeleton graph of the polytope.
//
// Implementation:
//   - Stage 1: reset every Neighbors list.
//   - Stage 2: for each pair i<j in ID order, add an edge when Adjacent and
//     register it in both neighbor lists.
//
// Behavior highlights:
//   - Edge IDs and neighbor order follow the fixed i→j pair order, so two
//     builds from the same vertices agree exactly.
//
// Complexity:
//   - Time O(V^2 · dim), Space O(E).
func BuildEdges(vertices []*Vertex, dim int) []*Edge {
	for _, v := range vertices {
		v.Neighbors = nil
	}
	var edges []*Edge
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if !Adjacent(vertices[i], vertices[j], dim) {
				continue
			}
			e := &Edge{ID: len(edges), U: vertices[i].ID, V: vertices[j].ID}
			edges = append(edges, e)
			vertices[i].Neighbors = append(vertices[i].Neighbors, Neighbor{Vertex: vertices[j].ID, Edge: e.ID})
			vertices[j].Neighbors = append(vertices[j].Neighbors, Neighbor{Vertex: vertices[i].ID, Edge: e.ID})
		}
	}

	return edges
}

// BuildFacets groups vertices by the inequality they lie on.
//
// For dim ≥ 3 every row i yields the vertices with |A[i]·x - b[i]| ≤ ε,
// ordered by boundaryOrder; rows touching no vertex yield nothing. Below
// dimension 3 the only facet is the whole vertex set (Row -1), again in
// boundary order, which for a polygon is the polygon itself.
//
// The order is meaningful only for simple polytopes. On degenerate input a
// facet may not form one cycle; its order is then unspecified, but every
// member is still listed.
//
// Complexity: O(N · V · dim) for membership plus O(F · V^2 · dim) ordering.
func BuildFacets(d *Descriptor, vertices []*Vertex, opts ...Option) ([]*Facet, error) {
	if err := d.Validate(); err != nil {
		return nil, polytopeErrorf("BuildFacets", err)
	}
	o := gatherOptions(opts...)

	if d.Dim < 3 {
		if len(vertices) == 0 {
			return nil, nil
		}
		return []*Facet{{Row: -1, Vertices: boundaryOrder(vertices, d.Dim)}}, nil
	}

	var facets []*Facet
	for i := 0; i < d.N; i++ {
		row, err := d.A.Row(i)
		if err != nil {
			return nil, polytopeErrorf("BuildFacets", err)
		}
		var members []*Vertex
		for _, v := range vertices {
			lhs := 0.0
			for j := range row {
				lhs += row[j] * v.X[j]
			}
			if math.Abs(lhs-d.B[i]) <= o.eps {
				members = append(members, v)
			}
		}
		if len(members) == 0 {
			continue
		}
		facets = append(facets, &Facet{Row: i, Vertices: boundaryOrder(members, d.Dim)})
	}

	return facets, nil
}

// boundaryOrder walks members along edges: start at the first member and
// repeatedly step to the first unvisited adjacent member. When the walk gets
// stuck with members left (non-simple input) it restarts at the first
// unvisited one.
func boundaryOrder(members []*Vertex, dim int) []int {
	visited := make([]bool, len(members))
	order := make([]int, 0, len(members))
	cur := 0
	for len(order) < len(members) {
		visited[cur] = true
		order = append(order, members[cur].ID)

		nxt := -1
		for k := range members {
			if !visited[k] && Adjacent(members[cur], members[k], dim) {
				nxt = k
				break
			}
		}
		if nxt < 0 {
			for k := range members {
				if !visited[k] {
					nxt = k
					break
				}
			}
		}
		if nxt < 0 {
			break
		}
		cur = nxt
	}

	return order
}
