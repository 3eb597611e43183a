// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"
	"math/big"
)

// Player identifies one side of a bimatrix game. It doubles as the label
// type: labels of type A and labels of type B.
type Player uint8

const (
	// PlayerA is the row player.
	PlayerA Player = iota
	// PlayerB is the column player.
	PlayerB
)

// Other returns the opponent.
func (p Player) Other() Player {
	if p == PlayerA {
		return PlayerB
	}

	return PlayerA
}

// String returns "a" or "b".
func (p Player) String() string {
	if p == PlayerA {
		return "a"
	}

	return "b"
}

// MarshalText encodes the player as "a"/"b".
func (p Player) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText accepts "a"/"A" and "b"/"B".
func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "a", "A":
		*p = PlayerA
	case "b", "B":
		*p = PlayerB
	default:
		return fmt.Errorf("polytope: unknown player %q", text)
	}

	return nil
}

// Labels holds the two label sets of a vertex.
type Labels struct {
	A IndexSet `json:"a"`
	B IndexSet `json:"b"`
}

// Of returns the label set of type p.
func (l Labels) Of(p Player) IndexSet {
	if p == PlayerA {
		return l.A
	}

	return l.B
}

// Len returns |A| + |B|.
func (l Labels) Len() int { return l.A.Len() + l.B.Len() }

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	Vertex int `json:"vertex"` // neighbor vertex ID
	Edge   int `json:"edge"`   // connecting edge ID
}

// Vertex is a vertex of a polytope.
//
// Basis holds the rows tight at X (|Basis| ≥ n, = n unless degenerate).
// Normalized is X scaled to sum 1 in exact arithmetic; nil at the origin.
type Vertex struct {
	ID             int        `json:"id"`
	X              []float64  `json:"x"`
	Basis          IndexSet   `json:"basis"`
	Labels         Labels     `json:"labels"`
	Neighbors      []Neighbor `json:"neighbors"`
	Normalized     []*big.Rat `json:"normalized,omitempty"`
	EquilibriumIDs []int      `json:"equilibria,omitempty"`
}

// Degenerate reports whether the merged basis exceeds the dimension.
func (v *Vertex) Degenerate(dim int) bool { return v.Basis.Len() > dim }

// Edge joins two vertices whose bases share at least n-1 rows. U < V.
type Edge struct {
	ID int `json:"id"`
	U  int `json:"u"`
	V  int `json:"v"`
}

// Other returns the endpoint opposite to id.
func (e *Edge) Other(id int) int {
	if e.U == id {
		return e.V
	}

	return e.U
}

// Facet lists the vertices lying on one inequality, in boundary order.
// Row is -1 for the single whole-set facet produced in dimension < 3.
type Facet struct {
	Row      int   `json:"row"`
	Vertices []int `json:"vertices"`
}

// Polytope is the fully derived best-response polytope of one player.
type Polytope struct {
	Owner      Player      `json:"owner"`
	Descriptor *Descriptor `json:"-"`
	Vertices   []*Vertex   `json:"vertices"`
	Edges      []*Edge     `json:"edges"`
	Facets     []*Facet    `json:"facets"`
	Dimension  int         `json:"dimension"`
	// Zero is the ID of the all-zero vertex, -1 if the descriptor has none.
	Zero int `json:"zero"`
}

// Vertex returns the vertex with the given ID.
func (p *Polytope) Vertex(id int) (*Vertex, error) {
	if id < 0 || id >= len(p.Vertices) {
		return nil, polytopeErrorf(fmt.Sprintf("Vertex(%d)", id), ErrUnknownVertex)
	}

	return p.Vertices[id], nil
}

// ZeroVertex returns the all-zero vertex, or nil when there is none.
func (p *Polytope) ZeroVertex() *Vertex {
	if p.Zero < 0 {
		return nil
	}

	return p.Vertices[p.Zero]
}

// Extent returns the largest vertex coordinate. Renderers divide by it to
// fit the polytope into the unit box; 0 for a polytope with only the origin.
func (p *Polytope) Extent() float64 {
	hi := 0.0
	for _, v := range p.Vertices {
		for _, c := range v.X {
			if c > hi {
				hi = c
			}
		}
	}

	return hi
}
