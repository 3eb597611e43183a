// SPDX-License-Identifier: MIT

package nash

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/nashpoly/polytope"
)

// Equilibrium is one completely labeled vertex pair.
type Equilibrium struct {
	ID      int      `json:"id"`
	A       int      `json:"a"` // vertex ID in polytope A
	B       int      `json:"b"` // vertex ID in polytope B
	PayoffA *big.Rat `json:"payoff_a"`
	PayoffB *big.Rat `json:"payoff_b"`
}

// Label is a 1-based label together with its type.
type Label struct {
	Value int             `json:"value"`
	Type  polytope.Player `json:"type"`
}

// String renders the label as "a1", "b2", ...
func (l Label) String() string { return fmt.Sprintf("%s%d", l.Type, l.Value) }

// Step is one position of a Lemke–Howson walk: the current vertex in each
// polytope and the label dropped next. Drop is nil on the terminal step.
type Step struct {
	A    int    `json:"a"`
	B    int    `json:"b"`
	Drop *Label `json:"drop,omitempty"`
}

// TrailEdge identifies an edge of one of the two polytopes.
type TrailEdge struct {
	Owner polytope.Player `json:"owner"`
	Edge  int             `json:"edge"`
}

// Run is the result of one Lemke–Howson walk.
type Run struct {
	StartLabel int             `json:"start_label"`
	StartType  polytope.Player `json:"start_type"`
	Steps      []Step          `json:"steps"`
	// Trail lists the edges walked, in order.
	Trail       []TrailEdge  `json:"trail"`
	Equilibrium *Equilibrium `json:"equilibrium,omitempty"`
	Err         error        `json:"-"`
}

// Start returns the label the run began by dropping.
func (r *Run) Start() Label { return Label{Value: r.StartLabel, Type: r.StartType} }

// Labels returns the dropped labels in order.
func (r *Run) Labels() []Label {
	out := make([]Label, 0, len(r.Steps))
	for _, s := range r.Steps {
		if s.Drop != nil {
			out = append(out, *s.Drop)
		}
	}

	return out
}
