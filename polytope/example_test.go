// SPDX-License-Identifier: MIT

package polytope_test

import (
	"fmt"

	"github.com/katalvlaran/nashpoly/matrix"
	"github.com/katalvlaran/nashpoly/polytope"
)

// ExampleBuild derives the best-response polytope of the shifted 2×2
// coordination game and prints each vertex with its labels and mixed strategy.
func ExampleBuild() {
	payoff, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 2}})
	p, err := polytope.Build(payoff, polytope.PlayerA)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, v := range p.Vertices {
		mix := "-"
		if v.Normalized != nil {
			mix = fmt.Sprintf("%s,%s", v.Normalized[0].RatString(), v.Normalized[1].RatString())
		}
		fmt.Printf("v%d basis=%s a=%s b=%s mix=%s\n", v.ID, v.Basis, v.Labels.A, v.Labels.B, mix)
	}
	fmt.Println("edges:", len(p.Edges), "zero:", p.Zero)
	// Output:
	// v0 basis={0,1} a={1,2} b={} mix=1/2,1/2
	// v1 basis={0,3} a={1} b={2} mix=1,0
	// v2 basis={1,2} a={2} b={1} mix=0,1
	// v3 basis={2,3} a={} b={1,2} mix=-
	// edges: 4 zero: 3
}
