// SPDX-License-Identifier: MIT

// Package polytope builds the best-response polytope of one player of a
// bimatrix game and derives everything the equilibrium layer needs from it.
//
// A polytope is described by inequalities A·x ≤ b (see Descriptor). For a
// strictly positive M×n payoff matrix P the best-response polytope is
//
//	{ x ∈ ℝⁿ : P·x ≤ 1, x ≥ 0 }
//
// so rows 0..M-1 are the opponent's payoff rows and rows M..M+n-1 encode
// own non-negativity (-x_j ≤ 0).
//
// Build runs the fixed pipeline
//
//	EnumerateVertices → BuildEdges → BuildFacets → LabelVertices → NormalizeVertices
//
// and returns an immutable *Polytope. Each stage is also exported on its own.
//
// Vertices are found by brute force over every size-n subset of rows taken
// as equalities (exponential in M+n, fine for the small games this package
// targets). Coincident solutions are merged; a merged vertex whose basis
// grows beyond n is degenerate, which is logged and otherwise tolerated.
//
// After Build returns, the polytope is read-only. Equilibrium enumeration
// may append to Vertex.EquilibriumIDs; nothing else writes to it, so any
// number of goroutines may walk the skeleton concurrently.
package polytope
