// SPDX-License-Identifier: MIT

// Package nash finds the Nash equilibria of a bimatrix game from the two
// labeled best-response polytopes built by package polytope, and replays the
// Lemke–Howson pivoting path for every starting label.
//
// What
//
//   - Enumerate: every pair of non-zero vertices (v in polytope A, w in
//     polytope B) that is completely labeled,
//     |v.A ∪ w.A| + |v.B ∪ w.B| == N, is an equilibrium. Expected payoffs
//     are computed exactly (math/big) from the raw payoff matrices.
//   - Simulate / LemkeHowson: the complementary pivoting walk that starts at
//     both origins, drops one label and alternates between the two skeleton
//     graphs until no label is duplicated.
//   - EdgeIndex: which runs traversed which edge, derived from the runs'
//     own trails.
//
// Labels
//
//	Type A labels are the column player's actions (1..n) and type B labels
//	the row player's actions (1..m). Polytope A carries type A labels on its
//	payoff rows and type B labels on its zero coordinates; polytope B the
//	other way round. Consequently a type A start label is first dropped in
//	polytope B and a type B start label in polytope A.
//
// Concurrency
//
//	LemkeHowson fans the m+n runs out over an errgroup (WithParallelism).
//	Runs only read the polytopes; each one writes its own *Run. A failing
//	run records its error in Run.Err and never stops the others.
//
// Limitations
//
//	Degenerate games are not handled specially: a merged vertex may carry
//	more labels than expected, a walk may stall, and a run may then end in
//	ErrNonTermination after WithMaxSteps iterations.
package nash
