// SPDX-License-Identifier: MIT

// Package game holds bimatrix games and runs the whole equilibrium pipeline
// on them.
//
// A Game is a pair of m×n payoff matrices: A for the row player, B for the
// column player. Solve
//
//  1. shifts every entry of both matrices by 1 - min(all entries), so each
//     payoff is at least 1 and the origin lies strictly inside both
//     best-response polytopes;
//  2. builds polytope A over transpose(shifted B) and polytope B over
//     shifted A;
//  3. enumerates the equilibria, with payoffs taken from the raw matrices;
//  4. runs Lemke–Howson from every start label.
//
// Games come from three places: New / NewFromPayoffs, ParseJSON (the input
// formats of the interactive visualizer) and the embedded example Catalog.
package game
