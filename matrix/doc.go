// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra layer used by the
// polytope and equilibrium code.
//
// The package offers:
//
//   - Dense, a fixed-shape row-major float64 matrix. The shape is validated at
//     construction and never changes; At/Set return sentinel errors instead of
//     panicking on bad indices or non-finite values.
//   - Kernels: Mul, Transpose, MatVec, Dot, Stack, Shift.
//   - A linear solver (LUP factorization with partial pivoting) that reports
//     singular systems through ErrSingular.
//
// Matrices here are tiny (a payoff table, an n×n basis system), so the code
// favours determinism and explicit validation over raw throughput. Every loop
// visits cells in fixed i→j order; there is no hidden state and no map
// iteration.
//
// Errors are package sentinels (see errors.go); match them with errors.Is.
package matrix
