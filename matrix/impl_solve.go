// SPDX-License-Identifier: MIT

// Package matrix - LUP factorization and dense linear solves.
//
// Purpose:
//   - Solve the small square systems A·x = b produced by candidate vertex bases.
//   - Detect singular systems deterministically and report ErrSingular so the
//     caller can discard the candidate.
//
// Numeric policy:
//   - Partial pivoting: at step k the row with the largest |a(i,k)|, i ≥ k, is
//     swapped into place (first maximum wins, so ties are deterministic).
//   - A pivot with magnitude ≤ pivotTol (DefaultPivotTolerance) is treated as zero.
//
// Complexity quicksheet:
//   - LUP: O(n^3); LUPDecomposition.Solve: O(n^2); Solve = LUP + one solve.

package matrix

import (
	"fmt"
	"math"
)

// LUPDecomposition holds P·A = L·U packed into one n×n buffer.
// The strict lower triangle stores L (unit diagonal implied); the upper
// triangle including the diagonal stores U. perm[i] is the original row
// placed at position i.
type LUPDecomposition struct {
	n    int
	lu   []float64
	perm []int
}

// LUP factorizes the square matrix m with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare, copy m into a flat working buffer.
//   - Stage 2: Doolittle elimination column by column with row swaps.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (no pivot above tolerance).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Factorize once and call Solve repeatedly when several right-hand sides share A.
func LUP(m Matrix, opts ...Option) (*LUPDecomposition, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	// Stage 1: private working copy (never mutate the caller's matrix).
	lu := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(lu, d.data)
	} else {
		var v float64
		var err error
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opLUP, err)
				}
				lu[i*n+j] = v
			}
		}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 2: elimination.
	var i, j, k, p int
	var best, mag, pivot, f float64
	for k = 0; k < n; k++ {
		// choose pivot row p = argmax |lu[i,k]|, i>=k
		p, best = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if mag = math.Abs(lu[i*n+k]); mag > best {
				p, best = i, mag
			}
		}
		if best <= o.pivotTol {
			return nil, matrixErrorf(opLUP, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		pivot = lu[k*n+k]
		for i = k + 1; i < n; i++ {
			f = lu[i*n+k] / pivot
			lu[i*n+k] = f // store L multiplier in place
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= f * lu[k*n+j]
			}
		}
	}

	return &LUPDecomposition{n: n, lu: lu, perm: perm}, nil
}

// Solve returns x with A·x = b using the stored factors.
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: O(n^2).
func (d *LUPDecomposition) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, d.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := d.n
	x := make([]float64, n)

	// forward substitution: L·y = P·b (unit diagonal)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = b[d.perm[i]]
		for j = 0; j < i; j++ {
			sum -= d.lu[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// back substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= d.lu[i*n+j] * x[j]
		}
		x[i] = sum / d.lu[i*n+i]
	}

	return x, nil
}

// Solve solves the square system a·x = b in one call.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf (non-finite b),
//     ErrSingular (no unique solution under the pivot tolerance).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFiniteVec(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	lup, err := LUP(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return lup.Solve(b)
}
