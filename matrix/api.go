// SPDX-License-Identifier: MIT
// Package matrix: public constructors and composition helpers.
//
// Purpose:
//   - Provide thin entry points for building the matrices the polytope layer needs.
//   - Each helper delegates to the canonical kernels; no loop duplication where avoidable.

package matrix

import (
	"fmt"
	"math"
)

// NewIdentity returns I_n (n×n identity).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Stack concatenates matrices vertically: [top; bottom]. Column counts must match.
//
// AI-Hints:
//   - The best-response descriptor is Stack(P, -I): payoff rows over
//     non-negativity rows.
//
// Complexity: O((r1+r2)*c).
func Stack(top, bottom *Dense) (*Dense, error) {
	if top == nil || bottom == nil {
		return nil, matrixErrorf(opStack, ErrNilMatrix)
	}
	if top.c != bottom.c {
		return nil, matrixErrorf(opStack, ErrDimensionMismatch)
	}
	res, err := NewDense(top.r+bottom.r, top.c)
	if err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	copy(res.data, top.data)
	copy(res.data[len(top.data):], bottom.data)

	return res, nil
}

// Scale returns α·m as a fresh *Dense.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("Scale", ErrNilMatrix)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf("Scale", ErrNaNInf)
	}
	res := m.Clone().(*Dense)
	var v float64
	for i := range res.data {
		v = res.data[i] * alpha
		if v == 0 {
			v = 0 // fold -0 into +0
		}
		res.data[i] = v
	}

	return res, nil
}

// Shift returns m + delta (element-wise) as a fresh *Dense.
// Complexity: O(r*c).
func Shift(m *Dense, delta float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opShift, ErrNilMatrix)
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return nil, matrixErrorf(opShift, fmt.Errorf("delta %v: %w", delta, ErrNaNInf))
	}
	res := m.Clone().(*Dense)
	for i := range res.data {
		res.data[i] += delta
	}

	return res, nil
}

// Equal reports whether a and b share a shape and every pair of entries
// differs by at most tol.
// Complexity: O(r*c).
func Equal(a, b *Dense, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}

	return true
}
