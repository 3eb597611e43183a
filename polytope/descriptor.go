// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nashpoly/matrix"
)

// Descriptor is the inequality system A·x ≤ b of a polytope.
//
// Invariants (checked by Validate):
//   - A is N×Dim,
//   - len(B) == N,
//   - N == M + Dim, where rows 0..M-1 are opponent payoff rows and rows
//     M..N-1 are own non-negativity rows.
type Descriptor struct {
	A   *matrix.Dense
	B   []float64
	M   int // opponent action count
	Dim int // strategy-space dimension n
	N   int // total inequality rows
}

// NewDescriptor wraps an existing system and validates it.
func NewDescriptor(a *matrix.Dense, b []float64, m int) (*Descriptor, error) {
	if a == nil {
		return nil, polytopeErrorf("NewDescriptor", fmt.Errorf("nil A: %w", ErrMalformedDescriptor))
	}
	d := &Descriptor{A: a, B: b, M: m, Dim: a.Cols(), N: a.Rows()}
	if err := d.Validate(); err != nil {
		return nil, polytopeErrorf("NewDescriptor", err)
	}

	return d, nil
}

// DescriptorFromPayoff builds the best-response system of an oriented,
// strictly positive M×n payoff matrix P:
//
//	A = [P; -I],  b = [1…1; 0…0].
//
// Errors: ErrNilPayoff, ErrNonPositivePayoff.
func DescriptorFromPayoff(p *matrix.Dense) (*Descriptor, error) {
	if p == nil {
		return nil, polytopeErrorf("DescriptorFromPayoff", ErrNilPayoff)
	}
	if lo := p.Min(); lo <= 0 {
		return nil, polytopeErrorf("DescriptorFromPayoff", fmt.Errorf("min entry %g: %w", lo, ErrNonPositivePayoff))
	}
	m, n := p.Shape()

	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, polytopeErrorf("DescriptorFromPayoff", err)
	}
	negI, err := matrix.Scale(id, -1)
	if err != nil {
		return nil, polytopeErrorf("DescriptorFromPayoff", err)
	}
	a, err := matrix.Stack(p, negI)
	if err != nil {
		return nil, polytopeErrorf("DescriptorFromPayoff", err)
	}
	b := make([]float64, m+n)
	for i := 0; i < m; i++ {
		b[i] = 1
	}

	return &Descriptor{A: a, B: b, M: m, Dim: n, N: m + n}, nil
}

// Validate checks the shape invariants. Any violation is ErrMalformedDescriptor.
func (d *Descriptor) Validate() error {
	switch {
	case d == nil || d.A == nil:
		return fmt.Errorf("missing matrix: %w", ErrMalformedDescriptor)
	case d.Dim <= 0 || d.M < 0:
		return fmt.Errorf("dim=%d m=%d: %w", d.Dim, d.M, ErrMalformedDescriptor)
	case d.N != d.M+d.Dim:
		return fmt.Errorf("N=%d, m+n=%d: %w", d.N, d.M+d.Dim, ErrMalformedDescriptor)
	case len(d.B) != d.N:
		return fmt.Errorf("len(b)=%d, N=%d: %w", len(d.B), d.N, ErrMalformedDescriptor)
	case d.A.Rows() != d.N || d.A.Cols() != d.Dim:
		return fmt.Errorf("A is %dx%d, want %dx%d: %w", d.A.Rows(), d.A.Cols(), d.N, d.Dim, ErrMalformedDescriptor)
	}
	for i, v := range d.B {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("b[%d]=%v: %w", i, v, ErrMalformedDescriptor)
		}
	}

	return nil
}

// Slacks returns b - A·x for every row.
func (d *Descriptor) Slacks(x []float64) ([]float64, error) {
	ax, err := matrix.MatVec(d.A, x)
	if err != nil {
		return nil, err
	}
	for i := range ax {
		ax[i] = d.B[i] - ax[i]
	}

	return ax, nil
}

// Feasible reports whether A[i]·x ≤ b[i] + eps for every row.
func (d *Descriptor) Feasible(x []float64, eps float64) (bool, error) {
	slack, err := d.Slacks(x)
	if err != nil {
		return false, err
	}
	for _, s := range slack {
		if s < -eps {
			return false, nil
		}
	}

	return true, nil
}
