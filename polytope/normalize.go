// SPDX-License-Identifier: MIT

package polytope

import (
	"math"
	"math/big"
)

// NormalizeVertices fills Vertex.Normalized for every vertex (nil at the
// origin). See Normalize.
func NormalizeVertices(vertices []*Vertex, opts ...Option) {
	o := gatherOptions(opts...)
	for _, v := range vertices {
		v.Normalized = normalize(v.X, o)
	}
}

// Normalize turns a vertex coordinate vector into a mixed strategy.
//
// Implementation:
//   - Stage 1: rationalize each coordinate by a bounded continued fraction
//     (|x - p/q| ≤ rational tolerance, q ≤ DefaultMaxDenominator).
//   - Stage 2: divide every fraction by their exact sum.
//
// The result sums to exactly 1. A vector whose float sum is within ε of 0
// (the zero vertex) yields nil.
func Normalize(x []float64, opts ...Option) []*big.Rat {
	return normalize(x, gatherOptions(opts...))
}

func normalize(x []float64, o Options) []*big.Rat {
	total := 0.0
	for _, c := range x {
		total += c
	}
	if math.Abs(total) <= o.eps {
		return nil
	}

	out := make([]*big.Rat, len(x))
	sum := new(big.Rat)
	for j, c := range x {
		out[j] = rationalize(c, o.rationalTol, o.maxDenom)
		sum.Add(sum, out[j])
	}
	if sum.Sign() == 0 {
		return nil
	}
	for _, r := range out {
		r.Quo(r, sum)
	}

	return out
}

// rationalize returns the first continued-fraction convergent p/q of x with
// |x - p/q| ≤ tol, stopping early at the last convergent whose denominator
// fits maxDenom.
func rationalize(x, tol float64, maxDenom int64) *big.Rat {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return new(big.Rat)
	}
	neg := x < 0
	if neg {
		x = -x
	}

	// convergents h/k: h(-1)=1, h(-2)=0, k(-1)=0, k(-2)=1
	h, hPrev := int64(1), int64(0)
	k, kPrev := int64(0), int64(1)
	rem := x
	for {
		a := math.Floor(rem)
		if a > float64(math.MaxInt64/4) {
			break
		}
		ai := int64(a)
		hNext := ai*h + hPrev
		kNext := ai*k + kPrev
		if kNext > maxDenom || hNext < 0 || kNext < 0 {
			break
		}
		h, hPrev = hNext, h
		k, kPrev = kNext, k

		if math.Abs(x-float64(h)/float64(k)) <= tol {
			break
		}
		frac := rem - a
		if frac == 0 {
			break
		}
		rem = 1 / frac
	}
	if k == 0 {
		// x exceeded the int64 range on the first term
		r := new(big.Rat)
		r.SetFloat64(x)
		if neg {
			r.Neg(r)
		}
		return r
	}
	if neg {
		h = -h
	}

	return big.NewRat(h, k)
}
