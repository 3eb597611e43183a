// SPDX-License-Identifier: MIT

package polytope

// basisCursor walks the size-k subsets of {0..n-1} in lexicographic order.
//
// The cursor is a value: next returns a new cursor with its own index slice
// and never touches the receiver, so several walkers can fan out from any
// cursor without aliasing.
type basisCursor struct {
	n, k int
	idx  []int // strictly increasing
}

// newBasisCursor returns the first subset {0..k-1}; ok is false when no
// size-k subset exists (k > n or k ≤ 0).
func newBasisCursor(n, k int) (c basisCursor, ok bool) {
	if k <= 0 || k > n {
		return basisCursor{}, false
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	return basisCursor{n: n, k: k, idx: idx}, true
}

// rows returns the current subset. The slice belongs to this cursor value.
func (c basisCursor) rows() []int { return c.idx }

// next returns the lexicographic successor; ok is false after the last subset.
func (c basisCursor) next() (basisCursor, bool) {
	idx := make([]int, c.k)
	copy(idx, c.idx)

	// rightmost position that can still move up
	i := c.k - 1
	for i >= 0 && idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		return basisCursor{}, false
	}
	idx[i]++
	for j := i + 1; j < c.k; j++ {
		idx[j] = idx[j-1] + 1
	}

	return basisCursor{n: c.n, k: c.k, idx: idx}, true
}
