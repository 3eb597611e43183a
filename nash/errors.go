// SPDX-License-Identifier: MIT

package nash

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPolytope is returned when a polytope argument is nil.
	ErrNilPolytope = errors.New("nash: polytope is nil")

	// ErrPolytopeMismatch is returned when the two polytopes do not belong
	// to the same game (different N, swapped owners, payoff shape mismatch).
	ErrPolytopeMismatch = errors.New("nash: polytopes do not match")

	// ErrNoZeroVertex is returned when a polytope has no all-zero vertex to
	// start the Lemke–Howson walk from.
	ErrNoZeroVertex = errors.New("nash: polytope has no zero vertex")

	// ErrInvalidStartLabel is returned for a start label outside its range.
	ErrInvalidStartLabel = errors.New("nash: invalid start label")

	// ErrNonTermination marks a run that hit the iteration cap.
	ErrNonTermination = errors.New("nash: lemke-howson did not terminate")

	// ErrEquilibriumMismatch marks a run whose terminal vertex pair is not
	// among the enumerated equilibria.
	ErrEquilibriumMismatch = errors.New("nash: terminal pair is not an enumerated equilibrium")
)

// nashErrorf wraps err with an operation tag, preserving it for errors.Is.
func nashErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
