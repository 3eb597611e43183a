// SPDX-License-Identifier: MIT

package polytope

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDescriptor indicates a descriptor whose shape violates
	// N = M + n, len(b) = N or A being N×n.
	ErrMalformedDescriptor = errors.New("polytope: malformed descriptor")

	// ErrNilPayoff is returned when Build receives a nil payoff matrix.
	ErrNilPayoff = errors.New("polytope: payoff matrix is nil")

	// ErrNonPositivePayoff is returned when a payoff entry is ≤ 0. Shift the
	// game first (see game.Shift); only then is the origin strictly interior.
	ErrNonPositivePayoff = errors.New("polytope: payoff entries must be strictly positive")

	// ErrUnknownVertex is returned when a vertex ID is outside the polytope.
	ErrUnknownVertex = errors.New("polytope: unknown vertex id")
)

// polytopeErrorf wraps err with an operation tag, preserving it for errors.Is.
func polytopeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
