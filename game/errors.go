// SPDX-License-Identifier: MIT

package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPayoff is returned for missing, empty, ragged, non-finite or
	// mismatched payoff matrices and for unreadable game descriptions.
	ErrInvalidPayoff = errors.New("game: invalid payoff")

	// ErrUnknownGame is returned by Lookup for a name not in the catalog.
	ErrUnknownGame = errors.New("game: unknown game")
)

func gameErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
