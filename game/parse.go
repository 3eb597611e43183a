// SPDX-License-Identifier: MIT

package game

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// document is the object form of a game description.
type document struct {
	Name   string         `json:"name,omitempty"`
	A      [][]float64    `json:"A,omitempty"`
	B      [][]float64    `json:"B,omitempty"`
	Payoff [][][2]float64 `json:"payoff,omitempty"`
}

// ParseJSON reads a game in one of the accepted layouts:
//
//	[[[a, b], [a, b]], [[a, b], [a, b]]]            matrix of payoff pairs
//	{"name": "…", "A": [[…]], "B": [[…]]}           two matrices
//	{"name": "…", "payoff": [[[a, b], …], …]}       named pair matrix
//
// "name" is optional everywhere. Errors: ErrInvalidPayoff.
func ParseJSON(data []byte) (*Game, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, gameErrorf("ParseJSON", fmt.Errorf("empty input: %w", ErrInvalidPayoff))
	}

	if trimmed[0] == '[' {
		var pairs [][][2]float64
		if err := json.Unmarshal(trimmed, &pairs); err != nil {
			return nil, gameErrorf("ParseJSON", fmt.Errorf("%w: %w", ErrInvalidPayoff, err))
		}
		return NewFromPairs("", pairs)
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, gameErrorf("ParseJSON", fmt.Errorf("%w: %w", ErrInvalidPayoff, err))
	}
	switch {
	case doc.A != nil || doc.B != nil:
		return New(doc.Name, doc.A, doc.B)
	case doc.Payoff != nil:
		return NewFromPairs(doc.Name, doc.Payoff)
	default:
		return nil, gameErrorf("ParseJSON", fmt.Errorf("neither A/B nor payoff given: %w", ErrInvalidPayoff))
	}
}

// LoadFile reads and parses a JSON game file.
func LoadFile(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gameErrorf("LoadFile", err)
	}
	g, err := ParseJSON(data)
	if err != nil {
		return nil, gameErrorf("LoadFile", err)
	}

	return g, nil
}

// MarshalJSON writes the {"name", "A", "B"} layout.
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{Name: g.Name, A: g.A.RawRows(), B: g.B.RawRows()})
}
