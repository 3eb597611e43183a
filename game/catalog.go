// SPDX-License-Identifier: MIT

package game

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed catalog.hcl
var catalogSource []byte

// Entry is one game of the catalog.
type Entry struct {
	Key   string
	Title string
	Game  *Game
}

type catalogFile struct {
	Games []catalogGame `hcl:"game,block"`
}

type catalogGame struct {
	Key   string      `hcl:"key,label"`
	Title string      `hcl:"title,optional"`
	A     [][]float64 `hcl:"a"`
	B     [][]float64 `hcl:"b"`
}

var loadCatalog = sync.OnceValues(func() ([]Entry, error) {
	return ParseCatalog(catalogSource, "catalog.hcl")
})

// Catalog returns the embedded example games in file order.
func Catalog() ([]Entry, error) {
	entries, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	return append([]Entry(nil), entries...), nil
}

// Lookup returns the catalog game with the given key. The game is shared
// between callers and must not be modified.
// Errors: ErrUnknownGame.
func Lookup(key string) (*Game, error) {
	entries, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Key == key {
			return e.Game, nil
		}
	}

	return nil, gameErrorf("Lookup", fmt.Errorf("%q: %w", key, ErrUnknownGame))
}

// ParseCatalog decodes an HCL document of `game "key" { title, a, b }`
// blocks. A missing title defaults to the key; duplicate keys are rejected.
func ParseCatalog(src []byte, filename string) ([]Entry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, gameErrorf("ParseCatalog", fmt.Errorf("%w: %s", ErrInvalidPayoff, diags.Error()))
	}

	var cf catalogFile
	if diags = gohcl.DecodeBody(file.Body, nil, &cf); diags.HasErrors() {
		return nil, gameErrorf("ParseCatalog", fmt.Errorf("%w: %s", ErrInvalidPayoff, diags.Error()))
	}

	seen := make(map[string]bool, len(cf.Games))
	entries := make([]Entry, 0, len(cf.Games))
	for _, cg := range cf.Games {
		if seen[cg.Key] {
			return nil, gameErrorf("ParseCatalog", fmt.Errorf("duplicate game %q: %w", cg.Key, ErrInvalidPayoff))
		}
		seen[cg.Key] = true

		title := cg.Title
		if title == "" {
			title = cg.Key
		}
		g, err := New(title, cg.A, cg.B)
		if err != nil {
			return nil, gameErrorf("ParseCatalog", fmt.Errorf("game %q: %w", cg.Key, err))
		}
		entries = append(entries, Entry{Key: cg.Key, Title: title, Game: g})
	}

	return entries, nil
}
