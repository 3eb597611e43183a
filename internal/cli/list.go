// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/nashpoly/game"
	"github.com/katalvlaran/nashpoly/report"
)

// ListCmd prints the catalog keys with their shape and title.
type ListCmd struct {
	Color bool `help:"Colorize the table (overrides config)"`
}

func (l *ListCmd) Run(env *Env, globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	entries, err := game.Catalog()
	if err != nil {
		return err
	}

	return report.Catalog(env.Stdout, entries, report.WithColor(l.Color || cfg.Output.Color))
}
