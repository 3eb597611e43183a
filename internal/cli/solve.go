// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/nashpoly/game"
	"github.com/katalvlaran/nashpoly/nash"
	"github.com/katalvlaran/nashpoly/report"
)

// SolveCmd solves one game from the catalog or from a JSON file.
type SolveCmd struct {
	Game  string `short:"g" xor:"source" help:"Catalog game key (see list)"`
	File  string `short:"f" xor:"source" type:"path" help:"JSON game file"`
	JSON  bool   `help:"Write the solution as JSON"`
	Color bool   `help:"Colorize tables (overrides config)"`
}

type failure struct {
	Start string `json:"start"`
	Error string `json:"error"`
}

type solveOutput struct {
	Game *game.Game `json:"game"`
	*game.Solution
	Failures []failure `json:"failures,omitempty"`
}

func (s *SolveCmd) Run(env *Env, globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	logger := newLogger(env.Stderr, cfg.Log.Level)

	g, err := s.source()
	if err != nil {
		return err
	}
	m, n := g.Shape()
	logger.Debug("game loaded", "name", g.Name, "rows", m, "cols", n)

	start := env.Clock.Now()
	sol, err := game.Solve(env.Ctx, g,
		game.WithEpsilon(cfg.Solver.Epsilon),
		game.WithMaxSteps(cfg.Solver.MaxSteps),
		game.WithParallelism(cfg.Solver.Parallelism),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("solved", "game", g.Name, "equilibria", len(sol.Equilibria), "runs", len(sol.Runs), "elapsed", env.Clock.Since(start))

	failed, unexpected := nash.Failed(sol.Runs)
	for _, r := range failed {
		logger.Warn("run did not reach an equilibrium", "start", r.Start(), "err", r.Err)
	}

	if s.JSON {
		out := solveOutput{Game: g, Solution: sol}
		for _, r := range failed {
			out.Failures = append(out.Failures, failure{Start: r.Start().String(), Error: r.Err.Error()})
		}
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else if err := report.Solution(env.Stdout, sol, report.WithColor(s.Color || cfg.Output.Color)); err != nil {
		return err
	}

	if unexpected {
		return fmt.Errorf("%w: %d of %d", ErrRunsFailed, len(failed), len(sol.Runs))
	}

	return nil
}

func (s *SolveCmd) source() (*game.Game, error) {
	switch {
	case s.Game != "":
		return game.Lookup(s.Game)
	case s.File != "":
		return game.LoadFile(s.File)
	default:
		return nil, errors.New("one of --game or --file is required")
	}
}
