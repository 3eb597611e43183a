// SPDX-License-Identifier: MIT

// Package cli implements the nashpoly command line.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/katalvlaran/nashpoly/internal/config"
)

// ErrRunsFailed is returned by solve when a Lemke–Howson run failed for a
// reason other than the iteration cap.
var ErrRunsFailed = errors.New("lemke-howson runs failed")

// Env carries the process surroundings into commands.
type Env struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Clock  quartz.Clock
}

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" long:"config" default:"nashpoly.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" long:"log-level" help:"Log level (overrides config)"`
}

// CLI is the kong command tree.
type CLI struct {
	Globals

	Solve SolveCmd `cmd:"" help:"Solve a bimatrix game"`
	List  ListCmd  `cmd:"" help:"List the built-in example games"`
}

// Execute parses args and runs the selected command.
func Execute(args []string, env *Env, opts ...kong.Option) error {
	var c CLI
	opts = append([]kong.Option{
		kong.Name("nashpoly"),
		kong.Description("Best-response polytopes, Nash equilibria and Lemke–Howson paths of bimatrix games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(env.Stdout, env.Stderr),
	}, opts...)
	parser, err := kong.New(&c, opts...)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kctx.Run(env, &c.Globals)
}

// load reads the configuration file and applies flag overrides.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.New(w)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	}

	return logger
}
