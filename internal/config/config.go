// SPDX-License-Identifier: MIT

// Package config loads the nashpoly HCL configuration file.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/nashpoly/nash"
	"github.com/katalvlaran/nashpoly/polytope"
)

// Config is the complete configuration.
type Config struct {
	Solver SolverSettings `hcl:"solver,block"`
	Log    LogSettings    `hcl:"log,block"`
	Output OutputSettings `hcl:"output,block"`
}

// SolverSettings tunes the numerical pipeline.
type SolverSettings struct {
	Epsilon     float64 `hcl:"epsilon,optional"`
	MaxSteps    int     `hcl:"max_steps,optional"`
	Parallelism int     `hcl:"parallelism,optional"`
}

// LogSettings controls the stderr logger.
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// OutputSettings controls report rendering.
type OutputSettings struct {
	Color bool `hcl:"color,optional"`
}

// file mirrors Config with optional blocks, so any block may be left out.
type file struct {
	Solver *SolverSettings `hcl:"solver,block"`
	Log    *LogSettings    `hcl:"log,block"`
	Output *OutputSettings `hcl:"output,block"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Solver: SolverSettings{
			Epsilon:     polytope.DefaultEpsilon,
			MaxSteps:    nash.DefaultMaxSteps,
			Parallelism: runtime.NumCPU(),
		},
		Log: LogSettings{Level: "warn"},
	}
}

// Load reads filename. A missing file yields Default(); omitted fields keep
// their defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults to missing values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	if diags = gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Solver != nil {
		if raw.Solver.Epsilon != 0 {
			cfg.Solver.Epsilon = raw.Solver.Epsilon
		}
		if raw.Solver.MaxSteps != 0 {
			cfg.Solver.MaxSteps = raw.Solver.MaxSteps
		}
		if raw.Solver.Parallelism != 0 {
			cfg.Solver.Parallelism = raw.Solver.Parallelism
		}
	}
	if raw.Log != nil && raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}
	if raw.Output != nil {
		cfg.Output.Color = raw.Output.Color
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Solver.Epsilon <= 0 || c.Solver.Epsilon >= 1 {
		return fmt.Errorf("invalid epsilon: %g", c.Solver.Epsilon)
	}
	if c.Solver.MaxSteps < 1 {
		return fmt.Errorf("invalid max_steps: %d", c.Solver.MaxSteps)
	}
	if c.Solver.Parallelism < 1 {
		return fmt.Errorf("invalid parallelism: %d", c.Solver.Parallelism)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
