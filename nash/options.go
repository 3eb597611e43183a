// SPDX-License-Identifier: MIT

package nash

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"
)

// DefaultMaxSteps caps the iterations of one Lemke–Howson run.
const DefaultMaxSteps = 1000

const (
	panicMaxSteps    = "nash: WithMaxSteps: n must be positive"
	panicParallelism = "nash: WithParallelism: n must be positive"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxSteps    int
	parallelism int
	logger      *log.Logger
}

// WithMaxSteps sets the per-run iteration cap. Panics on n ≤ 0.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(panicMaxSteps)
	}

	return func(o *Options) { o.maxSteps = n }
}

// WithParallelism bounds how many runs execute at once. Panics on n ≤ 0.
// Default: runtime.NumCPU().
func WithParallelism(n int) Option {
	if n <= 0 {
		panic(panicParallelism)
	}

	return func(o *Options) { o.parallelism = n }
}

// WithLogger routes run failures to l. Nil restores the silent default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		maxSteps:    DefaultMaxSteps,
		parallelism: runtime.NumCPU(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	return o
}
