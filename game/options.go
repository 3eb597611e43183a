// SPDX-License-Identifier: MIT

package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/nashpoly/nash"
	"github.com/katalvlaran/nashpoly/polytope"
)

// Option configures Solve. Each setter forwards to the stage it belongs to.
type Option func(*Options)

// Options collects the per-stage options.
type Options struct {
	poly   []polytope.Option
	lh     []nash.Option
	logger *log.Logger
}

// WithEpsilon sets the polytope tolerance (see polytope.WithEpsilon).
func WithEpsilon(eps float64) Option {
	set := polytope.WithEpsilon(eps)
	return func(o *Options) { o.poly = append(o.poly, set) }
}

// WithMaxSteps caps each Lemke–Howson run (see nash.WithMaxSteps).
func WithMaxSteps(n int) Option {
	set := nash.WithMaxSteps(n)
	return func(o *Options) { o.lh = append(o.lh, set) }
}

// WithParallelism bounds concurrent Lemke–Howson runs (see nash.WithParallelism).
func WithParallelism(n int) Option {
	set := nash.WithParallelism(n)
	return func(o *Options) { o.lh = append(o.lh, set) }
}

// WithLogger hands l to every stage.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.logger = l
		o.poly = append(o.poly, polytope.WithLogger(l))
		o.lh = append(o.lh, nash.WithLogger(l))
	}
}

func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	return o
}
