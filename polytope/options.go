// SPDX-License-Identifier: MIT

// Package polytope: functional configuration for the build pipeline.
//
// Design goals:
//   - No package-level mutable state: tolerance and logger travel with each call.
//   - Panic only on nonsensical option values (programmer error).
package polytope

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/nashpoly/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon absorbs floating error in feasibility, tightness,
	// zero-coordinate and coincidence tests.
	DefaultEpsilon = 1e-6

	// DefaultRationalTolerance bounds |x - p/q| when coordinates are turned
	// into fractions by the normalizer.
	DefaultRationalTolerance = 1e-9

	// DefaultMaxDenominator caps fraction denominators in the normalizer.
	DefaultMaxDenominator = int64(1_000_000_000)
)

const (
	panicEpsilonInvalid  = "polytope: WithEpsilon: eps must be finite and positive"
	panicRationalInvalid = "polytope: WithRationalTolerance: tol must be finite and positive"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps         float64
	rationalTol float64
	maxDenom    int64
	logger      *log.Logger
	solver      []matrix.Option
}

// WithEpsilon sets the feasibility/tightness tolerance. Panics on eps ≤ 0 or non-finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRationalTolerance sets the normalizer's fraction tolerance.
func WithRationalTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicRationalInvalid)
	}

	return func(o *Options) { o.rationalTol = tol }
}

// WithLogger routes diagnostics (degenerate vertices, singular bases) to l.
// A nil logger restores the silent default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithSolverOptions forwards options to matrix.Solve for every basis system.
func WithSolverOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.solver = append(o.solver, opts...) }
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:         DefaultEpsilon,
		rationalTol: DefaultRationalTolerance,
		maxDenom:    DefaultMaxDenominator,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	return o
}
