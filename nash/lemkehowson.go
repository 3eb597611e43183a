// SPDX-License-Identifier: MIT

package nash

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nashpoly/polytope"
)

// walker is the state of one Lemke–Howson walk.
type walker struct {
	polys  [2]*polytope.Polytope // indexed by owner
	cur    [2]*polytope.Vertex
	active polytope.Player
	drop   Label
	byPair map[[2]int]*Equilibrium
	run    *Run
}

// StartLabels returns the start labels of a game in run order: type A
// labels 1..pa.M, then type B labels 1..pb.M.
func StartLabels(pa, pb *polytope.Polytope) []Label {
	var out []Label
	for i := 1; i <= pa.Descriptor.M; i++ {
		out = append(out, Label{Value: i, Type: polytope.PlayerA})
	}
	for i := 1; i <= pb.Descriptor.M; i++ {
		out = append(out, Label{Value: i, Type: polytope.PlayerB})
	}

	return out
}

// LemkeHowson simulates one run per start label (see StartLabels) and
// returns them in that order.
//
// Implementation:
//   - Stage 1: validate the pair and index eqs by (A, B) vertex IDs.
//   - Stage 2: fan the runs out on an errgroup limited by WithParallelism;
//     run i writes only runs[i].
//
// Behavior highlights:
//   - Run failures (ErrNonTermination, ErrEquilibriumMismatch, ctx errors)
//     land in Run.Err; they are logged and never returned.
//   - The returned error is reserved for unusable input.
//
// Errors:
//   - ErrNilPolytope, ErrPolytopeMismatch, ErrNoZeroVertex.
func LemkeHowson(ctx context.Context, pa, pb *polytope.Polytope, eqs []*Equilibrium, opts ...Option) ([]*Run, error) {
	if err := checkWalkable(pa, pb); err != nil {
		return nil, nashErrorf("LemkeHowson", err)
	}
	o := gatherOptions(opts...)
	byPair := indexEquilibria(eqs)
	labels := StartLabels(pa, pb)
	runs := make([]*Run, len(labels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for i, start := range labels {
		g.Go(func() error {
			runs[i] = simulate(gctx, pa, pb, byPair, start, o)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range runs {
		if r.Err != nil {
			o.logger.Error("lemke-howson run failed", "start", r.Start().String(), "steps", len(r.Steps), "err", r.Err)
		}
	}

	return runs, nil
}

// Simulate performs a single Lemke–Howson walk from start. Every failure,
// including invalid input, is reported through Run.Err.
func Simulate(ctx context.Context, pa, pb *polytope.Polytope, eqs []*Equilibrium, start Label, opts ...Option) *Run {
	if err := checkWalkable(pa, pb); err != nil {
		return &Run{StartLabel: start.Value, StartType: start.Type, Err: nashErrorf("Simulate", err)}
	}

	return simulate(ctx, pa, pb, indexEquilibria(eqs), start, gatherOptions(opts...))
}

func simulate(ctx context.Context, pa, pb *polytope.Polytope, byPair map[[2]int]*Equilibrium, start Label, o Options) *Run {
	run := &Run{StartLabel: start.Value, StartType: start.Type}
	limit := pa.Descriptor.M
	if start.Type == polytope.PlayerB {
		limit = pb.Descriptor.M
	}
	if start.Value < 1 || start.Value > limit {
		run.Err = nashErrorf("Simulate", fmt.Errorf("%s outside 1..%d: %w", start, limit, ErrInvalidStartLabel))
		return run
	}

	w := &walker{
		polys:  [2]*polytope.Polytope{pa, pb},
		cur:    [2]*polytope.Vertex{pa.ZeroVertex(), pb.ZeroVertex()},
		drop:   start,
		byPair: byPair,
		run:    run,
	}
	// the origin of the other polytope is the one carrying start's type on its zero coordinates
	w.active = start.Type.Other()
	if !w.cur[w.active].Labels.Of(start.Type).Contains(start.Value) {
		w.active = start.Type
	}
	w.record(&start)

	for iter := 0; iter < o.maxSteps; iter++ {
		if err := ctx.Err(); err != nil {
			run.Err = err
			return run
		}
		if !w.pivot() {
			continue // stall
		}
		next, ok := w.duplicate()
		if !ok {
			w.record(nil)
			w.finish()
			return run
		}
		w.active = w.active.Other()
		w.drop = next
		w.record(&next)
	}
	run.Err = nashErrorf("Simulate", fmt.Errorf("start %s after %d iterations: %w", start, o.maxSteps, ErrNonTermination))

	return run
}

// pivot moves the active vertex to its first neighbor lacking the dropped
// label. It reports false when no such neighbor exists.
func (w *walker) pivot() bool {
	poly := w.polys[w.active]
	for _, nb := range w.cur[w.active].Neighbors {
		u := poly.Vertices[nb.Vertex]
		if u.Labels.Of(w.drop.Type).Contains(w.drop.Value) {
			continue
		}
		w.cur[w.active] = u
		w.run.Trail = append(w.run.Trail, TrailEdge{Owner: w.active, Edge: nb.Edge})
		return true
	}

	return false
}

// duplicate returns the smallest label present at both current vertices,
// type A before type B.
func (w *walker) duplicate() (Label, bool) {
	a, b := w.cur[polytope.PlayerA].Labels, w.cur[polytope.PlayerB].Labels
	if v, ok := a.A.Intersect(b.A).First(); ok {
		return Label{Value: v, Type: polytope.PlayerA}, true
	}
	if v, ok := a.B.Intersect(b.B).First(); ok {
		return Label{Value: v, Type: polytope.PlayerB}, true
	}

	return Label{}, false
}

func (w *walker) record(drop *Label) {
	w.run.Steps = append(w.run.Steps, Step{
		A:    w.cur[polytope.PlayerA].ID,
		B:    w.cur[polytope.PlayerB].ID,
		Drop: drop,
	})
}

// finish matches the terminal pair against the enumerated equilibria.
func (w *walker) finish() {
	key := [2]int{w.cur[polytope.PlayerA].ID, w.cur[polytope.PlayerB].ID}
	eq, ok := w.byPair[key]
	if !ok {
		w.run.Err = nashErrorf("Simulate", fmt.Errorf("pair (%d,%d): %w", key[0], key[1], ErrEquilibriumMismatch))
		return
	}
	w.run.Equilibrium = eq
}

func checkWalkable(pa, pb *polytope.Polytope) error {
	if err := checkPair(pa, pb); err != nil {
		return err
	}
	if pa.ZeroVertex() == nil || pb.ZeroVertex() == nil {
		return ErrNoZeroVertex
	}

	return nil
}

func indexEquilibria(eqs []*Equilibrium) map[[2]int]*Equilibrium {
	out := make(map[[2]int]*Equilibrium, len(eqs))
	for _, eq := range eqs {
		out[[2]int{eq.A, eq.B}] = eq
	}

	return out
}

// Failed returns the runs that ended with an error, and whether any of them
// failed for a reason other than the iteration cap.
func Failed(runs []*Run) (failed []*Run, unexpected bool) {
	for _, r := range runs {
		if r.Err == nil {
			continue
		}
		failed = append(failed, r)
		if !errors.Is(r.Err, ErrNonTermination) {
			unexpected = true
		}
	}

	return failed, unexpected
}
