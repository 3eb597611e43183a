// SPDX-License-Identifier: MIT

// Package report renders solver results as terminal tables.
package report

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/nashpoly/game"
	"github.com/katalvlaran/nashpoly/nash"
	"github.com/katalvlaran/nashpoly/polytope"
)

// Option configures rendering.
type Option func(*Options)

// Options holds the rendering settings.
type Options struct {
	color bool
}

// WithColor enables ANSI styling. Off by default, so output is plain text.
func WithColor(on bool) Option {
	return func(o *Options) { o.color = on }
}

// printer owns a renderer bound to one writer.
type printer struct {
	w      io.Writer
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	bad    lipgloss.Style
}

func newPrinter(w io.Writer, opts ...Option) *printer {
	var o Options
	for _, set := range opts {
		set(&o)
	}
	r := lipgloss.NewRenderer(w)
	if !o.color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &printer{
		w:      w,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		border: r.NewStyle().Foreground(lipgloss.Color("8")),
		bad:    r.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1),
	}
}

func (p *printer) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			return p.cell
		})
}

func (p *printer) print(title string, t *table.Table) error {
	_, err := fmt.Fprintf(p.w, "%s\n%s\n", p.header.Render(title), t.Render())
	return err
}

// Equilibria writes one row per equilibrium: mixed strategies as fractions
// and exact expected payoffs.
func Equilibria(w io.Writer, sol *game.Solution, opts ...Option) error {
	p := newPrinter(w, opts...)
	t := p.table("#", "x (row player)", "y (column player)", "payoff A", "payoff B")
	for _, eq := range sol.Equilibria {
		x, y := sol.Strategies(eq)
		t.Row(strconv.Itoa(eq.ID), Fractions(x), Fractions(y), eq.PayoffA.RatString(), eq.PayoffB.RatString())
	}

	return p.print(fmt.Sprintf("Nash equilibria: %d", len(sol.Equilibria)), t)
}

// LemkeHowson writes one row per run: start label, dropped labels in order,
// pivot count and the equilibrium reached (or the failure).
func LemkeHowson(w io.Writer, sol *game.Solution, opts ...Option) error {
	p := newPrinter(w, opts...)
	t := p.table("start", "dropped labels", "pivots", "equilibrium")
	failed := make(map[int]bool)
	for i, r := range sol.Runs {
		failed[i] = r.Err != nil
		t.Row(r.Start().String(), Path(r), strconv.Itoa(len(r.Trail)), outcome(r))
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return p.header
		case failed[row]:
			return p.bad
		}
		return p.cell
	})

	return p.print("Lemke–Howson", t)
}

// Polytope writes the vertex table of one best-response polytope.
func Polytope(w io.Writer, title string, poly *polytope.Polytope, opts ...Option) error {
	p := newPrinter(w, opts...)
	t := p.table("v", "x", "basis", "labels a", "labels b", "mixed", "equilibria")
	for _, v := range poly.Vertices {
		coords := make([]string, len(v.X))
		for j, c := range v.X {
			coords[j] = strconv.FormatFloat(c, 'g', 6, 64)
		}
		eqs := make([]string, len(v.EquilibriumIDs))
		for i, id := range v.EquilibriumIDs {
			eqs[i] = "#" + strconv.Itoa(id)
		}
		mixed := "-"
		if v.Normalized != nil {
			mixed = Fractions(v.Normalized)
		}
		t.Row(
			strconv.Itoa(v.ID),
			"("+strings.Join(coords, ", ")+")",
			v.Basis.String(),
			v.Labels.A.String(),
			v.Labels.B.String(),
			mixed,
			strings.Join(eqs, " "),
		)
	}

	return p.print(fmt.Sprintf("%s: %d vertices, %d edges, %d facets", title, len(poly.Vertices), len(poly.Edges), len(poly.Facets)), t)
}

// Catalog writes the example games with their shape and title.
func Catalog(w io.Writer, entries []game.Entry, opts ...Option) error {
	p := newPrinter(w, opts...)
	t := p.table("key", "shape", "title")
	for _, e := range entries {
		m, n := e.Game.Shape()
		t.Row(e.Key, fmt.Sprintf("%d×%d", m, n), e.Title)
	}

	return p.print(fmt.Sprintf("Games: %d", len(entries)), t)
}

// Solution writes both polytopes, the equilibria and the Lemke–Howson runs.
func Solution(w io.Writer, sol *game.Solution, opts ...Option) error {
	return errors.Join(
		Polytope(w, "Polytope A", sol.PolyA, opts...),
		Polytope(w, "Polytope B", sol.PolyB, opts...),
		Equilibria(w, sol, opts...),
		LemkeHowson(w, sol, opts...),
	)
}

// Fractions formats a rational vector as "(1/2, 0, 1/2)".
func Fractions(rs []*big.Rat) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.RatString()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// Path formats the dropped labels of a run as "a1 → b1".
func Path(r *nash.Run) string {
	labels := r.Labels()
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.String()
	}

	return strings.Join(parts, " → ")
}

func outcome(r *nash.Run) string {
	switch {
	case errors.Is(r.Err, nash.ErrNonTermination):
		return "no termination"
	case errors.Is(r.Err, nash.ErrEquilibriumMismatch):
		return "not an equilibrium"
	case r.Err != nil:
		return r.Err.Error()
	case r.Equilibrium == nil:
		return "-"
	default:
		return "#" + strconv.Itoa(r.Equilibrium.ID)
	}
}
