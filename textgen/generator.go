// SPDX-License-Identifier: MIT
// Package: rexgen/textgen
//
// generator.go — the Generator facade: compile once, inspect, generate.
//
// Validation flow (strict, per generate call):
//   pattern present → window not inverted → language finite → language
//   non-empty → feasible range known → single-character stretch OR numeric
//   window checks → walk.

package textgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rexgen/automaton"
	"github.com/katalvlaran/rexgen/lengths"
	"github.com/katalvlaran/rexgen/randwalk"
)

// Generator owns one compiled pattern plus the default window applied to
// no-argument generation. It is NOT safe for concurrent use: the randomness
// source and SetPattern both mutate shared state. The compiled acceptor
// itself is immutable and may be shared freely across goroutines.
type Generator struct {
	pattern     string
	acc         *automaton.Acceptor
	globalMin   int
	globalMax   int
	rng         *rand.Rand
	maxAttempts int
}

// New builds a Generator from functional options applied over
// DefaultOptions. Option violations (ErrGlobalBounds) and pattern
// compilation failures surface here.
func New(opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &Generator{
		globalMin:   o.globalMin,
		globalMax:   o.globalMax,
		rng:         o.rng,
		maxAttempts: o.maxAttempts,
	}
	if o.hasPattern {
		if err := g.SetPattern(o.pattern); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// SetPattern compiles pattern and swaps it in; on a compile error the
// previously active pattern (if any) stays in place.
func (g *Generator) SetPattern(pattern string) error {
	acc, err := automaton.Compile(pattern)
	if err != nil {
		return err
	}
	g.pattern = pattern
	g.acc = acc

	return nil
}

// Pattern returns the currently compiled regex source.
func (g *Generator) Pattern() string { return g.pattern }

// Inspect reports the automaton's structural properties without generating
// anything. Infinite and empty languages inspect fine; only the feasible
// range is withheld for them (it is undefined there).
func (g *Generator) Inspect() (Properties, error) {
	if g.acc == nil {
		return Properties{}, ErrNoPattern
	}

	p := Properties{StateCount: g.acc.StateCount(), Finite: g.acc.IsFinite()}
	if !g.acc.HasAccepting() {
		p.Empty = true
		return p, nil
	}
	if !p.Finite {
		return p, nil
	}

	feasible, err := lengths.Analyze(g.acc)
	if err != nil {
		return Properties{}, err
	}
	p.Feasible = feasible

	return p, nil
}

// Generate emits one string using the generator's global bounds as the
// request window, intersected with the pattern's feasible range (the open
// upper default would otherwise reject every bounded pattern).
func (g *Generator) Generate() (string, error) {
	if g.acc == nil {
		return "", ErrNoPattern
	}

	res, err := g.run(g.globalMin, g.globalMax, true)
	if err != nil {
		return "", err
	}

	return res.Text, nil
}

// GenerateWithin emits one string whose length lies in
// [minLength, maxLength], after validating the window against the global
// bounds and the pattern's feasible range. The returned string is
// best-effort: when the walk exhausts, the partial buffer comes back with a
// nil error. Callers needing certainty use GenerateResult and branch on its
// Status.
func (g *Generator) GenerateWithin(minLength, maxLength int) (string, error) {
	res, err := g.GenerateResult(minLength, maxLength)
	if err != nil {
		return "", err
	}

	return res.Text, nil
}

// GenerateResult is GenerateWithin returning the full walk Result, so the
// Accepted and Exhausted outcomes stay distinguishable.
func (g *Generator) GenerateResult(minLength, maxLength int) (randwalk.Result, error) {
	if g.acc == nil {
		return randwalk.Result{}, ErrNoPattern
	}
	if minLength > maxLength {
		return randwalk.Result{}, ErrInvertedBounds
	}

	return g.run(minLength, maxLength, false)
}

// run validates the request window and drives the walk. clamp marks the
// no-argument path: the window is the global default, intersected with the
// feasible range instead of being checked against it.
func (g *Generator) run(minLength, maxLength int, clamp bool) (randwalk.Result, error) {
	if !g.acc.IsFinite() {
		return randwalk.Result{}, fmt.Errorf("textgen: %w", automaton.ErrInfinite)
	}
	if !g.acc.HasAccepting() {
		return randwalk.Result{}, fmt.Errorf("textgen: %w", automaton.ErrEmptyLanguage)
	}
	feasible, err := lengths.Analyze(g.acc)
	if err != nil {
		return randwalk.Result{}, err
	}

	acc := g.acc
	switch {
	case feasible.Min == 1 && feasible.Max == 1 && minLength >= 0:
		// Single-character language: stretch the pattern itself to the
		// requested window and skip the numeric checks entirely.
		if acc, maxLength, err = g.stretched(minLength, maxLength); err != nil {
			return randwalk.Result{}, err
		}
	case clamp:
		if minLength < feasible.Min {
			minLength = feasible.Min
		}
		if maxLength > feasible.Max {
			maxLength = feasible.Max
		}
		if minLength > maxLength {
			// Global bounds and feasible range are disjoint.
			return randwalk.Result{}, ensureWindow(feasible.Min, feasible.Max, g.globalMin, g.globalMax)
		}
	default:
		if err = ensureWindow(minLength, maxLength, g.globalMin, g.globalMax); err != nil {
			return randwalk.Result{}, err
		}
		if err = ensureWindow(minLength, maxLength, feasible.Min, feasible.Max); err != nil {
			return randwalk.Result{}, err
		}
	}

	return randwalk.Walk(acc, minLength, maxLength,
		randwalk.WithRand(g.rng),
		randwalk.WithMaxAttempts(g.maxAttempts),
	)
}
