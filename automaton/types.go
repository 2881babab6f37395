// SPDX-License-Identifier: MIT
// Package: rexgen/automaton
//
// types.go — arena primitives and sentinel errors shared by the package.
//
// Design:
//   • States live in a flat arena addressed by StateID; no pointers between
//     states, hence no reference cycles to chase and no aliasing surprises.
//   • A Transition consumes exactly one rune from the inclusive range
//     [Lo, Hi]; the rune count is what length analysis measures, never the
//     width of the range.
//   • Everything here is immutable once Compile returns; all queries are
//     safe for concurrent readers.
//
// AI-Hints:
//   • Use errors.Is against the exported sentinels; wrapped errors keep them
//     reachable across package boundaries.
//   • ErrInfinite and ErrEmptyLanguage are declared here because the acceptor
//     owns those facts; dependent packages wrap them with their own context.

package automaton

import "errors"

// StateID addresses one state inside an Acceptor's arena.
// The initial state of every compiled Acceptor is StateID 0.
type StateID int32

// Transition is one consuming edge of the acceptor: reading any single rune
// in the inclusive range [Lo, Hi] moves the walk to Dest.
type Transition struct {
	Lo   rune
	Hi   rune
	Dest StateID
}

// State is one arena slot. Trans is kept sorted by (Lo, Hi, Dest) ascending
// and contains no range touching the UTF-16 surrogate block.
type State struct {
	Accept bool
	Trans  []Transition
}

var (
	// ErrSyntax reports a malformed pattern, wrapping the underlying
	// regexp/syntax error.
	ErrSyntax = errors.New("automaton: invalid pattern syntax")

	// ErrUnsupported reports a syntactically valid pattern that uses a
	// construct the acceptor model cannot express (word boundaries \b, \B).
	ErrUnsupported = errors.New("automaton: unsupported pattern construct")

	// ErrInfinite reports an operation that requires a finite language on an
	// acceptor whose language is unbounded.
	ErrInfinite = errors.New("automaton: language is infinite")

	// ErrEmptyLanguage reports an acceptor that accepts no string at all.
	ErrEmptyLanguage = errors.New("automaton: language is empty")
)
