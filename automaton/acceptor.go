// SPDX-License-Identifier: MIT
// Package: rexgen/automaton
//
// acceptor.go — the compiled Acceptor and its read-only queries.
//
// Contract:
//   • An Acceptor is immutable after Compile; every method on it is a pure
//     read and safe for concurrent use.
//   • StateIDs handed out by one Acceptor are meaningless on another.
//   • Out-of-range ids degrade to zero values (no panic): Accepting reports
//     false, Transitions reports nil.

package automaton

import "regexp"

// Acceptor is a deterministic finite-state acceptor over runes, compiled
// from a regular expression. States form an index-addressed arena; state 0
// is the initial state. Every state is reachable from the initial state and
// can reach an accepting state (dead states are pruned at compile time),
// with the single exception of the initial state itself, which is retained
// even when the language is empty.
type Acceptor struct {
	pattern   string
	states    []State
	matcher   *regexp.Regexp // anchored \A(?:pattern)\z, used for re-validation
	finite    bool
	hasAccept bool
}

// Start returns the initial state's id. It is always 0.
func (a *Acceptor) Start() StateID { return 0 }

// StateCount reports the number of states in the arena after pruning.
func (a *Acceptor) StateCount() int { return len(a.states) }

// Accepting reports whether id is an accepting state.
func (a *Acceptor) Accepting(id StateID) bool {
	if id < 0 || int(id) >= len(a.states) {
		return false
	}

	return a.states[id].Accept
}

// Transitions returns the outgoing edges of id, sorted by (Lo, Hi, Dest).
// The slice is shared with the arena: callers must treat it as read-only.
func (a *Acceptor) Transitions(id StateID) []Transition {
	if id < 0 || int(id) >= len(a.states) {
		return nil
	}

	return a.states[id].Trans
}

// IsFinite reports whether the accepted language is finite. The answer is
// computed once at compile time (cycle search over the pruned arena, see
// finiteness.go) and cached.
func (a *Acceptor) IsFinite() bool { return a.finite }

// HasAccepting reports whether any state accepts; false means the language
// is empty.
func (a *Acceptor) HasAccepting() bool { return a.hasAccept }

// Pattern returns the source pattern the acceptor was compiled from.
func (a *Acceptor) Pattern() string { return a.pattern }

// MatchString reports whether s as a whole matches the source pattern.
// The match is anchored at both ends regardless of anchors in the pattern.
func (a *Acceptor) MatchString(s string) bool { return a.matcher.MatchString(s) }
