// SPDX-License-Identifier: MIT
// Package: rexgen/automaton
//
// Package automaton compiles regular expressions into deterministic
// finite-state acceptors laid out as flat, index-addressed arenas, and
// answers structural questions about them: state count, finiteness of the
// recognized language, per-state accept flags and sorted character-range
// transitions.
//
// # What & Why
//
// Random text generation and length analysis both need an explicit state
// graph, not a matcher: they enumerate transitions, pick among them, and
// measure path lengths. The regexp package hides its states, so this package
// rebuilds them from the regexp/syntax bytecode via subset construction.
// The resulting acceptor is deterministic, which makes per-state accept
// flags exact: a walk standing on an accepting state may legally stop there.
//
// # Model
//
//   - State: accept flag + outgoing Transitions, each an inclusive rune
//     range [Lo, Hi] and a destination StateID.
//   - Every transition consumes exactly one rune; range width never affects
//     length accounting.
//   - State 0 is the initial state. After compilation every state is
//     reachable and can reach an accepting state (the initial state is kept
//     even when the language is empty).
//   - Transitions are sorted by (Lo, Hi, Dest) and never overlap, never
//     touch the UTF-16 surrogate block.
//
// # Supported syntax
//
// Everything regexp's Perl dialect accepts, with two carve-outs: word
// boundaries (\b, \B) fail with ErrUnsupported, and (?m) line anchors are
// interpreted as text anchors. ^ and $ keep their one-line text-anchor
// meaning. Case folding, character classes, Unicode classes, repetition
// and alternation all translate structurally.
//
// # Complexity
//
//   - Compile: worst-case exponential in the pattern (determinization);
//     linear in practice for the short, mostly-literal patterns used for
//     fixtures and test data.
//   - All acceptor queries: O(1), except Transitions' slice walk at callers.
//
// # Errors
//
//   - ErrSyntax — malformed pattern (wraps the regexp/syntax error).
//   - ErrUnsupported — valid syntax outside the acceptor model.
//   - ErrInfinite, ErrEmptyLanguage — language-level facts owned by this
//     package; sibling packages wrap them when analysis or generation hits
//     them.
//
// See also: rexgen/lengths for reachable-length analysis and rexgen/randwalk
// for constrained random walks over these acceptors.
package automaton
