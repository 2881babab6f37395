// Package lengths computes the feasible string-length interval of a compiled
// automaton.Acceptor: the shortest and the longest string its language
// contains, as a single Range value.
//
// What
//
//   - Analyze walks the acceptor's transition arena once and returns a
//     Range{Min, Max} such that:
//   - every accepted string has len in [Min, Max], and
//   - both bounds are attained by at least one accepted string.
//   - Range is a small value type with helpers:
//   - NewRange(min, max) validates and constructs,
//   - Extend(newMin, newMax) widens in place (never shrinks),
//   - Contains(n) reports interval membership,
//   - String() renders "[min,max]".
//
// Why
//
//   - Callers that generate or validate strings against a pattern need to
//     know, before doing any work, which lengths are even possible.
//   - A request for a 4-character match of `[a-z]{2}` can be rejected up
//     front instead of failing after an exhaustive search.
//
// Algorithm
//
//	Widen-only label relaxation over the state graph. Each state carries the
//	interval of path lengths from the initial state; every transition consumes
//	exactly one rune, so relaxing an edge shifts the source interval by one.
//	States re-enter the FIFO worklist only when their interval actually
//	widens, and the final answer folds the intervals of accepting states.
//
// Determinism
//
//	Analyze is a pure function of the acceptor: no randomness, no iteration
//	over maps. Calling it twice yields identical Ranges.
//
// Complexity (V = states, E = transitions)
//
//   - Time:   O(V·E) relaxations worst case; near O(V + E) on typical arenas.
//   - Memory: O(V) for the interval table, the seen set, and the worklist.
//
// Errors
//
//   - ErrNilAcceptor            if the acceptor pointer is nil.
//   - ErrInvertedRange          from NewRange on min < 0 or min > max.
//   - automaton.ErrInfinite     (wrapped) if the language is unbounded.
//   - automaton.ErrEmptyLanguage (wrapped) if nothing is accepted at all.
//
// See also: package automaton for compilation, package randwalk for sampling.
package lengths
