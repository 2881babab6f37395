package lengths

import (
	"fmt"

	"github.com/katalvlaran/rexgen/automaton"
)

// Analyze computes the tightest [min,max] interval of string lengths
// reachable among the acceptor's accepting states: the feasible lengths of
// the language. It is deterministic and idempotent; two calls on the same
// acceptor return equal Ranges.
//
// Preconditions, checked in order:
//   - acc must be non-nil (ErrNilAcceptor),
//   - acc must be finite (wraps automaton.ErrInfinite),
//   - acc must accept at least one string (wraps automaton.ErrEmptyLanguage).
//
// Algorithm: widen-only label relaxation over the arena.
//  1. Seed the initial state with the point interval [0,0].
//  2. Pop a state from the FIFO worklist; every outgoing transition
//     contributes exactly one rune, so the candidate interval for its
//     destination is the source interval shifted by one. Unseen destinations
//     record it and enqueue; seen destinations re-enqueue only when the
//     candidate widens their recorded interval.
//  3. When the worklist drains, fold the intervals of all accepting states:
//     the minimum of their minima and the maximum of their maxima.
//
// Termination holds because compiled acceptors keep only states on accepting
// paths, so a finite acceptor's arena is acyclic and every recorded bound is
// capped by the longest path.
//
// Complexity: O(V·E) relaxations worst case, O(V) space.
func Analyze(acc *automaton.Acceptor) (Range, error) {
	if acc == nil {
		return Range{}, ErrNilAcceptor
	}
	if !acc.IsFinite() {
		return Range{}, fmt.Errorf("lengths: Analyze: %w", automaton.ErrInfinite)
	}
	if !acc.HasAccepting() {
		return Range{}, fmt.Errorf("lengths: Analyze: %w", automaton.ErrEmptyLanguage)
	}

	// 1) Distance intervals, indexed by state id; seen marks recorded ones.
	n := acc.StateCount()
	dist := make([]Range, n)
	seen := make([]bool, n)

	start := acc.Start()
	seen[start] = true
	queue := make([]automaton.StateID, 0, n)
	queue = append(queue, start)

	// 2) Relax until stable.
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		from := dist[s]
		for _, tr := range acc.Transitions(s) {
			newMin, newMax := from.Min+1, from.Max+1
			d := tr.Dest
			if !seen[d] {
				seen[d] = true
				dist[d] = Range{Min: newMin, Max: newMax}
				queue = append(queue, d)
				continue
			}
			if dist[d].Extend(newMin, newMax) {
				queue = append(queue, d)
			}
		}
	}

	// 3) Fold accepting states into the overall feasible interval.
	var (
		out   Range
		found bool
	)
	for id := automaton.StateID(0); int(id) < n; id++ {
		if !seen[id] || !acc.Accepting(id) {
			continue
		}
		if !found {
			out = dist[id]
			found = true
			continue
		}
		if dist[id].Min < out.Min {
			out.Min = dist[id].Min
		}
		if dist[id].Max > out.Max {
			out.Max = dist[id].Max
		}
	}
	if !found {
		return Range{}, fmt.Errorf("lengths: Analyze: %w", automaton.ErrEmptyLanguage)
	}

	return out, nil
}
