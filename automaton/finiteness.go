// SPDX-License-Identifier: MIT
// Package: rexgen/automaton
//
// finiteness.go — cycle search over the pruned arena.
//
// After pruning, every remaining state lies on some path from the initial
// state to an accepting state, so any cycle found here can be pumped by an
// accepted string: a cycle ⇔ the language is infinite. The walk is an
// iterative three-color DFS (white = unvisited, gray = on the stack,
// black = done); a gray→gray edge is the back edge that proves the cycle.
//
// Complexity: O(V + E) time, O(V) space.

package automaton

// Visitation states of the cycle search.
const (
	white = iota
	gray
	black
)

// dfsFrame is one explicit recursion frame: the state being explored and the
// index of its next unvisited transition.
type dfsFrame struct {
	id   StateID
	next int
}

// hasCycle reports whether the arena contains any directed cycle,
// self-loops included.
func hasCycle(states []State) bool {
	color := make([]uint8, len(states))
	var stack []dfsFrame

	for s := range states {
		if color[s] != white {
			continue
		}
		color[s] = gray
		stack = append(stack[:0], dfsFrame{id: StateID(s)})

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			trs := states[f.id].Trans

			if f.next < len(trs) {
				d := trs[f.next].Dest
				f.next++
				switch color[d] {
				case white:
					color[d] = gray
					stack = append(stack, dfsFrame{id: d})
				case gray:
					return true
				}
				continue
			}

			color[f.id] = black
			stack = stack[:len(stack)-1]
		}
	}

	return false
}
