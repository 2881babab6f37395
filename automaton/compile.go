// SPDX-License-Identifier: MIT
// Package: rexgen/automaton
//
// compile.go — pattern → deterministic acceptor arena.
//
// Pipeline:
//  1. syntax.Parse (Perl flags) → syntax.Compile to a bytecode program.
//  2. Reject word-boundary assertions (no look-around in the acceptor model).
//  3. Expand every consuming instruction's rune set into surrogate-free
//     spans; case-folded single-rune instructions are unfolded explicitly.
//  4. Subset construction over the program: an acceptor state is the set of
//     consuming instructions reachable by ε-moves from one input position,
//     plus its accept flag. Transition labels come from a boundary sweep over
//     the member spans, so sibling ranges never overlap and arrive sorted.
//  5. Prune states that cannot reach acceptance, remap ids with the initial
//     state pinned at 0.
//
// Anchor semantics (one-line mode, as compiled under syntax.Perl):
//   - begin-text assertions are traversable only in the position-0 closure;
//   - end-text assertions flip a closure path into end-seen mode, where a
//     reachable match still accepts but no further rune may be consumed;
//   - (?m) line anchors are interpreted as text anchors.
//
// Complexity: closure is O(P) per call (P = program size); the sweep runs one
// closure per atomic interval. Subset construction is worst-case exponential
// in P, as for any determinization; typical fixture patterns stay tiny.
//
// AI-Hints:
//   • Compile once and share: the result is immutable and goroutine-safe.
//   • MustCompile is for fixtures and package-level vars, like
//     regexp.MustCompile.

package automaton

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// span is one inclusive rune interval of a consuming instruction.
type span struct {
	lo, hi rune
}

// UTF-16 surrogate block; string(rune) mangles these code points, so no
// transition may emit them.
const (
	surrogateLo rune = 0xD800
	surrogateHi rune = 0xDFFF
)

// Compile translates pattern (Perl syntax, as in the regexp package) into a
// deterministic finite-state acceptor. It fails with ErrSyntax on malformed
// patterns and ErrUnsupported on word-boundary assertions.
func Compile(pattern string) (*Acceptor, error) {
	// 1) Parse and lower to the regexp bytecode program.
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	prog, err := syntax.Compile(re.Simplify())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	// 2) The acceptor model has no notion of look-around.
	for pc := range prog.Inst {
		inst := &prog.Inst[pc]
		if inst.Op != syntax.InstEmptyWidth {
			continue
		}
		if syntax.EmptyOp(inst.Arg)&(syntax.EmptyWordBoundary|syntax.EmptyNoWordBoundary) != 0 {
			return nil, fmt.Errorf(`%w: word boundary \b`, ErrUnsupported)
		}
	}

	// 3) Anchored matcher for whole-string re-validation during walks.
	matcher, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	// 4) Per-instruction rune spans, surrogate-free.
	spans := make([][]span, len(prog.Inst))
	for pc := range prog.Inst {
		spans[pc] = instSpans(&prog.Inst[pc])
	}

	// 5) Determinize, then drop everything that cannot reach acceptance.
	arena := translate(prog, spans)
	arena, hasAccept := prune(arena)

	return &Acceptor{
		pattern:   pattern,
		states:    arena,
		matcher:   matcher,
		finite:    !hasCycle(arena),
		hasAccept: hasAccept,
	}, nil
}

// MustCompile is like Compile but panics on error. It simplifies safe
// initialization of package-level acceptors.
func MustCompile(pattern string) *Acceptor {
	a, err := Compile(pattern)
	if err != nil {
		panic(err)
	}

	return a
}

// instSpans expands one instruction's rune set into inclusive spans.
// Non-consuming instructions yield nil. A consuming instruction whose set is
// empty after surrogate removal can never fire and is treated as dead.
func instSpans(inst *syntax.Inst) []span {
	switch inst.Op {
	case syntax.InstRune1:
		return splitSurrogates([]span{{inst.Rune[0], inst.Rune[0]}})
	case syntax.InstRune:
		// A one-element rune list is a literal, optionally case-folded;
		// longer lists are (lo, hi) pairs.
		if len(inst.Rune) == 1 {
			r := inst.Rune[0]
			raw := []span{{r, r}}
			if syntax.Flags(inst.Arg)&syntax.FoldCase != 0 {
				for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
					raw = append(raw, span{f, f})
				}
			}

			return splitSurrogates(raw)
		}
		raw := make([]span, 0, len(inst.Rune)/2)
		for i := 0; i+1 < len(inst.Rune); i += 2 {
			raw = append(raw, span{inst.Rune[i], inst.Rune[i+1]})
		}

		return splitSurrogates(raw)
	case syntax.InstRuneAny:
		return splitSurrogates([]span{{0, utf8.MaxRune}})
	case syntax.InstRuneAnyNotNL:
		return splitSurrogates([]span{{0, '\n' - 1}, {'\n' + 1, utf8.MaxRune}})
	}

	return nil
}

// splitSurrogates cuts the surrogate block out of every span, dropping spans
// that end up empty.
func splitSurrogates(in []span) []span {
	out := make([]span, 0, len(in))
	for _, sp := range in {
		if sp.hi < surrogateLo || sp.lo > surrogateHi {
			out = append(out, sp)
			continue
		}
		if sp.lo < surrogateLo {
			out = append(out, span{sp.lo, surrogateLo - 1})
		}
		if sp.hi > surrogateHi {
			out = append(out, span{surrogateHi + 1, sp.hi})
		}
	}

	return out
}

// progView bundles the compiled program with its per-instruction spans for
// the subset construction.
type progView struct {
	prog  *syntax.Prog
	spans [][]span
}

// closureNode is one frame of the ε-walk: a program point plus whether the
// path already crossed an end-text assertion.
type closureNode struct {
	pc      uint32
	endSeen bool
}

// closure gathers the consuming instructions reachable from starts without
// reading input, and reports whether the match instruction is reachable
// (i.e. the position is accepting). atStart marks the position-0 closure.
func (v *progView) closure(starts []uint32, atStart bool) ([]uint32, bool) {
	n := len(v.prog.Inst)
	var visited [2][]bool
	visited[0] = make([]bool, n)
	visited[1] = make([]bool, n)

	stack := make([]closureNode, 0, len(starts))
	for _, pc := range starts {
		stack = append(stack, closureNode{pc: pc})
	}

	var (
		out    []uint32
		accept bool
	)
	for len(stack) > 0 {
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		es := 0
		if nd.endSeen {
			es = 1
		}
		if visited[es][nd.pc] {
			continue
		}
		visited[es][nd.pc] = true

		inst := &v.prog.Inst[nd.pc]
		switch inst.Op {
		case syntax.InstAlt, syntax.InstAltMatch:
			stack = append(stack,
				closureNode{pc: inst.Out, endSeen: nd.endSeen},
				closureNode{pc: inst.Arg, endSeen: nd.endSeen})
		case syntax.InstCapture, syntax.InstNop:
			stack = append(stack, closureNode{pc: inst.Out, endSeen: nd.endSeen})
		case syntax.InstEmptyWidth:
			op := syntax.EmptyOp(inst.Arg)
			if op&(syntax.EmptyBeginText|syntax.EmptyBeginLine) != 0 && !atStart {
				break
			}
			end := nd.endSeen || op&(syntax.EmptyEndText|syntax.EmptyEndLine) != 0
			stack = append(stack, closureNode{pc: inst.Out, endSeen: end})
		case syntax.InstMatch:
			accept = true
		case syntax.InstRune, syntax.InstRune1, syntax.InstRuneAny, syntax.InstRuneAnyNotNL:
			if !nd.endSeen && len(v.spans[nd.pc]) > 0 {
				out = append(out, nd.pc)
			}
		}
		// InstFail: nothing reachable through it.
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, accept
}

// setKey canonicalizes a closure result for interning. The pc list must be
// sorted; accept is part of the identity.
func setKey(pcs []uint32, accept bool) string {
	var b strings.Builder
	if accept {
		b.WriteByte('A')
	} else {
		b.WriteByte('r')
	}
	for _, pc := range pcs {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(uint64(pc), 10))
	}

	return b.String()
}

// translate runs the subset construction, discovering states breadth-first
// from the position-0 closure. The returned arena has state 0 as the initial
// state; it may still contain states that cannot reach acceptance.
func translate(prog *syntax.Prog, spans [][]span) []State {
	v := &progView{prog: prog, spans: spans}
	index := make(map[string]StateID)

	var (
		arena []State
		sets  [][]uint32
	)
	intern := func(pcs []uint32, accept bool) StateID {
		key := setKey(pcs, accept)
		if id, ok := index[key]; ok {
			return id
		}
		id := StateID(len(arena))
		index[key] = id
		arena = append(arena, State{Accept: accept})
		sets = append(sets, pcs)

		return id
	}

	startPCs, startAccept := v.closure([]uint32{uint32(prog.Start)}, true)
	intern(startPCs, startAccept)

	// The loop bound grows as intern discovers new states.
	for i := 0; i < len(arena); i++ {
		trs := v.edges(sets[i], intern)
		arena[i].Trans = trs
	}

	return arena
}

// edges derives the outgoing transitions of one subset state. A boundary
// sweep over all member spans yields atomic intervals; each interval's
// successor is the closure over the Outs of the members covering it.
// Adjacent intervals reaching the same state are coalesced, so the result is
// sorted by (Lo, Hi, Dest) and free of overlaps by construction.
func (v *progView) edges(pcs []uint32, intern func([]uint32, bool) StateID) []Transition {
	// 1) Cut points: every span start and one-past-end.
	var bounds []rune
	for _, pc := range pcs {
		for _, sp := range v.spans[pc] {
			bounds = append(bounds, sp.lo, sp.hi+1)
		}
	}
	if len(bounds) == 0 {
		return nil
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	bounds = dedupRunes(bounds)

	// 2) One successor state per covered atomic interval.
	var (
		trs  []Transition
		outs []uint32
	)
	for k := 0; k+1 < len(bounds); k++ {
		lo, hi := bounds[k], bounds[k+1]-1
		outs = outs[:0]
		for _, pc := range pcs {
			if spansContain(v.spans[pc], lo) {
				outs = append(outs, v.prog.Inst[pc].Out)
			}
		}
		if len(outs) == 0 {
			continue
		}
		next, accept := v.closure(outs, false)
		trs = append(trs, Transition{Lo: lo, Hi: hi, Dest: intern(next, accept)})
	}

	// 3) Coalesce contiguous intervals with one destination.
	merged := trs[:0]
	for _, tr := range trs {
		if n := len(merged); n > 0 && merged[n-1].Dest == tr.Dest && merged[n-1].Hi+1 == tr.Lo {
			merged[n-1].Hi = tr.Hi
			continue
		}
		merged = append(merged, tr)
	}

	return merged
}

// dedupRunes compacts a sorted rune slice in place.
func dedupRunes(rs []rune) []rune {
	out := rs[:1]
	for _, r := range rs[1:] {
		if r != out[len(out)-1] {
			out = append(out, r)
		}
	}

	return out
}

// spansContain reports whether any span includes r.
func spansContain(spans []span, r rune) bool {
	for _, sp := range spans {
		if r >= sp.lo && r <= sp.hi {
			return true
		}
	}

	return false
}

// prune removes states that cannot reach an accepting state and remaps ids
// compactly. Reachability from the start needs no pass of its own: translate
// only ever creates discovered states. The initial state survives even when
// the whole language is empty; the second result reports whether any
// accepting state remains.
func prune(arena []State) ([]State, bool) {
	n := len(arena)
	rev := make([][]StateID, n)
	live := make([]bool, n)
	var queue []StateID
	for id := 0; id < n; id++ {
		for _, tr := range arena[id].Trans {
			rev[tr.Dest] = append(rev[tr.Dest], StateID(id))
		}
		if arena[id].Accept {
			live[id] = true
			queue = append(queue, StateID(id))
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range rev[s] {
			if !live[p] {
				live[p] = true
				queue = append(queue, p)
			}
		}
	}

	// No accepting state reachable from the start means none exists at all.
	if !live[0] {
		return []State{{}}, false
	}

	newID := make([]StateID, n)
	next := StateID(0)
	for id := 0; id < n; id++ {
		if live[id] {
			newID[id] = next
			next++
		}
	}

	out := make([]State, 0, next)
	for id := 0; id < n; id++ {
		if !live[id] {
			continue
		}
		st := State{Accept: arena[id].Accept}
		for _, tr := range arena[id].Trans {
			if live[tr.Dest] {
				st.Trans = append(st.Trans, Transition{Lo: tr.Lo, Hi: tr.Hi, Dest: newID[tr.Dest]})
			}
		}
		out = append(out, st)
	}

	return out, true
}
