package automaton_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rexgen/automaton"
)

// TestCompile_SyntaxErrors verifies that malformed patterns are rejected
// with ErrSyntax and never produce an acceptor.
func TestCompile_SyntaxErrors(t *testing.T) {
	for _, pattern := range []string{"[z-a]", "a(", "a{3,1}", "*a"} {
		acc, err := automaton.Compile(pattern)
		if !errors.Is(err, automaton.ErrSyntax) {
			t.Errorf("Compile(%q): want ErrSyntax, got %v", pattern, err)
		}
		if acc != nil {
			t.Errorf("Compile(%q): want nil acceptor on error", pattern)
		}
	}
}

// TestCompile_Unsupported verifies that word-boundary assertions are
// rejected up front rather than silently mistranslated.
func TestCompile_Unsupported(t *testing.T) {
	for _, pattern := range []string{`\bfoo`, `foo\b`, `a\Bb`} {
		if _, err := automaton.Compile(pattern); !errors.Is(err, automaton.ErrUnsupported) {
			t.Errorf("Compile(%q): want ErrUnsupported, got %v", pattern, err)
		}
	}
}

// TestCompile_LinearChain checks the arena shape of a plain literal:
// one state per consumed rune plus the initial state, accept only at the end.
func TestCompile_LinearChain(t *testing.T) {
	acc, err := automaton.Compile("abc")
	if err != nil {
		t.Fatalf("Compile(abc): %v", err)
	}
	if got := acc.StateCount(); got != 4 {
		t.Fatalf("StateCount = %d, want 4", got)
	}
	if acc.Start() != 0 {
		t.Fatalf("Start = %d, want 0", acc.Start())
	}

	state := acc.Start()
	for i, want := range []rune{'a', 'b', 'c'} {
		trs := acc.Transitions(state)
		if len(trs) != 1 {
			t.Fatalf("step %d: len(Transitions) = %d, want 1", i, len(trs))
		}
		if trs[0].Lo != want || trs[0].Hi != want {
			t.Fatalf("step %d: range [%q,%q], want [%q,%q]", i, trs[0].Lo, trs[0].Hi, want, want)
		}
		if acc.Accepting(state) {
			t.Fatalf("step %d: state %d accepting before the full literal", i, state)
		}
		state = trs[0].Dest
	}
	if !acc.Accepting(state) {
		t.Fatalf("final state %d not accepting", state)
	}
	if len(acc.Transitions(state)) != 0 {
		t.Fatalf("final state %d has outgoing transitions", state)
	}
}

// TestCompile_MergesAndSortsRanges exercises the boundary sweep: three
// alternated classes with one contiguous pair must collapse into two sorted,
// non-overlapping ranges.
func TestCompile_MergesAndSortsRanges(t *testing.T) {
	acc, err := automaton.Compile("[b-d]|[f-h]|a")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	trs := acc.Transitions(acc.Start())
	if len(trs) != 2 {
		t.Fatalf("len(Transitions) = %d, want 2 (got %v)", len(trs), trs)
	}
	if trs[0].Lo != 'a' || trs[0].Hi != 'd' {
		t.Errorf("first range [%q,%q], want [a,d]", trs[0].Lo, trs[0].Hi)
	}
	if trs[1].Lo != 'f' || trs[1].Hi != 'h' {
		t.Errorf("second range [%q,%q], want [f,h]", trs[1].Lo, trs[1].Hi)
	}
	if trs[0].Dest != trs[1].Dest {
		t.Errorf("ranges reach different states: %d vs %d", trs[0].Dest, trs[1].Dest)
	}
}

// TestCompile_CaseFolding confirms folded literals cover all case variants,
// including the Kelvin sign for k.
func TestCompile_CaseFolding(t *testing.T) {
	acc, err := automaton.Compile("(?i)k")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	trs := acc.Transitions(acc.Start())
	covers := func(r rune) bool {
		for _, tr := range trs {
			if r >= tr.Lo && r <= tr.Hi {
				return true
			}
		}

		return false
	}
	for _, r := range []rune{'k', 'K', 'K'} {
		if !covers(r) {
			t.Errorf("folded transitions do not cover %q", r)
		}
	}
	if covers('j') {
		t.Errorf("folded transitions cover unrelated rune j")
	}
}

// TestCompile_AnyRuneAvoidsSurrogatesAndNL checks that the dot's transition
// ranges exclude both the newline and the whole surrogate block.
func TestCompile_AnyRuneAvoidsSurrogatesAndNL(t *testing.T) {
	acc, err := automaton.Compile(".")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, tr := range acc.Transitions(acc.Start()) {
		if tr.Lo > tr.Hi {
			t.Errorf("inverted range [%d,%d]", tr.Lo, tr.Hi)
		}
		if tr.Lo <= '\n' && '\n' <= tr.Hi {
			t.Errorf("range [%d,%d] includes newline", tr.Lo, tr.Hi)
		}
		if tr.Hi >= 0xD800 && tr.Lo <= 0xDFFF {
			t.Errorf("range [%d,%d] intersects surrogate block", tr.Lo, tr.Hi)
		}
		if tr.Hi > 0x10FFFF {
			t.Errorf("range [%d,%d] exceeds max rune", tr.Lo, tr.Hi)
		}
	}
}

// TestCompile_EmptyPattern: the empty pattern accepts exactly the empty
// string with a single accepting initial state.
func TestCompile_EmptyPattern(t *testing.T) {
	acc, err := automaton.Compile("")
	if err != nil {
		t.Fatalf("Compile(\"\"): %v", err)
	}
	if got := acc.StateCount(); got != 1 {
		t.Errorf("StateCount = %d, want 1", got)
	}
	if !acc.Accepting(acc.Start()) {
		t.Errorf("initial state not accepting")
	}
	if !acc.IsFinite() {
		t.Errorf("IsFinite = false, want true")
	}
	if !acc.MatchString("") {
		t.Errorf("MatchString(\"\") = false")
	}
	if acc.MatchString("x") {
		t.Errorf("MatchString(\"x\") = true")
	}
}

// TestCompile_EmptyLanguage: a pattern no string can satisfy keeps only the
// bare initial state and reports no accepting states.
func TestCompile_EmptyLanguage(t *testing.T) {
	acc, err := automaton.Compile("a$b")
	if err != nil {
		t.Fatalf("Compile(a$b): %v", err)
	}
	if acc.HasAccepting() {
		t.Errorf("HasAccepting = true, want false")
	}
	if got := acc.StateCount(); got != 1 {
		t.Errorf("StateCount = %d, want 1", got)
	}
	if len(acc.Transitions(acc.Start())) != 0 {
		t.Errorf("bare initial state has transitions")
	}
	if acc.Accepting(acc.Start()) {
		t.Errorf("bare initial state accepts")
	}
}

// TestCompile_Anchors: explicit text anchors change nothing for a whole-string
// acceptor, and a mid-pattern anchor that kills a branch prunes it away.
func TestCompile_Anchors(t *testing.T) {
	anchored, err := automaton.Compile("^ab$")
	if err != nil {
		t.Fatalf("Compile(^ab$): %v", err)
	}
	if got := anchored.StateCount(); got != 3 {
		t.Errorf("StateCount = %d, want 3", got)
	}
	if !anchored.MatchString("ab") || anchored.MatchString("abb") {
		t.Errorf("anchored acceptor matches wrong strings")
	}

	// The starred group can never complete an iteration ($ blocks the c),
	// so the acceptor degenerates to the plain literal a.
	degen, err := automaton.Compile("a(b$c)*")
	if err != nil {
		t.Fatalf("Compile(a(b$c)*): %v", err)
	}
	if !degen.IsFinite() {
		t.Errorf("IsFinite = false, want true (the loop is dead)")
	}
	if !degen.MatchString("a") {
		t.Errorf("MatchString(a) = false")
	}
	state := degen.Start()
	trs := degen.Transitions(state)
	if len(trs) != 1 || trs[0].Lo != 'a' {
		t.Fatalf("initial transitions = %v, want single [a,a]", trs)
	}
	if got := degen.Transitions(trs[0].Dest); len(got) != 0 {
		t.Errorf("post-a state keeps dead transitions: %v", got)
	}
}

// TestCompile_AlternationSharesPrefix: determinization folds the shared
// first rune of (ab|ac) into a single path with one branching state.
func TestCompile_AlternationSharesPrefix(t *testing.T) {
	acc, err := automaton.Compile("ab|ac")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	trs := acc.Transitions(acc.Start())
	if len(trs) != 1 {
		t.Fatalf("initial transitions = %v, want single [a,a]", trs)
	}
	mid := trs[0].Dest
	midTrs := acc.Transitions(mid)
	if len(midTrs) != 1 || midTrs[0].Lo != 'b' || midTrs[0].Hi != 'c' {
		t.Fatalf("mid transitions = %v, want single [b,c]", midTrs)
	}
	if !acc.Accepting(midTrs[0].Dest) {
		t.Errorf("final state not accepting")
	}
}

// TestAcceptor_OutOfRangeQueries: foreign ids degrade to zero values.
func TestAcceptor_OutOfRangeQueries(t *testing.T) {
	acc, err := automaton.Compile("x")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if acc.Accepting(-1) || acc.Accepting(99) {
		t.Errorf("out-of-range Accepting = true")
	}
	if acc.Transitions(-1) != nil || acc.Transitions(99) != nil {
		t.Errorf("out-of-range Transitions != nil")
	}
}

// TestAcceptor_MatchStringAnchoring: the re-validation matcher must match
// whole strings only, regardless of where the pattern occurs.
func TestAcceptor_MatchStringAnchoring(t *testing.T) {
	acc, err := automaton.Compile("b+")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !acc.MatchString("bb") {
		t.Errorf("MatchString(bb) = false")
	}
	for _, s := range []string{"abb", "bba", "", "aba"} {
		if acc.MatchString(s) {
			t.Errorf("MatchString(%q) = true, want false", s)
		}
	}
}

// TestMustCompile panics on bad input and returns the acceptor otherwise.
func TestMustCompile(t *testing.T) {
	if acc := automaton.MustCompile("ok"); acc == nil {
		t.Fatalf("MustCompile(ok) = nil")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("MustCompile([z-a]) did not panic")
		}
	}()
	automaton.MustCompile("[z-a]")
}
