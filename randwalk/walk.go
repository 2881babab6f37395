// Package randwalk performs a constrained random walk over a compiled
// automaton.Acceptor, emitting one string whose length falls inside a
// caller-supplied window.
//
// Each step samples one transition and one rune; there is no backtracking
// inside an attempt, so a walk may exhaust even on a feasible window.
package randwalk

import (
	"math/rand"

	"github.com/katalvlaran/rexgen/automaton"
)

// walkBufCap caps the rune buffer's initial allocation for very wide windows.
const walkBufCap = 32

// Walk runs up to MaxAttempts independent random walks over acc and returns
// the first string that lands on an accepting state with length inside
// [minLength, maxLength] and re-matches the original pattern. When every
// attempt exhausts, the final attempt's partial buffer is returned with
// StatusExhausted and a nil error: exhaustion is a documented outcome of the
// walk contract, not a failure.
//
// Preconditions the caller is expected to have established (package textgen
// does): the acceptor is finite and the window already passed bounds
// validation. Walk itself rejects only a nil acceptor and an inverted window.
func Walk(acc *automaton.Acceptor, minLength, maxLength int, opts ...Option) (Result, error) {
	if acc == nil {
		return Result{}, ErrNilAcceptor
	}
	if minLength > maxLength {
		return Result{}, ErrInvertedBounds
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var last string
	attempts := 0
	for attempts < o.MaxAttempts {
		attempts++
		text, accepted := walkOnce(acc, minLength, maxLength, o.Rand)
		if accepted {
			return Result{Text: text, Status: StatusAccepted, Attempts: attempts}, nil
		}
		last = text
	}

	return Result{Text: last, Status: StatusExhausted, Attempts: attempts}, nil
}

// walkOnce performs one attempt: a single forward walk, no backtracking.
// It returns the accumulated text and whether the walk ended Accepted.
func walkOnce(acc *automaton.Acceptor, minLength, maxLength int, rng *rand.Rand) (string, bool) {
	state := acc.Start()

	capHint := maxLength
	if capHint > walkBufCap {
		capHint = walkBufCap
	}
	if capHint < 0 {
		capHint = 0
	}
	buf := make([]rune, 0, capHint)

	for len(buf) < maxLength {
		// Transitions are sorted by range, so a seeded source reproduces
		// the same walk on the same acceptor.
		trs := acc.Transitions(state)
		if len(trs) == 0 {
			break // dead end
		}

		tr := trs[rng.Intn(len(trs))]
		buf = append(buf, tr.Lo+rune(rng.Int63n(int64(tr.Hi-tr.Lo)+1)))
		state = tr.Dest

		if len(buf) >= minLength && acc.Accepting(state) && acc.MatchString(string(buf)) {
			return string(buf), true
		}
	}

	// A zero-width window never enters the loop; this exit check is what
	// lets it return an accepted empty string without walking at all.
	text := string(buf)
	if len(buf) >= minLength && acc.Accepting(state) && acc.MatchString(text) {
		return text, true
	}

	return text, false
}
