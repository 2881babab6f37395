// Package randwalk emits strings from a compiled automaton.Acceptor by
// walking its transition graph at random under a caller-supplied length
// window.
//
// What
//
//   - Walk(acc, minLength, maxLength, opts...) returns a Result holding:
//   - Text: the generated string,
//   - Status: StatusAccepted or StatusExhausted,
//   - Attempts: how many walks were consumed.
//   - Per step the walker picks one outgoing transition uniformly, then one
//     rune uniformly from that transition's inclusive range, appends it, and
//     moves on.
//   - A walk stops Accepted the moment three facts hold at once: the buffer
//     has reached minLength, the current state is accepting, and the buffer
//     re-matches the original pattern end to end.
//   - A walk stops Exhausted when it hits a dead end or fills maxLength runes
//     without acceptance. Exhaustion returns the partial buffer and a nil
//     error; it is an outcome, not a failure.
//
// Why
//
//	Test-data and fixture generators need strings that satisfy a pattern AND
//	a length budget (IDs, codes, masked fields). Walking the acceptor builds
//	such strings directly instead of generate-and-filter loops over the whole
//	pattern language.
//
// Distribution
//
//	Transition and rune choices are locally uniform, which biases the global
//	distribution toward the acceptor's topology: branches with few outgoing
//	transitions are overrepresented relative to a uniform draw over all
//	matching strings. Callers needing exact uniformity must layer their own
//	weighting.
//
// No backtracking
//
//	Inside one attempt the walker never rewinds. Topology can therefore trap
//	a walk in a too-short dead end even when the window was validated as
//	feasible. WithMaxAttempts(n) bounds how many fresh walks one call may
//	try; the default is a single attempt.
//
// Determinism
//
//	Transitions enumerate in sorted order, so a source seeded via WithSeed
//	reproduces the identical walk sequence on the identical acceptor.
//
// Concurrency
//
//	The acceptor is read-only and safe to share. A *rand.Rand is not: give
//	each concurrent caller its own source via WithRand or WithSeed.
//
// Errors
//
//   - ErrNilAcceptor     if the acceptor pointer is nil.
//   - ErrInvertedBounds  if minLength exceeds maxLength.
//
// See also: package lengths for feasibility analysis, package textgen for
// the validated generation facade.
package randwalk
