// Package textgen generates random strings that match a regular expression
// and fit an explicit length window, and reports structural properties of a
// pattern's automaton before any generation is attempted.
//
// The package offers the following key components:
//
//   - Generator: compile a pattern once, then:
//   - Generate(): one string under the default global window.
//   - GenerateWithin(min, max): one string inside [min, max].
//   - GenerateResult(min, max): the full walk Result (text, status,
//     attempts) for callers that must distinguish exhaustion from success.
//   - Inspect(): state count, finiteness, emptiness, feasible length range.
//   - SetPattern(p): recompile and swap the active pattern.
//   - One-shot helpers mirroring that surface for throwaway use:
//     Generate(pattern), GenerateWithin(pattern, min, max), Inspect(pattern).
//   - Functional options: WithPattern, WithGlobalBounds, WithRand, WithSeed,
//     WithMaxAttempts.
//
// Validation (strict order, applied on every generate call):
//
//  1. A pattern must be set (ErrNoPattern).
//  2. The request window must not be inverted (ErrInvertedBounds); this is
//     checked before everything else.
//  3. The language must be finite (automaton.ErrInfinite, wrapped).
//  4. The language must be non-empty (automaton.ErrEmptyLanguage, wrapped).
//  5. A single-character language stretches to `(?:p){min,max}` and skips
//     the numeric checks; every other pattern is checked against the global
//     bounds, then against the feasible range, with all violated constraints
//     named together in one ErrLengthOutOfBounds message.
//
// Guarantees and caveats:
//
//   - A string returned with a nil error from Generate or GenerateWithin is
//     best-effort: the walk may have exhausted and left a partial string.
//     GenerateResult exposes the distinction; WithMaxAttempts(n) buys
//     retries.
//   - Distribution is locally uniform per step, not uniform over the
//     pattern's language (see package randwalk for the bias discussion).
//   - A Generator is not safe for concurrent use; the compiled acceptors it
//     produces are.
//
// See also: package automaton (compilation), package lengths (feasibility
// analysis), package randwalk (the walk itself).
package textgen
