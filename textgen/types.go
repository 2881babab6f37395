// SPDX-License-Identifier: MIT
// Package: rexgen/textgen
//
// types.go — generator configuration, properties snapshot, and sentinels.
//
// Contract (strict):
//   - Options are functional (type Option func(*Options)).
//   - Option constructors VALIDATE: nil sources panic, numeric violations
//     are recorded and surfaced by New as ErrGlobalBounds.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; default bounds live on the Generator instance.

package textgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/rexgen/lengths"
)

// Default length window applied when the caller does not override it with
// WithGlobalBounds.
const (
	// DefaultMinLength is the smallest length Generate emits by default.
	DefaultMinLength = 1

	// DefaultMaxLength leaves the upper bound effectively open; the pattern's
	// feasible range narrows it before any walk begins.
	DefaultMaxLength = math.MaxInt32
)

// Sentinel errors for the generation facade.
var (
	// ErrNoPattern is returned when an operation needs a compiled pattern
	// and none has been set.
	ErrNoPattern = errors.New("textgen: no pattern set")

	// ErrInvertedBounds is returned when a request's minLength exceeds its
	// maxLength; checked before every other validation.
	ErrInvertedBounds = errors.New("textgen: minLength exceeds maxLength")

	// ErrLengthOutOfBounds is returned when a request window violates the
	// global bounds or the pattern's feasible range; the message names every
	// violated constraint, not only the first.
	ErrLengthOutOfBounds = errors.New("textgen: length out of bounds")

	// ErrGlobalBounds is returned by New when WithGlobalBounds received a
	// negative minimum or an inverted pair.
	ErrGlobalBounds = errors.New("textgen: invalid global bounds")
)

// Properties is an immutable snapshot of a compiled pattern's automaton.
type Properties struct {
	// StateCount is the number of reachable states in the acceptor.
	StateCount int

	// Finite reports whether the language is bounded.
	Finite bool

	// Empty reports whether the language contains no strings at all.
	Empty bool

	// Feasible is the inclusive window of accepted lengths; meaningful only
	// when Finite is true and Empty is false.
	Feasible lengths.Range
}

// Option customizes Generator construction by mutating an Options instance
// before the first compilation happens.
type Option func(*Options)

// Options holds the knobs New applies over defaults. Fields stay unexported;
// everything flows through the With* constructors.
type Options struct {
	pattern     string     // regex source, compiled by New when hasPattern
	hasPattern  bool       // distinguishes "" (a valid pattern) from unset
	globalMin   int        // default minimum length for no-argument Generate
	globalMax   int        // default maximum length for no-argument Generate
	rng         *rand.Rand // randomness source handed to the walker
	maxAttempts int        // walk retry budget, always ≥ 1
	err         error      // recorded option violation, surfaced by New
}

// DefaultOptions returns Options with deterministic defaults:
//   - global window [DefaultMinLength, DefaultMaxLength],
//   - time-seeded randomness,
//   - a single walk attempt.
func DefaultOptions() Options {
	return Options{
		globalMin:   DefaultMinLength,
		globalMax:   DefaultMaxLength,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		maxAttempts: 1,
	}
}

// WithPattern sets the regex source compiled during New. The empty pattern
// is valid (it matches exactly the empty string), hence the explicit flag.
func WithPattern(pattern string) Option {
	return func(o *Options) {
		o.pattern = pattern
		o.hasPattern = true
	}
}

// WithGlobalBounds overrides the default length window for Generate.
// A negative minimum or an inverted pair is recorded and surfaced by New
// as ErrGlobalBounds.
func WithGlobalBounds(min, max int) Option {
	return func(o *Options) {
		if min < 0 || min > max {
			o.err = fmt.Errorf("%w: [%d,%d]", ErrGlobalBounds, min, max)
			return
		}
		o.globalMin, o.globalMax = min, max
	}
}

// WithRand provides an explicit randomness source. Panics on nil; prefer
// WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("textgen: WithRand(nil)")
	}

	return func(o *Options) {
		o.rng = r
	}
}

// WithSeed replaces the randomness source with a deterministically seeded
// one. Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts bounds how many walks one generate call may try before
// settling for a best-effort result; values < 1 coerce to 1.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.maxAttempts = n
	}
}
