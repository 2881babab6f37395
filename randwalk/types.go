// Package randwalk provides tunable options, statuses, and error definitions
// for the constrained random walk over an automaton.Acceptor.
package randwalk

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors for walk execution.
var (
	// ErrNilAcceptor is returned if a nil acceptor pointer is passed.
	ErrNilAcceptor = errors.New("randwalk: acceptor is nil")

	// ErrInvertedBounds is returned when minLength exceeds maxLength.
	ErrInvertedBounds = errors.New("randwalk: minLength exceeds maxLength")
)

// Status classifies how a walk ended.
type Status uint8

const (
	// StatusAccepted marks a walk that stopped on an accepting state with a
	// verified match inside the requested length window.
	StatusAccepted Status = iota

	// StatusExhausted marks a walk that hit a dead end or ran out of room
	// before landing on an accepting state.
	StatusExhausted
)

// String renders the status for logs and test output.
func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a Walk call:
//   - Text: the accepted string, or the final attempt's partial buffer.
//   - Status: StatusAccepted or StatusExhausted.
//   - Attempts: number of attempts consumed (always ≥ 1).
type Result struct {
	Text     string
	Status   Status
	Attempts int
}

// Option configures Walk behavior via functional arguments.
type Option func(*Options)

// Options holds parameters that customize the walk.
type Options struct {
	// Rand drives transition and rune choices. Seed it via WithSeed or
	// WithRand for reproducible output.
	Rand *rand.Rand

	// MaxAttempts bounds how many independent walks one call may try
	// before reporting exhaustion. Values below 1 are coerced to 1.
	MaxAttempts int
}

// DefaultOptions returns Options with sane defaults:
//   - time-seeded random source,
//   - a single attempt (MaxAttempts == 1).
func DefaultOptions() Options {
	return Options{
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		MaxAttempts: 1,
	}
}

// WithRand sets a custom random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("randwalk: WithRand(nil)")
	}

	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed replaces the random source with a deterministically seeded one.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts bounds retries per Walk call; values < 1 coerce to 1.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.MaxAttempts = n
	}
}
