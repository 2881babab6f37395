package randwalk_test

import (
	"testing"

	"github.com/katalvlaran/rexgen/automaton"
	"github.com/katalvlaran/rexgen/randwalk"
)

// BenchmarkWalk_Digits measures a fixed-length numeric walk, the common
// fixture-generation shape.
func BenchmarkWalk_Digits(b *testing.B) {
	acc := automaton.MustCompile(`[0-9]{12}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := randwalk.Walk(acc, 12, 12, randwalk.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWalk_BranchyWindow measures a walk over an alternation-heavy
// acceptor with a loose window, where re-validation fires on many prefixes.
func BenchmarkWalk_BranchyWindow(b *testing.B) {
	acc := automaton.MustCompile(`([a-f]{2}|[0-9]{3}|xy){1,6}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := randwalk.Walk(acc, 2, 18, randwalk.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWalk_Exhausting measures the retry path: the window is
// unreachable, so every attempt walks to exhaustion.
func BenchmarkWalk_Exhausting(b *testing.B) {
	acc := automaton.MustCompile(`[a-z]{4}`)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := randwalk.Walk(acc, 9, 9, randwalk.WithSeed(int64(i)), randwalk.WithMaxAttempts(8))
		if err != nil {
			b.Fatal(err)
		}
		if res.Status != randwalk.StatusExhausted {
			b.Fatalf("unexpected acceptance: %+v", res)
		}
	}
}
