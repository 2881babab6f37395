// Package rexgen generates random strings that match a regular expression
// and fit an explicit length window, and reports structural properties of
// the pattern's automaton before any generation is attempted.
//
// 🚀 What is rexgen?
//
//	A small, deterministic-when-seeded library for pattern-conformant
//	test data (IDs, codes, masked fixtures), built from four layers:
//		• automaton/ — compile a pattern into a finite-state acceptor arena
//		• lengths/   — compute the reachable [min,max] string-length range
//		• randwalk/  — one constrained random walk over the acceptor
//		• textgen/   — validation, bounds and the user-facing Generator
//
// ✨ Why choose rexgen?
//
//   - Inspect before you generate – state count, finiteness, feasible lengths
//   - Explicit failure modes – infinite patterns and infeasible windows are
//     rejected up front, never explored to exhaustion
//   - Reproducible – inject a seeded rand.Rand and outputs are deterministic
//   - Pure Go core – the acceptor is built on regexp/syntax, no cgo
//
// Quick taste:
//
//	s, err := textgen.GenerateWithin(`[A-Z]{2}[0-9]{4}`, 6, 6)
//	// s == "QX4821" (for some run)
//
// A pattern's acceptor is immutable after compilation and safe for
// concurrent walks; a Generator value is not, give each goroutine its own.
//
//	go get github.com/katalvlaran/rexgen
package rexgen
