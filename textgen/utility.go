// SPDX-License-Identifier: MIT
// Package: rexgen/textgen
//
// utility.go — package-level one-shots for callers that do not need a
// long-lived Generator. Each call compiles from scratch; reuse a Generator
// when the same pattern is exercised repeatedly.

package textgen

// Generate compiles pattern and emits one string using the default global
// window (length ≥ 1, upper bound clamped to the pattern's feasible range).
func Generate(pattern string) (string, error) {
	g, err := New(WithPattern(pattern))
	if err != nil {
		return "", err
	}

	return g.Generate()
}

// GenerateWithin compiles pattern and emits one string whose length lies in
// [minLength, maxLength].
func GenerateWithin(pattern string, minLength, maxLength int) (string, error) {
	g, err := New(WithPattern(pattern))
	if err != nil {
		return "", err
	}

	return g.GenerateWithin(minLength, maxLength)
}

// Inspect compiles pattern and reports its automaton's properties.
func Inspect(pattern string) (Properties, error) {
	g, err := New(WithPattern(pattern))
	if err != nil {
		return Properties{}, err
	}

	return g.Inspect()
}
