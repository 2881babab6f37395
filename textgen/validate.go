// SPDX-License-Identifier: MIT
// Package: rexgen/textgen
//
// validate.go — window checks and the single-character stretch rewrite.

package textgen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rexgen/automaton"
)

// maxRepeat is Go's regexp repetition ceiling: {n,m} with a count above it
// does not compile, so stretch rewrites cap the upper repeat here.
const maxRepeat = 1000

// ensureWindow checks a requested window against an allowed one and folds
// every violation into a single ErrLengthOutOfBounds: a minimum below the
// allowed floor and a maximum above the allowed ceiling are both named,
// never short-circuited.
func ensureWindow(reqMin, reqMax, allowedMin, allowedMax int) error {
	var clauses []string
	if reqMin < allowedMin {
		clauses = append(clauses,
			fmt.Sprintf("minimum length %d is below the allowed minimum %d", reqMin, allowedMin))
	}
	if reqMax > allowedMax {
		clauses = append(clauses,
			fmt.Sprintf("maximum length %d exceeds the allowed maximum %d", reqMax, allowedMax))
	}
	if len(clauses) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrLengthOutOfBounds, strings.Join(clauses, "; "))
}

// stretched rewrites a single-character pattern into an explicit repetition
// `(?:p){min,max}` and compiles a throwaway acceptor for it, so a request of
// any length can be served without mutating the generator's own pattern.
// The upper repeat is capped at maxRepeat, which only ever narrows the
// caller's window. Returns the stretched acceptor and the capped walk
// maximum.
func (g *Generator) stretched(minLength, maxLength int) (*automaton.Acceptor, int, error) {
	if minLength > maxRepeat {
		return nil, 0, fmt.Errorf("%w: minimum length %d exceeds the %d-repetition limit",
			ErrLengthOutOfBounds, minLength, maxRepeat)
	}
	if maxLength > maxRepeat {
		maxLength = maxRepeat
	}

	acc, err := automaton.Compile(fmt.Sprintf("(?:%s){%d,%d}", g.pattern, minLength, maxLength))
	if err != nil {
		return nil, 0, err
	}

	return acc, maxLength, nil
}
