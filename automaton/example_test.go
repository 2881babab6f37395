package automaton_test

import (
	"fmt"

	"github.com/katalvlaran/rexgen/automaton"
)

// ExampleCompile inspects the structure of a compiled pattern.
func ExampleCompile() {
	acc, err := automaton.Compile("[0-9]{3}")
	if err != nil {
		fmt.Println("compile:", err)
		return
	}
	fmt.Println("states:", acc.StateCount())
	fmt.Println("finite:", acc.IsFinite())
	fmt.Println("initial accepts:", acc.Accepting(acc.Start()))

	// Output:
	// states: 4
	// finite: true
	// initial accepts: false
}

// ExampleAcceptor_Transitions walks the arena by hand.
func ExampleAcceptor_Transitions() {
	acc := automaton.MustCompile("ab")
	state := acc.Start()
	for len(acc.Transitions(state)) > 0 {
		tr := acc.Transitions(state)[0]
		fmt.Printf("[%c-%c] -> state %d\n", tr.Lo, tr.Hi, tr.Dest)
		state = tr.Dest
	}
	fmt.Println("accepting:", acc.Accepting(state))

	// Output:
	// [a-a] -> state 1
	// [b-b] -> state 2
	// accepting: true
}

// ExampleAcceptor_IsFinite shows the unbounded-repetition case.
func ExampleAcceptor_IsFinite() {
	fmt.Println(automaton.MustCompile("a*").IsFinite())
	fmt.Println(automaton.MustCompile("a{1,5}").IsFinite())

	// Output:
	// false
	// true
}
