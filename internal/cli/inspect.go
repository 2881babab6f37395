// SPDX-License-Identifier: MIT
// Package: rexgen/internal/cli
//
// inspect.go — the `rexgen inspect` command.
//
// Contract:
//   - Reports the compiled acceptor's properties without generating text:
//     state count, finiteness, emptiness, and the feasible length range.
//   - The feasible range is shown only when it exists, that is when the
//     language is finite and non-empty.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rexgen/textgen"
)

// inspectOptions holds flag values for the inspect command.
type inspectOptions struct {
	jsonOutput bool
}

// inspectReport is the machine-readable shape of the inspect output.
type inspectReport struct {
	Pattern     string `json:"pattern"`
	StateCount  int    `json:"state_count"`
	Finite      bool   `json:"finite"`
	Empty       bool   `json:"empty"`
	FeasibleMin *int   `json:"feasible_min,omitempty"`
	FeasibleMax *int   `json:"feasible_max,omitempty"`
}

// newInspectCmd creates the inspect command.
func (a *App) newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <pattern>",
		Short: "Report automaton properties of a pattern",
		Long: `Inspect compiles the pattern into its deterministic acceptor and reports
the automaton's size, whether its language is finite and non-empty, and the
range of string lengths it can reach.`,
		Example: `  rexgen inspect '[abc]{1,3}'
  rexgen inspect 'cat|horse|ox' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output as JSON")

	return cmd
}

// runInspect compiles the pattern and prints its properties.
func (a *App) runInspect(pattern string, opts *inspectOptions) error {
	props, err := textgen.Inspect(pattern)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		report := inspectReport{
			Pattern:    pattern,
			StateCount: props.StateCount,
			Finite:     props.Finite,
			Empty:      props.Empty,
		}
		if props.Finite && !props.Empty {
			report.FeasibleMin = &props.Feasible.Min
			report.FeasibleMax = &props.Feasible.Max
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(a.stdout, "Pattern:  %s\n", pattern)
	fmt.Fprintf(a.stdout, "States:   %d\n", props.StateCount)
	fmt.Fprintf(a.stdout, "Finite:   %v\n", props.Finite)
	fmt.Fprintf(a.stdout, "Empty:    %v\n", props.Empty)
	if props.Finite && !props.Empty {
		fmt.Fprintf(a.stdout, "Feasible: %s\n", props.Feasible)
	}

	return nil
}
