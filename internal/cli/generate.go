// SPDX-License-Identifier: MIT
// Package: rexgen/internal/cli
//
// generate.go — the `rexgen generate` command.
//
// Contract:
//   - The pattern comes from the positional argument or from a --profile
//     entry selected with --name; the argument wins when both are given.
//   - The length window obeys flags > environment > profile precedence.
//     Leaving both sides unset delegates to the generator's own clamping.
//   - --strict turns an exhausted walk into a command failure instead of
//     printing the best-effort partial string.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rexgen/randwalk"
	"github.com/katalvlaran/rexgen/textgen"
)

// generateOptions holds flag values for the generate command.
type generateOptions struct {
	minLength   int
	maxLength   int
	seed        int64
	attempts    int
	count       int
	strict      bool
	profilePath string
	profileName string
}

// newGenerateCmd creates the generate command.
func (a *App) newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [pattern]",
		Short: "Generate random strings matching a pattern",
		Long: `Generate compiles the pattern, checks that its language is finite and
non-empty, and emits random matching strings.

A length window set with --min and --max restricts the emitted strings to
that window; the command fails when the window cannot be satisfied. With no
window the feasible lengths of the pattern itself are used.`,
		Example: `  rexgen generate '[a-c]{2,5}'
  rexgen generate '[0-9]' --min 6 --max 6 --count 3
  rexgen generate --profile profiles.yaml --name invoice --seed 42`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.minLength, "min", 0, "minimum length (0 = pattern default)")
	cmd.Flags().IntVar(&opts.maxLength, "max", 0, "maximum length (0 = pattern default)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().IntVar(&opts.attempts, "attempts", 1, "walk attempts before settling for a partial result")
	cmd.Flags().IntVar(&opts.count, "count", 1, "number of strings to emit")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a walk exhausts its attempts")
	cmd.Flags().StringVar(&opts.profilePath, "profile", "", "YAML file with named generation profiles")
	cmd.Flags().StringVar(&opts.profileName, "name", "", "profile to use from the --profile file")

	return cmd
}

// runGenerate resolves pattern and window, builds a generator, and emits
// --count strings to stdout, one per line.
func (a *App) runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var pattern string
	if len(args) == 1 {
		pattern = args[0]
	}

	var prof profile
	if opts.profileName != "" && opts.profilePath == "" {
		return errors.New("--name requires a --profile file")
	}
	if opts.profilePath != "" {
		if opts.profileName == "" {
			return errors.New("--profile requires --name to select an entry")
		}
		profiles, err := loadProfiles(opts.profilePath)
		if err != nil {
			return err
		}
		var ok bool
		if prof, ok = profiles[opts.profileName]; !ok {
			return fmt.Errorf("profile %q not found in %s", opts.profileName, opts.profilePath)
		}
		if pattern == "" {
			pattern = prof.Pattern
		}
	}
	if pattern == "" {
		return errors.New("a pattern argument or a --profile/--name pair is required")
	}

	minLength := resolveInt(cmd.Flags().Changed("min"), opts.minLength, cfg.MinLength, prof.Min)
	maxLength := resolveInt(cmd.Flags().Changed("max"), opts.maxLength, cfg.MaxLength, prof.Max)
	if (minLength == 0) != (maxLength == 0) {
		return errors.New("--min and --max must be set together (or both left unset)")
	}

	seed := opts.seed
	if !cmd.Flags().Changed("seed") && cfg.Seed != 0 {
		seed = cfg.Seed
	}
	attempts := opts.attempts
	if !cmd.Flags().Changed("attempts") && cfg.Attempts != 0 {
		attempts = cfg.Attempts
	}

	genOpts := []textgen.Option{
		textgen.WithPattern(pattern),
		textgen.WithMaxAttempts(attempts),
	}
	if seed != 0 {
		genOpts = append(genOpts, textgen.WithSeed(seed))
	}
	gen, err := textgen.New(genOpts...)
	if err != nil {
		return err
	}

	for i := 0; i < opts.count; i++ {
		text, err := a.emitOne(gen, minLength, maxLength, opts.strict)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, text)
	}

	return nil
}

// resolveInt applies the flags > environment > profile precedence. Zero
// means unset at the environment and profile levels; an explicitly changed
// flag always wins, even when set to zero.
func resolveInt(flagChanged bool, flagVal, envVal, profVal int) int {
	switch {
	case flagChanged:
		return flagVal
	case envVal != 0:
		return envVal
	default:
		return profVal
	}
}

// emitOne produces a single string. In strict mode the walk status is
// surfaced and an exhausted walk becomes an error.
func (a *App) emitOne(gen *textgen.Generator, minLength, maxLength int, strict bool) (string, error) {
	if !strict {
		if minLength == 0 && maxLength == 0 {
			return gen.Generate()
		}
		return gen.GenerateWithin(minLength, maxLength)
	}

	if minLength == 0 && maxLength == 0 {
		var err error
		if minLength, maxLength, err = feasibleWindow(gen); err != nil {
			return "", err
		}
	}
	res, err := gen.GenerateResult(minLength, maxLength)
	if err != nil {
		return "", err
	}
	if res.Status != randwalk.StatusAccepted {
		return "", fmt.Errorf("walk exhausted after %d attempts (partial result %q)", res.Attempts, res.Text)
	}

	return res.Text, nil
}

// feasibleWindow resolves the default window for strict mode: the pattern's
// feasible length range, floored at the library's default minimum. Patterns
// that cannot be generated at all are delegated to Generate so the command
// reports the same error the plain path would.
func feasibleWindow(gen *textgen.Generator) (int, int, error) {
	props, err := gen.Inspect()
	if err != nil {
		return 0, 0, err
	}

	minLength := props.Feasible.Min
	if minLength < textgen.DefaultMinLength {
		minLength = textgen.DefaultMinLength
	}
	if !props.Finite || props.Empty || minLength > props.Feasible.Max {
		_, err = gen.Generate()
		return 0, 0, err
	}

	return minLength, props.Feasible.Max, nil
}
