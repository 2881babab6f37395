package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/katalvlaran/rexgen/automaton"
	"github.com/katalvlaran/rexgen/textgen"
)

// runGen executes `rexgen generate` with the given extra args and returns
// stdout and the command error.
func runGen(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	err := app.ExecuteWithArgs(context.Background(), append([]string{"generate"}, args...))
	return stdout.String(), err
}

func TestGenerate_FixedPattern(t *testing.T) {
	out, err := runGen(t, "abc", "--seed", "7")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out != "abc\n" {
		t.Errorf("got %q; want %q", out, "abc\n")
	}
}

func TestGenerate_Window(t *testing.T) {
	out, err := runGen(t, "[0-9]", "--min", "6", "--max", "6", "--seed", "42")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !regexp.MustCompile(`^[0-9]{6}\n$`).MatchString(out) {
		t.Errorf("output %q does not match six digits", out)
	}
}

func TestGenerate_Count(t *testing.T) {
	out, err := runGen(t, "[ab]{2}", "--count", "3", "--seed", "1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines; want 3: %q", len(lines), out)
	}
	for _, line := range lines {
		if !regexp.MustCompile(`^[ab]{2}$`).MatchString(line) {
			t.Errorf("line %q does not match the pattern", line)
		}
	}
}

func TestGenerate_MissingPattern(t *testing.T) {
	_, err := runGen(t)
	if err == nil {
		t.Fatal("generate without a pattern should fail")
	}
	if !strings.Contains(err.Error(), "pattern") {
		t.Errorf("error %q does not mention the missing pattern", err)
	}
}

func TestGenerate_MinWithoutMax(t *testing.T) {
	_, err := runGen(t, "[0-9]{2,4}", "--min", "3")
	if err == nil {
		t.Fatal("a half-open window should fail")
	}
	if !strings.Contains(err.Error(), "together") {
		t.Errorf("error %q does not mention the paired flags", err)
	}
}

func TestGenerate_InfinitePattern(t *testing.T) {
	_, err := runGen(t, "a+", "--seed", "3")
	if !errors.Is(err, automaton.ErrInfinite) {
		t.Errorf("got %v; want ErrInfinite", err)
	}
}

func TestGenerate_WindowOutOfBounds(t *testing.T) {
	_, err := runGen(t, "a{5}", "--min", "3", "--max", "4")
	if !errors.Is(err, textgen.ErrLengthOutOfBounds) {
		t.Errorf("got %v; want ErrLengthOutOfBounds", err)
	}
}

func TestGenerate_EnvDefaults(t *testing.T) {
	t.Setenv("REXGEN_MIN_LENGTH", "6")
	t.Setenv("REXGEN_MAX_LENGTH", "6")
	t.Setenv("REXGEN_SEED", "42")

	out, err := runGen(t, "[0-9]")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !regexp.MustCompile(`^[0-9]{6}\n$`).MatchString(out) {
		t.Errorf("output %q does not match six digits", out)
	}
}

func TestGenerate_FlagOverridesEnv(t *testing.T) {
	t.Setenv("REXGEN_MIN_LENGTH", "6")
	t.Setenv("REXGEN_MAX_LENGTH", "6")

	out, err := runGen(t, "[0-9]", "--min", "3", "--max", "3", "--seed", "42")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !regexp.MustCompile(`^[0-9]{3}\n$`).MatchString(out) {
		t.Errorf("output %q does not match three digits", out)
	}
}

func TestGenerate_Profile(t *testing.T) {
	content := `invoice:
  pattern: "INV-[0-9]{4}"
  min: 8
  max: 8
receipt:
  pattern: "RCT-[a-f]{3}"
`
	tmpDir := t.TempDir()
	profilePath := filepath.Join(tmpDir, "profiles.yaml")
	if err := os.WriteFile(profilePath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write profile file: %v", err)
	}

	out, err := runGen(t, "--profile", profilePath, "--name", "invoice", "--seed", "1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !regexp.MustCompile(`^INV-[0-9]{4}\n$`).MatchString(out) {
		t.Errorf("output %q does not match the invoice profile", out)
	}

	out, err = runGen(t, "--profile", profilePath, "--name", "receipt", "--seed", "1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !regexp.MustCompile(`^RCT-[a-f]{3}\n$`).MatchString(out) {
		t.Errorf("output %q does not match the receipt profile", out)
	}
}

func TestGenerate_ProfileRequiresName(t *testing.T) {
	_, err := runGen(t, "--profile", "whatever.yaml")
	if err == nil {
		t.Fatal("--profile without --name should fail")
	}
	if !strings.Contains(err.Error(), "--name") {
		t.Errorf("error %q does not mention --name", err)
	}
}

func TestGenerate_ProfileUnknownName(t *testing.T) {
	tmpDir := t.TempDir()
	profilePath := filepath.Join(tmpDir, "profiles.yaml")
	if err := os.WriteFile(profilePath, []byte("a:\n  pattern: x\n"), 0o644); err != nil {
		t.Fatalf("failed to write profile file: %v", err)
	}

	_, err := runGen(t, "--profile", profilePath, "--name", "missing")
	if err == nil {
		t.Fatal("an unknown profile name should fail")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q does not mention the missing profile", err)
	}
}

func TestGenerate_StrictDefaultWindow(t *testing.T) {
	out, err := runGen(t, "[ab]{2}", "--strict", "--seed", "5")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !regexp.MustCompile(`^[ab]{2}\n$`).MatchString(out) {
		t.Errorf("output %q does not match the pattern", out)
	}
}

func TestGenerate_StrictInfinite(t *testing.T) {
	_, err := runGen(t, "a*", "--strict")
	if !errors.Is(err, automaton.ErrInfinite) {
		t.Errorf("got %v; want ErrInfinite", err)
	}
}

// The one-step walk over a|bb inside the window [2,2] accepts only when the
// bb branch is drawn, so across many seeds both the success and the
// exhaustion paths of --strict must show up.
func TestGenerate_StrictExhaustion(t *testing.T) {
	var accepted, exhausted int
	for seed := 0; seed < 40; seed++ {
		out, err := runGen(t, "a|bb",
			"--min", "2", "--max", "2", "--strict", "--seed", fmt.Sprint(seed+1))
		if err != nil {
			if !strings.Contains(err.Error(), "exhausted") {
				t.Fatalf("seed %d: unexpected error: %v", seed+1, err)
			}
			exhausted++
			continue
		}
		if out != "bb\n" {
			t.Errorf("seed %d: got %q; want %q", seed+1, out, "bb\n")
		}
		accepted++
	}
	if accepted == 0 || exhausted == 0 {
		t.Errorf("got %d accepted, %d exhausted; want both outcomes", accepted, exhausted)
	}
}

func TestGenerate_NonStrictKeepsPartial(t *testing.T) {
	for seed := 1; seed <= 40; seed++ {
		out, err := runGen(t, "a|bb",
			"--min", "2", "--max", "2", "--seed", fmt.Sprint(seed))
		if err != nil {
			t.Fatalf("seed %d: generate failed: %v", seed, err)
		}
		if out != "bb\n" && out != "a\n" {
			t.Errorf("seed %d: got %q; want bb or the partial a", seed, out)
		}
	}
}
