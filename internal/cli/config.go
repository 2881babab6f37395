// SPDX-License-Identifier: MIT
// Package: rexgen/internal/cli
//
// config.go — environment defaults and YAML generation profiles.
//
// Contract:
//   - Resolution precedence is flags > environment > profile > built-ins.
//     A zero value means "unset" at every level.
//   - A .env file in the working directory is merged into the environment
//     before parsing, so local overrides need no shell exports.
package cli

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries environment-sourced defaults for generate runs.
type Config struct {
	MinLength int   `env:"REXGEN_MIN_LENGTH"`
	MaxLength int   `env:"REXGEN_MAX_LENGTH"`
	Seed      int64 `env:"REXGEN_SEED"`
	Attempts  int   `env:"REXGEN_ATTEMPTS" envDefault:"1"`
}

// loadConfig merges a .env file (when present) into the process environment
// and parses the REXGEN_* variables.
func loadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// profile is one named generation preset in a YAML profile file:
//
//	invoice:
//	  pattern: "INV-[0-9]{6}"
//	  min: 10
//	  max: 10
type profile struct {
	Pattern string `yaml:"pattern"`
	Min     int    `yaml:"min"`
	Max     int    `yaml:"max"`
}

// loadProfiles reads a YAML profile file into a name-to-preset map.
func loadProfiles(path string) (map[string]profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	profiles := map[string]profile{}
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles %s: %w", path, err)
	}

	return profiles, nil
}
