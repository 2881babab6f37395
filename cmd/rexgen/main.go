// SPDX-License-Identifier: MIT
// Package: rexgen/cmd/rexgen
//
// main.go — entry point for the rexgen CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/rexgen/internal/cli"
)

func main() {
	app := cli.New()

	if err := app.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
