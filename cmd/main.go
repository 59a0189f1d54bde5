// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package main is the entry point for the dtoforge CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dtoforge/cli/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
