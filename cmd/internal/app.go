// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dtoforge/cli/internal/commands"
	"github.com/dtoforge/cli/internal/translate"
	"github.com/dtoforge/cli/internal/translate/gotypes"
	"github.com/dtoforge/cli/internal/translate/java"
	"github.com/dtoforge/cli/internal/translate/kotlin"
	"github.com/dtoforge/cli/internal/translate/python"
	"github.com/dtoforge/cli/internal/translate/rust"
	"github.com/dtoforge/cli/internal/translate/swift"
	"github.com/dtoforge/cli/internal/translate/typescript"
)

// Translators returns the registry of built-in target languages.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&python.Translator{})
	translators.Add(&gotypes.Translator{})
	translators.Add(&typescript.Translator{})
	translators.Add(&rust.Translator{})
	translators.Add(&java.Translator{})
	translators.Add(&kotlin.Translator{})
	translators.Add(&swift.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context) error {
	rootCmd := commands.NewRootCmd(Translators())
	return rootCmd.ExecuteContext(ctx)
}
