// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dtoforge/cli/internal/session"
	"github.com/dtoforge/cli/internal/translate"
	"github.com/dtoforge/cli/internal/version"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "dtoforge",
		Short:             "Generate target-language DTO definitions from record schemas",
		PersistentPreRunE: session.PreRunLoad,
	}

	registerGenerateCmd(rootCmd, translators)
	registerTargetsCmd(rootCmd, translators)
	registerInitCmd(rootCmd, translators)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version.Info())
		},
	})
}
