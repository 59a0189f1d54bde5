// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dtoforge/cli/internal/config"
	"github.com/dtoforge/cli/internal/prompts"
	"github.com/dtoforge/cli/internal/session"
	"github.com/dtoforge/cli/internal/translate"
)

type initOptions struct {
	rulesFile string
	output    string
	targets   []string
}

func registerInitCmd(parent *cobra.Command, translators translate.Register) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a dtoforge project in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.rulesFile, "rules", "r", "", "Default rule file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Default output directory")
	cmd.Flags().StringSliceVar(&opts.targets, "targets", nil, "Default target languages")

	parent.AddCommand(cmd)
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	if _, err := os.Stat(session.ConfigFileName); err == nil {
		return fmt.Errorf("%s already exists", session.ConfigFileName)
	}

	if !cmd.Flags().Changed("rules") && !cmd.Flags().Changed("targets") {
		if err := prompts.RunInitForm(&opts.rulesFile, &opts.output, &opts.targets, translators.Available()); err != nil {
			return err
		}
	}

	for _, t := range opts.targets {
		if _, err := translators.Get(t); err != nil {
			return err
		}
	}

	cfg := &config.Config{
		Version: config.CurrentConfigVersion,
		Rules:   opts.rulesFile,
		Output:  opts.output,
		Targets: opts.targets,
	}
	if err := cfg.Save(session.ConfigFileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", session.ConfigFileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "config", Value: session.ConfigFileName},
		{Label: "rules", Value: opts.rulesFile},
		{Label: "output", Value: opts.output},
		{Label: "targets", Value: strings.Join(opts.targets, ", ")},
	}, "Project initialized")

	return nil
}
