// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dtoforge/cli/internal/jschema"
	"github.com/dtoforge/cli/internal/prompts"
	"github.com/dtoforge/cli/internal/rules"
	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/session"
	"github.com/dtoforge/cli/internal/translate"
)

type generateOptions struct {
	rulesFile  string
	schemaFile string
	name       string
	langs      string
	output     string
	all        bool
}

func registerGenerateCmd(parent *cobra.Command, translators translate.Register) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate DTO definitions for one or more target languages",
		Long: fmt.Sprintf(`Generate DTO definitions for one or more target languages.

Available targets: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  dtoforge generate

  # Generate Python dataclasses from a rule file
  dtoforge generate --rules rules.yaml --lang python

  # Generate several targets at once
  dtoforge generate --rules rules.yaml --lang python,gotypes,rust

  # Generate from a JSON Schema instead of a rule file
  dtoforge generate --schema user.schema.json --name User --lang typescript

  # All registered targets
  dtoforge generate --rules rules.yaml --all -o generated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.rulesFile, "rules", "r", "", "Rule file to generate from")
	cmd.Flags().StringVar(&opts.schemaFile, "schema", "", "JSON Schema file to generate from")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Root record name (default from rule file, or Record)")
	cmd.Flags().StringVar(&opts.langs, "lang", "", fmt.Sprintf("Target language(s), comma-separated (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Generate every registered target")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions) error {
	if opts.all && opts.langs != "" {
		return fmt.Errorf("--all and --lang are mutually exclusive")
	}
	if opts.rulesFile != "" && opts.schemaFile != "" {
		return fmt.Errorf("--rules and --schema are mutually exclusive")
	}

	// Project config fills in anything flags left out.
	var cfg = session.FromCommand(cmd)
	if cfg != nil && cfg.Config != nil {
		if opts.rulesFile == "" && opts.schemaFile == "" {
			opts.rulesFile = cfg.Config.Rules
		}
		if opts.output == "" {
			opts.output = cfg.Config.Output
		}
		if opts.langs == "" && !opts.all && len(cfg.Config.Targets) > 0 {
			opts.langs = strings.Join(cfg.Config.Targets, ",")
		}
	}

	var targets []string
	if opts.all {
		targets = translators.Available()
	} else if opts.langs != "" {
		for _, lang := range strings.Split(opts.langs, ",") {
			lang = strings.TrimSpace(lang)
			if lang == "" {
				continue
			}
			if _, err := translators.Get(lang); err != nil {
				return fmt.Errorf("unsupported target %q. Available targets: %s",
					lang, strings.Join(translators.Available(), ", "))
			}
			targets = append(targets, lang)
		}
	}

	// Prompt for whatever is still missing.
	if opts.schemaFile == "" {
		if err := prompts.RunGenerateForm(&opts.rulesFile, &opts.output, &targets, translators.Available()); err != nil {
			return err
		}
	}
	if len(targets) == 0 {
		return fmt.Errorf("no targets selected")
	}
	if opts.output == "" {
		opts.output = "generated"
	}

	s, baseName, err := loadSchema(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Generating %d target(s) from %s...\n", len(targets), inputName(opts))

	var errs []string
	var results []prompts.ResultField

	for _, lang := range targets {
		translator, err := translators.Get(lang)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", lang, err))
			continue
		}

		data, err := translator.Translate(s)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", lang, err))
			continue
		}

		outFile := filepath.Join(opts.output, strings.ToLower(baseName)+translator.FileExtension())
		if err := os.WriteFile(outFile, data, 0o600); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", lang, err))
			continue
		}
		results = append(results, prompts.ResultField{Label: lang, Value: outFile})
	}

	if len(results) > 0 {
		prompts.PrintResult(results, fmt.Sprintf("Generated %d target(s)", len(results)))
	}

	if len(errs) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range errs {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("failed to generate %d target(s)", len(errs))
	}

	return nil
}

// loadSchema builds the record schema from whichever input was selected and
// returns it with the root record name.
func loadSchema(opts *generateOptions) (*schema.Schema, string, error) {
	if opts.schemaFile != "" {
		dir, file := filepath.Split(opts.schemaFile)
		if dir == "" {
			dir = "."
		}
		name := opts.name
		if name == "" {
			name = "Record"
		}
		s, err := jschema.NewLoader(os.DirFS(dir)).LoadFile(file, name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load schema %s: %w", opts.schemaFile, err)
		}
		return s, name, nil
	}

	if opts.rulesFile == "" {
		return nil, "", fmt.Errorf("no rule file selected")
	}
	dir, file := filepath.Split(opts.rulesFile)
	if dir == "" {
		dir = "."
	}
	rule, err := rules.NewLoader(os.DirFS(dir)).LoadFile(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load rule file %s: %w", opts.rulesFile, err)
	}

	baseName := opts.name
	if baseName == "" {
		baseName = "Record"
		if rule.Output != nil && rule.Output.Name != "" {
			baseName = rule.Output.Name
		}
	}

	s, err := rules.BuildSchema(rule, baseName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build schema: %w", err)
	}
	return s, baseName, nil
}

func inputName(opts *generateOptions) string {
	if opts.schemaFile != "" {
		return opts.schemaFile
	}
	return opts.rulesFile
}
