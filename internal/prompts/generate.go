// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm prompts for any values the generate command is still
// missing. Flags that were set keep their values; the corresponding fields
// are skipped.
func RunGenerateForm(rulesFile, output *string, targets *[]string, available []string) error {
	var fields []huh.Field

	if *rulesFile == "" {
		fields = append(fields, huh.NewInput().
			Title("Rule file").
			Description("Path to the rule file to generate from").
			Validate(requiredValidator("rule file")).
			Value(rulesFile))
	}

	if len(*targets) == 0 {
		options := make([]huh.Option[string], len(available))
		for i, t := range available {
			options[i] = huh.NewOption(t, t)
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Target languages").
			Options(options...).
			Value(targets))
	}

	if *output == "" {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Placeholder("generated").
			Value(output))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
