// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm prompts for initial project configuration values.
func RunInitForm(rulesFile, output *string, targets *[]string, available []string) error {
	options := make([]huh.Option[string], len(available))
	for i, t := range available {
		options[i] = huh.NewOption(t, t)
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Default rule file").
			Placeholder("rules.yaml").
			Value(rulesFile),
		huh.NewInput().
			Title("Default output directory").
			Placeholder("generated").
			Value(output),
		huh.NewMultiSelect[string]().
			Title("Default targets").
			Options(options...).
			Value(targets),
	)).WithTheme(Theme()).Run()
}
