// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package commands

import (
	"github.com/spf13/cobra"

	"github.com/dtoforge/cli/internal/translate"
)

func registerTargetsCmd(parent *cobra.Command, translators translate.Register) {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List available target languages",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range translators.Available() {
				t, err := translators.Get(name)
				if err != nil {
					continue
				}
				cmd.Printf("%s (%s)\n", name, t.FileExtension())
			}
		},
	}

	parent.AddCommand(cmd)
}
