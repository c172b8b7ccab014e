package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sublate/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "languages",
		Short:       "List supported target languages",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			supported := language.Supported()
			rows := make([][]string, 0, len(supported))
			for _, lang := range supported {
				rows = append(rows, []string{lang.Code, lang.Name})
			}
			table := renderTable([]string{"Code", "Language"}, rows, []columnAlignment{alignLeft, alignLeft})
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
