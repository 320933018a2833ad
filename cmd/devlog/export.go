package main

import (
	"fmt"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewExportCmd(journal func() *internal.JournalService, exporter func() *internal.Exporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <format>",
		Short: "Export entries to a file",
		Long:  `Render entries as json, csv or markdown and write them to a new timestamped file in the export directory. Category and tag flags export a filtered view.`,
		Args:  cobra.ExactArgs(1),
		RunE:  makeExportRunner(journal, exporter),
	}

	cmd.Flags().StringP("category", "c", "", "Only entries with this category")
	cmd.Flags().StringSliceP("tag", "t", nil, "Only entries with at least one of these tags")
	return cmd
}

func makeExportRunner(journal func() *internal.JournalService, exporter func() *internal.Exporter) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		format := args[0]
		category, _ := cmd.Flags().GetString("category")
		tags, _ := cmd.Flags().GetStringSlice("tag")

		entries, err := journal().List(cmd.Context(), internal.FilterOptions{
			Category: category, Tags: tags,
		})
		if err != nil {
			return fmt.Errorf("load entries: %w", err)
		}

		path, err := exporter().Export(format, entries)
		if err != nil {
			return fmt.Errorf("export entries: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), path)
		return nil
	}
}
