package main

import (
	"encoding/json"
	"fmt"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

const noEntriesMessage = "No entries found matching your criteria."

func NewListCmd(journal func() *internal.JournalService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "show"},
		Short:   "List entries, most recent first",
		Long:    `List entries matching the given category and tags. All criteria must match; an entry matches the tag filter when it has at least one of the requested tags. Output is most recent first.`,
		Args:    cobra.NoArgs,
		RunE:    makeListRunner(journal),
	}

	cmd.Flags().StringP("category", "c", "", "Only entries with this category")
	cmd.Flags().StringSliceP("tag", "t", nil, "Only entries with at least one of these tags")
	cmd.Flags().IntP("number", "n", 0, "Show at most this many of the most recent matches")
	return cmd
}

func makeListRunner(journal func() *internal.JournalService) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		category, _ := cmd.Flags().GetString("category")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		limit, _ := cmd.Flags().GetInt("number")
		asJSON, _ := cmd.Flags().GetBool("json")

		entries, err := journal().List(cmd.Context(), internal.FilterOptions{
			Category: category, Tags: tags, Limit: limit,
		})
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}

		if asJSON {
			return outputEntriesJSON(cmd, entries)
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), noEntriesMessage)
			return nil
		}

		// stored order is chronological; display newest first
		for i := len(entries) - 1; i >= 0; i-- {
			fmt.Fprintln(cmd.OutOrStdout(), formatEntryLine(entries[i]))
		}
		return nil
	}
}

func outputEntriesJSON(cmd *cobra.Command, entries []internal.Entry) error {
	if entries == nil {
		entries = []internal.Entry{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
