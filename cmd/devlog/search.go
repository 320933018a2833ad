package main

import (
	"fmt"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewSearchCmd(journal func() *internal.JournalService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search entry text",
		Long:  `Case-insensitive substring search over entry text. Matches print most recent first.`,
		Args:  cobra.ExactArgs(1),
		RunE:  makeSearchRunner(journal),
	}

	cmd.Flags().IntP("number", "n", 0, "Show at most this many of the most recent matches")
	return cmd
}

func makeSearchRunner(journal func() *internal.JournalService) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		query := args[0]
		limit, _ := cmd.Flags().GetInt("number")
		asJSON, _ := cmd.Flags().GetBool("json")

		entries, err := journal().Search(cmd.Context(), query, limit)
		if err != nil {
			return fmt.Errorf("search entries: %w", err)
		}

		if asJSON {
			return outputEntriesJSON(cmd, entries)
		}

		fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render(
			fmt.Sprintf("Search results for %q (%d found)", query, len(entries))))

		for i := len(entries) - 1; i >= 0; i-- {
			fmt.Fprintln(cmd.OutOrStdout(), formatEntryLine(entries[i]))
		}
		return nil
	}
}
