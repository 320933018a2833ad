package main

import (
	"fmt"
	"strings"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewAddCmd(journal func() *internal.JournalService, cfg func() *internal.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <text>",
		Aliases: []string{"log"},
		Short:   "Add a journal entry",
		Long:    `Append a timestamped entry. #hashtags in the text become tags unless --tag overrides them; the category falls back to the configured default.`,
		Args:    cobra.ExactArgs(1),
		RunE:    makeAddRunner(journal, cfg),
	}

	cmd.Flags().StringP("category", "c", "", "Entry category")
	cmd.Flags().StringSliceP("tag", "t", nil, "Explicit tags, overriding hashtag extraction")
	return cmd
}

func makeAddRunner(journal func() *internal.JournalService, cfg func() *internal.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		tags, _ := cmd.Flags().GetStringSlice("tag")

		entry, err := journal().Append(cmd.Context(), args[0], category, tags)
		if err != nil {
			return fmt.Errorf("add entry: %w", err)
		}

		if !cfg().HasCategory(entry.Category) {
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(fmt.Sprintf(
				"warning: category %q is not in the configured set (%s)",
				entry.Category, strings.Join(cfg().Categories, ", "))))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged: %s (%s)%s\n", entry.Text, entry.Category, formatTags(entry.Tags))
		return nil
	}
}
