package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewStatsCmd(journal func() *internal.JournalService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics",
		Long:  `Report entry totals, active days, category and tag breakdowns, and activity over the last 7 days.`,
		Args:  cobra.NoArgs,
		RunE:  makeStatsRunner(journal),
	}

	return cmd
}

func makeStatsRunner(journal func() *internal.JournalService) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		stats, err := journal().Stats(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("compute stats: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		printStats(cmd, stats)
		return nil
	}
}

func printStats(cmd *cobra.Command, stats *internal.Stats) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Total entries: %d\n", stats.Total)
	fmt.Fprintf(out, "Days with entries: %d\n", stats.ActiveDays)

	if stats.Total == 0 {
		return
	}

	fmt.Fprintf(out, "\n%s\n", headerStyle.Render("Categories"))
	for _, c := range stats.Categories {
		fmt.Fprintf(out, "  %-12s %4d  %5.1f%%\n", categoryStyle.Render(c.Category), c.Count, c.Percent)
	}

	if len(stats.Tags) > 0 {
		fmt.Fprintf(out, "\n%s\n", headerStyle.Render("Top tags"))
		for _, t := range stats.Tags {
			fmt.Fprintf(out, "  %-12s %4d\n", tagStyle.Render("#"+t.Tag), t.Count)
		}
	}

	fmt.Fprintf(out, "\n%s\n", headerStyle.Render("Last 7 days"))
	for _, d := range stats.LastWeek {
		fmt.Fprintf(out, "  %s  %d\n", mutedStyle.Render(d.Day), d.Count)
	}
}
