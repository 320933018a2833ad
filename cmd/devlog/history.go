package main

import (
	"fmt"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewHistoryCmd(snapshots func() (*internal.SnapshotRepository, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded snapshots",
		Args:  cobra.NoArgs,
		RunE:  makeHistoryRunner(snapshots),
	}

	cmd.Flags().IntP("number", "n", 10, "Maximum snapshots to list")
	return cmd
}

func makeHistoryRunner(snapshots func() (*internal.SnapshotRepository, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("number")

		repo, err := snapshots()
		if err != nil {
			return fmt.Errorf("open snapshots: %w", err)
		}

		revisions, err := repo.History(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("get history: %w", err)
		}

		if len(revisions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No snapshots yet.")
			return nil
		}

		for _, rev := range revisions {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
				rev.ShortHash(),
				mutedStyle.Render(rev.Timestamp.Format("2006-01-02 15:04")),
				rev.Message)
		}
		return nil
	}
}
