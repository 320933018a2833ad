package main

import (
	"errors"
	"fmt"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewSnapshotCmd(snapshots func() (*internal.SnapshotRepository, error), journal func() *internal.JournalService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record the current journal state",
		Long:  `Commit the store and config files into the snapshot history, so earlier states can be listed and diffed.`,
		Args:  cobra.NoArgs,
		RunE:  makeSnapshotRunner(snapshots, journal),
	}

	cmd.Flags().StringP("message", "m", "", "Snapshot message")
	return cmd
}

func makeSnapshotRunner(snapshots func() (*internal.SnapshotRepository, error), journal func() *internal.JournalService) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		message, _ := cmd.Flags().GetString("message")

		repo, err := snapshots()
		if err != nil {
			return fmt.Errorf("open snapshots: %w", err)
		}

		if message == "" {
			entries, err := journal().List(cmd.Context(), internal.FilterOptions{})
			if err != nil {
				return err
			}
			message = fmt.Sprintf("snapshot: %d entries", len(entries))
		}

		rev, err := repo.Snapshot(cmd.Context(), message)
		if errors.Is(err, internal.ErrNoChanges) {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes since last snapshot.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", rev.ShortHash(), rev.Message)
		return nil
	}
}
