package main

import (
	"fmt"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewDiffCmd(snapshots func() (*internal.SnapshotRepository, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [ref] [ref]",
		Short: "Show store changes between snapshots",
		Long:  `With no arguments, diff the last snapshot against the working store. One ref diffs that snapshot against the working store; two refs diff the snapshots against each other.`,
		Args:  cobra.MaximumNArgs(2),
		RunE:  makeDiffRunner(snapshots),
	}

	return cmd
}

func makeDiffRunner(snapshots func() (*internal.SnapshotRepository, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		repo, err := snapshots()
		if err != nil {
			return fmt.Errorf("open snapshots: %w", err)
		}

		before, after, err := resolveDiffSides(cmd, repo, args)
		if err != nil {
			return err
		}

		diff := internal.DiffStores(before, after)
		if diff == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), diff)
		return nil
	}
}

func resolveDiffSides(cmd *cobra.Command, repo *internal.SnapshotRepository, args []string) (string, string, error) {
	ctx := cmd.Context()

	switch len(args) {
	case 2:
		before, err := repo.StoreAt(ctx, args[0])
		if err != nil {
			return "", "", err
		}
		after, err := repo.StoreAt(ctx, args[1])
		if err != nil {
			return "", "", err
		}
		return before, after, nil
	case 1:
		before, err := repo.StoreAt(ctx, args[0])
		if err != nil {
			return "", "", err
		}
		after, err := repo.CurrentStore()
		if err != nil {
			return "", "", err
		}
		return before, after, nil
	default:
		before, err := repo.StoreAt(ctx, "HEAD")
		if err != nil {
			return "", "", err
		}
		after, err := repo.CurrentStore()
		if err != nil {
			return "", "", err
		}
		return before, after, nil
	}
}
