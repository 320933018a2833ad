package main

import (
	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewRootCmd(version string, a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "devlog",
		Short:         "Log daily development activities from the command line",
		Long:          `A journal for short timestamped notes with categories and #hashtags, kept in a single JSON file under ~/.devlog.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)

	if a != nil {
		addSubcommands(rootCmd, a)
	}

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

func addSubcommands(root *cobra.Command, a *app) {
	journal := func() *internal.JournalService { return a.journalSvc }
	exporter := func() *internal.Exporter { return a.exporter }
	cfg := func() *internal.Config { return a.cfg }

	root.AddCommand(
		NewAddCmd(journal, cfg),
		NewListCmd(journal),
		NewSearchCmd(journal),
		NewStatsCmd(journal),
		NewExportCmd(journal, exporter),
		NewCategoriesCmd(cfg),
		NewOpenCmd(journal),
		NewWatchCmd(journal),
		NewSnapshotCmd(a.snapshots, journal),
		NewHistoryCmd(a.snapshots),
		NewDiffCmd(a.snapshots),
	)
}
