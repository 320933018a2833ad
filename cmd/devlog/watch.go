package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/devlog-sh/devlog/internal"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func NewWatchCmd(journal func() *internal.JournalService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the journal and print new entries",
		Long:  `Watch the store file and print entries as other invocations append them. Runs until interrupted.`,
		Args:  cobra.NoArgs,
		RunE:  makeWatchRunner(journal),
	}

	cmd.Flags().Duration("debounce", 500*time.Millisecond, "Debounce window for batching file changes")
	return cmd
}

func makeWatchRunner(journal func() *internal.JournalService) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		debounce, _ := cmd.Flags().GetDuration("debounce")
		svc := journal()
		storePath := svc.StorePath()

		if err := os.MkdirAll(filepath.Dir(storePath), 0755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}

		entries, err := svc.List(cmd.Context(), internal.FilterOptions{})
		if err != nil {
			return err
		}
		lastID := 0
		if len(entries) > 0 {
			lastID = entries[len(entries)-1].ID
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()

		// watch the directory: editors and atomic writers replace the file
		if err := watcher.Add(filepath.Dir(storePath)); err != nil {
			return fmt.Errorf("add watch dir: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for new entries...\n", storePath)

		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if shouldIgnoreEvent(event, storePath) {
					continue
				}
				if !pending {
					timer.Reset(debounce)
					pending = true
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
			case <-timer.C:
				pending = false
				entries, err := svc.List(cmd.Context(), internal.FilterOptions{})
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "reload store: %v\n", err)
					continue
				}
				for _, e := range entries {
					if e.ID > lastID {
						fmt.Fprintln(cmd.OutOrStdout(), formatEntryLine(e))
						lastID = e.ID
					}
				}
			}
		}
	}
}

func shouldIgnoreEvent(event fsnotify.Event, storePath string) bool {
	if event.Name != storePath {
		return true
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0
}
