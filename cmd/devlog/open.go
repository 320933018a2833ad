package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewOpenCmd(journal func() *internal.JournalService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the store file in $EDITOR",
		Long:  `Launch your editor on the backing JSON file. Falls back to vi when $EDITOR is unset.`,
		Args:  cobra.NoArgs,
		RunE:  makeOpenRunner(journal),
	}

	return cmd
}

func makeOpenRunner(journal func() *internal.JournalService) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		path := journal().StorePath()

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("create store directory: %w", err)
			}
			if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
				return fmt.Errorf("create store file: %w", err)
			}
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		if err := c.Run(); err != nil {
			return fmt.Errorf("editor: %w", err)
		}
		return nil
	}
}
