package main

import (
	"encoding/json"
	"fmt"

	"github.com/devlog-sh/devlog/internal"
	"github.com/spf13/cobra"
)

func NewCategoriesCmd(cfg func() *internal.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the configured categories",
		Args:  cobra.NoArgs,
		RunE:  makeCategoriesRunner(cfg),
	}

	return cmd
}

func makeCategoriesRunner(cfg func() *internal.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		c := cfg()

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"categories": c.Categories,
				"default":    c.DefaultCategory,
			})
		}

		for _, cat := range c.Categories {
			if cat == c.DefaultCategory {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", categoryStyle.Render(cat), mutedStyle.Render("(default)"))
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), categoryStyle.Render(cat))
		}
		return nil
	}
}
