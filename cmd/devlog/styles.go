package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/devlog-sh/devlog/internal"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// formatEntryLine renders one entry the way the list, search and watch
// commands print it: "2025-01-02 15:04 [coding]: Fixed the bug #auth".
func formatEntryLine(e internal.Entry) string {
	var b strings.Builder

	b.WriteString(mutedStyle.Render(e.Timestamp.Format("2006-01-02 15:04")))
	b.WriteString(" [")
	b.WriteString(categoryStyle.Render(e.Category))
	b.WriteString("]: ")
	b.WriteString(e.Text)
	for _, t := range e.Tags {
		b.WriteString(" ")
		b.WriteString(tagStyle.Render("#" + t))
	}
	return b.String()
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = tagStyle.Render("#" + t)
	}
	return fmt.Sprintf(" [%s]", strings.Join(parts, " "))
}
