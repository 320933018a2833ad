package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/devlog-sh/devlog/internal"
)

func TestSearchCmdCaseInsensitive(t *testing.T) {
	a := setupTestApp(t)
	seedEntries(t, a, "reworked the authentication flow", "lunch break")

	cmd := NewSearchCmd(func() *internal.JournalService { return a.journalSvc })
	cmd.SetArgs([]string{"AUTH"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(out.String(), `Search results for "AUTH" (1 found)`) {
		t.Errorf("missing count header: %q", out.String())
	}
	if !strings.Contains(out.String(), "authentication") {
		t.Errorf("missing match: %q", out.String())
	}
	if strings.Contains(out.String(), "lunch") {
		t.Errorf("unexpected match: %q", out.String())
	}
}

func TestSearchCmdNoMatches(t *testing.T) {
	a := setupTestApp(t)
	seedEntries(t, a, "nothing relevant")

	cmd := NewSearchCmd(func() *internal.JournalService { return a.journalSvc })
	cmd.SetArgs([]string{"kubernetes"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "(0 found)") {
		t.Errorf("output = %q", out.String())
	}
}
