package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/devlog-sh/devlog/internal"
)

func TestExportCmdWritesFile(t *testing.T) {
	a := setupTestApp(t)
	seedEntries(t, a, "ship it #release")

	cmd := NewExportCmd(
		func() *internal.JournalService { return a.journalSvc },
		func() *internal.Exporter { return a.exporter },
	)
	cmd.SetArgs([]string{"csv"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(out.String(), "Exported 1 entries to ") {
		t.Errorf("output = %q", out.String())
	}

	files, err := os.ReadDir(a.paths.ExportDir())
	if err != nil {
		t.Fatalf("read export dir: %v", err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0].Name(), ".csv") {
		t.Errorf("export dir = %v", files)
	}
}

func TestExportCmdUnsupportedFormat(t *testing.T) {
	a := setupTestApp(t)
	seedEntries(t, a, "an entry")

	cmd := NewExportCmd(
		func() *internal.JournalService { return a.journalSvc },
		func() *internal.Exporter { return a.exporter },
	)
	cmd.SetArgs([]string{"xml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unsupported format")
	}

	// no file may be written on a user error
	if _, err := os.Stat(a.paths.ExportDir()); !os.IsNotExist(err) {
		t.Error("export directory should not exist after a failed export")
	}
}

func TestExportCmdFilteredView(t *testing.T) {
	a := setupTestApp(t)
	seedEntries(t, a, "coding note")

	cmd := NewExportCmd(
		func() *internal.JournalService { return a.journalSvc },
		func() *internal.Exporter { return a.exporter },
	)
	cmd.SetArgs([]string{"json", "-c", "meeting"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "Exported 0 entries to ") {
		t.Errorf("output = %q", out.String())
	}
}
