package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/devlog-sh/devlog/internal"
)

func TestCategoriesCmd(t *testing.T) {
	a := setupTestApp(t)

	cmd := NewCategoriesCmd(func() *internal.Config { return a.cfg })

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	s := out.String()
	for _, cat := range a.cfg.Categories {
		if !strings.Contains(s, cat) {
			t.Errorf("missing category %q in %q", cat, s)
		}
	}
	if !strings.Contains(s, "(default)") {
		t.Errorf("missing default marker: %q", s)
	}

	// the default marker sits on the default category's line
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, "(default)") && !strings.Contains(line, a.cfg.DefaultCategory) {
			t.Errorf("default marker on wrong line: %q", line)
		}
	}
}
