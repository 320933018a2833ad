package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/devlog-sh/devlog/internal"
	"go.uber.org/zap"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	ctx := context.Background()

	app, err := newApp(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "devlog: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = app.logger.Sync() }()

	rootCmd := NewRootCmd(version, app)
	if err := fang.Execute(ctx, rootCmd); err != nil {
		os.Exit(1)
	}
}

type app struct {
	paths      internal.Paths
	cfg        *internal.Config
	logger     *zap.Logger
	journalSvc *internal.JournalService
	exporter   *internal.Exporter
}

func newApp(args []string) (*app, error) {
	logger, err := internal.NewLogger(hasVerboseFlag(args))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	paths := internal.ResolvePaths()
	cfg, err := internal.LoadConfig(paths)
	if err != nil {
		return nil, err
	}

	return &app{
		paths:      paths,
		cfg:        cfg,
		logger:     logger,
		journalSvc: internal.NewJournalService(paths, cfg, logger),
		exporter:   internal.NewExporter(paths, cfg, logger),
	}, nil
}

func (a *app) snapshots() (*internal.SnapshotRepository, error) {
	return internal.OpenSnapshots(a.paths)
}

// hasVerboseFlag peeks at the raw arguments because the logger is built
// before cobra parses anything.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--verbose" {
			return true
		}
	}
	return false
}
