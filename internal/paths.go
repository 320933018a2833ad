package internal

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	storeFile    = "logs.json"
	configFile   = "config.json"
	exportsDir   = "exports"
	snapshotsDir = ".snapshots"
)

// Paths locates everything devlog keeps on disk under a single root
// directory, by default ~/.devlog.
type Paths struct {
	Root string
}

// ResolvePaths determines the devlog root. A .env file in the working
// directory is loaded first, so DEVLOG_DIR may come from either the
// environment or .env.
func ResolvePaths() Paths {
	_ = godotenv.Load()

	if dir := os.Getenv("DEVLOG_DIR"); dir != "" {
		return Paths{Root: dir}
	}

	home, _ := os.UserHomeDir()
	return Paths{Root: filepath.Join(home, ".devlog")}
}

func (p Paths) StorePath() string {
	return filepath.Join(p.Root, storeFile)
}

func (p Paths) ConfigPath() string {
	return filepath.Join(p.Root, configFile)
}

func (p Paths) ExportDir() string {
	return filepath.Join(p.Root, exportsDir)
}

func (p Paths) SnapshotPath() string {
	return filepath.Join(p.Root, snapshotsDir)
}

// EnsureRoot creates the root directory if it does not exist yet.
func (p Paths) EnsureRoot() error {
	return os.MkdirAll(p.Root, 0755)
}
