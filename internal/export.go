package internal

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

var exportExtensions = map[string]string{
	"json":     "json",
	"csv":      "csv",
	"markdown": "md",
}

// Exporter renders entries into a shareable format and writes each export to
// its own timestamped file, so repeated exports never overwrite each other.
type Exporter struct {
	dir    string
	cfg    *Config
	logger *zap.Logger
}

func NewExporter(paths Paths, cfg *Config, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{dir: paths.ExportDir(), cfg: cfg, logger: logger}
}

// Render produces the text blob for one of the json, csv or markdown
// formats. Unknown formats and formats disabled in the config are user
// errors wrapping ErrUnsupportedFormat.
func (e *Exporter) Render(format string, entries []Entry) (string, error) {
	if _, ok := exportExtensions[format]; !ok {
		return "", fmt.Errorf("%w: %q (supported: json, csv, markdown)", ErrUnsupportedFormat, format)
	}
	if !e.cfg.AllowsFormat(format) {
		return "", fmt.Errorf("%w: %q is disabled in the config", ErrUnsupportedFormat, format)
	}

	switch format {
	case "json":
		return renderJSON(entries)
	case "csv":
		return renderCSV(entries)
	default:
		return renderMarkdown(entries), nil
	}
}

// Export renders the entries and writes them to a new file in the export
// directory, returning its path.
func (e *Exporter) Export(format string, entries []Entry) (string, error) {
	blob, err := e.Render(format, entries)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	name := fmt.Sprintf("devlog_export_%s.%s", time.Now().Format("20060102_150405"), exportExtensions[format])
	path := filepath.Join(e.dir, name)

	if err := os.WriteFile(path, []byte(blob), 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	e.logger.Debug("export written",
		zap.String("format", format),
		zap.Int("entries", len(entries)),
		zap.String("path", path))

	return path, nil
}

func renderJSON(entries []Entry) (string, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal entries: %w", err)
	}
	return string(data) + "\n", nil
}

func renderCSV(entries []Entry) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"timestamp", "category", "tags", "text"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.Timestamp.Format(time.RFC3339),
			e.Category,
			strings.Join(e.Tags, ";"),
			e.Text,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

func renderMarkdown(entries []Entry) string {
	var buf strings.Builder
	buf.WriteString("# Development Log\n")

	for _, e := range entries {
		fmt.Fprintf(&buf, "\n**%s** [%s]", e.Timestamp.Format("2006-01-02 15:04"), e.Category)
		for _, t := range e.Tags {
			fmt.Fprintf(&buf, " #%s", t)
		}
		fmt.Fprintf(&buf, "\n\n%s\n", e.Text)
	}
	return buf.String()
}
