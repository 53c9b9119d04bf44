package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paynex/paynex/internal/table"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Exporter writes the visible rows of a table into Dir.
type Exporter struct {
	Dir string
	Now func() time.Time
}

// Export writes t in the given format and returns the file path. A nil
// table is a no-op and returns an empty path.
func (e *Exporter) Export(t *table.Table, format string) (string, error) {
	if t == nil {
		return "", nil
	}
	write := table.WriteCSV
	switch format {
	case "", FormatCSV:
		format = FormatCSV
	case FormatXLSX:
		write = table.WriteXLSX
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}

	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(dir, table.Filename(t.Feature, format, now))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	if err := write(f, t); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	return path, nil
}
