package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// renameFeed is swapped out in tests to simulate failures between the
// temp-file write and the final rename.
var renameFeed = os.Rename

// Writer persists the feed document with a write-temp-then-rename
// strategy so no reader ever observes a partially written file.
type Writer struct {
	outputPath string
}

func NewWriter(outputPath string) *Writer {
	return &Writer{outputPath: outputPath}
}

// Encode renders the document with a stable two-space indent. Repeated
// runs over identical input produce identical bytes.
func Encode(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode feed: %w", err)
	}
	return append(data, '\n'), nil
}

func (w *Writer) Run(doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(w.outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.outputPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary feed file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary feed file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary feed file: %w", err)
	}

	// The feed is served by a web server, so loosen CreateTemp's 0600.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set feed file permissions: %w", err)
	}

	if err := renameFeed(tmpPath, w.outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace feed file: %w", err)
	}

	return nil
}
