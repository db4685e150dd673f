package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile persists a rendered report atomically: the content lands in a
// temp file first and is renamed into place, so an interrupted run never
// leaves a truncated report behind.
func WriteFile(path string, content string) error {
	if path == "" {
		return fmt.Errorf("report path required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// TextPathFor derives the companion text report path from the HTML output
// path, e.g. sleeper_log.html -> sleeper_log.txt.
func TextPathFor(htmlPath string) string {
	ext := filepath.Ext(htmlPath)
	if ext == "" {
		return htmlPath + ".txt"
	}
	return strings.TrimSuffix(htmlPath, ext) + ".txt"
}
