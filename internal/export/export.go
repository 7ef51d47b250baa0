package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/pkg/browser"
)

// WriteFile atomically replaces path with data, creating parent directories
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	slog.Debug("Export: wrote file", "path", path, "bytes", len(data))
	return nil
}

// TempFile writes data to a new file in the system temp directory and returns its path
func TempFile(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, WriteFile(path, data)
}

// Opener opens a file with the system handler
var Opener = browser.OpenFile

// Open opens path in the default browser
func Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	slog.Debug("Export: opening in browser", "path", abs)
	if err := Opener(abs); err != nil {
		return fmt.Errorf("failed to open %s: %w", abs, err)
	}
	return nil
}
