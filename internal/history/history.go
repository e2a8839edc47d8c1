// Package history persists the interactive session's command history
// between runs.
package history

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Lines is the line editor's history, read and written as one entry per
// line. *liner.State implements it.
type Lines interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

// Path returns the path to the history file
func Path() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "noita-saves", "history"), nil
}

// Load reads the history file at path into l.
// A missing file is an empty history.
func Load(path string, l Lines) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	if _, err := l.ReadHistory(f); err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	return nil
}

// Save writes l to path atomically, creating the directory if needed.
func Save(path string, l Lines) error {
	var buf bytes.Buffer
	if _, err := l.WriteHistory(&buf); err != nil {
		return fmt.Errorf("write history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return atomic.WriteFile(path, &buf)
}
