// Package storage provides atomic file operations for small JSON documents
// (stat sidecars, session state).
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// SaveJSON atomically writes data as JSON to the specified path.
// It ensures the parent directory exists, then replaces the file as a whole
// so readers never observe a partially written document.
func SaveJSON(path string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return atomic.WriteFile(path, bytes.NewReader(jsonData))
}

// LoadJSON reads JSON from the specified path into dest.
// Comments and trailing commas are accepted (JSONC) so hand-edited files
// still load. Returns os.ErrNotExist if the file doesn't exist (caller
// should handle).
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	return json.Unmarshal(standardized, dest)
}
