// Package filex contains small filesystem helpers for saving downloaded
// files.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SanitizeFilename strips path separators and control characters from a
// server-supplied filename so it is safe to create in the download directory.
// An empty result falls back to the provided alternative.
func SanitizeFilename(name, fallback string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	name = strings.TrimSpace(b.String())
	if name == "" || name == "." || name == ".." || name == "/" {
		return fallback
	}
	return name
}

// SaveTo writes data into dir under the given (already sanitized) filename,
// creating the directory if needed. Returns the full path written.
func SaveTo(dir, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
