// Package workdir resolves output paths against the directory the command
// treats as its base, mirroring how site scripts run from their own folder.
package workdir

import (
	"os"
	"path/filepath"
	"strings"
)

// BaseDir returns dir cleaned and made absolute. An empty dir means the
// current working directory.
func BaseDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

// ResolveOutput joins a relative path onto baseDir. Absolute paths are
// returned cleaned and unchanged otherwise.
func ResolveOutput(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
