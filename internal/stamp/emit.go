package stamp

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/marcus/sitestamp/internal/clock"
)

// DefaultOutputPath is where the record lands relative to the scripts
// directory of a site.
const DefaultOutputPath = "../data/auto.json"

const fileMode = 0644

// ErrWrite is returned when the record cannot be persisted.
var ErrWrite = errors.New("write timestamp record")

// Emit reads clk, encodes a fresh record and writes it to path, replacing any
// existing file. The parent directory must already exist. On failure nothing
// is left at path.
func Emit(path string, clk clock.Clock) (Record, error) {
	r := New(clk.Now())

	data, err := Encode(r)
	if err != nil {
		return Record{}, err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	slog.Debug("timestamp written", "path", path, "updated", r.Updated)
	return r, nil
}

// Read loads and validates the record stored at path.
func Read(path string) (Record, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, nil, err
	}
	r, err := Decode(data)
	if err != nil {
		return Record{}, data, err
	}
	return r, data, nil
}

// writeFileAtomic writes to a temp file in the target directory, then renames
// it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
