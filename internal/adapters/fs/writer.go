// Package fs implements filesystem adapters for generated plans.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PlanWriter = (*Writer)(nil)

// Writer implements ports.PlanWriter with atomic replacement.
type Writer struct {
	version string
}

// NewWriter creates a Writer for plans generated by version.
func NewWriter(version string) *Writer {
	return &Writer{version: version}
}

// Write replaces the file at path with data. Unchanged content is left alone.
func (w *Writer) Write(path string, data []byte, force bool) (bool, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	switch {
	case errors.Is(err, iofs.ErrNotExist):
	case err != nil:
		return false, zerr.With(zerr.Wrap(err, "failed to read existing plan"), "path", path)
	default:
		if ContentHash(existing) == ContentHash(data) {
			return false, nil
		}
		if !force {
			if err := CheckCompatible(existing, w.version); err != nil {
				return false, zerr.With(err, "path", path)
			}
		}
	}

	if err := writeAtomic(path, data); err != nil {
		return false, zerr.With(err, "path", path)
	}
	return true, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temporary file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temporary file")
	}
	//nolint:gosec // Generated plans are meant to be readable
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return zerr.Wrap(err, "failed to set plan permissions")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.Wrap(err, "failed to replace plan")
	}
	return nil
}
