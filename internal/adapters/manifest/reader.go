// Package manifest reads workspace manifests.
package manifest

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader implements ports.ManifestReader for Cargo.toml files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

type workspaceManifest struct {
	Profile map[string]any `toml:"profile"`
}

// ReadProfiles returns the [profile.*] tables of the manifest at path. A
// manifest without profiles yields an empty map.
func (r *Reader) ReadProfiles(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var manifest workspaceManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, &domain.ParseError{Subject: "manifest " + path, Err: err}
	}
	if manifest.Profile == nil {
		return map[string]any{}, nil
	}
	return manifest.Profile, nil
}
