// Package request decodes resolve request documents.
package request

import (
	"encoding/json"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RequestLoader = (*Loader)(nil)

// Loader implements ports.RequestLoader for JSON documents.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{validate: validator.New()}
}

// Load reads and validates the request document at path.
func (l *Loader) Load(path string) (*domain.ResolveRequest, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open request"), "path", path)
	}
	defer func() { _ = f.Close() }()

	req, err := l.Decode(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return req, nil
}

// Decode reads a request document from r.
func (l *Loader) Decode(r io.Reader) (*domain.ResolveRequest, error) {
	var req domain.ResolveRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, &domain.ParseError{Subject: "resolve request", Err: err}
	}
	if err := l.check(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (l *Loader) check(req *domain.ResolveRequest) error {
	if err := l.validate.Struct(req); err != nil {
		return domain.WithCause(domain.ErrInvalidRequest, err)
	}
	for id, pkg := range req.Packages {
		for _, dep := range pkg.Dependencies {
			if len(dep.TomlNames) == 0 {
				err := zerr.Wrap(domain.ErrInvalidRequest, "dependency has no toml names")
				err = zerr.With(err, "package", string(id))
				return zerr.With(err, "dependency", string(dep.PackageID))
			}
		}
	}
	return nil
}
