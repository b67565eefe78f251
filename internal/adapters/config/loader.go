// Package config provides the configuration loader for nixcrate.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:   logger,
		validate: validator.New(),
	}
}

// Load reads the configuration at path on top of the defaults. A missing
// file yields the defaults. Relative paths inside the file are resolved
// against the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Debug("no configuration file at " + path + ", using defaults")
		return cfg, nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, &domain.ParseError{Subject: "config file " + path, Err: err}
	}

	apply(cfg, &file, filepath.Dir(path))
	if err := l.validate.Struct(cfg); err != nil {
		return nil, zerr.With(domain.WithCause(domain.ErrInvalidConfig, err), "path", path)
	}
	return cfg, nil
}

func apply(cfg *domain.Config, file *File, dir string) {
	setPath := func(dst *string, value string) {
		if value == "" {
			return
		}
		if !filepath.IsAbs(value) {
			value = filepath.Join(dir, value)
		}
		*dst = value
	}
	setString := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}

	setPath(&cfg.Request, file.Request)
	setPath(&cfg.Output, file.Output)
	setPath(&cfg.Manifest, file.Manifest)
	setPath(&cfg.Prefetch.CacheFile, file.Prefetch.CacheFile)
	setString(&cfg.RootFeaturesVar, file.RootFeaturesVar)
	setString(&cfg.LogLevel, file.LogLevel)
	if file.Format != "" {
		cfg.Format = domain.Format(file.Format)
	}
	if file.Prefetch.Concurrency != 0 {
		cfg.Prefetch.Concurrency = file.Prefetch.Concurrency
	}
}
