package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixcrate/internal/adapters/config"
	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultConfigFile)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
request: req.json
output: /abs/plan.yaml
format: yaml
rootFeaturesVar: features
logLevel: debug
manifest: Cargo.toml
prefetch:
  concurrency: 8
  cacheFile: cache/checksums.json
`)
	dir := filepath.Dir(path)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "req.json"), cfg.Request)
	assert.Equal(t, "/abs/plan.yaml", cfg.Output)
	assert.Equal(t, domain.FormatYAML, cfg.Format)
	assert.Equal(t, "features", cfg.RootFeaturesVar)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "Cargo.toml"), cfg.Manifest)
	assert.Equal(t, 8, cfg.Prefetch.Concurrency)
	assert.Equal(t, filepath.Join(dir, "cache", "checksums.json"), cfg.Prefetch.CacheFile)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "format: yaml\n")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	defaults := domain.DefaultConfig()
	assert.Equal(t, domain.FormatYAML, cfg.Format)
	assert.Equal(t, defaults.RootFeaturesVar, cfg.RootFeaturesVar)
	assert.Equal(t, defaults.Prefetch.Concurrency, cfg.Prefetch.Concurrency)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatJSON, cfg.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "format: [unclosed\n")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrParse))
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeConfig(t, "outptu: plan.json\n")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrParse))
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown format", content: "format: toml\n"},
		{name: "concurrency too high", content: "prefetch:\n  concurrency: 1000\n"},
		{name: "negative concurrency", content: "prefetch:\n  concurrency: -1\n"},
		{name: "unknown log level", content: "logLevel: chatty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := newLoader(t).Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
		})
	}
}

func TestLoad_ReadError(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := newLoader(t).Load(t.TempDir())
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrInvalidConfig))
}
