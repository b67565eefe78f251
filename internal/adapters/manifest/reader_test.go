package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixcrate/internal/adapters/manifest"
	"go.trai.ch/nixcrate/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadProfiles(t *testing.T) {
	path := writeManifest(t, `
[workspace]
members = ["app"]

[profile.release]
lto = true
opt-level = 3

[profile.dev.package.serde]
debug = false
`)

	profiles, err := manifest.NewReader().ReadProfiles(path)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	release, ok := profiles["release"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, release["lto"])
	assert.EqualValues(t, 3, release["opt-level"])

	dev, ok := profiles["dev"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, dev, "package")
}

func TestReadProfiles_NoProfiles(t *testing.T) {
	path := writeManifest(t, "[package]\nname = \"app\"\n")

	profiles, err := manifest.NewReader().ReadProfiles(path)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestReadProfiles_Invalid(t *testing.T) {
	path := writeManifest(t, "[profile.release\nlto = true\n")

	_, err := manifest.NewReader().ReadProfiles(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrParse))
}

func TestReadProfiles_Missing(t *testing.T) {
	_, err := manifest.NewReader().ReadProfiles(filepath.Join(t.TempDir(), "Cargo.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
