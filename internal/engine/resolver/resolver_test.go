package resolver_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixcrate/internal/adapters/logger"
	"go.trai.ch/nixcrate/internal/core/domain"
	"go.trai.ch/nixcrate/internal/engine/resolver"
)

const (
	hostConfig  = "x86_64-unknown-linux-gnu"
	buildConfig = "aarch64-apple-darwin"
)

func linux(config string) domain.RawPlatform {
	raw := domain.RawPlatform{
		Config:         config,
		Is64Bit:        true,
		IsLinux:        true,
		IsUnix:         true,
		IsLittleEndian: true,
		Libc:           "glibc",
	}
	raw.Parsed.CPU.Name = "x86_64"
	return raw
}

func darwin(config string) domain.RawPlatform {
	raw := domain.RawPlatform{
		Config:         config,
		Is64Bit:        true,
		IsMacOS:        true,
		IsUnix:         true,
		IsLittleEndian: true,
	}
	raw.Parsed.CPU.Name = "aarch64"
	return raw
}

func newRequest(packages map[domain.PackageID]domain.Package, initial ...domain.PackageRequest) *domain.ResolveRequest {
	return &domain.ResolveRequest{
		BuildPlatform: darwin(buildConfig),
		HostPlatform:  linux(hostConfig),
		Packages:      packages,
		Initial:       initial,
	}
}

func deps(names ...string) []domain.Dependency {
	out := make([]domain.Dependency, len(names))
	for i, name := range names {
		out[i] = domain.Dependency{PackageID: domain.PackageID(name), TomlNames: []string{name}}
	}
	return out
}

func specs(optional bool, names ...string) map[string]domain.DepSpec {
	out := make(map[string]domain.DepSpec, len(names))
	for _, name := range names {
		out[name] = domain.DepSpec{Optional: optional, DefaultFeatures: true}
	}
	return out
}

func newResolver() *resolver.Resolver {
	return resolver.New(logger.NewWithOutput(io.Discard))
}

func resolve(t *testing.T, req *domain.ResolveRequest) *domain.Resolution {
	t.Helper()
	res, err := newResolver().Resolve(req)
	require.NoError(t, err)
	return res
}

// optionalPackages is a root "a" with an optional dependency "b" behind the
// feature "full".
func optionalPackages() map[domain.PackageID]domain.Package {
	return map[domain.PackageID]domain.Package{
		"a": {
			Dependencies: deps("b"),
			Manifest: domain.Manifest{
				TargetDeps: domain.TargetDeps{Dependencies: specs(true, "b")},
				Features: map[string][]string{
					"default": {},
					"full":    {"b"},
				},
			},
		},
		"b": {
			Manifest: domain.Manifest{
				Features: map[string][]string{"default": {}, "extra": {}},
			},
		},
	}
}

func TestResolve_DefaultDoesNotEnableOptional(t *testing.T) {
	res := resolve(t, newRequest(optionalPackages(),
		domain.PackageRequest{PackageID: "a", Features: []string{"default"}},
	))

	assert.Empty(t, res.Dependencies["a"][hostConfig])
	assert.Empty(t, res.Dependencies["a"][buildConfig])
	assert.Equal(t, []string{"default"}, res.Features["a"])
	assert.NotContains(t, res.Features, domain.PackageID("b"))
}

func TestResolve_EnabledPackagesListFeatures(t *testing.T) {
	res := resolve(t, newRequest(optionalPackages(), domain.PackageRequest{PackageID: "a"}))

	require.Contains(t, res.Features, domain.PackageID("a"))
	assert.Empty(t, res.Features["a"])
	assert.NotNil(t, res.Features["a"])
	assert.NotContains(t, res.Features, domain.PackageID("b"))
}

func TestResolve_FeatureEnablesOptional(t *testing.T) {
	res := resolve(t, newRequest(optionalPackages(),
		domain.PackageRequest{PackageID: "a", Features: []string{"full"}},
	))

	assert.Equal(t, []domain.PackageID{"b"}, res.Dependencies["a"][hostConfig])
	assert.Equal(t, []domain.PackageID{"b"}, res.Dependencies["a"][buildConfig])
	assert.Equal(t, []string{"b", "full"}, res.Features["a"])
	assert.Equal(t, []string{"default"}, res.Features["b"])
}

func TestResolve_DependencyFeatureSyntax(t *testing.T) {
	res := resolve(t, newRequest(optionalPackages(),
		domain.PackageRequest{PackageID: "a", Features: []string{"b/extra"}},
	))

	assert.Equal(t, []domain.PackageID{"b"}, res.Dependencies["a"][hostConfig])
	assert.Equal(t, []string{"b"}, res.Features["a"])
	assert.Equal(t, []string{"default", "extra"}, res.Features["b"])
}

func TestResolve_RoleShiftForCodeGenerators(t *testing.T) {
	packages := map[domain.PackageID]domain.Package{
		"a": {
			Dependencies: deps("derive"),
			Manifest: domain.Manifest{
				TargetDeps: domain.TargetDeps{Dependencies: specs(false, "derive")},
			},
		},
		"derive": {
			Dependencies: deps("syn"),
			Manifest: domain.Manifest{
				Lib:        domain.Lib{ProcMacro: true},
				TargetDeps: domain.TargetDeps{Dependencies: specs(false, "syn")},
			},
		},
		"syn": {},
	}

	res := resolve(t, newRequest(packages, domain.PackageRequest{PackageID: "a"}))

	assert.Equal(t, []domain.PackageID{"derive"}, res.Dependencies["a"][buildConfig])
	assert.Empty(t, res.Dependencies["a"][hostConfig])
	assert.Equal(t, []domain.PackageID{"syn"}, res.Dependencies["derive"][buildConfig])
	assert.Empty(t, res.Dependencies["derive"][hostConfig])
}

func TestResolve_BuildDependencies(t *testing.T) {
	packages := map[domain.PackageID]domain.Package{
		"a": {
			Dependencies: deps("cc"),
			Manifest: domain.Manifest{
				TargetDeps: domain.TargetDeps{BuildDependencies: specs(false, "cc")},
			},
		},
		"cc": {
			Manifest: domain.Manifest{Features: map[string][]string{"default": {"parallel"}, "parallel": {}}},
		},
	}

	res := resolve(t, newRequest(packages, domain.PackageRequest{PackageID: "a"}))

	assert.Equal(t, []domain.PackageID{"cc"}, res.BuildDependencies["a"][buildConfig])
	assert.Empty(t, res.BuildDependencies["a"][hostConfig])
	assert.Empty(t, res.Dependencies["a"][hostConfig])
	assert.Equal(t, []string{"default", "parallel"}, res.Features["cc"])
}

func TestResolve_DevDependenciesOnlyWhenRequested(t *testing.T) {
	packages := map[domain.PackageID]domain.Package{
		"a": {
			Dependencies: deps("b", "testlib"),
			Manifest: domain.Manifest{
				TargetDeps: domain.TargetDeps{
					Dependencies:    specs(false, "b"),
					DevDependencies: specs(false, "testlib"),
				},
			},
		},
		"b": {
			Dependencies: deps("testlib"),
			Manifest: domain.Manifest{
				TargetDeps: domain.TargetDeps{DevDependencies: specs(false, "testlib")},
			},
		},
		"testlib": {},
	}

	without := resolve(t, newRequest(packages, domain.PackageRequest{PackageID: "a"}))
	assert.Empty(t, without.DevDependencies)

	with := resolve(t, newRequest(packages, domain.PackageRequest{PackageID: "a", UseDevDependencies: true}))
	assert.Equal(t, []domain.PackageID{"testlib"}, with.DevDependencies["a"][hostConfig])
	assert.NotContains(t, with.DevDependencies, domain.PackageID("b"))
}

func TestResolve_TargetBlocks(t *testing.T) {
	packages := map[domain.PackageID]domain.Package{
		"a": {
			Dependencies: deps("libc", "winapi", "literal", "broken", "tls"),
			Manifest: domain.Manifest{
				Target: map[string]domain.TargetDeps{
					"cfg(unix)":                   {Dependencies: specs(false, "libc")},
					"cfg(windows)":                {Dependencies: specs(false, "winapi")},
					hostConfig:                    {Dependencies: specs(false, "literal")},
					"cfg(this is not a predicate": {Dependencies: specs(false, "broken")},
					`cfg(feature = "secure")`:     {Dependencies: specs(true, "tls")},
				},
				Features: map[string][]string{"secure": {"tls"}},
			},
		},
		"libc": {}, "winapi": {}, "literal": {}, "broken": {}, "tls": {},
	}

	plain := resolve(t, newRequest(packages, domain.PackageRequest{PackageID: "a"}))
	assert.Equal(t, []domain.PackageID{"libc", "literal"}, plain.Dependencies["a"][hostConfig])

	secure := resolve(t, newRequest(packages, domain.PackageRequest{PackageID: "a", Features: []string{"secure"}}))
	assert.Equal(t, []domain.PackageID{"libc", "literal", "tls"}, secure.Dependencies["a"][hostConfig])
}

func TestResolve_TargetBlocksUseRolePlatform(t *testing.T) {
	packages := map[domain.PackageID]domain.Package{
		"a": {
			Dependencies: deps("cc"),
			Manifest: domain.Manifest{
				TargetDeps: domain.TargetDeps{BuildDependencies: specs(false, "cc")},
			},
		},
		"cc": {
			Dependencies: deps("linux_only", "mac_only"),
			Manifest: domain.Manifest{
				Target: map[string]domain.TargetDeps{
					`cfg(target_os = "linux")`: {Dependencies: specs(false, "linux_only")},
					`cfg(target_os = "macos")`: {Dependencies: specs(false, "mac_only")},
				},
			},
		},
		"linux_only": {}, "mac_only": {},
	}

	res := resolve(t, newRequest(packages, domain.PackageRequest{PackageID: "a"}))

	assert.Equal(t, []domain.PackageID{"mac_only"}, res.Dependencies["cc"][buildConfig])
	assert.Empty(t, res.Dependencies["cc"][hostConfig])
}

func TestResolve_MissingPackagesAreSkipped(t *testing.T) {
	packages := map[domain.PackageID]domain.Package{
		"a": {
			Dependencies: deps("ghost"),
			Manifest: domain.Manifest{
				TargetDeps: domain.TargetDeps{Dependencies: specs(false, "ghost", "unlisted")},
				Features:   map[string][]string{"x": {"ghost/std"}},
			},
		},
	}

	res := resolve(t, newRequest(packages,
		domain.PackageRequest{PackageID: "a", Features: []string{"x"}},
		domain.PackageRequest{PackageID: "nobody", Features: []string{"y"}},
	))

	assert.Empty(t, res.Dependencies["a"][hostConfig])
	assert.Equal(t, []string{"ghost", "x"}, res.Features["a"])
	assert.NotContains(t, res.Features, domain.PackageID("nobody"))
}

func TestResolve_FeatureCycleTerminates(t *testing.T) {
	packages := map[domain.PackageID]domain.Package{
		"a": {Manifest: domain.Manifest{Features: map[string][]string{
			"x": {"y"},
			"y": {"x", "x"},
		}}},
	}

	res := resolve(t, newRequest(packages, domain.PackageRequest{PackageID: "a", Features: []string{"x"}}))

	assert.Equal(t, []string{"x", "y"}, res.Features["a"])
}

func TestResolve_Idempotence(t *testing.T) {
	once := resolve(t, newRequest(optionalPackages(),
		domain.PackageRequest{PackageID: "a", Features: []string{"full"}},
	))
	twice := resolve(t, newRequest(optionalPackages(),
		domain.PackageRequest{PackageID: "a", Features: []string{"full", "full"}},
		domain.PackageRequest{PackageID: "a", Features: []string{"full"}},
	))

	assert.Equal(t, once, twice)
}

func TestResolve_Deterministic(t *testing.T) {
	req := newRequest(optionalPackages(), domain.PackageRequest{PackageID: "a", Features: []string{"full"}})
	assert.Equal(t, resolve(t, req), resolve(t, req))
}

func TestResolve_Monotonicity(t *testing.T) {
	packages := optionalPackages()
	selections := [][]string{
		nil,
		{"default"},
		{"default", "full"},
		{"default", "full", "b/extra"},
	}

	var prev *domain.Resolution
	for _, features := range selections {
		res := resolve(t, newRequest(packages, domain.PackageRequest{PackageID: "a", Features: features}))
		if prev != nil {
			for id, enabled := range prev.Features {
				assert.Subset(t, res.Features[id], enabled, "features of %s", id)
			}
			for id, byConfig := range prev.Dependencies {
				for config, targets := range byConfig {
					assert.Subset(t, res.Dependencies[id][config], targets, "edges of %s on %s", id, config)
				}
			}
		}
		prev = res
	}
}

func TestResolve_SharedConfigMergesRoles(t *testing.T) {
	packages := map[domain.PackageID]domain.Package{
		"a": {
			Dependencies: deps("derive", "b"),
			Manifest: domain.Manifest{
				TargetDeps: domain.TargetDeps{Dependencies: specs(false, "derive", "b")},
			},
		},
		"derive": {Manifest: domain.Manifest{Lib: domain.Lib{ProcMacro: true}}},
		"b":      {},
	}
	req := newRequest(packages, domain.PackageRequest{PackageID: "a"})
	req.BuildPlatform = req.HostPlatform

	res := resolve(t, req)

	assert.Equal(t, map[string][]domain.PackageID{hostConfig: {"b", "derive"}}, res.Dependencies["a"])
}

func TestResolve_NilRequest(t *testing.T) {
	_, err := newResolver().Resolve(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
