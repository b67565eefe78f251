package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nixcrate/internal/core/cfg"
	"go.trai.ch/nixcrate/internal/core/domain"
)

func linuxPlatform() *domain.Platform {
	raw := domain.RawPlatform{
		Config:         "x86_64-unknown-linux-gnu",
		Is64Bit:        true,
		IsLinux:        true,
		IsUnix:         true,
		IsLittleEndian: true,
		Libc:           "glibc",
	}
	raw.Parsed.CPU.Name = "x86_64"
	raw.Parsed.Vendor.Name = "unknown"
	return domain.NewPlatform(raw)
}

func windowsPlatform() *domain.Platform {
	raw := domain.RawPlatform{
		Config:         "x86_64-pc-windows-msvc",
		Is64Bit:        true,
		IsWindows:      true,
		IsLittleEndian: true,
		Libc:           "msvcrt",
	}
	raw.Parsed.CPU.Name = "x86_64"
	raw.Parsed.Vendor.Name = "pc"
	return domain.NewPlatform(raw)
}

func TestEval(t *testing.T) {
	linux := cfg.Target{Platform: linuxPlatform(), Features: domain.NewSet("std")}
	windows := cfg.Target{Platform: windowsPlatform()}

	tests := []struct {
		predicate string
		linux     bool
		windows   bool
	}{
		{"unix", true, false},
		{"windows", false, true},
		{`target_family = "unix"`, true, false},
		{`target_family = "windows"`, false, true},
		{`target_family = "wasm"`, false, false},
		{`target_os = "linux"`, true, false},
		{`target_os = "android"`, false, false},
		{`target_os = "windows"`, false, true},
		{`target_os = "haiku"`, false, false},
		{`target_arch = "x86_64"`, true, true},
		{`target_arch = "aarch64"`, false, false},
		{`target_vendor = "pc"`, false, true},
		{`target_endian = "little"`, true, true},
		{`target_endian = "big"`, false, false},
		{`target_env = "gnu"`, true, false},
		{`target_env = ""`, true, false},
		{`target_env = "msvc"`, false, true},
		{`target_pointer_width = "64"`, true, true},
		{`target_pointer_width = "32"`, false, false},
		{`feature = "std"`, true, false},
		{`feature = "alloc"`, false, false},
		{"debug_assertions", false, false},
		{`target_has_atomic = "64"`, false, false},
		{"all()", true, true},
		{"any()", false, false},
		{`all(unix, target_pointer_width = "64")`, true, false},
		{`any(windows, target_os = "linux")`, true, true},
		{"not(unix)", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.predicate, func(t *testing.T) {
			expr, err := cfg.Parse(tt.predicate)
			require.NoError(t, err)
			assert.Equal(t, tt.linux, cfg.Eval(expr, linux), "linux")
			assert.Equal(t, tt.windows, cfg.Eval(expr, windows), "windows")
		})
	}
}

func TestEval_AndroidIsLinux(t *testing.T) {
	p := domain.NewPlatform(domain.RawPlatform{Config: "aarch64-linux-android", IsAndroid: true, IsLinux: true, IsUnix: true})
	target := cfg.Target{Platform: p}

	for _, predicate := range []string{`target_os = "android"`, `target_os = "linux"`, "unix"} {
		expr, err := cfg.Parse(predicate)
		require.NoError(t, err)
		assert.True(t, cfg.Eval(expr, target), predicate)
	}
}

func TestEval_NilPlatform(t *testing.T) {
	expr, err := cfg.Parse(`any(unix, target_os = "linux", feature = "x")`)
	require.NoError(t, err)

	assert.False(t, cfg.Eval(expr, cfg.Target{}))
	assert.True(t, cfg.Eval(expr, cfg.Target{Features: domain.NewSet("x")}))
}
