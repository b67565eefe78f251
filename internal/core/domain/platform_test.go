package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nixcrate/internal/core/domain"
)

func TestOS_Hierarchy(t *testing.T) {
	assert.True(t, domain.OSAndroid.Has(domain.OSLinux))
	assert.True(t, domain.OSAndroid.IsUnix())
	assert.True(t, domain.OSLinux.IsUnix())
	assert.True(t, domain.OSMacOS.IsUnix())
	assert.False(t, domain.OSWindows.IsUnix())
	assert.False(t, domain.OSLinux.Has(domain.OSAndroid))
	assert.False(t, domain.OS(0).Has(0))
}

func TestOS_BitPatterns(t *testing.T) {
	assert.Equal(t, domain.OS(0b0100000001), domain.OSLinux)
	assert.Equal(t, domain.OS(0b0000000010), domain.OSWindows)
	assert.Equal(t, domain.OS(0b0100000101), domain.OSAndroid)
	assert.Equal(t, domain.OS(0b0110000000), domain.OSMacOS)
	assert.Equal(t, domain.OS(0b1000000000), domain.OSOther)
}

func TestOS_String(t *testing.T) {
	tests := []struct {
		os       domain.OS
		expected string
	}{
		{domain.OSAndroid, "android"},
		{domain.OSLinux, "linux"},
		{domain.OSWindows, "windows"},
		{domain.OSMacOS, "macos"},
		{domain.OSIOS, "ios"},
		{domain.OSFreeBSD, "freebsd"},
		{domain.OSNetBSD, "netbsd"},
		{domain.OSOpenBSD, "openbsd"},
		{domain.OSUnix, ""},
		{domain.OSOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.os.String())
		})
	}
}

func TestParseOS(t *testing.T) {
	assert.Equal(t, domain.OSLinux, domain.ParseOS("linux"))
	assert.Equal(t, domain.OSAndroid, domain.ParseOS("android"))
	assert.Equal(t, domain.OSOther, domain.ParseOS("haiku"))
}

func TestParseEnv(t *testing.T) {
	assert.Equal(t, domain.EnvGNU, domain.ParseEnv(""))
	assert.Equal(t, domain.EnvGNU, domain.ParseEnv("gnu"))
	assert.Equal(t, domain.EnvMusl, domain.ParseEnv("musl"))
	assert.Equal(t, domain.EnvMSVC, domain.ParseEnv("msvc"))

	other := domain.ParseEnv(`uclibc\tx`)
	assert.Equal(t, domain.OtherEnv("uclibc\tx"), other)
	assert.Equal(t, `uclibc\tx`, other.String())
	assert.True(t, domain.Env{}.IsZero())
}

func TestEnumsDisplayRoundTrip(t *testing.T) {
	for _, raw := range []string{"little", "big", "mixed", `odd\"name`} {
		assert.Equal(t, raw, domain.ParseEndianness(raw).String())
	}
	for _, raw := range []string{"32", "64", "16"} {
		assert.Equal(t, raw, domain.ParsePointerWidth(raw).String())
	}
	for _, raw := range []string{"unix", "windows", "wasm"} {
		assert.Equal(t, raw, domain.ParseFamily(raw).String())
	}
	for _, raw := range []string{"gnu", "musl", "msvc", "sgx"} {
		assert.Equal(t, raw, domain.ParseEnv(raw).String())
	}
}

func TestNewPlatform(t *testing.T) {
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

	p := domain.NewPlatform(raw)

	assert.Equal(t, "x86_64-unknown-linux-gnu", p.Config)
	assert.Equal(t, domain.OSLinux, p.OS)
	assert.Equal(t, "x86_64", p.Arch)
	assert.Equal(t, "unknown", p.Vendor)
	assert.Equal(t, domain.EndianLittle, p.Endianness)
	assert.Equal(t, domain.EnvGNU, p.Env)
	assert.Equal(t, domain.PointerWidth64, p.PointerWidth)
}

func TestNewPlatform_Precedence(t *testing.T) {
	raw := domain.RawPlatform{
		Config:         "odd",
		Is32Bit:        true,
		Is64Bit:        true,
		IsBigEndian:    true,
		IsLittleEndian: true,
		IsWindows:      true,
		Libc:           "msvcrt",
	}

	p := domain.NewPlatform(raw)

	assert.Equal(t, domain.PointerWidth32, p.PointerWidth)
	assert.Equal(t, domain.EndianLittle, p.Endianness)
	assert.Equal(t, domain.EnvMSVC, p.Env)
	assert.Equal(t, domain.OSWindows, p.OS)
}

func TestNewPlatform_UnknownLibc(t *testing.T) {
	p := domain.NewPlatform(domain.RawPlatform{Config: "c", Libc: "newlib"})

	assert.Equal(t, domain.OtherEnv("newlib"), p.Env)
	assert.True(t, p.Endianness.IsZero())
	assert.True(t, p.PointerWidth.IsZero())
}
