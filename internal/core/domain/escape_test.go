package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nixcrate/internal/core/domain"
)

func TestEscapeDefault(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gnu", "gnu"},
		{"a\tb", `a\tb`},
		{"line\n", `line\n`},
		{`quote"`, `quote\"`},
		{`back\slash`, `back\\slash`},
		{"it's", `it\'s`},
		{"é", `\u{e9}`},
		{"\x00", `\u{0}`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.EscapeDefault(tt.input))
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{`a\tb`, "a\tb"},
		{`\u{e9}`, "é"},
		{`\x41`, "A"},
		{`\0`, "\x00"},
		{`\q`, `\q`},
		{`trailing\`, `trailing\`},
		{`\u{zz}`, `\u{zz}`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.Unescape(tt.input))
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, s := range []string{"", "uclibc", "weird\tname", "ünïcode", `a\b"c'`, "\r\n"} {
		assert.Equal(t, s, domain.Unescape(domain.EscapeDefault(s)))
	}
}

func TestNixString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"app/tls", `"app/tls"`},
		{"é", `"é"`},
		{`quote"`, `"quote\""`},
		{`back\slash`, `"back\\slash"`},
		{"a\tb\n", `"a\tb\n"`},
		{"${x}", `"\${x}"`},
		{"$x", `"$x"`},
		{"\x01", "\"\x01\""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NixString(tt.input))
		})
	}
}
