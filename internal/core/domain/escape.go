package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// EscapeDefault renders s with printable ASCII kept verbatim, the usual
// control escapes, and \u{...} for everything else.
func EscapeDefault(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\\', r == '\'', r == '"':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r >= 0x20 && r <= 0x7e:
			b.WriteRune(r)
		default:
			b.WriteString(`\u{`)
			b.WriteString(strconv.FormatInt(int64(r), 16))
			b.WriteByte('}')
		}
	}
	return b.String()
}

// Unescape reverses EscapeDefault. Malformed escapes are kept verbatim.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}
		r, n := unescapeAt(s[i+1:])
		if n == 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteRune(r)
		i += 1 + n
	}
	return b.String()
}

// unescapeAt decodes the escape body at the start of s and returns the rune
// and the number of bytes consumed, or zero when s is not a valid escape.
func unescapeAt(s string) (rune, int) {
	switch s[0] {
	case 't':
		return '\t', 1
	case 'r':
		return '\r', 1
	case 'n':
		return '\n', 1
	case '0':
		return 0, 1
	case '\\', '\'', '"':
		return rune(s[0]), 1
	case 'x':
		if len(s) < 3 {
			return 0, 0
		}
		v, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil || v > 0x7f {
			return 0, 0
		}
		return rune(v), 3
	case 'u':
		if len(s) < 3 || s[1] != '{' {
			return 0, 0
		}
		end := strings.IndexByte(s, '}')
		if end < 3 || end > 8 {
			return 0, 0
		}
		v, err := strconv.ParseUint(s[2:end], 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return 0, 0
		}
		return rune(v), end + 1
	default:
		return 0, 0
	}
}

// NixString renders s as a double-quoted Nix string literal. Nix only knows
// the \n, \r and \t escapes, so every other character is kept verbatim.
func NixString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '$':
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
