package cfg

import (
	"fmt"

	"go.trai.ch/zerr"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokLParen
	tokRParen
	tokComma
	tokEq
)

func (k tokenKind) String() string {
	switch k {
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokEq:
		return "'='"
	default:
		return "end of input"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	start := l.pos
	if start >= len(l.input) {
		return token{kind: tokEOF, pos: start}, nil
	}

	c := l.input[start]
	switch {
	case c == '(':
		l.pos++
		return token{kind: tokLParen, pos: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, pos: start}, nil
	case c == ',':
		l.pos++
		return token{kind: tokComma, pos: start}, nil
	case c == '=':
		l.pos++
		return token{kind: tokEq, pos: start}, nil
	case c == '"':
		return l.str()
	case isIdentStart(c):
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.input[start:l.pos], pos: start}, nil
	default:
		return token{}, zerr.New(fmt.Sprintf("unexpected character %q at offset %d", c, start))
	}
}

// str scans a string literal and keeps its contents unprocessed.
func (l *lexer) str() (token, error) {
	start := l.pos
	l.pos++
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '\\':
			l.pos += 2
		case '"':
			l.pos++
			return token{kind: tokString, text: l.input[start+1 : l.pos-1], pos: start}, nil
		default:
			l.pos++
		}
	}
	return token{}, zerr.New(fmt.Sprintf("unterminated string at offset %d", start))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
